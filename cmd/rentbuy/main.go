package main

import (
	"log"
	"os"

	"github.com/lakshmankumar12/rent-vs-buy/internal/cli"
)

func main() {
	log.SetFlags(0)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
