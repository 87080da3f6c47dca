package report

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Formatter renders a currency amount with two decimals.
type Formatter interface {
	Format(v float64) string
}

// Grouped separates thousands with commas: 1234567.891 -> "1,234,567.89".
type Grouped struct{}

func (Grouped) Format(v float64) string { return humanize.FormatFloat("#,###.##", v) }

// Plain prints the bare number: 1234567.891 -> "1234567.89".
type Plain struct{}

func (Plain) Format(v float64) string { return fmt.Sprintf("%.2f", v) }

// NewFormatter picks Grouped when pretty is set, Plain otherwise.
func NewFormatter(pretty bool) Formatter {
	if pretty {
		return Grouped{}
	}
	return Plain{}
}
