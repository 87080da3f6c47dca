package cli

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/lakshmankumar12/rent-vs-buy/internal/analysis"
	"github.com/lakshmankumar12/rent-vs-buy/internal/config"
	"github.com/lakshmankumar12/rent-vs-buy/internal/report"
)

type rootOptions struct {
	configPath string
	noPretty   bool
	logLevel   int
	validation string
	values     map[string]*string
}

// NewRootCmd builds the command tree. The root command computes the breakeven rent.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{values: make(map[string]*string, len(config.Fields))}

	cmd := &cobra.Command{
		Use:   "rentbuy",
		Short: "Breakeven rent for a rent-vs-buy decision",
		Long: `rentbuy finds the monthly rent at which renting costs as much as buying
a home over the same holding period, counting every expense as lost investment
growth.

Inputs come from field defaults, a scenario file (--config or RENTBUY_CONFIG),
RENTBUY_<FIELD> environment variables and --<field> flags, in that order.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "scenario file, YAML or TOML (env "+config.EnvPrefix+"CONFIG)")
	flags.BoolVar(&opts.noPretty, "nopretty", false, "print amounts without thousands separators")
	flags.IntVarP(&opts.logLevel, "log_level", "l", 1, "report verbosity, 0 prints the amount only, 5 prints everything")
	flags.StringVar(&opts.validation, "validation", "", "range check policy: strict or legacy")
	for _, f := range config.Fields {
		opts.values[f.Name] = flags.String(f.Name, f.Default, fmt.Sprintf("%s [%s]", f.Help, f.Range()))
	}

	cmd.AddCommand(newFieldsCmd(), newVersionCmd())
	return cmd
}

func runRoot(cmd *cobra.Command, opts *rootOptions) error {
	path := opts.configPath
	if path == "" {
		path = os.Getenv(config.EnvPrefix + "CONFIG")
	}

	flags := cmd.Flags()
	ov := config.Overrides{
		NoPretty:   opts.noPretty,
		Validation: opts.validation,
		Values: config.FuncSource(func(name string) (string, bool) {
			if !flags.Changed(name) {
				return "", false
			}
			return *opts.values[name], true
		}),
	}
	if flags.Changed("log_level") {
		ov.LogLevel = &opts.logLevel
	}

	cfg, err := config.Load(path, ov)
	if err != nil {
		var missing *config.MissingInputError
		if errors.As(err, &missing) {
			for _, name := range missing.Fields {
				fmt.Fprintf(cmd.ErrOrStderr(), "Supply input: %s\n", name)
			}
		}
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}

	rep := report.New(cmd.OutOrStdout(), cfg.LogLevel, cfg.Pretty)
	res, err := analysis.New(rep).Run(&cfg.Scenario)
	if err != nil {
		return err
	}
	rep.Breakeven(res)
	return nil
}

// Execute runs the command line and logs a failure before returning it.
func Execute() error {
	if err := NewRootCmd().Execute(); err != nil {
		log.Printf("[FATAL] %v", err)
		return err
	}
	return nil
}
