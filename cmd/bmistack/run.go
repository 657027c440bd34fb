package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/bmistack/bmistack/internal/config"
	"github.com/bmistack/bmistack/internal/pipeline"
	"github.com/bmistack/bmistack/internal/report"
)

// overrides are run/watch flags that replace config values when set.
type overrides struct {
	input       string
	output      string
	format      string
	mode        string
	workers     int
	category    string
	meters      bool
	textfile    string
	heightField string
	weightField string
	strict      bool
}

func (o *overrides) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.input, "input", "i", "", "input JSON file")
	f.StringVarP(&o.output, "output", "o", "", "output file")
	f.StringVar(&o.format, "format", "", "output format: csv|json")
	f.StringVar(&o.mode, "mode", "", "processing mode: sequential|pool")
	f.IntVar(&o.workers, "workers", 0, "worker pool size in pool mode")
	f.StringVar(&o.category, "category", "", "category to cross-check")
	f.BoolVar(&o.meters, "meters", false, "heights are in meters rather than centimeters")
	f.StringVar(&o.textfile, "metrics-textfile", "", "write a Prometheus textfile report to this path")
	f.StringVar(&o.heightField, "height-field", "", "name of the height field")
	f.StringVar(&o.weightField, "weight-field", "", "name of the weight field")
	f.BoolVar(&o.strict, "strict", false, "exit non-zero when count verification fails")
}

// apply copies every flag the user actually set onto cfg.
func (o *overrides) apply(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	set := func(name string) bool { return f.Lookup(name) != nil && f.Changed(name) }

	if set("input") {
		cfg.Input.Path = o.input
	}
	if set("output") {
		cfg.Output.Path = o.output
	}
	if set("format") {
		cfg.Output.Format = o.format
	}
	if set("mode") {
		cfg.Processing.Mode = o.mode
	}
	if set("workers") {
		cfg.Processing.Workers = o.workers
	}
	if set("category") {
		cfg.Check.Category = o.category
	}
	if set("meters") {
		cfg.Input.HeightUnit = config.UnitCentimeters
		if o.meters {
			cfg.Input.HeightUnit = config.UnitMeters
		}
	}
	if set("metrics-textfile") {
		cfg.Metrics.Textfile = o.textfile
	}
	if set("height-field") {
		cfg.Input.HeightField = o.heightField
	}
	if set("weight-field") {
		cfg.Input.WeightField = o.weightField
	}
}

func newRunCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Enrich the input once, write the result and verify the check category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			slog.Info("bmistack run starting",
				"input", cfg.Input.Path,
				"output", cfg.Output.Path,
				"mode", cfg.Processing.Mode,
				"check", cfg.Check.Category,
			)

			s, err := pipeline.New(cfg).Run(cmd.Context())
			if err != nil {
				return err
			}
			printSummary(cmd, s)
			return opts.overrides.checkResult(s)
		},
	}
	opts.overrides.register(cmd)
	return cmd
}

func (o *overrides) checkResult(s report.Summary) error {
	if o.strict && !s.Check.Verified {
		return fmt.Errorf("%w for %q", errCheckFailed, s.Check.Category)
	}
	return nil
}

// printSummary writes the human-readable outcome to stdout.
func printSummary(cmd *cobra.Command, s report.Summary) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "The counts for %s : %d\n", s.Check.Category, s.Check.Count)
	if s.Check.Verified {
		fmt.Fprintf(out, "Verified counts for %s and Success\n", s.Check.Category)
	} else {
		fmt.Fprintf(out, "Counts verification incorrect! for %s\n", s.Check.Category)
	}
}
