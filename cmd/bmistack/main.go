package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bmistack/bmistack/internal/config"
)

// errCheckFailed is returned by run/watch in --strict mode when the range and
// label counts of the check category disagree.
var errCheckFailed = errors.New("count verification failed")

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		slog.Error("bmistack failed", "err", err)
		os.Exit(1)
	}
}

// options holds flags shared by every subcommand.
type options struct {
	configPath string
	logLevel   string
	overrides  overrides
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "bmistack",
		Short:         "Compute BMI, category and health risk for a batch of person records",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config file (optional for run)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug|info|warn|error (overrides config)")

	root.AddCommand(newRunCmd(opts), newWatchCmd(opts), newClassifyCmd())
	return root
}

// loadConfig reads --config when given, otherwise starts from defaults, then
// applies command-line overrides and validates the result.
func (o *options) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Read(o.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	o.applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	setupLogging(cfg)
	return cfg, nil
}

// applyFlags layers the command-line overrides and --log-level onto cfg.
func (o *options) applyFlags(cmd *cobra.Command, cfg *config.Config) {
	o.overrides.apply(cmd, cfg)
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
}

// setupLogging installs a JSON slog handler at the configured level.
// Logs go to stderr so classify output on stdout stays machine-readable.
func setupLogging(cfg *config.Config) {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	slog.SetDefault(logger)
}
