package main

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/bmistack/bmistack/internal/config"
	"github.com/bmistack/bmistack/internal/pipeline"
)

func newWatchCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run once, then re-run whenever the config or input file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.configPath == "" {
				return errors.New("watch requires --config")
			}
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			runOnce(ctx, cmd, cfg)

			// Reloads run synchronously on the watcher goroutine; events that
			// arrive meanwhile are coalesced by the next reload.
			override := func(next *config.Config) { opts.applyFlags(cmd, next) }
			return config.Watch(ctx, opts.configPath, override, func(next *config.Config) {
				setupLogging(next)
				runOnce(ctx, cmd, next)
			})
		},
	}
	opts.overrides.register(cmd)
	return cmd
}

// runOnce executes one batch and logs, rather than returns, its failure so
// the watch loop keeps going.
func runOnce(ctx context.Context, cmd *cobra.Command, cfg *config.Config) {
	s, err := pipeline.New(cfg).Run(ctx)
	if err != nil {
		slog.Error("watch: run failed", "err", err)
		return
	}
	printSummary(cmd, s)
}
