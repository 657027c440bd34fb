package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bmistack/bmistack/internal/batch"
	"github.com/bmistack/bmistack/internal/bmi"
	"github.com/bmistack/bmistack/internal/config"
	"github.com/bmistack/bmistack/internal/report"
	"github.com/bmistack/bmistack/internal/sink"
	"github.com/bmistack/bmistack/internal/source"
)

// Pipeline runs batches for one configuration.
type Pipeline struct {
	cfg     *config.Config
	metrics *report.Metrics
	newID   func() string // injectable for deterministic tests
	now     func() time.Time
}

// New returns a Pipeline for cfg. cfg must already be validated.
func New(cfg *config.Config) *Pipeline {
	return &Pipeline{
		cfg:     cfg,
		metrics: report.NewMetrics(),
		newID:   uuid.NewString,
		now:     time.Now,
	}
}

// Processor builds the batch.Processor described by cfg.
func Processor(cfg *config.Config) *batch.Processor {
	return &batch.Processor{
		Enricher: batch.Enricher{
			Fields: batch.Fields{
				Height: cfg.Input.HeightField,
				Weight: cfg.Input.WeightField,
			},
			HeightInCm: cfg.Input.HeightInCm(),
		},
		Mode:    batch.Mode(cfg.Processing.Mode),
		Workers: cfg.Processing.Workers,
	}
}

// Run executes one batch and returns its summary.
// A failed count verification is reported in the summary, not as an error.
func (p *Pipeline) Run(ctx context.Context) (report.Summary, error) {
	runID := p.newID()
	log := slog.With("run_id", runID)
	start := p.now()

	recs, err := source.Load(p.cfg.Input.Path)
	if err != nil {
		return report.Summary{}, fmt.Errorf("pipeline: %w", err)
	}
	log.Info("pipeline: input loaded", "path", p.cfg.Input.Path, "records", len(recs))

	out, err := Processor(p.cfg).Process(ctx, recs)
	if err != nil {
		return report.Summary{}, fmt.Errorf("pipeline: process: %w", err)
	}

	if err := sink.WriteFile(p.cfg.Output.Path, p.cfg.Output.Format, out); err != nil {
		return report.Summary{}, fmt.Errorf("pipeline: %w", err)
	}
	log.Info("pipeline: data saved", "path", p.cfg.Output.Path, "format", p.cfg.Output.Format)

	summary := report.Summarize(runID, out, p.cfg.Check.Category, p.now().Sub(start))

	if _, known := bmi.Lookup(p.cfg.Check.Category); !known {
		log.Warn("pipeline: check category is not a known bmi category",
			"category", p.cfg.Check.Category)
	}
	if summary.Check.Verified {
		log.Info("pipeline: verified counts",
			"category", summary.Check.Category, "count", summary.Check.Count)
	} else {
		log.Error("pipeline: count verification failed",
			"category", summary.Check.Category, "count", summary.Check.Count)
	}

	if path := p.cfg.Metrics.Textfile; path != "" {
		p.metrics.Observe(summary)
		if err := p.metrics.WriteTextfile(path); err != nil {
			return summary, fmt.Errorf("pipeline: %w", err)
		}
		log.Debug("pipeline: metrics textfile written", "path", path)
	}

	log.Info("pipeline: run complete", "summary", summary)
	return summary, nil
}
