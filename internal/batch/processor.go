package batch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bmistack/bmistack/pkg/types"
)

// Mode selects how a Processor schedules per-record work.
type Mode string

// Execution modes.
const (
	ModeSequential Mode = "sequential"
	ModePool       Mode = "pool"
)

// DefaultWorkers is the pool size used when Workers is not positive.
const DefaultWorkers = 4

// Processor applies an Enricher to every record of a batch.
type Processor struct {
	Enricher Enricher
	Mode     Mode

	// Workers bounds the number of concurrent goroutines in ModePool.
	Workers int
}

// NewProcessor returns a sequential Processor with the default Enricher.
func NewProcessor() *Processor {
	return &Processor{Enricher: NewEnricher(), Mode: ModeSequential}
}

// Process enriches recs and returns the results in input order.
//
// The first failing row aborts the batch; its error is wrapped with the row
// index. Cancelling ctx stops processing between rows.
func (p *Processor) Process(ctx context.Context, recs []types.Record) ([]types.Enriched, error) {
	start := time.Now()

	var (
		out []types.Enriched
		err error
	)
	switch p.Mode {
	case ModeSequential, "":
		out, err = p.sequential(ctx, recs)
	case ModePool:
		out, err = p.pool(ctx, recs)
	default:
		return nil, fmt.Errorf("batch: unknown mode %q", p.Mode)
	}
	if err != nil {
		return nil, err
	}

	slog.Debug("batch: processed",
		"records", len(recs),
		"mode", p.mode(),
		"workers", p.workers(),
		"elapsed", time.Since(start),
	)
	return out, nil
}

func (p *Processor) sequential(ctx context.Context, recs []types.Record) ([]types.Enriched, error) {
	out := make([]types.Enriched, len(recs))
	for i, rec := range recs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		e, err := p.Enricher.Enrich(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out[i] = e
	}
	return out, nil
}

// pool fans rows out over a bounded errgroup. Each goroutine owns exactly one
// output slot, so no locking is needed and order is preserved.
func (p *Processor) pool(ctx context.Context, recs []types.Record) ([]types.Enriched, error) {
	out := make([]types.Enriched, len(recs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers())

	stopped := false
	for i := range recs {
		if gctx.Err() != nil {
			stopped = true
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			e, err := p.Enricher.Enrich(recs[i])
			if err != nil {
				return fmt.Errorf("row %d: %w", i, err)
			}
			out[i] = e
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// A parent cancellation can stop the loop with no goroutine left to report it.
	if stopped {
		return nil, ctx.Err()
	}
	return out, nil
}

func (p *Processor) mode() Mode {
	if p.Mode == "" {
		return ModeSequential
	}
	return p.Mode
}

func (p *Processor) workers() int {
	if p.mode() == ModeSequential {
		return 1
	}
	if p.Workers <= 0 {
		return DefaultWorkers
	}
	return p.Workers
}
