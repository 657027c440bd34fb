package report

import (
	"log/slog"
	"time"

	"github.com/bmistack/bmistack/internal/batch"
	"github.com/bmistack/bmistack/internal/bmi"
	"github.com/bmistack/bmistack/pkg/types"
)

// CategoryCount is the per-category result of both counting paths.
type CategoryCount struct {
	Category string
	Risk     string
	ByRange  int // records whose BMI lies in the category range
	ByLabel  int // records whose stored category equals Category
}

// Consistent reports whether both paths agree.
func (c CategoryCount) Consistent() bool { return c.ByRange == c.ByLabel }

// Check is the outcome of verifying one category's range count against labels.
type Check struct {
	Category string
	Count    int
	Verified bool
}

// Summary describes one processed batch.
type Summary struct {
	RunID      string
	Records    int
	Elapsed    time.Duration
	Categories []CategoryCount
	Check      Check
}

// Summarize counts recs per category and verifies the check category.
// An unknown check category counts 0 and verifies against 0 labels.
func Summarize(runID string, recs []types.Enriched, check string, elapsed time.Duration) Summary {
	s := Summary{
		RunID:   runID,
		Records: len(recs),
		Elapsed: elapsed,
	}
	for _, c := range bmi.Categories() {
		s.Categories = append(s.Categories, CategoryCount{
			Category: c.Name,
			Risk:     c.Risk,
			ByRange:  batch.CountByCategory(recs, c.Name),
			ByLabel:  batch.CountByLabel(recs, c.Name),
		})
	}

	n := batch.CountByCategory(recs, check)
	s.Check = Check{
		Category: check,
		Count:    n,
		Verified: batch.VerifyCount(recs, check, n),
	}
	return s
}

// Consistent reports whether every category's two counts agree.
func (s Summary) Consistent() bool {
	for _, c := range s.Categories {
		if !c.Consistent() {
			return false
		}
	}
	return true
}

// LogValue implements slog.LogValuer.
func (s Summary) LogValue() slog.Value {
	counts := make([]slog.Attr, 0, len(s.Categories))
	for _, c := range s.Categories {
		counts = append(counts, slog.Int(c.Category, c.ByRange))
	}
	return slog.GroupValue(
		slog.String("run_id", s.RunID),
		slog.Int("records", s.Records),
		slog.Duration("elapsed", s.Elapsed),
		slog.Attr{Key: "categories", Value: slog.GroupValue(counts...)},
		slog.String("check_category", s.Check.Category),
		slog.Int("check_count", s.Check.Count),
		slog.Bool("verified", s.Check.Verified),
	)
}
