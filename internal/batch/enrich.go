package batch

import (
	"fmt"

	"github.com/bmistack/bmistack/internal/bmi"
	"github.com/bmistack/bmistack/pkg/types"
)

// Default input field names.
const (
	DefaultHeightField = "HeightCm"
	DefaultWeightField = "WeightKg"
)

// Fields names the record fields holding height and weight.
type Fields struct {
	Height string
	Weight string
}

// DefaultFields returns the HeightCm / WeightKg field names.
func DefaultFields() Fields {
	return Fields{Height: DefaultHeightField, Weight: DefaultWeightField}
}

// Enricher computes BMI, category and risk for a single record.
type Enricher struct {
	Fields Fields

	// HeightInCm selects the height unit: centimeters when true, meters otherwise.
	HeightInCm bool
}

// NewEnricher returns an Enricher reading HeightCm / WeightKg in centimeters.
func NewEnricher() Enricher {
	return Enricher{Fields: DefaultFields(), HeightInCm: true}
}

// Enrich returns rec extended with its BMI reading.
//
// A missing or non-numeric height/weight field returns an error wrapping
// types.ErrMissingField or types.ErrInvalidField. A BMI that matches no
// category returns an error wrapping bmi.ErrNoCategory.
func (e Enricher) Enrich(rec types.Record) (types.Enriched, error) {
	height, err := rec.Float(e.Fields.Height)
	if err != nil {
		return types.Enriched{}, fmt.Errorf("batch: enrich: %w", err)
	}
	weight, err := rec.Float(e.Fields.Weight)
	if err != nil {
		return types.Enriched{}, fmt.Errorf("batch: enrich: %w", err)
	}

	r, err := bmi.Classify(height, weight, e.HeightInCm)
	if err != nil {
		return types.Enriched{}, fmt.Errorf("batch: enrich: %w", err)
	}

	return types.Enriched{
		Record:   rec,
		BMI:      r.Value,
		Category: r.Category,
		Risk:     r.Risk,
	}, nil
}
