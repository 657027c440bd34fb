package bmi

import (
	"errors"
	"fmt"
	"math"
)

// Category names, in table order.
const (
	CategoryUnderweight       = "Underweight"
	CategoryNormal            = "Normal Weight"
	CategoryOverweight        = "Overweight"
	CategoryModeratelyObese   = "Moderately Obese"
	CategorySeverelyObese     = "Severely Obese"
	CategoryVerySeverelyObese = "Very Severely Obese"
)

// Health risk labels, one per category.
const (
	RiskMalnutrition = "Malnutrition Risk"
	RiskLow          = "Low Risk"
	RiskEnhanced     = "Enhanced Risk"
	RiskMedium       = "Medium Risk"
	RiskHigh         = "High Risk"
	RiskVeryHigh     = "Very High Risk"
)

// ErrNoCategory is returned by Resolve when no category range contains the value.
var ErrNoCategory = errors.New("no matching bmi category")

// Category is one row of the classification table.
// Lower and Upper are both inclusive; the open ends are ±Inf.
type Category struct {
	Name  string
	Lower float64
	Upper float64
	Risk  string
}

// Contains reports whether value lies in [Lower, Upper].
func (c Category) Contains(value float64) bool {
	return c.Lower <= value && value <= c.Upper
}

// table is ordered; Resolve relies on the order for tie-breaks.
// It is only ever exposed as a copy.
var table = [...]Category{
	{Name: CategoryUnderweight, Lower: math.Inf(-1), Upper: 18.49, Risk: RiskMalnutrition},
	{Name: CategoryNormal, Lower: 18.50, Upper: 24.99, Risk: RiskLow},
	{Name: CategoryOverweight, Lower: 25, Upper: 29.99, Risk: RiskEnhanced},
	{Name: CategoryModeratelyObese, Lower: 30, Upper: 34.99, Risk: RiskMedium},
	{Name: CategorySeverelyObese, Lower: 35, Upper: 39.99, Risk: RiskHigh},
	{Name: CategoryVerySeverelyObese, Lower: 40, Upper: math.Inf(1), Risk: RiskVeryHigh},
}

// Categories returns a copy of the classification table in declared order.
func Categories() []Category {
	out := make([]Category, len(table))
	copy(out, table[:])
	return out
}

// Lookup returns the category with the given name.
// Names are matched exactly.
func Lookup(name string) (Category, bool) {
	for _, c := range table {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// Resolve returns the first category, in table order, whose range contains value.
func Resolve(value float64) (Category, error) {
	for _, c := range table {
		if c.Contains(value) {
			return c, nil
		}
	}
	return Category{}, fmt.Errorf("bmi: resolve %v: %w", value, ErrNoCategory)
}

// Reading is a BMI value together with its resolved category and risk.
type Reading struct {
	Value    float64
	Category string
	Risk     string
}

// Classify calculates the BMI for height and weight and resolves its category.
func Classify(height, weight float64, heightInCm bool) (Reading, error) {
	v := Calculate(height, weight, heightInCm)
	c, err := Resolve(v)
	if err != nil {
		return Reading{}, err
	}
	return Reading{Value: v, Category: c.Name, Risk: c.Risk}, nil
}
