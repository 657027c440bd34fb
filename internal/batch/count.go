package batch

import (
	"github.com/bmistack/bmistack/internal/bmi"
	"github.com/bmistack/bmistack/pkg/types"
)

// CountByCategory returns the number of records whose BMI value lies in the
// named category's range. The stored Category label is ignored.
// An unknown category name counts 0.
func CountByCategory(recs []types.Enriched, category string) int {
	c, ok := bmi.Lookup(category)
	if !ok {
		return 0
	}
	var n int
	for _, r := range recs {
		if c.Contains(r.BMI) {
			n++
		}
	}
	return n
}

// CountByLabel returns the number of records whose stored Category equals
// category exactly.
func CountByLabel(recs []types.Enriched, category string) int {
	var n int
	for _, r := range recs {
		if r.Category == category {
			n++
		}
	}
	return n
}

// VerifyCount reports whether the number of records labelled category equals
// expected. Pass the result of CountByCategory as expected to cross-check the
// range path against the label path.
func VerifyCount(recs []types.Enriched, category string, expected int) bool {
	return CountByLabel(recs, category) == expected
}
