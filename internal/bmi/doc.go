// Package bmi computes Body Mass Index values and maps them to a category
// and health-risk label.
//
// calc.go provides the pure Calculate(height, weight, heightInCm) function:
// bmi = weight(kg) / height(m)², rounded to two decimal places with
// round-half-to-even on the exact binary value. A zero height yields 0.
//
// category.go holds the read-only category table and the Resolve lookup.
// The table is scanned in declared order and the first inclusive range that
// contains the value wins. Values that match nothing (NaN, or values with
// more than two decimals that fall between two adjacent bounds) return
// ErrNoCategory rather than a default category.
//
// Categories: Underweight <18.50, Normal Weight 18.50–24.99,
// Overweight 25–29.99, Moderately Obese 30–34.99, Severely Obese 35–39.99,
// Very Severely Obese ≥40.
package bmi
