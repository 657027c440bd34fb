package bmi

import (
	"strconv"
)

// decimals is the number of decimal places every BMI value is rounded to.
const decimals = 2

// Calculate returns the BMI for the given height and weight.
//
// Height is in centimeters when heightInCm is true, otherwise in meters.
// Weight is in kilograms. A zero height returns 0 instead of dividing by
// zero; zero and negative weights are computed normally.
//
//	bmi = round(weight / (height_m * height_m), 2)
func Calculate(height, weight float64, heightInCm bool) float64 {
	if heightInCm {
		height /= 100
	}
	if height == 0 {
		return 0
	}
	return round2(weight / (height * height))
}

// round2 rounds v to two decimal places, ties to even.
//
// FormatFloat rounds the exact binary value of v, so a literal like 2.675
// (stored as 2.67499999...) rounds down, matching correctly-rounded decimal
// formatting rather than the naive math.Round(v*100)/100.
func round2(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', decimals, 64), 64)
	if err != nil {
		return v // FormatFloat output always parses, including ±Inf and NaN.
	}
	return r
}
