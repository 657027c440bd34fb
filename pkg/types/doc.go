// Package types defines the record types shared by the batch core, the
// JSON source and the CSV/JSON sink.
//
// Record is an ordered list of JSON fields. Field order and every passthrough
// field survive a decode/encode round trip; only the two numeric inputs
// (HeightCm and WeightKg by default) are interpreted.
//
// Enriched is a Record plus the computed BMI value, category and risk. Its
// Fields method lists the input fields followed by the "BMI value",
// "BMI Category" and "Health risk" columns; an input field that already uses
// one of those names is overwritten in place.
package types
