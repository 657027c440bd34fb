// Package source reads person records from a JSON array.
//
// Decode streams the array element by element so large inputs are never held
// as one intermediate value; each element must be a JSON object and becomes a
// types.Record with its field order preserved.
package source
