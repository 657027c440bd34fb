package types

import (
	"encoding/json"
	"math"
	"strconv"
)

// Output column names added to every enriched record.
const (
	ColumnBMI      = "BMI value"
	ColumnCategory = "BMI Category"
	ColumnRisk     = "Health risk"
)

// Enriched is an input Record together with its computed BMI, category and risk.
// Record is held by value and is never modified.
type Enriched struct {
	Record   Record
	BMI      float64
	Category string
	Risk     string
}

// Fields returns the input fields followed by the three output columns.
func (e Enriched) Fields() []Field {
	computed := []Field{
		{Name: ColumnBMI, Value: number(e.BMI)},
		MustField(ColumnCategory, e.Category),
		MustField(ColumnRisk, e.Risk),
	}

	out := make([]Field, 0, e.Record.Len()+len(computed))
	used := make([]bool, len(computed))
	for _, f := range e.Record.fields {
		replaced := false
		for i, c := range computed {
			if f.Name == c.Name {
				out = append(out, c)
				used[i] = true
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, f)
		}
	}
	for i, c := range computed {
		if !used[i] {
			out = append(out, c)
		}
	}
	return out
}

// MarshalJSON encodes the enriched record as one flat JSON object.
func (e Enriched) MarshalJSON() ([]byte, error) {
	return marshalFields(e.Fields())
}

// number encodes v as a JSON number; non-finite values become null.
func number(v float64) json.RawMessage {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return json.RawMessage("null")
	}
	return strconv.AppendFloat(nil, v, 'f', -1, 64)
}
