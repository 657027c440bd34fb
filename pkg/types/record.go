package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Errors returned when a required numeric field cannot be read.
var (
	ErrMissingField = errors.New("missing field")
	ErrInvalidField = errors.New("invalid field")
)

// Field is one named JSON value of a record.
type Field struct {
	Name  string
	Value json.RawMessage
}

// NewField marshals v into a Field.
func NewField(name string, v any) (Field, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return Field{}, fmt.Errorf("types: field %q: %w", name, err)
	}
	return Field{Name: name, Value: raw}, nil
}

// MustField is NewField for values known to marshal, such as numbers and strings.
func MustField(name string, v any) Field {
	f, err := NewField(name, v)
	if err != nil {
		panic(err)
	}
	return f
}

// Record is an ordered set of JSON fields. Callers must treat it as read-only.
type Record struct {
	fields []Field
}

// NewRecord builds a Record from fields. A repeated name keeps its first
// position and its last value, as a JSON object decode would.
func NewRecord(fields ...Field) Record {
	var r Record
	for _, f := range fields {
		r.set(f)
	}
	return r
}

func (r *Record) set(f Field) {
	for i := range r.fields {
		if r.fields[i].Name == f.Name {
			r.fields[i].Value = f.Value
			return
		}
	}
	r.fields = append(r.fields, f)
}

// Len returns the number of fields.
func (r Record) Len() int { return len(r.fields) }

// Fields returns a copy of the fields in order.
func (r Record) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}

// Get returns the raw value of the named field.
func (r Record) Get(name string) (json.RawMessage, bool) {
	for _, f := range r.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Float reads the named field as a JSON number.
// An absent or null field wraps ErrMissingField; any other non-number wraps
// ErrInvalidField.
func (r Record) Float(name string) (float64, error) {
	raw, ok := r.Get(name)
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return 0, fmt.Errorf("%w %q", ErrMissingField, name)
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, fmt.Errorf("%w %q: %s is not a number", ErrInvalidField, name, raw)
	}
	return v, nil
}

// UnmarshalJSON decodes a JSON object, keeping field order.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("types: decode record: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("types: decode record: expected object, got %v", tok)
	}

	r.fields = nil
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("types: decode record: %w", err)
		}
		name, _ := tok.(string) // object keys are always strings
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("types: decode record field %q: %w", name, err)
		}
		r.set(Field{Name: name, Value: raw})
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("types: decode record: %w", err)
	}
	return nil
}

// MarshalJSON encodes the record as a JSON object in field order.
func (r Record) MarshalJSON() ([]byte, error) {
	return marshalFields(r.fields)
}

func marshalFields(fields []Field) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if len(f.Value) == 0 {
			buf.WriteString("null")
			continue
		}
		buf.Write(f.Value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
