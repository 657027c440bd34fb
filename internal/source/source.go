package source

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bmistack/bmistack/pkg/types"
)

// Load reads the JSON array of records in the file at path.
func Load(path string) ([]types.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("source: open: %w", err)
	}
	defer f.Close()

	recs, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("source: %s: %w", path, err)
	}
	slog.Debug("source: loaded", "path", path, "records", len(recs))
	return recs, nil
}

// Decode reads a JSON array of objects from r.
func Decode(r io.Reader) ([]types.Record, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("read array: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return nil, fmt.Errorf("expected a JSON array of records, got %v", tok)
	}

	recs := []types.Record{}
	for dec.More() {
		var rec types.Record
		if err := dec.Decode(&rec); err != nil {
			return nil, fmt.Errorf("record %d: %w", len(recs), err)
		}
		recs = append(recs, rec)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("close array: %w", err)
	}
	return recs, nil
}
