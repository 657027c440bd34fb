package sink

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bmistack/bmistack/pkg/types"
)

// Supported formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// WriteFile writes recs to path in the given format, replacing any existing file.
func WriteFile(path, format string, recs []types.Enriched) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sink: create: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("sink: close: %w", cerr)
		}
	}()

	if err := Write(f, format, recs); err != nil {
		return err
	}
	slog.Debug("sink: written", "path", path, "format", format, "records", len(recs))
	return nil
}

// Write encodes recs to w.
func Write(w io.Writer, format string, recs []types.Enriched) error {
	switch format {
	case FormatCSV:
		return writeCSV(w, recs)
	case FormatJSON:
		return writeJSON(w, recs)
	default:
		return fmt.Errorf("sink: unknown format %q", format)
	}
}

// writeJSON writes an indented array of flat objects.
func writeJSON(w io.Writer, recs []types.Enriched) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if recs == nil {
		recs = []types.Enriched{}
	}
	if err := enc.Encode(recs); err != nil {
		return fmt.Errorf("sink: encode json: %w", err)
	}
	return nil
}

// writeCSV writes one header row followed by one row per record. The header is
// the union of all field names in first-seen order; absent fields are empty.
func writeCSV(w io.Writer, recs []types.Enriched) error {
	var (
		header []string
		index  = make(map[string]int)
		rows   = make([][]types.Field, len(recs))
	)
	for i, r := range recs {
		rows[i] = r.Fields()
		for _, f := range rows[i] {
			if _, ok := index[f.Name]; !ok {
				index[f.Name] = len(header)
				header = append(header, f.Name)
			}
		}
	}

	cw := csv.NewWriter(w)
	if len(header) > 0 {
		if err := cw.Write(header); err != nil {
			return fmt.Errorf("sink: write csv header: %w", err)
		}
	}
	line := make([]string, len(header))
	for _, fields := range rows {
		for i := range line {
			line[i] = ""
		}
		for _, f := range fields {
			line[index[f.Name]] = cell(f.Value)
		}
		if err := cw.Write(line); err != nil {
			return fmt.Errorf("sink: write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("sink: flush csv: %w", err)
	}
	return nil
}

// cell renders a raw JSON value as CSV text: strings unquoted, null empty,
// numbers and booleans as written, objects and arrays as compact JSON.
func cell(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if json.Unmarshal(raw, &s) == nil {
			return s
		}
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
