// Package sink writes enriched records as CSV or as a JSON array.
//
// WriteFile creates the output file and dispatches on format; Write does the
// same for any io.Writer. JSON output is an indented array (empty input
// gives []). CSV output has one header row holding the union of field names
// in first-seen order; string cells are unquoted, null cells are empty and
// other values are written as compact JSON.
package sink
