// Package pipeline wires one batch run end to end: load the JSON input,
// enrich every record, write the CSV/JSON output, cross-check the configured
// category, and optionally export the summary as a Prometheus textfile.
//
// Every run gets a fresh run id, attached to all of its log lines.
package pipeline
