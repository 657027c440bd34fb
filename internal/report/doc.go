// Package report summarizes an enriched batch and exports the summary.
//
// Summarize runs both counting paths for every category: the BMI-range count
// (batch.CountByCategory) and the stored-label count (batch.CountByLabel), and
// verifies the configured check category. A Summary is a slog.LogValuer so
// the driver can log it directly.
//
// Metrics holds a private Prometheus registry with one gauge family per
// summary figure. WriteTextfile encodes the gathered families in the text
// exposition format and renames the result into place, so a node_exporter
// textfile collector never reads a partial file.
package report
