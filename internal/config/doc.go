// Package config loads and watches the bmistack configuration file.
//
// Top-level types:
//   - Config{Input, Output, Processing, Check, Metrics, LogLevel}
//   - InputConfig: path, height_field, weight_field, height_unit (cm|m)
//   - OutputConfig: path, format (csv|json)
//   - ProcessingConfig: mode (sequential|pool), workers
//   - CheckConfig: category whose range count is verified against labels
//   - MetricsConfig: optional Prometheus textfile path
//
// Load(path) applies defaults (HeightCm/WeightKg in cm, result.csv, sequential,
// 4 workers, Overweight, info), parses the YAML over them, then validates
// enums and required fields.
//
// Watch(ctx, path, onChange) uses fsnotify to follow both the config file and
// the input file it names, and calls onChange with a freshly loaded Config
// whenever either is written. Atomic-save editors replace the inode, so the
// watch is re-added after every event.
package config
