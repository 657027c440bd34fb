package report

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Metrics exports batch summaries as Prometheus gauges.
// Each Metrics owns its registry, so tests and repeated runs never collide
// with the global default registry.
type Metrics struct {
	registry *prometheus.Registry

	// Records processed in the last run.
	Records prometheus.Gauge

	// Per-category record counts, labelled by counting method: range | label.
	CategoryRecords *prometheus.GaugeVec

	// 1 when the check category verified, 0 otherwise.
	CheckVerified *prometheus.GaugeVec

	// Duration of the last run.
	RunDuration prometheus.Gauge

	// Always 1; carries the last run id as a label.
	RunInfo *prometheus.GaugeVec
}

// NewMetrics creates a Metrics with all families registered.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Records: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bmistack_records",
			Help: "Number of records processed in the last run",
		}),
		CategoryRecords: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "bmistack_category_records",
			Help: "Records per BMI category in the last run, by counting method",
		}, []string{"category", "method"}), // method: "range", "label"
		CheckVerified: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "bmistack_check_verified",
			Help: "Whether the range count of the check category matched its label count",
		}, []string{"category"}),
		RunDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bmistack_run_duration_seconds",
			Help: "Duration of the last batch run",
		}),
		RunInfo: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "bmistack_run_info",
			Help: "Identifier of the last batch run",
		}, []string{"run_id"}),
	}
	m.registry.MustRegister(m.Records, m.CategoryRecords, m.CheckVerified, m.RunDuration, m.RunInfo)
	return m
}

// Observe replaces all gauges with the figures from s.
func (m *Metrics) Observe(s Summary) {
	if m == nil {
		return
	}
	m.Records.Set(float64(s.Records))
	m.RunDuration.Set(s.Elapsed.Seconds())

	m.CategoryRecords.Reset()
	for _, c := range s.Categories {
		m.CategoryRecords.WithLabelValues(c.Category, "range").Set(float64(c.ByRange))
		m.CategoryRecords.WithLabelValues(c.Category, "label").Set(float64(c.ByLabel))
	}

	m.CheckVerified.Reset()
	verified := 0.0
	if s.Check.Verified {
		verified = 1
	}
	m.CheckVerified.WithLabelValues(s.Check.Category).Set(verified)

	m.RunInfo.Reset()
	m.RunInfo.WithLabelValues(s.RunID).Set(1)
}

// Gather returns the current metric families.
func (m *Metrics) Gather() ([]*dto.MetricFamily, error) {
	return m.registry.Gather()
}

// WriteTextfile writes the current metrics to path in the Prometheus text
// format. The file is written next to path and renamed into place.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("report: write textfile %s: %w", path, err)
	}
	return nil
}
