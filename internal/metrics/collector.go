package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector records upload outcomes and parse latency.
type Collector struct {
	uploads       *prometheus.CounterVec
	parseDuration *prometheus.HistogramVec
	rowsParsed    *prometheus.CounterVec
}

// NewCollector registers the upload metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		uploads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tableview_uploads_total",
				Help: "Total number of uploaded files by format and outcome",
			},
			[]string{"format", "status"},
		),
		parseDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tableview_parse_duration_seconds",
				Help:    "Time spent parsing an uploaded file",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
			},
			[]string{"format"},
		),
		rowsParsed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tableview_rows_parsed_total",
				Help: "Total number of rows returned from uploads",
			},
			[]string{"format"},
		),
	}
}

// RecordUpload counts one upload whose content reached a parser and observes
// how long parsing took.
func (c *Collector) RecordUpload(format string, ok bool, duration time.Duration, rows int) {
	status := "success"
	if !ok {
		status = "failure"
	}

	c.uploads.WithLabelValues(labelFormat(format), status).Inc()
	c.parseDuration.WithLabelValues(labelFormat(format)).Observe(duration.Seconds())
	if ok {
		c.rowsParsed.WithLabelValues(labelFormat(format)).Add(float64(rows))
	}
}

// RecordRejected counts an upload that failed before parsing started, such as
// a missing form field or an unsupported extension. No latency is observed.
func (c *Collector) RecordRejected(format string) {
	c.uploads.WithLabelValues(labelFormat(format), "failure").Inc()
}

func labelFormat(format string) string {
	if format == "" {
		return "unknown"
	}
	return format
}
