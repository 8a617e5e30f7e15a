// Package metrics exposes Prometheus counters for note operations.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	StatusSuccess    = "success"
	StatusInvalid    = "invalid"
	StatusNotFound   = "not_found"
	StatusError      = "error"
	OperationCreate  = "create"
	OperationUpdate  = "update"
	OperationDelete  = "delete"
	OperationArchive = "toggle_archive"
	OperationGet     = "get"
	OperationList    = "list"
	OperationExport  = "export"
)

// NoteMetrics counts note operations by outcome.
type NoteMetrics struct {
	registry *prometheus.Registry

	operationsTotal *prometheus.CounterVec
	listResultSize  prometheus.Histogram
}

// NewNoteMetrics creates and registers the note metrics on registry.
func NewNoteMetrics(registry *prometheus.Registry) (*NoteMetrics, error) {
	m := &NoteMetrics{
		registry: registry,
		operationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stickynotes_note_operations_total",
				Help: "Total number of note operations by outcome",
			},
			[]string{"operation", "status"},
		),
		listResultSize: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "stickynotes_list_result_size",
				Help:    "Number of notes matched by list and search requests",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
		),
	}

	for _, c := range []prometheus.Collector{m.operationsTotal, m.listResultSize} {
		if err := registry.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Observe records one operation. A nil receiver is a no-op so callers never
// need to guard metrics that were not configured.
func (m *NoteMetrics) Observe(operation, status string) {
	if m == nil {
		return
	}
	m.operationsTotal.WithLabelValues(operation, status).Inc()
}

func (m *NoteMetrics) ObserveListSize(n int) {
	if m == nil {
		return
	}
	m.listResultSize.Observe(float64(n))
}

// Handler serves the registry in the Prometheus text format.
func (m *NoteMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
