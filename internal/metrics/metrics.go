package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the import pipeline counters exposed on /metrics.
type Metrics struct {
	registry *prometheus.Registry

	ImportsTotal   *prometheus.CounterVec
	DroppedEntries prometheus.Counter
	ImportSeconds  prometheus.Histogram
}

// New builds a self-contained registry with the importer metrics registered.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)
	return &Metrics{
		registry: registry,
		ImportsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "skillmatrix_imports_total",
			Help: "Import runs by outcome.",
		}, []string{"outcome"}),
		DroppedEntries: factory.NewCounter(prometheus.CounterOpts{
			Name: "skillmatrix_import_dropped_entries_total",
			Help: "Spreadsheet rating pairs dropped because no definition matched.",
		}),
		ImportSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "skillmatrix_import_duration_seconds",
			Help:    "Wall time of one import run.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
