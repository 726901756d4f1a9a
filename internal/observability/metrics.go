package observability

import (
	"patternmap-api/internal/navigator"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors of the pattern map API.
type Metrics struct {
	HTTPRequests    *prometheus.CounterVec   // labels: method, route, status
	HTTPDuration    *prometheus.HistogramVec // labels: method, route
	Navigations     *prometheus.CounterVec   // labels: direction
	CatalogPatterns prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "patternmap",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "patternmap",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"method", "route"}),
		Navigations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "patternmap",
			Name:      "navigations_total",
			Help:      "Previous/next navigation steps served.",
		}, []string{"direction"}),
		CatalogPatterns: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "patternmap",
			Name:      "catalog_patterns",
			Help:      "Number of patterns in the loaded catalog.",
		}),
	}

	reg.MustRegister(m.HTTPRequests, m.HTTPDuration, m.Navigations, m.CatalogPatterns)
	return m
}

// ObserveNavigation counts one navigation step.
func (m *Metrics) ObserveNavigation(dir navigator.Direction) {
	m.Navigations.WithLabelValues(dir.String()).Inc()
}
