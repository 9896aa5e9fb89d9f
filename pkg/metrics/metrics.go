// Package metrics expone los contadores Prometheus de la API y de las
// integraciones externas.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	ReportBuildsTotal   *prometheus.CounterVec
	ReportBuildDuration *prometheus.HistogramVec
	ReportRowsTotal     *prometheus.CounterVec

	ExternalAPICalls    *prometheus.CounterVec
	ExternalAPIDuration *prometheus.HistogramVec
}

func New() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total de solicitudes HTTP atendidas",
			},
			[]string{"method", "path", "status_code"},
		),

		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duración de las solicitudes HTTP en segundos",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Solicitudes HTTP actualmente en proceso",
			},
		),

		ReportBuildsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "report_builds_total",
				Help: "Total de reportes conciliados construidos",
			},
			[]string{"range", "status"},
		),

		ReportBuildDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "report_build_duration_seconds",
				Help:    "Duración de construcción del reporte en segundos",
				Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60, 120},
			},
			[]string{"range"},
		),

		ReportRowsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "report_rows_total",
				Help: "Total de filas de anuncios incluidas en reportes",
			},
			[]string{"range"},
		),

		ExternalAPICalls: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "external_api_calls_total",
				Help: "Total de llamadas a APIs externas",
			},
			[]string{"api", "status"},
		),

		ExternalAPIDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "external_api_duration_seconds",
				Help:    "Duración de llamadas a APIs externas en segundos",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"api"},
		),
	}
}

func (m *Metrics) RecordHTTPRequest(method, path, statusCode string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (m *Metrics) RecordReportBuild(rangeKey, status string, rows int, duration time.Duration) {
	m.ReportBuildsTotal.WithLabelValues(rangeKey, status).Inc()
	m.ReportBuildDuration.WithLabelValues(rangeKey).Observe(duration.Seconds())
	m.ReportRowsTotal.WithLabelValues(rangeKey).Add(float64(rows))
}

func (m *Metrics) RecordExternalAPICall(api, status string, duration time.Duration) {
	m.ExternalAPICalls.WithLabelValues(api, status).Inc()
	m.ExternalAPIDuration.WithLabelValues(api).Observe(duration.Seconds())
}

func (m *Metrics) IncHTTPRequestsInFlight() {
	m.HTTPRequestsInFlight.Inc()
}

func (m *Metrics) DecHTTPRequestsInFlight() {
	m.HTTPRequestsInFlight.Dec()
}
