package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/jlunac/ads-revenue-api/pkg/metrics"
)

// MetricsMiddleware alimenta los contadores Prometheus por solicitud.
func MetricsMiddleware(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m.IncHTTPRequestsInFlight()
			defer m.DecHTTPRequestsInFlight()

			lrw := newLoggingResponseWriter(w)
			start := time.Now()

			next.ServeHTTP(lrw, r)

			m.RecordHTTPRequest(
				r.Method,
				r.URL.Path,
				strconv.Itoa(lrw.statusCode),
				time.Since(start),
			)
		})
	}
}
