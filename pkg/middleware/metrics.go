package middleware

import (
	"net/http"
	"time"

	"github.com/vfg2006/commission-dashboard-api/pkg/metrics"
)

// MetricsMiddleware registra a duração de cada requisição por método e status
func MetricsMiddleware(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			next.ServeHTTP(lrw, r)

			m.ObserveHTTPRequest(r.Method, lrw.statusCode, time.Since(startTime))
		})
	}
}
