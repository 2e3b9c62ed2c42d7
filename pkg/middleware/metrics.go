package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/observability/telemetry"
)

// MetricsMiddleware conta as requisições por método e status e mede a latência
func MetricsMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			srw := newStatusResponseWriter(w)
			startTime := time.Now()

			next.ServeHTTP(srw, r)

			telemetry.HTTPRequestsTotal.WithLabelValues(r.Method, strconv.Itoa(srw.statusCode)).Inc()
			telemetry.HTTPRequestDuration.WithLabelValues(r.Method).Observe(time.Since(startTime).Seconds())
		})
	}
}
