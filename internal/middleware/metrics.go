package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/templui/lenscard/internal/metrics"
)

// Metrics records request counts and latency by route pattern. It must be the
// last middleware in the chain so the mux can set r.Pattern on the same request.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(rw.statusCode)).Inc()
	})
}
