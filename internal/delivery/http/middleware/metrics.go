package middleware

import (
	"net/http"
	"strconv"
	"time"

	"ipe/internal/metrics"
)

// Metrics records request count and latency per route pattern.
// It must wrap the ServeMux directly so the matched pattern is visible after ServeHTTP.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newStatusRecorder(w)
		next.ServeHTTP(rec, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveHTTPRequest(r.Method, route, strconv.Itoa(rec.status), time.Since(start).Seconds())
	})
}
