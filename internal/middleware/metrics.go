package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "creekriver", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	httpLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "creekriver", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
)

// MustRegisterMetrics registers the HTTP metrics on the given registry.
// Call once at startup; double registration panics by prometheus convention.
func MustRegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(httpRequests, httpLatency)
}

// NewMetrics returns a middleware that records request counts and latency per
// chi route pattern. Using the pattern ("/api/campsites/{id}") rather than the
// raw path keeps label cardinality bounded.
func NewMetrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			route := chi.RouteContext(r.Context()).RoutePattern()
			if route == "" {
				route = "unmatched"
			}
			httpRequests.WithLabelValues(route, r.Method, strconv.Itoa(ww.Status())).Inc()
			httpLatency.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
		})
	}
}
