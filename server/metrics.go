package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the prometheus collectors of the HTTP API.
type Metrics struct {
	searchCount        *prometheus.CounterVec
	expansions         *prometheus.HistogramVec
	httpDuration       *prometheus.HistogramVec
	responseStatusCode *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		searchCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pathfinder",
			Name:      "search_total",
			Help:      "The total number of searches run, by strategy and outcome",
		}, []string{"strategy", "found"}),
		expansions: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pathfinder",
			Name:      "search_expansions",
			Help:      "Nodes expanded per search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"strategy"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pathfinder",
			Name:      "request_duration_seconds",
			Help:      "The duration of request",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"method", "path"}),
		responseStatusCode: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pathfinder",
			Name:      "response_status_code",
			Help:      "The status code of http response",
		}, []string{"status", "method", "path"}),
	}
	reg.MustRegister(m.searchCount, m.expansions, m.httpDuration, m.responseStatusCode)
	return m
}

// observeSearch records one finished search.
func (m *Metrics) observeSearch(strategy string, found bool, expansions int) {
	m.searchCount.WithLabelValues(strategy, strconv.FormatBool(found)).Inc()
	m.expansions.WithLabelValues(strategy).Observe(float64(expansions))
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// promMiddleware times every request and counts response codes. Requests are
// labelled by chi route pattern so unknown paths do not grow the label set.
func promMiddleware(m *Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)
			timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
				m.httpDuration.WithLabelValues(r.Method, routePattern(r)).Observe(v)
			}))

			next.ServeHTTP(rw, r)

			timer.ObserveDuration()
			m.responseStatusCode.WithLabelValues(strconv.Itoa(rw.statusCode), r.Method, routePattern(r)).Inc()
		})
	}
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}
