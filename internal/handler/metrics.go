package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "donation_engine_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "donation_engine_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	donationsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "donation_engine_donations_created_total",
		Help: "Total number of donation attempts registered",
	})

	paymentEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "donation_engine_payment_events_total",
		Help: "Gateway webhook deliveries by outcome",
	}, []string{"outcome"})
)

// MetricsMiddleware records request counts and latencies labeled by the
// mux route template, so path variables do not explode the cardinality.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if route := mux.CurrentRoute(r); route != nil {
			if template, err := route.GetPathTemplate(); err == nil {
				path = template
			}
		}

		timer := prometheus.NewTimer(httpRequestDuration.WithLabelValues(r.Method, path))
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		timer.ObserveDuration()
		httpRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(recorder.status)).Inc()
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}
