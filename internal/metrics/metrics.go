package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "endpoint", "status"},
	)

	httpResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 6),
		},
		[]string{"method", "endpoint"},
	)

	eventWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_writes_total",
			Help: "Event writes by operation and outcome",
		},
		[]string{"op", "outcome"},
	)
)

func RecordHTTPRequest(method, endpoint string, status int, d time.Duration, respBytes int64) {
	code := strconv.Itoa(status)
	httpRequestsTotal.WithLabelValues(method, endpoint, code).Inc()
	httpRequestDuration.WithLabelValues(method, endpoint, code).Observe(d.Seconds())
	httpResponseSize.WithLabelValues(method, endpoint).Observe(float64(respBytes))
}

// RecordEventWrite counts a create or update. outcome is "ok", "rejected" or "error".
func RecordEventWrite(op, outcome string) {
	eventWritesTotal.WithLabelValues(op, outcome).Inc()
}

func Handler() http.Handler {
	return promhttp.Handler()
}
