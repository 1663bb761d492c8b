package translate

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Translation request metrics
	translationRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "oversett_translation_requests_total",
			Help: "Total number of translation requests",
		},
		[]string{"engine", "result"},
	)

	translationRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "oversett_translation_request_duration_seconds",
			Help:    "Duration of translation requests in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.0, 5.0, 10.0, 30.0},
		},
		[]string{"engine", "result"},
	)

	translationRequestSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "oversett_translation_request_size_bytes",
			Help:    "Size of translation request text in bytes",
			Buckets: []float64{50, 100, 500, 1000, 5000, 10000, 50000},
		},
		[]string{"engine"},
	)

	translationResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "oversett_translation_response_size_bytes",
			Help:    "Size of translation response text in bytes",
			Buckets: []float64{50, 100, 500, 1000, 5000, 10000, 50000},
		},
		[]string{"engine"},
	)

	// Backend metrics
	backendResponsesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "oversett_backend_responses_total",
			Help: "Total number of backend HTTP responses by status code",
		},
		[]string{"engine", "status_code"},
	)
)

// RecordTranslation records metrics for one completed translation request.
// result is a short classification such as "success", "invalid_input",
// "upstream_error" or "internal_error".
func RecordTranslation(engine, result string, duration time.Duration, requestSize, responseSize int) {
	translationRequestsTotal.WithLabelValues(engine, result).Inc()
	translationRequestDuration.WithLabelValues(engine, result).Observe(duration.Seconds())
	translationRequestSize.WithLabelValues(engine).Observe(float64(requestSize))
	if responseSize > 0 {
		translationResponseSize.WithLabelValues(engine).Observe(float64(responseSize))
	}
}

// RecordBackendStatus records the HTTP status code of one backend response.
func RecordBackendStatus(engine string, statusCode int) {
	backendResponsesTotal.WithLabelValues(engine, strconv.Itoa(statusCode)).Inc()
}
