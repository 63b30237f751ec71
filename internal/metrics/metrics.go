// internal/metrics/metrics.go
// Prometheus collectors shared by every feature

package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/imadgeboyega/vibesnap-backend/internal/state"
)

var (
	mutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vibesnap_mutations_total",
			Help: "Total number of applied state mutations",
		},
		[]string{"op"},
	)

	persistenceWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vibesnap_persistence_writes_total",
			Help: "Snapshot writes to the key-value store",
		},
		[]string{"key", "result"},
	)

	captionRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vibesnap_caption_requests_total",
			Help: "Caption generation requests by outcome",
		},
		[]string{"outcome"},
	)

	captionLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "vibesnap_caption_latency_seconds",
			Help:    "Latency of caption generation calls",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 8),
		},
	)

	scheduledTasks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vibesnap_scheduled_tasks_total",
			Help: "Scheduled tasks started by kind",
		},
		[]string{"kind"},
	)
)

// MutationObserver counts store mutations by operation name.
type MutationObserver struct{}

func (MutationObserver) StateChanged(op string, _ state.AppState) {
	mutationsTotal.WithLabelValues(op).Inc()
}

// PersistenceWrite records one key write. result is "ok", "deleted" or "error".
func PersistenceWrite(key, result string) {
	persistenceWrites.WithLabelValues(key, result).Inc()
}

// CaptionRequest records the outcome of a caption call and, for calls that reached the service, its latency.
func CaptionRequest(outcome string, elapsed time.Duration) {
	captionRequests.WithLabelValues(outcome).Inc()
	if elapsed > 0 {
		captionLatency.Observe(elapsed.Seconds())
	}
}

func TaskScheduled(kind string) {
	scheduledTasks.WithLabelValues(kind).Inc()
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
