// Package metrics exposes Prometheus collectors for submissions, sink outcomes and HTTP traffic.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "storefront"

// Submission kinds
const (
	KindContact  = "contact"
	KindOrder    = "order"
	KindSelfTest = "self_test"
)

// Submission outcomes
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
)

// Sinks
const (
	SinkDatabase = "database"
	SinkTelegram = "telegram"
)

// Sink results
const (
	ResultDelivered = "delivered"
	ResultSkipped   = "skipped"
	ResultFailed    = "failed"
)

// Recorder owns its registry so tests can build isolated instances.
type Recorder struct {
	registry *prometheus.Registry

	submissions  *prometheus.CounterVec
	sinkResults  *prometheus.CounterVec
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	httpInFlight prometheus.Gauge
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		submissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "submissions_total",
				Help:      "Submissions received, by kind and outcome.",
			},
			[]string{"kind", "outcome"},
		),
		sinkResults: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sink_results_total",
				Help:      "Persistence and notification attempts, by sink and result.",
			},
			[]string{"sink", "result"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests handled.",
			},
			[]string{"method", "path", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests.",
				Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~10s
			},
			[]string{"method", "path"},
		),
		httpInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "inflight_requests",
				Help:      "Current number of in-flight HTTP requests.",
			},
		),
	}

	r.registry.MustRegister(
		r.submissions,
		r.sinkResults,
		r.httpRequests,
		r.httpDuration,
		r.httpInFlight,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

func (r *Recorder) Submission(kind, outcome string) {
	r.submissions.WithLabelValues(kind, outcome).Inc()
}

func (r *Recorder) SinkResult(sink, result string) {
	r.sinkResults.WithLabelValues(sink, result).Inc()
}

func (r *Recorder) RequestStarted() {
	r.httpInFlight.Inc()
}

func (r *Recorder) RequestFinished(method, path string, status int, elapsed time.Duration) {
	r.httpInFlight.Dec()
	r.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}
