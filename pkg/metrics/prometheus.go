package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder records simulation-level metrics with Prometheus.
type Recorder struct {
	runsTotal    *prometheus.CounterVec
	errorsTotal  *prometheus.CounterVec
	availability *prometheus.GaugeVec
	latency      *prometheus.HistogramVec
}

// New creates a recorder registered on the default registry.
func New() *Recorder {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry creates a recorder on a caller-supplied registry.
func NewWithRegistry(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		runsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stratosim_runs_total",
				Help: "Total number of simulation runs completed",
			},
			[]string{"kind"},
		),
		errorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stratosim_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		availability: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "stratosim_last_availability_percent",
				Help: "Service availability of the last run per simulation kind",
			},
			[]string{"kind"},
		),
		latency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stratosim_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordRun records a completed simulation run.
func (r *Recorder) RecordRun(kind string) {
	r.runsTotal.WithLabelValues(kind).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordAvailability records the availability outcome of the last run.
func (r *Recorder) RecordAvailability(kind string, percent float64) {
	r.availability.WithLabelValues(kind).Set(percent)
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
