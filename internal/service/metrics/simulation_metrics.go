package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	EngineLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "stratosim",
			Subsystem: "engine",
			Name:      "latency_seconds",
			Help:      "Latency of simulation engine operations",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"engine"},
	)

	EngineErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stratosim",
			Subsystem: "engine",
			Name:      "errors_total",
			Help:      "Errors by simulation engine",
		},
		[]string{"engine"},
	)

	JobQueueDepth = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "stratosim",
			Subsystem: "jobs",
			Name:      "queue_depth",
			Help:      "Pending jobs per queue",
		},
		[]string{"queue"},
	)
)

func Register() {
	once.Do(func() {
		prometheus.MustRegister(EngineLatency, EngineErrors, JobQueueDepth)
	})
}
