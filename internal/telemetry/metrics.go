// Package telemetry instruments resolve calls with prometheus metrics.
package telemetry

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	resolveReqs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flag_resolve_requests_total",
			Help: "Total resolve calls issued against the remote resolver",
		},
		[]string{"outcome"},
	)
	resolveDur = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "flag_resolve_duration_seconds",
			Help:    "Resolve call duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

var registerOnce sync.Once

// Init registers the resolve metrics with the default prometheus registry.
// Safe to call from every client constructor; registration happens once.
// Hosts that do not expose metrics lose nothing, the series are simply never
// scraped.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(resolveReqs, resolveDur)
	})
}

// ObserveResolve records one resolve attempt with its classified outcome.
func ObserveResolve(outcome string, duration time.Duration) {
	resolveReqs.WithLabelValues(outcome).Inc()
	resolveDur.Observe(duration.Seconds())
}
