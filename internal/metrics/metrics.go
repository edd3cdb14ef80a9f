// Package metrics exposes the accounting observability counters.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics carries the counters the accounting core increments.
type Metrics struct {
	// WorkloadClamps counts debits that would have driven a user's workload
	// negative and were clamped to zero. Any increment indicates an
	// accounting defect upstream.
	WorkloadClamps prometheus.Counter
	// AdvisorFallbacks counts risk predictions substituted with the neutral
	// default after an advisor failure.
	AdvisorFallbacks prometheus.Counter
	// TasksCompleted counts transitions into DONE.
	TasksCompleted prometheus.Counter
	// TasksReopened counts transitions out of DONE, whose accounting is
	// intentionally not reversed.
	TasksReopened prometheus.Counter
	// HTTPRequests counts served requests by method, route and status class.
	HTTPRequests *prometheus.CounterVec
}

// New registers the counters on reg, tolerating re-registration so tests
// can build multiple instances against the default registry.
func New(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		WorkloadClamps: register(reg, prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flowdesk",
			Subsystem: "ledger",
			Name:      "workload_clamp_total",
			Help:      "Workload debits clamped at zero",
		})),
		AdvisorFallbacks: register(reg, prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flowdesk",
			Subsystem: "advisor",
			Name:      "fallback_total",
			Help:      "Risk predictions replaced with the neutral default",
		})),
		TasksCompleted: register(reg, prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flowdesk",
			Subsystem: "tasks",
			Name:      "completed_total",
			Help:      "Tasks transitioned into DONE",
		})),
		TasksReopened: register(reg, prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flowdesk",
			Subsystem: "tasks",
			Name:      "reopened_total",
			Help:      "Tasks transitioned out of DONE",
		})),
		HTTPRequests: registerVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flowdesk",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests served",
		}, []string{"method", "route", "status"})),
	}
}

func registerVec(reg prometheus.Registerer, v *prometheus.CounterVec) *prometheus.CounterVec {
	if err := reg.Register(v); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing
			}
		}
	}
	return v
}

func register(reg prometheus.Registerer, c prometheus.Counter) prometheus.Counter {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing
			}
		}
	}
	return c
}
