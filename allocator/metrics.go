package allocator

import "github.com/prometheus/client_golang/prometheus"

// Metrics is the set of Prometheus collectors a MeteredAllocator reports into.
// One Metrics instance is shared by every metered allocator in a session; series
// are split by the allocator name label.
type Metrics struct {
	allocations       *prometheus.CounterVec
	allocatedBytes    *prometheus.CounterVec
	frees             *prometheus.CounterVec
	freedBytes        *prometheus.CounterVec
	failedAllocations *prometheus.CounterVec
}

// NewMetrics builds the collectors and registers them with reg. A nil reg leaves
// the collectors unregistered, which tests use to keep registries isolated.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	labels := []string{"allocator"}

	m := &Metrics{
		allocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "onnxruntime",
			Subsystem: "allocator",
			Name:      "allocations_total",
			Help:      "Number of successful allocations.",
		}, labels),
		allocatedBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "onnxruntime",
			Subsystem: "allocator",
			Name:      "allocated_bytes_total",
			Help:      "Number of bytes handed out by successful allocations.",
		}, labels),
		frees: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "onnxruntime",
			Subsystem: "allocator",
			Name:      "frees_total",
			Help:      "Number of freed allocations.",
		}, labels),
		freedBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "onnxruntime",
			Subsystem: "allocator",
			Name:      "freed_bytes_total",
			Help:      "Number of bytes returned by freed allocations.",
		}, labels),
		failedAllocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "onnxruntime",
			Subsystem: "allocator",
			Name:      "failed_allocations_total",
			Help:      "Number of allocations that returned no memory.",
		}, labels),
	}

	if reg != nil {
		reg.MustRegister(m.allocations, m.allocatedBytes, m.frees, m.freedBytes, m.failedAllocations)
	}

	return m
}
