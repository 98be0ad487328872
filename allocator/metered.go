package allocator

import (
	"sync/atomic"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"golang.org/x/exp/slog"

	"github.com/TMVector/onnxruntime/memutils"
)

// MeteredAllocatorOptions configures NewMeteredAllocator. The zero value meters
// with process-local counters only.
type MeteredAllocatorOptions struct {
	// Metrics receives the per-allocator Prometheus series. Nil disables export;
	// the local Statistics counters always run.
	Metrics *Metrics

	Logger *slog.Logger
}

// MeteredAllocator wraps another allocator and counts its traffic. It adds no
// allocation behavior of its own, so it satisfies the same pairing and
// thread-safety contract its inner allocator does.
type MeteredAllocator struct {
	inner   Allocator
	metrics *Metrics
	logger  *slog.Logger

	allocations    atomic.Int64
	allocatedBytes atomic.Int64
	frees          atomic.Int64
	freedBytes     atomic.Int64
	failed         atomic.Int64
}

func NewMeteredAllocator(inner Allocator, opts MeteredAllocatorOptions) *MeteredAllocator {
	if inner == nil {
		panic("allocator: NewMeteredAllocator requires a non-nil inner allocator")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &MeteredAllocator{
		inner:   inner,
		metrics: opts.Metrics,
		logger:  logger,
	}
}

func (a *MeteredAllocator) Alloc(size int) []byte {
	buf := a.inner.Alloc(size)
	if buf == nil {
		a.failed.Add(1)
		if a.metrics != nil {
			a.metrics.failedAllocations.WithLabelValues(a.inner.Info().Name()).Inc()
		}

		a.logger.Debug("MeteredAllocator::Alloc FAILED", slog.Int("Size", size))
		return nil
	}

	a.allocations.Add(1)
	a.allocatedBytes.Add(int64(len(buf)))
	if a.metrics != nil {
		name := a.inner.Info().Name()
		a.metrics.allocations.WithLabelValues(name).Inc()
		a.metrics.allocatedBytes.WithLabelValues(name).Add(float64(len(buf)))
	}

	return buf
}

func (a *MeteredAllocator) Free(buf []byte) {
	if buf == nil {
		return
	}

	a.inner.Free(buf)

	a.frees.Add(1)
	a.freedBytes.Add(int64(len(buf)))
	if a.metrics != nil {
		name := a.inner.Info().Name()
		a.metrics.frees.WithLabelValues(name).Inc()
		a.metrics.freedBytes.WithLabelValues(name).Add(float64(len(buf)))
	}
}

func (a *MeteredAllocator) Info() MemoryInfo {
	return a.inner.Info()
}

func (a *MeteredAllocator) CreateFence(session *SessionState) Fence {
	return a.inner.CreateFence(session)
}

// AllowsArena forwards to the inner allocator when it is a DeviceAllocator and
// defaults to true otherwise, so metering a device allocator does not change its
// arena eligibility.
func (a *MeteredAllocator) AllowsArena() bool {
	if device, ok := a.inner.(DeviceAllocator); ok {
		return device.AllowsArena()
	}

	return true
}

// Statistics returns a snapshot of the traffic counters.
func (a *MeteredAllocator) Statistics() memutils.Statistics {
	return memutils.Statistics{
		AllocationCount:       int(a.allocations.Load()),
		FreeCount:             int(a.frees.Load()),
		AllocationBytes:       int(a.allocatedBytes.Load()),
		FreedBytes:            int(a.freedBytes.Load()),
		FailedAllocationCount: int(a.failed.Load()),
	}
}

func (a *MeteredAllocator) printParameters(json *jwriter.ObjectState) {
	stats := a.Statistics()

	json.Name("Allocations").Int(stats.AllocationCount)
	json.Name("AllocationBytes").Int(stats.AllocationBytes)
	json.Name("Frees").Int(stats.FreeCount)
	json.Name("FreedBytes").Int(stats.FreedBytes)
	json.Name("FailedAllocations").Int(stats.FailedAllocationCount)
	json.Name("InUseBytes").Int(stats.InUseBytes())
}
