package allocator

import (
	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"

	"github.com/TMVector/onnxruntime/allocator/internal/utils"
)

// RegistryOptions configures NewRegistry. The zero value is a usable default.
type RegistryOptions struct {
	// SingleThreaded drops internal locking for sessions without worker threads.
	SingleThreaded bool

	Logger *slog.Logger
}

// Registry is the session's descriptor-keyed collection of allocators. Consumers
// look allocators up by MemoryInfo and iterate them in descriptor order when
// planning placement.
type Registry struct {
	logger *slog.Logger

	mutex      utils.OptionalRWMutex
	allocators *swiss.Map[MemoryInfo, Allocator]
}

func NewRegistry(opts RegistryOptions) *Registry {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Registry{
		logger:     logger,
		mutex:      utils.OptionalRWMutex{UseMutex: !opts.SingleThreaded},
		allocators: swiss.NewMap[MemoryInfo, Allocator](8),
	}
}

// Register adds an allocator under its own Info. Registering a second allocator
// with an identical descriptor is an error.
func (r *Registry) Register(a Allocator) error {
	if a == nil {
		return errors.New("attempted to register a nil allocator")
	}
	info := a.Info()

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.allocators.Has(info) {
		return errors.Newf("an allocator is already registered for %s", info.String())
	}

	r.logger.Debug("Registry::Register", slog.String("Info", info.String()))
	r.allocators.Put(info, a)

	return nil
}

func (r *Registry) Get(info MemoryInfo) (Allocator, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return r.allocators.Get(info)
}

func (r *Registry) Count() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return r.allocators.Count()
}

// Sorted returns the registered allocators ordered by MemoryInfo.Less.
func (r *Registry) Sorted() []Allocator {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return r.sortedLocked()
}

func (r *Registry) sortedLocked() []Allocator {
	sorted := make([]Allocator, 0, r.allocators.Count())
	r.allocators.Iter(func(info MemoryInfo, a Allocator) bool {
		sorted = append(sorted, a)
		return false
	})

	slices.SortFunc(sorted, func(a, b Allocator) bool {
		return a.Info().Less(b.Info())
	})

	return sorted
}

// BuildStatsString writes a JSON description of every registered allocator, with
// traffic counters for the metered ones, for logs and diagnostics dumps.
func (r *Registry) BuildStatsString(writer *jwriter.Writer) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	root := writer.Object()
	defer root.End()

	arrayState := root.Name("Allocators").Array()
	defer arrayState.End()

	for _, a := range r.sortedLocked() {
		obj := arrayState.Object()
		obj.Name("Info").String(a.Info().String())
		obj.Name("Device").String(a.Info().Device().String())

		if metered, ok := a.(*MeteredAllocator); ok {
			metered.printParameters(&obj)
		}

		obj.End()
	}
}
