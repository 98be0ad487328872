package allocator

import (
	"unsafe"

	"golang.org/x/exp/slog"

	"github.com/TMVector/onnxruntime/allocator/internal/utils"
)

// PinnedCPUAllocatorOptions configures NewPinnedCPUAllocator. The zero value is a
// usable default.
type PinnedCPUAllocatorOptions struct {
	// Info overrides the default "CudaPinned" identity.
	Info *MemoryInfo

	// RequireLocked makes Alloc fail instead of handing out unpinned memory when
	// the pages cannot be locked.
	RequireLocked bool

	// SingleThreaded drops internal locking for sessions without worker threads.
	SingleThreaded bool

	Logger *slog.Logger
}

// PinnedCPUAllocator hands out host memory locked against paging, used to stage
// fast transfers to and from a device. On platforms without memory locking, or
// when locking is denied, it degrades to ordinary host memory unless
// RequireLocked is set.
type PinnedCPUAllocator struct {
	NoFence
	ArenaEligible

	info          MemoryInfo
	requireLocked bool
	logger        *slog.Logger

	mutex  utils.OptionalMutex
	locked map[uintptr][]byte
}

func NewPinnedCPUAllocator(opts PinnedCPUAllocatorOptions) *PinnedCPUAllocator {
	info := NewMemoryInfo(
		CUDAPinned,
		AllocatorTypeDevice,
		NewDevice(DeviceTypeCPU, DeviceMemTypeCUDAPinned, 0),
		0,
		MemTypeCPUOutput,
	)
	if opts.Info != nil {
		info = *opts.Info
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &PinnedCPUAllocator{
		info:          info,
		requireLocked: opts.RequireLocked,
		logger:        logger,
		mutex:         utils.OptionalMutex{UseMutex: !opts.SingleThreaded},
		locked:        make(map[uintptr][]byte),
	}
}

func (a *PinnedCPUAllocator) Alloc(size int) []byte {
	if size <= 0 {
		return nil
	}

	buf := allocAligned(size, hostAlignment)

	err := lockMemory(buf)
	if err != nil {
		if a.requireLocked {
			a.logger.Debug("PinnedCPUAllocator::Alloc FAILED", slog.Int("Size", size), slog.Any("error", err))
			return nil
		}

		a.logger.Debug("PinnedCPUAllocator::Alloc falling back to unpinned memory", slog.Any("error", err))
		return buf
	}

	a.mutex.Lock()
	defer a.mutex.Unlock()
	a.locked[uintptr(unsafe.Pointer(&buf[0]))] = buf

	return buf
}

func (a *PinnedCPUAllocator) Free(buf []byte) {
	if len(buf) == 0 {
		return
	}

	key := uintptr(unsafe.Pointer(&buf[0]))

	a.mutex.Lock()
	region, ok := a.locked[key]
	delete(a.locked, key)
	a.mutex.Unlock()

	if !ok {
		// Unpinned fallback region, nothing to unlock.
		return
	}

	err := unlockMemory(region)
	if err != nil {
		a.logger.Debug("PinnedCPUAllocator::Free failed to unlock region", slog.Any("error", err))
	}
}

func (a *PinnedCPUAllocator) Info() MemoryInfo {
	return a.info
}

// LockedRegions is the number of currently outstanding page-locked allocations.
func (a *PinnedCPUAllocator) LockedRegions() int {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	return len(a.locked)
}
