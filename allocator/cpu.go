package allocator

import "unsafe"

// hostAlignment is the byte alignment of every host allocation. 64 bytes covers
// cache lines and the widest SIMD loads the CPU kernels issue.
const hostAlignment = 64

// CPUAllocator hands out general host memory straight from the system heap. It
// carries no allocation bookkeeping, so it is safe for any number of concurrent
// callers.
type CPUAllocator struct {
	NoFence
	ArenaEligible

	info MemoryInfo
}

// NewCPUAllocator builds a CPU allocator with a caller-supplied identity. A nil
// info panics.
func NewCPUAllocator(info *MemoryInfo) *CPUAllocator {
	if info == nil {
		panic("allocator: NewCPUAllocator requires a non-nil MemoryInfo")
	}

	return &CPUAllocator{info: *info}
}

// NewDefaultCPUAllocator builds a CPU allocator with the standard "Cpu" identity
// on device 0.
func NewDefaultCPUAllocator() *CPUAllocator {
	return &CPUAllocator{info: NewDefaultMemoryInfo(CPU, AllocatorTypeDevice)}
}

func (a *CPUAllocator) Alloc(size int) []byte {
	if size <= 0 {
		return nil
	}

	return allocAligned(size, hostAlignment)
}

// Free releases a buffer returned by Alloc on this allocator. Host memory is
// reclaimed by the garbage collector once the caller drops the buffer.
func (a *CPUAllocator) Free(buf []byte) {
}

func (a *CPUAllocator) Info() MemoryInfo {
	return a.info
}

// allocAligned over-allocates by the alignment and shifts the slice start so the
// first byte lands on an alignment boundary.
func allocAligned(size, alignment int) []byte {
	buf := make([]byte, size+alignment)
	addr := int(uintptr(unsafe.Pointer(&buf[0])))
	shift := (alignment - addr%alignment) % alignment

	return buf[shift : size+shift : size+shift]
}
