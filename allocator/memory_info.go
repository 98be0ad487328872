package allocator

import "fmt"

// Interned allocator names shared with execution providers. MemoryInfo only ever
// references these by value; providers that add their own allocators intern their
// own names.
const (
	CPU        = "Cpu"
	CUDA       = "Cuda"
	CUDAPinned = "CudaPinned"
	TRT        = "Tensorrt"
	TRTPinned  = "TensorrtPinned"
)

// MemType describes the purpose of an allocator's memory relative to the execution
// provider that owns it, as opposed to the physical memory class on the device.
type MemType int

const (
	// MemTypeCPUInput is CPU-accessible memory holding inputs to a non-CPU kernel.
	MemTypeCPUInput MemType = -2
	// MemTypeCPUOutput is CPU-accessible memory written by a non-CPU kernel, such as
	// pinned transfer staging.
	MemTypeCPUOutput MemType = -1
	MemTypeCPU               = MemTypeCPUOutput
	MemTypeDefault   MemType = 0
)

// AllocatorType tags the allocation strategy behind an allocator.
type AllocatorType int

const (
	AllocatorTypeInvalid AllocatorType = -1
	// AllocatorTypeDevice allocates real device memory directly.
	AllocatorTypeDevice AllocatorType = 0
	// AllocatorTypeArena sub-allocates from pooled device allocations.
	AllocatorTypeArena AllocatorType = 1
)

// MemoryInfo is the immutable identity of an allocator: its interned name, numeric
// id, memory purpose, allocation strategy, and the device it serves. It is a value
// type suitable as an ordered-map key via Less and Equal. The field order (name,
// id, memType, allocType, device) is part of a stable cross-boundary contract and
// must not be reordered.
type MemoryInfo struct {
	name      string
	id        int
	memType   MemType
	allocType AllocatorType
	device    Device
}

// NewMemoryInfo builds a MemoryInfo. An empty name panics: a nameless descriptor
// breaks the ordering contract of every container keyed by this type, and there is
// no safe way to continue.
func NewMemoryInfo(name string, allocType AllocatorType, device Device, id int, memType MemType) MemoryInfo {
	if name == "" {
		panic("allocator: MemoryInfo requires a non-empty name")
	}

	return MemoryInfo{
		name:      name,
		id:        id,
		memType:   memType,
		allocType: allocType,
		device:    device,
	}
}

// NewDefaultMemoryInfo builds a MemoryInfo for device 0 with id 0 and default
// memory purpose.
func NewDefaultMemoryInfo(name string, allocType AllocatorType) MemoryInfo {
	return NewMemoryInfo(name, allocType, Device{}, 0, MemTypeDefault)
}

func (m MemoryInfo) Name() string {
	return m.name
}

func (m MemoryInfo) ID() int {
	return m.id
}

func (m MemoryInfo) MemType() MemType {
	return m.memType
}

func (m MemoryInfo) Type() AllocatorType {
	return m.allocType
}

func (m MemoryInfo) Device() Device {
	return m.device
}

// Less is a strict weak ordering over MemoryInfo, so it can key ordered
// containers: allocation strategy first, then memory purpose, then id, then name.
func (m MemoryInfo) Less(other MemoryInfo) bool {
	if m.allocType != other.allocType {
		return m.allocType < other.allocType
	}
	if m.memType != other.memType {
		return m.memType < other.memType
	}
	if m.id != other.id {
		return m.id < other.id
	}

	return m.name < other.name
}

// Equal reports whether two descriptors identify the same allocator. The device is
// deliberately not compared; two allocators with the same purpose, strategy, id,
// and name are the same allocator regardless of which device record they carry.
func (m MemoryInfo) Equal(other MemoryInfo) bool {
	return m.memType == other.memType &&
		m.allocType == other.allocType &&
		m.id == other.id &&
		m.name == other.name
}

func (m MemoryInfo) String() string {
	return fmt.Sprintf("OrtMemoryInfo: [ name:%s id:%d mem_type:%d type:%d ]",
		m.name, m.id, m.memType, m.allocType)
}
