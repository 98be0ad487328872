// Package allocator provides the device-aware allocation contracts for the tensor
// runtime: the device and allocator identity model, the polymorphic Allocator
// interface, concrete host allocators, and the ownership-safe Buffer handle that
// keeps an allocator alive for as long as any buffer it issued is outstanding.
package allocator

import (
	"github.com/TMVector/onnxruntime/memutils"
)

// Allocator is the abstract allocation contract shared by every memory source in
// the runtime: host heap, pinned transfer staging, device memory, and arenas that
// pool any of them.
//
// Alloc returns nil on failure; failure is never reported any other way at this
// layer. Free must only be handed buffers returned by Alloc on the same instance,
// and at most once per buffer; anything else is a caller bug this layer does not
// guard against. Implementations intended for multi-threaded sessions must make
// Alloc and Free safe to call concurrently.
type Allocator interface {
	Alloc(size int) []byte
	Free(buf []byte)

	// Info returns the allocator's identity. It is immutable for the allocator's
	// whole lifetime.
	Info() MemoryInfo

	// CreateFence returns a synchronization fence for devices that need one, or nil
	// for the (common) allocators that do not. Embed NoFence for the default.
	CreateFence(session *SessionState) Fence
}

// DeviceAllocator is an Allocator that owns real device memory directly rather
// than sub-allocating from a pool.
type DeviceAllocator interface {
	Allocator

	// AllowsArena advises the arena layer whether it may multiplex many logical
	// sub-allocations over fewer calls into this allocator. Allocators with
	// exclusive-access or side-effecting semantics return false. Embed
	// ArenaEligible for the default.
	AllowsArena() bool
}

// NoFence provides the default CreateFence for allocators whose devices need no
// explicit synchronization.
type NoFence struct{}

func (NoFence) CreateFence(*SessionState) Fence {
	return nil
}

// ArenaEligible provides the default AllowsArena for device allocators that are
// safe to pool.
type ArenaEligible struct{}

func (ArenaEligible) AllowsArena() bool {
	return true
}

// AllocArray allocates memory for an array of nmemb items of size bytes each. It
// returns nil without calling Alloc when the byte count would overflow.
func AllocArray(a Allocator, nmemb, size int) []byte {
	return AllocArrayWithAlignment(a, nmemb, size, 0)
}

// AllocArrayWithAlignment allocates memory for an array of nmemb items of size
// bytes each, rounded up to alignment. It returns nil without calling Alloc when
// the byte count would overflow.
func AllocArrayWithAlignment(a Allocator, nmemb, size int, alignment uint) []byte {
	total, ok := memutils.CalcMemSizeForArrayWithAlignment(nmemb, size, alignment)
	if !ok {
		return nil
	}

	return a.Alloc(total)
}
