package allocator

import (
	"unsafe"

	"github.com/TMVector/onnxruntime/memutils"
)

// Buffer is an exclusively-owned handle to an allocation, bound to the allocator
// that produced it. Release frees the allocation through that allocator exactly
// once; until then the handle's embedded reference keeps the allocator reachable,
// even after every other holder has dropped theirs.
type Buffer[T any] struct {
	allocator Allocator
	raw       []byte
	data      []T
}

// MakeBuffer allocates an array of countOrBytes elements of T from the provided
// allocator and wraps it in an owning handle. For T = byte, countOrBytes is simply
// the exact byte count. It returns nil when the allocator is nil, when the byte
// size overflows (Alloc is never called in that case), or when the allocation
// itself fails.
func MakeBuffer[T any](a Allocator, countOrBytes int) *Buffer[T] {
	if a == nil {
		return nil
	}

	var elem T
	elemSize := int(unsafe.Sizeof(elem))

	total, ok := memutils.CalcMemSizeForArray(countOrBytes, elemSize)
	if !ok {
		return nil
	}

	raw := a.Alloc(total)
	if len(raw) == 0 {
		return nil
	}

	return &Buffer[T]{
		allocator: a,
		raw:       raw,
		data:      unsafe.Slice((*T)(unsafe.Pointer(&raw[0])), countOrBytes),
	}
}

// Data returns the typed view of the buffer, or nil after Release.
func (b *Buffer[T]) Data() []T {
	if b == nil {
		return nil
	}

	return b.data
}

// Bytes returns the raw allocation backing the buffer, or nil after Release.
func (b *Buffer[T]) Bytes() []byte {
	if b == nil {
		return nil
	}

	return b.raw
}

func (b *Buffer[T]) Len() int {
	if b == nil {
		return 0
	}

	return len(b.data)
}

// Release frees the buffer through the allocator that produced it. Only the first
// call frees; later calls and calls on nil handles do nothing.
func (b *Buffer[T]) Release() {
	if b == nil || b.raw == nil {
		return
	}

	b.allocator.Free(b.raw)
	b.raw = nil
	b.data = nil
	b.allocator = nil
}
