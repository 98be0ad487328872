package allocator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewMemoryInfoRequiresName(t *testing.T) {
	require.Panics(t, func() {
		NewMemoryInfo("", AllocatorTypeDevice, Device{}, 0, MemTypeDefault)
	})
}

func TestMemoryInfoAccessors(t *testing.T) {
	device := NewDevice(DeviceTypeGPU, DeviceMemTypeDefault, 2)
	info := NewMemoryInfo(CUDA, AllocatorTypeArena, device, 2, MemTypeDefault)

	require.Equal(t, CUDA, info.Name())
	require.Equal(t, 2, info.ID())
	require.Equal(t, MemTypeDefault, info.MemType())
	require.Equal(t, AllocatorTypeArena, info.Type())
	require.Equal(t, device, info.Device())
}

func TestMemoryInfoEquality(t *testing.T) {
	// Two descriptors built independently with the same identity are equal and
	// neither orders before the other.
	left := NewMemoryInfo(CPU, AllocatorTypeDevice, Device{}, 0, MemTypeDefault)
	right := NewMemoryInfo(CPU, AllocatorTypeDevice, Device{}, 0, MemTypeDefault)

	require.True(t, left.Equal(right))
	require.True(t, right.Equal(left))
	require.False(t, left.Less(right))
	require.False(t, right.Less(left))

	// The device is not part of the equality relation.
	otherDevice := NewMemoryInfo(CPU, AllocatorTypeDevice, NewDevice(DeviceTypeGPU, DeviceMemTypeDefault, 1), 0, MemTypeDefault)
	require.True(t, left.Equal(otherDevice))
}

func TestMemoryInfoStrictWeakOrdering(t *testing.T) {
	// In ascending order: allocType first, then memType, then id, then name.
	ordered := []MemoryInfo{
		NewMemoryInfo(CPU, AllocatorTypeInvalid, Device{}, 0, MemTypeDefault),
		NewMemoryInfo(CPU, AllocatorTypeDevice, Device{}, 0, MemTypeCPUInput),
		NewMemoryInfo(CPU, AllocatorTypeDevice, Device{}, 0, MemTypeCPUOutput),
		NewMemoryInfo(CPU, AllocatorTypeDevice, Device{}, 0, MemTypeDefault),
		NewMemoryInfo(CPU, AllocatorTypeDevice, Device{}, 1, MemTypeDefault),
		NewMemoryInfo(CUDA, AllocatorTypeDevice, Device{}, 2, MemTypeDefault),
		NewMemoryInfo(CUDAPinned, AllocatorTypeDevice, Device{}, 2, MemTypeDefault),
		NewMemoryInfo(TRT, AllocatorTypeDevice, Device{}, 2, MemTypeDefault),
		NewMemoryInfo(CPU, AllocatorTypeArena, Device{}, 0, MemTypeDefault),
	}

	for i, left := range ordered {
		for j, right := range ordered {
			switch {
			case i < j:
				require.True(t, left.Less(right), "expected %s < %s", left, right)
				require.False(t, right.Less(left))
				require.False(t, left.Equal(right))
			case i > j:
				require.True(t, right.Less(left), "expected %s < %s", right, left)
				require.False(t, left.Less(right))
				require.False(t, left.Equal(right))
			default:
				require.False(t, left.Less(right))
				require.False(t, right.Less(left))
				require.True(t, left.Equal(right))
			}
		}
	}
}

func TestMemoryInfoString(t *testing.T) {
	info := NewMemoryInfo(CPU, AllocatorTypeDevice, Device{}, 0, MemTypeDefault)
	require.Equal(t, "OrtMemoryInfo: [ name:Cpu id:0 mem_type:0 type:0 ]", info.String())

	pinned := NewMemoryInfo(CUDAPinned, AllocatorTypeDevice, NewDevice(DeviceTypeCPU, DeviceMemTypeCUDAPinned, 0), 1, MemTypeCPUOutput)
	require.Equal(t, "OrtMemoryInfo: [ name:CudaPinned id:1 mem_type:-1 type:0 ]", pinned.String())

	arena := NewMemoryInfo(CUDA, AllocatorTypeArena, Device{}, 0, MemTypeDefault)
	require.Equal(t, "OrtMemoryInfo: [ name:Cuda id:0 mem_type:0 type:1 ]", arena.String())
}
