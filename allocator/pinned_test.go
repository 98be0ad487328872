package allocator

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestPinnedCPUAllocatorDefaults(t *testing.T) {
	a := NewPinnedCPUAllocator(PinnedCPUAllocatorOptions{Logger: discardLogger()})

	info := a.Info()
	require.Equal(t, CUDAPinned, info.Name())
	require.Equal(t, MemTypeCPUOutput, info.MemType())
	require.Equal(t, AllocatorTypeDevice, info.Type())
	require.Equal(t, NewDevice(DeviceTypeCPU, DeviceMemTypeCUDAPinned, 0), info.Device())

	require.True(t, a.AllowsArena())
	require.Nil(t, a.CreateFence(nil))
}

func TestPinnedCPUAllocatorCustomInfo(t *testing.T) {
	info := NewMemoryInfo(TRTPinned, AllocatorTypeDevice, NewDevice(DeviceTypeCPU, DeviceMemTypeCUDAPinned, 0), 1, MemTypeCPUOutput)
	a := NewPinnedCPUAllocator(PinnedCPUAllocatorOptions{Info: &info, Logger: discardLogger()})

	require.Equal(t, info, a.Info())
}

func TestPinnedCPUAllocatorRoundTrip(t *testing.T) {
	a := NewPinnedCPUAllocator(PinnedCPUAllocatorOptions{Logger: discardLogger()})

	buf := a.Alloc(4096)
	require.Len(t, buf, 4096)
	require.Equal(t, uintptr(0), uintptr(unsafe.Pointer(&buf[0]))%hostAlignment)

	for i := range buf {
		buf[i] = byte(i)
	}

	a.Free(buf)
	require.Equal(t, 0, a.LockedRegions())

	require.Nil(t, a.Alloc(0))
	require.Nil(t, a.Alloc(-1))
}

func TestPinnedCPUAllocatorRequireLocked(t *testing.T) {
	a := NewPinnedCPUAllocator(PinnedCPUAllocatorOptions{
		RequireLocked: true,
		Logger:        discardLogger(),
	})

	buf := a.Alloc(4096)
	if buf == nil {
		// Locked memory is denied in this environment (RLIMIT_MEMLOCK or an
		// unsupported platform); the failure path is the contract under test.
		require.Equal(t, 0, a.LockedRegions())
		t.Skip("page-locked memory is not available in this environment")
	}

	require.Equal(t, 1, a.LockedRegions())
	a.Free(buf)
	require.Equal(t, 0, a.LockedRegions())
}

func TestPinnedCPUAllocatorFreeNil(t *testing.T) {
	a := NewPinnedCPUAllocator(PinnedCPUAllocatorOptions{Logger: discardLogger()})

	a.Free(nil)
	require.Equal(t, 0, a.LockedRegions())
}
