package allocator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeviceZeroValue(t *testing.T) {
	var device Device

	require.Equal(t, DeviceTypeCPU, device.Type())
	require.Equal(t, DeviceMemTypeDefault, device.MemType())
	require.Equal(t, DeviceID(0), device.ID())
	require.Equal(t, NewDevice(DeviceTypeCPU, DeviceMemTypeDefault, 0), device)
}

func TestDeviceEquality(t *testing.T) {
	devices := []Device{
		{},
		NewDevice(DeviceTypeCPU, DeviceMemTypeCUDAPinned, 0),
		NewDevice(DeviceTypeGPU, DeviceMemTypeDefault, 0),
		NewDevice(DeviceTypeGPU, DeviceMemTypeDefault, 1),
		NewDevice(DeviceTypeFPGA, DeviceMemTypeDefault, 0),
	}

	for i, left := range devices {
		for j, right := range devices {
			sameFields := left.Type() == right.Type() &&
				left.MemType() == right.MemType() &&
				left.ID() == right.ID()

			require.Equal(t, i == j, left == right)
			require.Equal(t, sameFields, left == right)
			require.Equal(t, left == right, right == left)
		}
	}
}

func TestDeviceString(t *testing.T) {
	require.Equal(t,
		"Device: [ type:0 memory_type:0 device_id:0 ]",
		Device{}.String())
	require.Equal(t,
		"Device: [ type:1 memory_type:1 device_id:3 ]",
		NewDevice(DeviceTypeGPU, DeviceMemTypeCUDAPinned, 3).String())
	require.Equal(t,
		"Device: [ type:2 memory_type:0 device_id:7 ]",
		NewDevice(DeviceTypeFPGA, DeviceMemTypeDefault, 7).String())
}

func TestDeviceTypeNames(t *testing.T) {
	require.Equal(t, "DeviceTypeCPU", DeviceTypeCPU.String())
	require.Equal(t, "DeviceTypeGPU", DeviceTypeGPU.String())
	require.Equal(t, "DeviceTypeFPGA", DeviceTypeFPGA.String())
	require.Equal(t, "DeviceMemTypeCUDAPinned", DeviceMemTypeCUDAPinned.String())
}
