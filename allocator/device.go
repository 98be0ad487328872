package allocator

import "fmt"

// DeviceType identifies the kind of physical compute target a buffer lives on.
type DeviceType int8

const (
	DeviceTypeCPU  DeviceType = 0
	DeviceTypeGPU  DeviceType = 1 // CUDA
	DeviceTypeFPGA DeviceType = 2
)

var deviceTypeMapping = make(map[DeviceType]string)

func (t DeviceType) String() string {
	return deviceTypeMapping[t]
}

// DeviceMemType identifies the class of memory on a device.
type DeviceMemType int8

const (
	DeviceMemTypeDefault DeviceMemType = 0
	// DeviceMemTypeCUDAPinned is host memory locked against paging so the device can
	// DMA to and from it.
	DeviceMemTypeCUDAPinned DeviceMemType = 1
)

var deviceMemTypeMapping = make(map[DeviceMemType]string)

func (t DeviceMemType) String() string {
	return deviceMemTypeMapping[t]
}

func init() {
	deviceTypeMapping[DeviceTypeCPU] = "DeviceTypeCPU"
	deviceTypeMapping[DeviceTypeGPU] = "DeviceTypeGPU"
	deviceTypeMapping[DeviceTypeFPGA] = "DeviceTypeFPGA"

	deviceMemTypeMapping[DeviceMemTypeDefault] = "DeviceMemTypeDefault"
	deviceMemTypeMapping[DeviceMemTypeCUDAPinned] = "DeviceMemTypeCUDAPinned"
}

// DeviceID is the numeric index of a device among devices of the same type.
type DeviceID int16

// Device is an immutable value identifying a physical compute target. The zero
// value is CPU device 0 with default memory. Devices are compared with ==; the
// field order (type, memory type, id) is part of a stable cross-boundary contract
// and must not be reordered.
type Device struct {
	deviceType DeviceType
	memType    DeviceMemType
	deviceID   DeviceID
}

func NewDevice(deviceType DeviceType, memType DeviceMemType, deviceID DeviceID) Device {
	return Device{
		deviceType: deviceType,
		memType:    memType,
		deviceID:   deviceID,
	}
}

func (d Device) Type() DeviceType {
	return d.deviceType
}

func (d Device) MemType() DeviceMemType {
	return d.memType
}

func (d Device) ID() DeviceID {
	return d.deviceID
}

func (d Device) String() string {
	return fmt.Sprintf("Device: [ type:%d memory_type:%d device_id:%d ]",
		d.deviceType, d.memType, d.deviceID)
}
