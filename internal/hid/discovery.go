package hid

import (
	"fmt"

	"github.com/karalabe/hid"
)

// Filter identifies the target raw-HID interface. All four fields must
// match a device exactly; 0x0000 is a legal product id, not a wildcard.
type Filter struct {
	VendorID  uint16
	ProductID uint16
	UsagePage uint16
	Usage     uint16
}

func (f Filter) String() string {
	return fmt.Sprintf("VID=0x%04X PID=0x%04X UsagePage=0x%04X Usage=0x%04X",
		f.VendorID, f.ProductID, f.UsagePage, f.Usage)
}

// DeviceInfo contains information about a discovered HID device
type DeviceInfo struct {
	VendorID     uint16
	ProductID    uint16
	UsagePage    uint16
	Usage        uint16
	Path         string
	Manufacturer string
	Product      string
	SerialNumber string
}

func (f Filter) matches(d DeviceInfo) bool {
	return d.VendorID == f.VendorID &&
		d.ProductID == f.ProductID &&
		d.UsagePage == f.UsagePage &&
		d.Usage == f.Usage
}

// findIn selects the first descriptor matching the filter, in enumeration
// order. Enumeration order is host-defined; when several physical devices
// match, the first one wins.
func findIn(f Filter, devices []DeviceInfo) (DeviceInfo, error) {
	for _, d := range devices {
		if f.matches(d) {
			return d, nil
		}
	}
	return DeviceInfo{}, fmt.Errorf("%w: %s", ErrDeviceNotFound, f)
}

// ListDevices returns every HID device currently visible to the host.
// An empty host yields an empty slice, not an error.
func ListDevices() ([]DeviceInfo, error) {
	devices := hid.Enumerate(0, 0)

	result := make([]DeviceInfo, len(devices))
	for i, d := range devices {
		result[i] = DeviceInfo{
			VendorID:     d.VendorID,
			ProductID:    d.ProductID,
			UsagePage:    d.UsagePage,
			Usage:        d.Usage,
			Path:         d.Path,
			Manufacturer: d.Manufacturer,
			Product:      d.Product,
			SerialNumber: d.Serial,
		}
	}

	return result, nil
}

// FindDevice searches the host's device list for the raw-HID interface
// matching the filter.
func FindDevice(f Filter) (DeviceInfo, error) {
	devices, err := ListDevices()
	if err != nil {
		return DeviceInfo{}, err
	}
	return findIn(f, devices)
}
