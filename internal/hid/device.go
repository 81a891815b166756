package hid

import (
	"fmt"
	"sync"

	"github.com/karalabe/hid"
)

// Device owns one opened raw-HID connection for the duration of a single
// send. It is created by Open and must be Closed by the caller on every
// exit path.
type Device struct {
	info   DeviceInfo
	device *hid.Device
	mu     sync.Mutex
	closed bool
}

// Open claims exclusive access to the device identified by info. The
// descriptor must come from a ListDevices/FindDevice call in the same
// invocation; a device unplugged in between surfaces as ErrOpenFailed.
func Open(info DeviceInfo) (*Device, error) {
	for _, d := range hid.Enumerate(info.VendorID, info.ProductID) {
		if d.Path != info.Path {
			continue
		}
		dev, err := d.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrOpenFailed, info.Path, err)
		}
		return &Device{info: info, device: dev}, nil
	}
	return nil, fmt.Errorf("%w: %s: no longer present", ErrOpenFailed, info.Path)
}

// WriteReport performs one blocking write of a single report. The frame
// must be exactly ReportSize bytes; the report id byte (0, the device has
// no numbered reports) is prepended here because the underlying transport
// consumes it as the first byte of the buffer.
func (d *Device) WriteReport(frame []byte) error {
	if len(frame) != ReportSize {
		return fmt.Errorf("%w: frame is %d bytes, want %d", ErrWriteFailed, len(frame), ReportSize)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return fmt.Errorf("%w: device closed", ErrWriteFailed)
	}

	buf := make([]byte, 1+ReportSize)
	copy(buf[1:], frame)

	n, err := d.device.Write(buf)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	if n < ReportSize {
		return fmt.Errorf("%w: short write (%d of %d bytes)", ErrWriteFailed, n, ReportSize)
	}
	return nil
}

// Info returns the descriptor the device was opened from.
func (d *Device) Info() DeviceInfo {
	return d.info
}

// Close releases the HID connection. It is safe to call more than once.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil
	}
	d.closed = true

	if d.device != nil {
		return d.device.Close()
	}
	return nil
}
