// Package transport sends text commands to a raw-HID keyboard interface
// as an ordered sequence of fixed-size reports.
package transport

import (
	"fmt"
	"log"

	"github.com/pleimann/qmk-notify/internal/hid"
)

// Transport resolves a device, frames a command, and writes the frames in
// order. One Transport handles one invocation; it holds no state between
// operations.
type Transport struct {
	devices hid.Manager
	verbose bool
}

// New creates a Transport on top of the given device manager.
func New(devices hid.Manager, verbose bool) *Transport {
	return &Transport{devices: devices, verbose: verbose}
}

// NewSystem creates a Transport backed by the host's HID subsystem.
func NewSystem(verbose bool) *Transport {
	return New(hid.NewManager(), verbose)
}

// Send delivers text to the device matching filter. The encoded command is
// written as consecutive reports, each write completing before the next
// begins; the first failed write aborts the rest of the sequence. Frames
// already written are not rolled back, the firmware resets on its own
// terminator timeout.
func (t *Transport) Send(filter hid.Filter, text string) error {
	info, err := t.devices.Find(filter)
	if err != nil {
		return err
	}
	if t.verbose {
		log.Printf("Found device %s (%s)", filter, deviceName(info))
	}

	dev, err := t.devices.Open(info)
	if err != nil {
		return err
	}
	defer dev.Close()

	frames := hid.Frames(text)
	if t.verbose {
		log.Printf("Message length: %d bytes (including terminator), %d report(s)",
			len(text)+1, len(frames))
	}

	for i, frame := range frames {
		if err := dev.WriteReport(frame); err != nil {
			return fmt.Errorf("frame %d of %d: %w", i, len(frames), err)
		}
		if t.verbose {
			log.Printf("Wrote report %d/%d", i+1, len(frames))
		}
	}

	return nil
}

// List returns every HID device visible to the host without opening any of
// them. No devices is an empty list, not an error.
func (t *Transport) List() ([]hid.DeviceInfo, error) {
	return t.devices.List()
}

func deviceName(info hid.DeviceInfo) string {
	name := info.Product
	if name == "" {
		name = "unknown device"
	}
	if info.Manufacturer != "" {
		name = info.Manufacturer + " " + name
	}
	return name
}
