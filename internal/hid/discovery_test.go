package hid

import (
	"errors"
	"reflect"
	"testing"
)

var qmkFilter = Filter{VendorID: 0xFEED, ProductID: 0x0000, UsagePage: 0xFF60, Usage: 0x61}

func TestFindIn(t *testing.T) {
	rawHID := DeviceInfo{
		VendorID:  0xFEED,
		ProductID: 0x0000,
		UsagePage: 0xFF60,
		Usage:     0x61,
		Path:      "/dev/hidraw2",
		Product:   "Planck",
	}
	keyboardHID := DeviceInfo{
		VendorID:  0xFEED,
		ProductID: 0x0000,
		UsagePage: 0x0001, // boot keyboard interface of the same device
		Usage:     0x06,
		Path:      "/dev/hidraw1",
		Product:   "Planck",
	}
	mouse := DeviceInfo{
		VendorID:  0x046D,
		ProductID: 0xC077,
		UsagePage: 0x0001,
		Usage:     0x02,
		Path:      "/dev/hidraw0",
	}

	tests := []struct {
		name    string
		filter  Filter
		devices []DeviceInfo
		want    DeviceInfo
		wantErr bool
	}{
		{
			name:    "no devices at all",
			filter:  qmkFilter,
			devices: nil,
			wantErr: true,
		},
		{
			name:    "no matching device",
			filter:  qmkFilter,
			devices: []DeviceInfo{mouse, keyboardHID},
			wantErr: true,
		},
		{
			name:    "usage page must match, vendor alone is not enough",
			filter:  qmkFilter,
			devices: []DeviceInfo{keyboardHID},
			wantErr: true,
		},
		{
			name:    "single match returned unchanged",
			filter:  qmkFilter,
			devices: []DeviceInfo{mouse, keyboardHID, rawHID},
			want:    rawHID,
		},
		{
			name:   "first of multiple matches wins",
			filter: qmkFilter,
			devices: []DeviceInfo{
				rawHID,
				{VendorID: 0xFEED, ProductID: 0x0000, UsagePage: 0xFF60, Usage: 0x61, Path: "/dev/hidraw5"},
			},
			want: rawHID,
		},
		{
			name:    "zero product id matches exactly",
			filter:  Filter{VendorID: 0x046D, ProductID: 0xC077, UsagePage: 0x0001, Usage: 0x02},
			devices: []DeviceInfo{rawHID, mouse},
			want:    mouse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := findIn(tt.filter, tt.devices)
			if tt.wantErr {
				if !errors.Is(err, ErrDeviceNotFound) {
					t.Fatalf("findIn() error = %v, want ErrDeviceNotFound", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("findIn() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("findIn() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFilterString(t *testing.T) {
	got := qmkFilter.String()
	want := "VID=0xFEED PID=0x0000 UsagePage=0xFF60 Usage=0x0061"
	if got != want {
		t.Errorf("Filter.String() = %q, want %q", got, want)
	}
}
