package hid

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []byte
	}{
		{
			name: "short ascii",
			text: "AB",
			want: []byte{0x41, 0x42, 0x03},
		},
		{
			name: "empty string is just the terminator",
			text: "",
			want: []byte{0x03},
		},
		{
			name: "multibyte utf-8",
			text: "héllo",
			want: append([]byte("héllo"), 0x03),
		},
		{
			name: "embedded ETX is not escaped",
			text: "a\x03b",
			want: []byte{'a', 0x03, 'b', 0x03},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Encode(tt.text)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Encode(%q) = %v, want %v", tt.text, got, tt.want)
			}
			if got[len(got)-1] != Terminator {
				t.Errorf("Encode(%q) does not end with terminator", tt.text)
			}
			if len(got) != len(tt.text)+1 {
				t.Errorf("Encode(%q) length = %d, want %d", tt.text, len(got), len(tt.text)+1)
			}
		})
	}
}

func TestSegmentFrameCount(t *testing.T) {
	tests := []struct {
		name       string
		streamLen  int
		wantFrames int
	}{
		{"empty stream still yields one frame", 0, 1},
		{"single byte", 1, 1},
		{"one byte short of a full frame", 31, 1},
		{"exactly one frame", 32, 1},
		{"one byte over", 33, 2},
		{"exactly two frames", 64, 2},
		{"several frames", 100, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stream := bytes.Repeat([]byte{0xAA}, tt.streamLen)
			frames := Segment(stream)
			if len(frames) != tt.wantFrames {
				t.Fatalf("Segment(%d bytes) = %d frames, want %d", tt.streamLen, len(frames), tt.wantFrames)
			}
			for i, f := range frames {
				if len(f) != ReportSize {
					t.Errorf("frame %d is %d bytes, want %d", i, len(f), ReportSize)
				}
			}
		})
	}
}

func TestSegmentRoundTrip(t *testing.T) {
	// Concatenating all frames and cutting at the original length must
	// reproduce the stream, with only zero padding after it.
	for _, n := range []int{0, 1, 5, 31, 32, 33, 63, 64, 65, 200} {
		stream := make([]byte, n)
		for i := range stream {
			stream[i] = byte(i%255 + 1) // never zero, so padding is distinguishable
		}

		var joined []byte
		for _, f := range Segment(stream) {
			joined = append(joined, f...)
		}

		if !bytes.Equal(joined[:n], stream) {
			t.Errorf("len %d: frame concatenation does not reproduce the stream", n)
		}
		for i, b := range joined[n:] {
			if b != 0 {
				t.Errorf("len %d: padding byte %d is 0x%02X, want 0x00", n, i, b)
			}
		}
	}
}

func TestFrames(t *testing.T) {
	t.Run("terminator fits in the last frame", func(t *testing.T) {
		// 31 payload bytes + terminator fill exactly one report
		frames := Frames(strings.Repeat("x", 31))
		if len(frames) != 1 {
			t.Fatalf("got %d frames, want 1", len(frames))
		}
		if frames[0][31] != Terminator {
			t.Errorf("last byte = 0x%02X, want terminator", frames[0][31])
		}
	})

	t.Run("terminator pushes into a second frame", func(t *testing.T) {
		frames := Frames(strings.Repeat("x", 32))
		if len(frames) != 2 {
			t.Fatalf("got %d frames, want 2", len(frames))
		}
		if frames[1][0] != Terminator {
			t.Errorf("second frame starts with 0x%02X, want terminator", frames[1][0])
		}
	})

	t.Run("short message is zero padded", func(t *testing.T) {
		frames := Frames("AB")
		if len(frames) != 1 {
			t.Fatalf("got %d frames, want 1", len(frames))
		}
		want := make([]byte, ReportSize)
		copy(want, []byte{0x41, 0x42, 0x03})
		if !bytes.Equal(frames[0], want) {
			t.Errorf("frame = %v, want %v", frames[0], want)
		}
	})

	t.Run("40 ascii characters split across two frames", func(t *testing.T) {
		text := strings.Repeat("a", 40)
		frames := Frames(text)
		if len(frames) != 2 {
			t.Fatalf("got %d frames, want 2", len(frames))
		}

		want0 := bytes.Repeat([]byte{'a'}, 32)
		want1 := make([]byte, ReportSize)
		copy(want1, bytes.Repeat([]byte{'a'}, 8))
		want1[8] = Terminator

		if !bytes.Equal(frames[0], want0) {
			t.Errorf("frame 0 = %v, want %v", frames[0], want0)
		}
		if !bytes.Equal(frames[1], want1) {
			t.Errorf("frame 1 = %v, want %v", frames[1], want1)
		}
	})
}
