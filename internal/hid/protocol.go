package hid

// Wire protocol to the keyboard firmware: a command is its UTF-8 bytes
// followed by a single ETX byte, zero-padded up to a multiple of ReportSize
// and sent as consecutive fixed-size reports. The firmware reassembles
// reports in arrival order until it sees the terminator.
const (
	// ReportSize is the fixed payload size of one raw HID report.
	ReportSize = 32

	// Terminator marks the end of a command (ASCII ETX).
	Terminator byte = 0x03
)

// Encode returns the wire encoding of a text command: its UTF-8 bytes plus
// the terminator. An ETX byte occurring inside text is not escaped; the
// receiver cannot tell it from the terminator.
func Encode(text string) []byte {
	buf := make([]byte, 0, len(text)+1)
	buf = append(buf, text...)
	buf = append(buf, Terminator)
	return buf
}

// Segment splits a byte stream into report-sized frames, preserving order.
// Every frame is exactly ReportSize bytes; the last one is zero-padded.
// Any stream, including an empty one, yields at least one frame.
func Segment(stream []byte) [][]byte {
	count := (len(stream) + ReportSize - 1) / ReportSize
	if count == 0 {
		count = 1
	}

	frames := make([][]byte, count)
	for i := range frames {
		frame := make([]byte, ReportSize)
		if start := i * ReportSize; start < len(stream) {
			copy(frame, stream[start:])
		}
		frames[i] = frame
	}
	return frames
}

// Frames encodes a text command and segments it in one step.
func Frames(text string) [][]byte {
	return Segment(Encode(text))
}
