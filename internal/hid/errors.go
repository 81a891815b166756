package hid

import "errors"

// Sentinel errors for the transport layer. Callers classify failures with
// errors.Is; the wrapped message carries the specifics (which field, which
// device, which frame).
var (
	ErrInvalidHex       = errors.New("invalid hex value")
	ErrInvalidDecimal   = errors.New("invalid decimal value")
	ErrDeviceNotFound   = errors.New("device not found")
	ErrOpenFailed       = errors.New("failed to open device")
	ErrWriteFailed      = errors.New("report write failed")
	ErrMissingParameter = errors.New("missing required parameter")
)
