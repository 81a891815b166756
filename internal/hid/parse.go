package hid

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseHexOrDecimal parses a numeric CLI token as a uint16. Tokens starting
// with "0x" or "0X" are parsed as hexadecimal, everything else as decimal.
func ParseHexOrDecimal(s string) (uint16, error) {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		val, err := strconv.ParseUint(s[2:], 16, 16)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidHex, s)
		}
		return uint16(val), nil
	}

	val, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDecimal, s)
	}
	return uint16(val), nil
}
