package hid

import (
	"errors"
	"testing"
)

func TestParseHexOrDecimal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    uint16
		wantErr error
	}{
		{name: "hex lowercase prefix", input: "0xFEED", want: 0xFEED},
		{name: "hex uppercase prefix", input: "0X1234", want: 0x1234},
		{name: "hex lowercase digits", input: "0xff60", want: 0xFF60},
		{name: "decimal", input: "1234", want: 1234},
		{name: "decimal equals hex", input: "65261", want: 0xFEED},
		{name: "decimal zero", input: "0", want: 0},
		{name: "max value", input: "0xFFFF", want: 0xFFFF},
		{name: "surrounding whitespace", input: " 0x61 ", want: 0x61},
		{name: "bad hex digits", input: "0xZZZZ", wantErr: ErrInvalidHex},
		{name: "hex overflow", input: "0x10000", wantErr: ErrInvalidHex},
		{name: "empty hex remainder", input: "0x", wantErr: ErrInvalidHex},
		{name: "non-numeric", input: "abc", wantErr: ErrInvalidDecimal},
		{name: "decimal overflow", input: "65536", wantErr: ErrInvalidDecimal},
		{name: "negative", input: "-1", wantErr: ErrInvalidDecimal},
		{name: "empty", input: "", wantErr: ErrInvalidDecimal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHexOrDecimal(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseHexOrDecimal(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHexOrDecimal(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHexOrDecimal(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
