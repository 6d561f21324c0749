package color

import (
	"fmt"
	"strings"
)

// SRGBToIRGB quantizes a gamma-encoded sRGB pixel to 8-bit integer
// channels, clamped to [0, 255].
func SRGBToIRGB(pixel [3]float32) [3]uint8 {
	var out [3]uint8
	for i, c := range pixel {
		v := c * 255.0
		switch {
		case v <= 0:
			out[i] = 0
		case v >= 255:
			out[i] = 255
		default:
			out[i] = uint8(v + 0.5)
		}
	}
	return out
}

// IRGBToSRGB converts 8-bit integer channels back to gamma-encoded sRGB
// floats in [0, 1].
func IRGBToSRGB(pixel [3]uint8) [3]float32 {
	return [3]float32{
		float32(pixel[0]) / 255.0,
		float32(pixel[1]) / 255.0,
		float32(pixel[2]) / 255.0,
	}
}

const hexDigits = "0123456789ABCDEF"

// IRGBToHex formats an 8-bit RGB triple as an uppercase "#RRGGBB" string.
func IRGBToHex(pixel [3]uint8) string {
	var b strings.Builder
	b.Grow(7)
	b.WriteByte('#')
	for _, c := range pixel {
		b.WriteByte(hexDigits[c>>4])
		b.WriteByte(hexDigits[c&0xf])
	}
	return b.String()
}

// HexToIRGB parses a "#RRGGBB" or "RRGGBB" string into an 8-bit RGB
// triple. It rejects non-hex characters and bodies that aren't exactly 6
// characters long.
func HexToIRGB(hex string) ([3]uint8, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return [3]uint8{}, fmt.Errorf("color: hex string %q must have 6 hex digits", hex)
	}
	var out [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok := hexVal(hex[i*2])
		if !ok {
			return [3]uint8{}, fmt.Errorf("color: invalid hex digit %q in %q", hex[i*2], hex)
		}
		lo, ok := hexVal(hex[i*2+1])
		if !ok {
			return [3]uint8{}, fmt.Errorf("color: invalid hex digit %q in %q", hex[i*2+1], hex)
		}
		out[i] = hi<<4 | lo
	}
	return out, nil
}

func hexVal(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
