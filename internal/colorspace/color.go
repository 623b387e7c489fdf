// Package colorspace converts 8-bit sRGB colors to CIE Lab and CIE LCh
// (D65 illuminant). Every function is pure.
package colorspace

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is an 8-bit sRGB triple.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Lab is a CIE L*a*b* color relative to the D65 white point.
type Lab struct {
	L float64
	A float64
	B float64
}

// LCh is the polar form of Lab. H is in degrees, [0, 360).
type LCh struct {
	L float64
	C float64
	H float64
}

// Hex returns the color as #RRGGBB.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c RGB) String() string {
	return c.Hex()
}

// RGBA implements image/color.Color. RGB is always opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	return r, g, b, 0xffff
}

// ParseHex parses "#RRGGBB" or "RRGGBB" (case-insensitive).
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("parse hex color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("parse hex color %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}
