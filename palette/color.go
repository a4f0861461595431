package palette

import (
	"fmt"
	"math"
)

// RGB is an opaque 8-bit sRGB color.
type RGB struct {
	R, G, B uint8
}

// RGBA implements color.Color. The color is always fully opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// CSS returns the color in CSS Color 4 space-separated form, e.g. "rgb(117 168 189)".
func (c RGB) CSS() string {
	return fmt.Sprintf("rgb(%d %d %d)", c.R, c.G, c.B)
}

// MaxChannel returns the largest of the three channels.
func (c RGB) MaxChannel() uint8 {
	return max(c.R, c.G, c.B)
}

// MinChannel returns the smallest of the three channels.
func (c RGB) MinChannel() uint8 {
	return min(c.R, c.G, c.B)
}

// Spread returns MaxChannel - MinChannel, a cheap proxy for saturation.
func (c RGB) Spread() uint8 {
	return c.MaxChannel() - c.MinChannel()
}

// ParseHex parses a color from a hex string.
// Supports "RGB" and "RRGGBB", with or without a leading '#'.
// Malformed input yields black and ok == false.
func ParseHex(hex string) (c RGB, ok bool) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	switch len(hex) {
	case 3:
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 6:
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
	}
	if !ok {
		return RGB{}, false
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, true
}

// MustHex is like ParseHex but panics on malformed input.
// Intended for package-level color constants.
func MustHex(hex string) RGB {
	c, ok := ParseHex(hex)
	if !ok {
		panic("palette: invalid hex color " + hex)
	}
	return c
}

func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// HSL is a color in hue/saturation/lightness form.
// H is in degrees (any value, normalized to [0, 360)), S and L are fractions in [0, 1].
type HSL struct {
	H, S, L float64
}

// RGB converts the color to 8-bit sRGB using the six-sector piecewise formula.
// Channels are rounded to the nearest integer.
func (c HSL) RGB() RGB {
	h := math.Mod(math.Mod(c.H, 360)+360, 360)
	chroma := (1 - math.Abs(2*c.L-1)) * c.S
	sector := h / 60
	x := chroma * (1 - math.Abs(math.Mod(sector, 2)-1))

	var r, g, b float64
	switch {
	case sector < 1:
		r, g = chroma, x
	case sector < 2:
		r, g = x, chroma
	case sector < 3:
		g, b = chroma, x
	case sector < 4:
		g, b = x, chroma
	case sector < 5:
		r, b = x, chroma
	default:
		r, b = chroma, x
	}

	m := c.L - chroma/2
	return RGB{R: toChannel(r + m), G: toChannel(g + m), B: toChannel(b + m)}
}

func toChannel(v float64) uint8 {
	v = math.Round(v * 255)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
