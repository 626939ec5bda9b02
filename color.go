package rasterx

import "math"

// Color is a non-premultiplied RGBA color, each channel in [0,255].
type Color struct {
	R, G, B, A uint8
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA creates a color from RGBA components.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGBA implements image/color.Color, returning alpha-premultiplied
// 16-bit-per-channel components (the standard library's convention),
// so a Color can be passed anywhere a color.Color is expected.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	r *= uint32(c.A)
	r /= 0xff

	g = uint32(c.G)
	g |= g << 8
	g *= uint32(c.A)
	g /= 0xff

	b = uint32(c.B)
	b |= b << 8
	b *= uint32(c.A)
	b /= 0xff

	a = uint32(c.A)
	a |= a << 8
	return
}

// IsOpaque reports whether the color's alpha channel is 255.
func (c Color) IsOpaque() bool { return c.A == 255 }

// IsTransparent reports whether the color's alpha channel is 0.
func (c Color) IsTransparent() bool { return c.A == 0 }

// WithGlobalAlpha returns a copy of c with its alpha channel multiplied by
// alpha (expected in [0,1]); the result is rounded to the nearest byte.
func (c Color) WithGlobalAlpha(alpha float64) Color {
	a := math.Round(float64(c.A) * alpha)
	return Color{R: c.R, G: c.G, B: c.B, A: clampByte(a)}
}

// Pack returns the little-endian ABGR 32-bit word representation:
// (a<<24)|(b<<16)|(g<<8)|r.
func (c Color) Pack() uint32 {
	return uint32(c.A)<<24 | uint32(c.B)<<16 | uint32(c.G)<<8 | uint32(c.R)
}

// UnpackColor decodes a little-endian ABGR 32-bit word into a Color.
func UnpackColor(w uint32) Color {
	return Color{
		R: uint8(w),
		G: uint8(w >> 8),
		B: uint8(w >> 16),
		A: uint8(w >> 24),
	}
}

// Lerp performs linear (byte-rounded) interpolation between two colors.
// t=0 returns c, t=1 returns other.
func (c Color) Lerp(other Color, t float64) Color {
	lerp := func(a, b uint8) uint8 {
		return clampByte(math.Round(float64(a) + (float64(b)-float64(a))*t))
	}
	return Color{
		R: lerp(c.R, other.R),
		G: lerp(c.G, other.G),
		B: lerp(c.B, other.B),
		A: lerp(c.A, other.A),
	}
}

// Hex parses a CSS-style hex color string ("#rgb", "#rgba", "#rrggbb", or
// "#rrggbbaa") into a Color. An unparseable string returns opaque black.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}
	for i := 0; i < len(hex); i++ {
		c := hex[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return Color{A: 255}
		}
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3:
		parseHexDigits(hex[0:1], &r)
		parseHexDigits(hex[1:2], &g)
		parseHexDigits(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4:
		parseHexDigits(hex[0:1], &r)
		parseHexDigits(hex[1:2], &g)
		parseHexDigits(hex[2:3], &b)
		parseHexDigits(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6:
		parseHexDigits(hex[0:2], &r)
		parseHexDigits(hex[2:4], &g)
		parseHexDigits(hex[4:6], &b)
	case 8:
		parseHexDigits(hex[0:2], &r)
		parseHexDigits(hex[2:4], &g)
		parseHexDigits(hex[4:6], &b)
		parseHexDigits(hex[6:8], &a)
	default:
		return Color{A: 255}
	}

	return Color{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}
}

func parseHexDigits(s string, val *uint32) {
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
			return
		}
	}
}

func clampByte(x float64) uint8 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x)
}

// blendSourceOver composites src over dst under the source-over Porter-Duff
// operator, both non-premultiplied. Channels are computed in the
// premultiplied domain and converted back; out_a = o*255 with o the
// combined coverage s + d*(1-s).
func blendSourceOver(src, dst Color) Color {
	s := float64(src.A) / 255
	d := float64(dst.A) / 255
	o := s + d*(1-s)
	if o == 0 {
		return Color{}
	}

	mix := func(sc, dc uint8) uint8 {
		v := (float64(sc)*s + float64(dc)*d*(1-s)) / o
		return clampByte(math.Round(v))
	}

	return Color{
		R: mix(src.R, dst.R),
		G: mix(src.G, dst.G),
		B: mix(src.B, dst.B),
		A: clampByte(math.Round(o * 255)),
	}
}

var (
	// Transparent is fully transparent black.
	Transparent = Color{}
	// Black is opaque black.
	Black = Color{A: 255}
	// White is opaque white.
	White = Color{R: 255, G: 255, B: 255, A: 255}
)
