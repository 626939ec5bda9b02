package rasterx

import "math"

// ImagePattern paints by sampling a Surface, tiling or padding beyond its
// bounds according to Extend. Sampling is nearest-neighbor, matching the
// engine's non-antialiased rendering model.
type ImagePattern struct {
	nonSolidPaint

	Image  *Surface
	Extend ExtendMode
}

// NewImagePattern creates a pattern that samples img, repeating by default.
func NewImagePattern(img *Surface) *ImagePattern {
	return &ImagePattern{Image: img, Extend: ExtendRepeat}
}

// SetExtend sets the extend mode for the pattern. Returns the pattern for
// method chaining.
func (p *ImagePattern) SetExtend(mode ExtendMode) *ImagePattern {
	p.Extend = mode
	return p
}

// Evaluate implements Paint. The device pixel (x, y) is mapped back into
// pattern space by the inverse transform before sampling Image, so the
// pattern follows the shape it paints.
func (p *ImagePattern) Evaluate(x, y float64, transform Matrix) Color {
	if p.Image == nil || p.Image.Width() == 0 || p.Image.Height() == 0 {
		return Transparent
	}

	pt := paintSpacePoint(x, y, transform)
	w, h := p.Image.Width(), p.Image.Height()

	sx := wrapSampleCoord(pt.X, w, p.Extend)
	sy := wrapSampleCoord(pt.Y, h, p.Extend)
	return p.Image.GetPixel(sx, sy)
}

// wrapSampleCoord maps a pattern-space coordinate to a pixel index in
// [0, size) under mode, mirroring applyExtendMode's normalization but
// operating on integer pixel indices rather than a gradient's [0,1] t.
func wrapSampleCoord(v float64, size int, mode ExtendMode) int {
	i := int(math.Floor(v))
	switch mode {
	case ExtendRepeat:
		i %= size
		if i < 0 {
			i += size
		}
	case ExtendReflect:
		period := size * 2
		i %= period
		if i < 0 {
			i += period
		}
		if i >= size {
			i = period - 1 - i
		}
	default: // ExtendPad
		if i < 0 {
			i = 0
		}
		if i >= size {
			i = size - 1
		}
	}
	return i
}
