package raster

// CompositeOp selects the Porter-Duff operator the filler blends through.
// SourceOver is the only operator the per-pixel fast path checks for;
// the others route through the generic per-pixel Composite below.
type CompositeOp int

const (
	// CompositeSourceOver is the default operator: source over destination.
	CompositeSourceOver CompositeOp = iota
	// CompositeCopy replaces the destination with the source outright.
	CompositeCopy
	// CompositeDestinationIn keeps the destination only where the source
	// also covers, scaling destination alpha by source alpha.
	CompositeDestinationIn
	// CompositeXor keeps either source or destination where exactly one of
	// the two covers a pixel.
	CompositeXor
)

// Composite blends src over dst under op, spec §4.3's formula for
// source-over and the analogous Porter-Duff formula for the others.
func Composite(op CompositeOp, src, dst Color) Color {
	switch op {
	case CompositeCopy:
		return src
	case CompositeDestinationIn:
		s := float64(src.A) / 255
		return Color{R: dst.R, G: dst.G, B: dst.B, A: clampByte(float64(dst.A) * s)}
	case CompositeXor:
		s := float64(src.A) / 255
		d := float64(dst.A) / 255
		o := s*(1-d) + d*(1-s)
		if o == 0 {
			return Color{}
		}
		r := (float64(src.R)*s*(1-d) + float64(dst.R)*d*(1-s)) / o
		g := (float64(src.G)*s*(1-d) + float64(dst.G)*d*(1-s)) / o
		b := (float64(src.B)*s*(1-d) + float64(dst.B)*d*(1-s)) / o
		return Color{R: clampByte(r), G: clampByte(g), B: clampByte(b), A: clampByte(o * 255)}
	default:
		return blendSourceOver(src, dst)
	}
}

func blendSourceOver(src, dst Color) Color {
	s := float64(src.A) / 255
	d := float64(dst.A) / 255
	o := s + d*(1-s)
	if o == 0 {
		return Color{}
	}
	r := (float64(src.R)*s + float64(dst.R)*d*(1-s)) / o
	g := (float64(src.G)*s + float64(dst.G)*d*(1-s)) / o
	b := (float64(src.B)*s + float64(dst.B)*d*(1-s)) / o
	return Color{R: clampByte(r), G: clampByte(g), B: clampByte(b), A: clampByte(o * 255)}
}

func clampByte(x float64) uint8 {
	if x <= 0 {
		return 0
	}
	if x >= 255 {
		return 255
	}
	return uint8(x + 0.5)
}
