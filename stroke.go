package rasterx

import "github.com/gogpu/rasterx/internal/stroke"

// StrokeAttributes holds the stroke parameters from spec §3: line_width,
// line_join, line_cap, miter_limit, plus the dash pattern supplement.
type StrokeAttributes struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64

	// Dash is an optional dash pattern; nil means a solid line.
	Dash *DashPattern
}

// DefaultStrokeAttributes returns a solid 1-pixel stroke with butt caps and
// miter joins (miter limit 4, matching the common SVG/Canvas default).
func DefaultStrokeAttributes() StrokeAttributes {
	return StrokeAttributes{Width: 1.0, Cap: LineCapButt, Join: LineJoinMiter, MiterLimit: 4.0}
}

func (s StrokeAttributes) WithWidth(w float64) StrokeAttributes      { s.Width = w; return s }
func (s StrokeAttributes) WithCap(c LineCap) StrokeAttributes        { s.Cap = c; return s }
func (s StrokeAttributes) WithJoin(j LineJoin) StrokeAttributes      { s.Join = j; return s }
func (s StrokeAttributes) WithMiterLimit(l float64) StrokeAttributes { s.MiterLimit = l; return s }

// WithDash returns a copy with the given dash pattern; pass nil to return
// to a solid line.
func (s StrokeAttributes) WithDash(dash *DashPattern) StrokeAttributes {
	if dash == nil {
		s.Dash = nil
	} else {
		s.Dash = dash.Clone()
	}
	return s
}

// IsDashed reports whether this stroke has an active dash pattern.
func (s StrokeAttributes) IsDashed() bool {
	return s.Dash != nil && s.Dash.IsDashed()
}

func toInternalJoin(j LineJoin) stroke.LineJoin {
	switch j {
	case LineJoinRound:
		return stroke.JoinRound
	case LineJoinBevel:
		return stroke.JoinBevel
	default:
		return stroke.JoinMiter
	}
}

func toInternalCap(c LineCap) stroke.LineCap {
	switch c {
	case LineCapRound:
		return stroke.CapRound
	case LineCapSquare:
		return stroke.CapSquare
	default:
		return stroke.CapButt
	}
}

// GenerateStroke converts flattened polygons into the filled polygons that
// make up their stroke (spec §4.2). When attrs.Dash is set and active, each
// polygon is first split into drawn/gap runs.
func GenerateStroke(polygons []Polygon, attrs StrokeAttributes) []Polygon {
	internalAttrs := stroke.Attributes{
		Width:      attrs.Width,
		Join:       toInternalJoin(attrs.Join),
		Cap:        toInternalCap(attrs.Cap),
		MiterLimit: attrs.MiterLimit,
	}

	input := polygons
	if attrs.IsDashed() {
		input = nil
		for _, poly := range polygons {
			input = append(input, applyDash(poly, attrs.Dash)...)
		}
	}

	internalPolys := make([]stroke.Polygon, len(input))
	for i, poly := range input {
		p := make(stroke.Polygon, len(poly))
		for j, pt := range poly {
			p[j] = stroke.Point{X: pt.X, Y: pt.Y}
		}
		internalPolys[i] = p
	}

	out := stroke.Generate(internalPolys, internalAttrs)
	result := make([]Polygon, len(out))
	for i, poly := range out {
		p := make(Polygon, len(poly))
		for j, pt := range poly {
			p[j] = Point{X: pt.X, Y: pt.Y}
		}
		result[i] = p
	}
	return result
}
