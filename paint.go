package rasterx

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// Paint is the dynamic-dispatch paint source consumed by the filler:
// Evaluate is called once per covered pixel (outside the solid-color fast
// path) with the device pixel coordinates and the active transform.
type Paint interface {
	// Evaluate returns the color this paint contributes at device pixel
	// (x, y) under transform.
	Evaluate(x, y float64, transform Matrix) Color

	// solid reports the paint's color and true if it is a pure SolidColor,
	// so the filler can pick the direct-rendering fast path without any
	// virtual call in the inner loop.
	solid() (Color, bool)
}

// SolidColor is a Paint that evaluates to a constant color everywhere.
type SolidColor struct {
	Color Color
}

// Evaluate implements Paint.
func (s SolidColor) Evaluate(_, _ float64, _ Matrix) Color { return s.Color }

func (s SolidColor) solid() (Color, bool) { return s.Color, true }

// solidColor extracts a fast-path color from p, or ok=false if p is not a
// pure solid color.
func solidColor(p Paint) (Color, bool) {
	if p == nil {
		return Color{}, false
	}
	return p.solid()
}

// nonSolidPaint is embedded by gradient/pattern implementations so they
// never satisfy the fast-path check without reimplementing solid().
type nonSolidPaint struct{}

func (nonSolidPaint) solid() (Color, bool) { return Color{}, false }
