package rasterx

// LinearGradient paints a color transition along the line from Start to
// End, projecting each evaluated pixel onto that line to find its offset.
//
// Example:
//
//	gradient := rasterx.NewLinearGradient(0, 0, 100, 0).
//	    AddColorStop(0, rasterx.RGB(255, 0, 0)).
//	    AddColorStop(0.5, rasterx.RGB(255, 255, 0)).
//	    AddColorStop(1, rasterx.RGB(0, 0, 255))
type LinearGradient struct {
	nonSolidPaint

	Start  Point       // Start point of the gradient, in paint space
	End    Point       // End point of the gradient, in paint space
	Stops  []ColorStop // Color stops defining the gradient
	Extend ExtendMode  // How the gradient extends beyond [Start, End]
}

// NewLinearGradient creates a new linear gradient from (x0, y0) to (x1, y1).
func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return &LinearGradient{
		Start:  Point{X: x0, Y: y0},
		End:    Point{X: x1, Y: y1},
		Extend: ExtendPad,
	}
}

// AddColorStop adds a color stop at the specified offset, typically in
// [0, 1]. Returns the gradient for method chaining.
func (g *LinearGradient) AddColorStop(offset float64, c Color) *LinearGradient {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// SetExtend sets the extend mode for the gradient. Returns the gradient
// for method chaining.
func (g *LinearGradient) SetExtend(mode ExtendMode) *LinearGradient {
	g.Extend = mode
	return g
}

// Evaluate implements Paint. The device pixel (x, y) is mapped back into
// paint space by the inverse transform before projecting onto the
// gradient line, so the gradient follows the shape it paints.
func (g *LinearGradient) Evaluate(x, y float64, transform Matrix) Color {
	p := paintSpacePoint(x, y, transform)

	dx := g.End.X - g.Start.X
	dy := g.End.Y - g.Start.Y
	lengthSq := dx*dx + dy*dy

	if lengthSq == 0 {
		return firstStopColor(g.Stops)
	}

	px := p.X - g.Start.X
	py := p.Y - g.Start.Y
	t := (px*dx + py*dy) / lengthSq

	return colorAtOffset(g.Stops, t, g.Extend)
}

// firstStopColor returns the first stop's color or Transparent if empty.
func firstStopColor(stops []ColorStop) Color {
	if len(stops) == 0 {
		return Transparent
	}
	sorted := sortStops(stops)
	return sorted[0].Color
}

// paintSpacePoint maps a device pixel center back into paint space via the
// inverse of transform, falling back to the identity mapping if transform
// is singular.
func paintSpacePoint(x, y float64, transform Matrix) Point {
	inv, err := transform.Invert()
	if err != nil {
		return Point{X: x, Y: y}
	}
	return inv.TransformPoint(Point{X: x, Y: y})
}
