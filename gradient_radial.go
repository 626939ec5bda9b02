package rasterx

import "math"

// RadialGradient paints a color transition radiating from a focal point
// within a circle defined by Center and EndRadius. A Focus different from
// Center produces an asymmetric "spotlight" gradient via ray-circle
// intersection instead of a simple distance ratio.
//
// Example:
//
//	gradient := rasterx.NewRadialGradient(50, 50, 0, 50).
//	    AddColorStop(0, rasterx.White).
//	    AddColorStop(1, rasterx.Black)
type RadialGradient struct {
	nonSolidPaint

	Center      Point       // Center of the gradient circle
	Focus       Point       // Focal point (can differ from center)
	StartRadius float64     // Inner radius where gradient begins (t=0)
	EndRadius   float64     // Outer radius where gradient ends (t=1)
	Stops       []ColorStop // Color stops defining the gradient
	Extend      ExtendMode  // How the gradient extends beyond bounds
}

// NewRadialGradient creates a new radial gradient transitioning from
// startRadius to endRadius around (cx, cy). Focus defaults to center.
func NewRadialGradient(cx, cy, startRadius, endRadius float64) *RadialGradient {
	center := Point{X: cx, Y: cy}
	return &RadialGradient{
		Center:      center,
		Focus:       center,
		StartRadius: startRadius,
		EndRadius:   endRadius,
		Extend:      ExtendPad,
	}
}

// SetFocus sets the focal point of the gradient. A focal point different
// from center creates an asymmetric gradient. Returns the gradient for
// method chaining.
func (g *RadialGradient) SetFocus(fx, fy float64) *RadialGradient {
	g.Focus = Point{X: fx, Y: fy}
	return g
}

// AddColorStop adds a color stop at the specified offset, typically in
// [0, 1]. Returns the gradient for method chaining.
func (g *RadialGradient) AddColorStop(offset float64, c Color) *RadialGradient {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// SetExtend sets the extend mode for the gradient. Returns the gradient
// for method chaining.
func (g *RadialGradient) SetExtend(mode ExtendMode) *RadialGradient {
	g.Extend = mode
	return g
}

// Evaluate implements Paint.
func (g *RadialGradient) Evaluate(x, y float64, transform Matrix) Color {
	p := paintSpacePoint(x, y, transform)

	radiusDiff := g.EndRadius - g.StartRadius
	if radiusDiff == 0 {
		return firstStopColor(g.Stops)
	}

	t := g.computeT(p.X, p.Y)
	return colorAtOffset(g.Stops, t, g.Extend)
}

// computeT calculates the gradient parameter t for a point in paint space.
func (g *RadialGradient) computeT(x, y float64) float64 {
	if g.Focus.X == g.Center.X && g.Focus.Y == g.Center.Y {
		return g.computeTSimple(x, y)
	}
	return g.computeTFocal(x, y)
}

// computeTSimple calculates t for the simple case where focus equals center:
// t = (distance - startRadius) / (endRadius - startRadius).
func (g *RadialGradient) computeTSimple(x, y float64) float64 {
	dx := x - g.Center.X
	dy := y - g.Center.Y
	distance := math.Sqrt(dx*dx + dy*dy)

	radiusDiff := g.EndRadius - g.StartRadius
	if radiusDiff == 0 {
		return 0
	}

	return (distance - g.StartRadius) / radiusDiff
}

// computeTFocal calculates t for focal gradients (focus != center) by
// solving the ray-circle intersection between the focus-to-point ray and
// the circle of radius EndRadius around Center.
func (g *RadialGradient) computeTFocal(x, y float64) float64 {
	dx := x - g.Focus.X
	dy := y - g.Focus.Y

	fx := g.Center.X - g.Focus.X
	fy := g.Center.Y - g.Focus.Y

	a := dx*dx + dy*dy
	b := -2 * (dx*fx + dy*fy)
	c := fx*fx + fy*fy - g.EndRadius*g.EndRadius

	if a == 0 {
		return 0
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 1
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	var t float64
	switch {
	case t1 > 0 && t2 > 0:
		t = math.Min(t1, t2)
	case t1 > 0:
		t = t1
	case t2 > 0:
		t = t2
	default:
		return 0
	}

	pointDist := math.Sqrt(a)
	intersectDist := t * pointDist
	if intersectDist == 0 {
		return 0
	}

	return pointDist / intersectDist
}
