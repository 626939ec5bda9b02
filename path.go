package rasterx

import "math"

// PathElement is a single recorded path command.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at (X,Y).
type MoveTo struct{ X, Y float64 }

func (MoveTo) isPathElement() {}

// LineTo appends a straight edge to (X,Y).
type LineTo struct{ X, Y float64 }

func (LineTo) isPathElement() {}

// ClosePath closes the current subpath back to its start.
type ClosePath struct{}

func (ClosePath) isPathElement() {}

// QuadraticTo appends a quadratic Bezier curve through control point (Cpx,Cpy)
// to (X,Y).
type QuadraticTo struct{ Cpx, Cpy, X, Y float64 }

func (QuadraticTo) isPathElement() {}

// BezierTo appends a cubic Bezier curve through control points (Cp1, Cp2) to
// (X,Y).
type BezierTo struct{ Cp1x, Cp1y, Cp2x, Cp2y, X, Y float64 }

func (BezierTo) isPathElement() {}

// Arc appends a circular arc centered at (Cx,Cy) with radius R, sweeping from
// Theta0 to Theta1 radians. CCW selects the sweep direction.
type Arc struct {
	Cx, Cy, R      float64
	Theta0, Theta1 float64
	CCW            bool
}

func (Arc) isPathElement() {}

// Ellipse appends an elliptical arc centered at (Cx,Cy) with radii (Rx,Ry),
// rotated by Phi radians, sweeping from Theta0 to Theta1. CCW selects the
// sweep direction.
type Ellipse struct {
	Cx, Cy, Rx, Ry float64
	Phi            float64
	Theta0, Theta1 float64
	CCW            bool
}

func (Ellipse) isPathElement() {}

// ArcTo appends the Canvas-style "arcTo" command: a line from the current
// point to (X1,Y1), then an arc of radius R tangent to the two legs
// (current->(X1,Y1) and (X1,Y1)->(X2,Y2)), ending tangent to the second leg.
type ArcTo struct {
	X1, Y1, X2, Y2, R float64
}

func (ArcTo) isPathElement() {}

// Rect appends a closed axis-aligned rectangle subpath.
type Rect struct{ X, Y, W, H float64 }

func (Rect) isPathElement() {}

// Path is an ordered, recorded sequence of PathElements.
type Path struct {
	elements     []PathElement
	current      Point
	hasCurrent   bool
	subpathStart Point
	generation   int
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo begins a new subpath at (x,y).
func (p *Path) MoveTo(x, y float64) {
	p.generation++
	p.elements = append(p.elements, MoveTo{X: x, Y: y})
	p.current = Point{X: x, Y: y}
	p.subpathStart = p.current
	p.hasCurrent = true
}

// LineTo appends a straight edge to (x,y).
func (p *Path) LineTo(x, y float64) {
	p.generation++
	p.elements = append(p.elements, LineTo{X: x, Y: y})
	p.current = Point{X: x, Y: y}
	p.hasCurrent = true
}

// QuadraticTo appends a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	p.generation++
	p.elements = append(p.elements, QuadraticTo{Cpx: cx, Cpy: cy, X: x, Y: y})
	p.current = Point{X: x, Y: y}
	p.hasCurrent = true
}

// CubicTo appends a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.generation++
	p.elements = append(p.elements, BezierTo{Cp1x: c1x, Cp1y: c1y, Cp2x: c2x, Cp2y: c2y, X: x, Y: y})
	p.current = Point{X: x, Y: y}
	p.hasCurrent = true
}

// ArcTo appends a Canvas-style arcTo command.
func (p *Path) ArcTo(x1, y1, x2, y2, r float64) {
	p.generation++
	p.elements = append(p.elements, ArcTo{X1: x1, Y1: y1, X2: x2, Y2: y2, R: r})
	p.hasCurrent = true
}

// ArcOp appends a circular arc command.
func (p *Path) ArcOp(cx, cy, r, theta0, theta1 float64, ccw bool) {
	p.generation++
	p.elements = append(p.elements, Arc{Cx: cx, Cy: cy, R: r, Theta0: theta0, Theta1: theta1, CCW: ccw})
	p.current = Point{X: cx + r*math.Cos(theta1), Y: cy + r*math.Sin(theta1)}
	p.hasCurrent = true
}

// EllipseOp appends an elliptical arc command.
func (p *Path) EllipseOp(cx, cy, rx, ry, phi, theta0, theta1 float64, ccw bool) {
	p.generation++
	p.elements = append(p.elements, Ellipse{Cx: cx, Cy: cy, Rx: rx, Ry: ry, Phi: phi, Theta0: theta0, Theta1: theta1, CCW: ccw})
	s, c := math.Sincos(theta1)
	ex := rx * c
	ey := ry * s
	rc, rs := math.Cos(phi), math.Sin(phi)
	p.current = Point{X: cx + ex*rc - ey*rs, Y: cy + ex*rs + ey*rc}
	p.hasCurrent = true
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.generation++
	p.elements = append(p.elements, ClosePath{})
	p.current = p.subpathStart
}

// RectOp appends a closed axis-aligned rectangle subpath.
func (p *Path) RectOp(x, y, w, h float64) {
	p.generation++
	p.elements = append(p.elements, Rect{X: x, Y: y, W: w, H: h})
	p.current = Point{X: x, Y: y}
	p.subpathStart = p.current
	p.hasCurrent = true
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.generation++
	p.elements = nil
	p.hasCurrent = false
}

// Elements returns the recorded path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Generation returns a counter incremented on every mutation, suitable as
// part of a cache key for memoizing flatten results.
func (p *Path) Generation() int {
	return p.generation
}

// CurrentPoint returns the current point of the path.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// HasCurrentPoint reports whether the path has a current point.
func (p *Path) HasCurrentPoint() bool {
	return p.hasCurrent
}

// Circle appends a full circle as two half-turn arcs, so the subpath start
// is well-defined regardless of the flattener's arc-bridging rule.
func (p *Path) Circle(cx, cy, r float64) {
	p.ArcOp(cx, cy, r, 0, math.Pi, false)
	p.ArcOp(cx, cy, r, math.Pi, 2*math.Pi, false)
	p.Close()
}

// Rectangle appends a closed axis-aligned rectangle subpath.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.RectOp(x, y, w, h)
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	c := &Path{
		current:      p.current,
		hasCurrent:   p.hasCurrent,
		subpathStart: p.subpathStart,
	}
	c.elements = append(c.elements, p.elements...)
	return c
}

// Transform returns a new path with every element's coordinates mapped
// through m. Arc, Ellipse and ArcTo are not affine-invariant in general, so
// Transform panics if the path contains any; callers needing a transformed
// arc should flatten first and transform the resulting polygons instead.
func (p *Path) Transform(m Matrix) *Path {
	out := NewPath()
	for _, e := range p.elements {
		switch v := e.(type) {
		case MoveTo:
			pt := m.TransformPoint(Point{X: v.X, Y: v.Y})
			out.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(Point{X: v.X, Y: v.Y})
			out.LineTo(pt.X, pt.Y)
		case QuadraticTo:
			cp := m.TransformPoint(Point{X: v.Cpx, Y: v.Cpy})
			pt := m.TransformPoint(Point{X: v.X, Y: v.Y})
			out.QuadraticTo(cp.X, cp.Y, pt.X, pt.Y)
		case BezierTo:
			c1 := m.TransformPoint(Point{X: v.Cp1x, Y: v.Cp1y})
			c2 := m.TransformPoint(Point{X: v.Cp2x, Y: v.Cp2y})
			pt := m.TransformPoint(Point{X: v.X, Y: v.Y})
			out.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
		case ClosePath:
			out.Close()
		case Rect:
			tl := m.TransformPoint(Point{X: v.X, Y: v.Y})
			tr := m.TransformPoint(Point{X: v.X + v.W, Y: v.Y})
			br := m.TransformPoint(Point{X: v.X + v.W, Y: v.Y + v.H})
			bl := m.TransformPoint(Point{X: v.X, Y: v.Y + v.H})
			out.MoveTo(tl.X, tl.Y)
			out.LineTo(tr.X, tr.Y)
			out.LineTo(br.X, br.Y)
			out.LineTo(bl.X, bl.Y)
			out.Close()
		default:
			panic("rasterx: Transform does not support Arc/Ellipse/ArcTo path elements; flatten first")
		}
	}
	return out
}
