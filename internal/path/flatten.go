// Package path flattens recorded path commands into polygons.
package path

import "math"

// Point is a 2D point (duplicated locally to avoid an import cycle with the
// root package, which imports this package).
type Point struct {
	X, Y float64
}

func (p Point) sub(q Point) Point       { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) add(q Point) Point       { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) mul(s float64) Point     { return Point{p.X * s, p.Y * s} }
func (p Point) dot(q Point) float64     { return p.X*q.X + p.Y*q.Y }
func (p Point) length() float64         { return math.Sqrt(p.dot(p)) }
func (p Point) distance(q Point) float64 { return p.sub(q).length() }
func (p Point) lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}
func (p Point) normalize() Point {
	l := p.length()
	if l == 0 {
		return Point{}
	}
	return Point{p.X / l, p.Y / l}
}
func (p Point) perpLeft() Point       { return Point{-p.Y, p.X} }
func (p Point) cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }

// Tolerance is the maximum perpendicular distance (path-space units) between
// a flattened polyline and the curve it approximates.
const Tolerance = 0.25

// bridgeThreshold is the distance above which a disjoint current point is
// bridged to an arc/ellipse/arcTo start with an inserted line segment.
const bridgeThreshold = 0.01

// arcToSegmentsPer90 is the minimum number of segments per 90 degrees of
// sweep used by ArcTo, independent of the curvature-derived segment count.
const arcToSegmentsPer90 = 16

// maxCurvePoints bounds recursive curve subdivision: once a single curve has
// emitted this many points, further bisection stops and the endpoint is
// emitted directly.
const maxCurvePoints = 1000

const epsilon = 1e-10

// PathElement is a single recorded path command (local copy of the root
// package's tagged union, to avoid an import cycle).
type PathElement interface{ isPathElement() }

type MoveTo struct{ Point Point }

func (MoveTo) isPathElement() {}

type LineTo struct{ Point Point }

func (LineTo) isPathElement() {}

type QuadTo struct{ Control, Point Point }

func (QuadTo) isPathElement() {}

type CubicTo struct{ Control1, Control2, Point Point }

func (CubicTo) isPathElement() {}

type Close struct{}

func (Close) isPathElement() {}

type ArcElem struct {
	Center         Point
	R              float64
	Theta0, Theta1 float64
	CCW            bool
}

func (ArcElem) isPathElement() {}

type EllipseElem struct {
	Center         Point
	Rx, Ry         float64
	Phi            float64
	Theta0, Theta1 float64
	CCW            bool
}

func (EllipseElem) isPathElement() {}

type ArcToElem struct {
	P1, P2 Point
	R      float64
}

func (ArcToElem) isPathElement() {}

type RectElem struct {
	X, Y, W, H float64
}

func (RectElem) isPathElement() {}

// Polygon is an ordered sequence of vertices in path-local coordinates.
type Polygon []Point

// Flatten converts a recorded command sequence into a list of polygons,
// applying de Casteljau curve subdivision and direct arc/ellipse
// polygonization at tolerance Tolerance.
func Flatten(elements []PathElement) []Polygon {
	f := &flattener{}
	for _, elem := range elements {
		f.step(elem)
	}
	f.finish()
	return f.result
}

type flattener struct {
	result       []Polygon
	current      []Point
	hasCurrent   bool
	curPoint     Point
	subpathStart Point
}

func (f *flattener) finish() {
	if len(f.current) > 0 {
		f.result = append(f.result, f.current)
	}
	f.current = nil
}

func (f *flattener) beginSubpath(p Point) {
	f.finish()
	f.current = []Point{p}
	f.curPoint = p
	f.subpathStart = p
	f.hasCurrent = true
}

func (f *flattener) appendPoint(p Point) {
	f.current = append(f.current, p)
	f.curPoint = p
}

func (f *flattener) step(elem PathElement) {
	switch e := elem.(type) {
	case MoveTo:
		f.beginSubpath(e.Point)

	case LineTo:
		if !f.hasCurrent {
			f.beginSubpath(e.Point)
			return
		}
		f.appendPoint(e.Point)

	case QuadTo:
		if !f.hasCurrent {
			f.beginSubpath(e.Point)
			return
		}
		for _, p := range flattenQuad(f.curPoint, e.Control, e.Point) {
			f.appendPoint(p)
		}

	case CubicTo:
		if !f.hasCurrent {
			f.beginSubpath(e.Point)
			return
		}
		for _, p := range flattenCubic(f.curPoint, e.Control1, e.Control2, e.Point) {
			f.appendPoint(p)
		}

	case Close:
		if len(f.current) > 0 {
			if f.curPoint.distance(f.subpathStart) > epsilon {
				f.current = append(f.current, f.subpathStart)
			}
			f.curPoint = f.subpathStart
		}
		f.finish()

	case ArcElem:
		f.arc(e.Center, e.R, e.Theta0, e.Theta1, e.CCW)

	case EllipseElem:
		f.ellipse(e.Center, e.Rx, e.Ry, e.Phi, e.Theta0, e.Theta1, e.CCW)

	case ArcToElem:
		f.arcTo(e.P1, e.P2, e.R)

	case RectElem:
		f.rect(e.X, e.Y, e.W, e.H)
	}
}

func (f *flattener) rect(x, y, w, h float64) {
	f.finish()
	p0 := Point{x, y}
	f.result = append(f.result, Polygon{p0, {x + w, y}, {x + w, y + h}, {x, y + h}})
	f.curPoint = p0
	f.subpathStart = p0
	f.hasCurrent = true
}

// normalizeSweep adjusts (theta0, theta1) so the angular difference has the
// sign matching the requested direction, per spec §4.1.
func normalizeSweep(theta0, theta1 float64, ccw bool) (float64, float64) {
	if !ccw && theta1 < theta0 {
		theta1 += 2 * math.Pi
	}
	if ccw && theta0 < theta1 {
		theta0 += 2 * math.Pi
	}
	return theta0, theta1
}

func arcSegmentCount(sweep, r, tolerance float64) int {
	denom := 2 * math.Acos(math.Max(0, 1-tolerance/r))
	if denom <= 0 {
		return 1
	}
	n := int(math.Ceil(math.Abs(sweep) / denom))
	if n < 1 {
		n = 1
	}
	return n
}

func (f *flattener) arc(center Point, r, theta0, theta1 float64, ccw bool) {
	if r <= 0 {
		return
	}
	theta0, theta1 = normalizeSweep(theta0, theta1, ccw)
	n := arcSegmentCount(theta1-theta0, r, Tolerance)
	f.emitArcPoints(center, r, r, 0, theta0, theta1, n)
}

func (f *flattener) ellipse(center Point, rx, ry, phi, theta0, theta1 float64, ccw bool) {
	if rx <= 0 || ry <= 0 {
		return
	}
	theta0, theta1 = normalizeSweep(theta0, theta1, ccw)
	r := math.Min(rx, ry)
	n := arcSegmentCount(theta1-theta0, r, Tolerance)
	f.emitArcPoints(center, rx, ry, phi, theta0, theta1, n)
}

// emitArcPoints emits n+1 points at equal angular increments between theta0
// and theta1 on an (rx,ry) ellipse rotated by phi and centered at center,
// bridging to the first point if the current point is disjoint.
func (f *flattener) emitArcPoints(center Point, rx, ry, phi, theta0, theta1 float64, n int) {
	rc, rs := math.Cos(phi), math.Sin(phi)
	point := func(theta float64) Point {
		s, c := math.Sincos(theta)
		ex := rx * c
		ey := ry * s
		return Point{center.X + ex*rc - ey*rs, center.Y + ex*rs + ey*rc}
	}

	start := point(theta0)
	if !f.hasCurrent {
		f.beginSubpath(start)
	} else if f.curPoint.distance(start) > bridgeThreshold {
		f.appendPoint(start)
	}

	for i := 1; i <= n; i++ {
		t := theta0 + (theta1-theta0)*float64(i)/float64(n)
		f.appendPoint(point(t))
	}
}

func (f *flattener) arcTo(p1, p2 Point, r float64) {
	degenerate := !f.hasCurrent || r <= 0 ||
		f.curPoint.distance(p1) < epsilon ||
		p1.distance(p2) < epsilon

	if !degenerate {
		u1 := f.curPoint.sub(p1).normalize()
		u2 := p2.sub(p1).normalize()
		cross := u1.cross(u2)
		if math.Abs(cross) < epsilon {
			degenerate = true // collinear legs
		} else {
			dot := math.Max(-1, math.Min(1, u1.dot(u2)))
			phi := math.Acos(dot)
			d := r / math.Tan(phi/2)

			t1 := p1.add(u1.mul(d))
			t2 := p1.add(u2.mul(d))

			sign := 1.0
			if cross < 0 {
				sign = -1.0
			}
			center := t1.add(u1.perpLeft().mul(sign * r))

			theta0 := math.Atan2(t1.Y-center.Y, t1.X-center.X)
			theta1 := math.Atan2(t2.Y-center.Y, t2.X-center.X)
			ccw := cross > 0
			theta0, theta1 = normalizeSweep(theta0, theta1, ccw)

			tol := math.Min(0.1, Tolerance)
			n := arcSegmentCount(theta1-theta0, r, tol)
			floor := int(math.Ceil(math.Abs(theta1-theta0)/(math.Pi/2))) * arcToSegmentsPer90
			if floor < 1 {
				floor = 1
			}
			if n < floor {
				n = floor
			}

			if f.curPoint.distance(t1) > bridgeThreshold {
				f.appendPoint(t1)
			}
			for i := 1; i <= n; i++ {
				th := theta0 + (theta1-theta0)*float64(i)/float64(n)
				s, c := math.Sincos(th)
				f.appendPoint(Point{center.X + r*c, center.Y + r*s})
			}
			return
		}
	}

	if !f.hasCurrent {
		f.beginSubpath(p1)
		return
	}
	f.appendPoint(p1)
}

func flattenQuad(p0, p1, p2 Point) []Point {
	var out []Point
	n := 0
	subdivideQuad(p0, p1, p2, Tolerance, &out, &n)
	return out
}

func subdivideQuad(p0, p1, p2 Point, tol float64, out *[]Point, count *int) {
	chord := p2.sub(p0)
	if chord.length() < epsilon {
		*out = append(*out, p2)
		*count++
		return
	}
	if *count >= maxCurvePoints {
		*out = append(*out, p2)
		*count++
		return
	}
	if distanceToChord(p1, p0, p2) <= tol {
		*out = append(*out, p2)
		*count++
		return
	}

	q0 := p0.lerp(p1, 0.5)
	q1 := p1.lerp(p2, 0.5)
	mid := q0.lerp(q1, 0.5)

	subdivideQuad(p0, q0, mid, tol, out, count)
	subdivideQuad(mid, q1, p2, tol, out, count)
}

func flattenCubic(p0, p1, p2, p3 Point) []Point {
	var out []Point
	n := 0
	subdivideCubic(p0, p1, p2, p3, Tolerance, &out, &n)
	return out
}

func subdivideCubic(p0, p1, p2, p3 Point, tol float64, out *[]Point, count *int) {
	chord := p3.sub(p0)
	if chord.length() < epsilon {
		*out = append(*out, p3)
		*count++
		return
	}
	if *count >= maxCurvePoints {
		*out = append(*out, p3)
		*count++
		return
	}

	d1 := distanceToChord(p1, p0, p3)
	d2 := distanceToChord(p2, p0, p3)
	if d1+d2 <= tol {
		*out = append(*out, p3)
		*count++
		return
	}

	q0 := p0.lerp(p1, 0.5)
	q1 := p1.lerp(p2, 0.5)
	q2 := p2.lerp(p3, 0.5)
	r0 := q0.lerp(q1, 0.5)
	r1 := q1.lerp(q2, 0.5)
	mid := r0.lerp(r1, 0.5)

	subdivideCubic(p0, q0, r0, mid, tol, out, count)
	subdivideCubic(mid, r1, q2, p3, tol, out, count)
}

// distanceToChord returns the perpendicular distance from p to the line
// through a and b (not clamped to the segment: flatness tests measure
// distance to the infinite chord line, not the segment).
func distanceToChord(p, a, b Point) float64 {
	ab := b.sub(a)
	abLen := ab.length()
	if abLen < epsilon {
		return p.distance(a)
	}
	ap := p.sub(a)
	return math.Abs(ap.cross(ab)) / abLen
}
