package stroke

import "math"

// Point is a 2D point/vector (duplicated locally to avoid an import cycle).
type Point struct{ X, Y float64 }

func (p Point) sub(q Point) Point   { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) add(q Point) Point   { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) mul(s float64) Point { return Point{p.X * s, p.Y * s} }
func (p Point) length() float64     { return math.Hypot(p.X, p.Y) }
func (p Point) distance(q Point) float64 {
	return p.sub(q).length()
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

const epsilon = 1e-10

// LineJoin selects the geometry emitted at a convex turn between segments.
type LineJoin int

const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

// LineCap selects the geometry emitted at an open subpath's endpoints.
type LineCap int

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

// Attributes holds the stroke parameters from spec §3.
type Attributes struct {
	Width      float64
	Join       LineJoin
	Cap        LineCap
	MiterLimit float64
}

// Polygon is an ordered vertex list; Generate returns one per filled piece
// of stroke geometry.
type Polygon []Point

// segment is a retained (nonzero-length) stroke segment with precomputed
// direction and left-normal.
type segment struct {
	p1, p2 Point
	tan    Point // unit tangent, p1->p2
	norm   Point // unit left-normal of tan
}

// Generate converts a list of flattened polygons into the filled polygons
// that make up their stroke, per spec §4.2. It returns nil when
// attrs.Width <= 0.
func Generate(polygons []Polygon, attrs Attributes) []Polygon {
	if attrs.Width <= 0 {
		return nil
	}
	half := attrs.Width / 2

	var out []Polygon
	for _, poly := range polygons {
		out = append(out, strokePolygon(poly, attrs, half)...)
	}
	return out
}

func strokePolygon(poly Polygon, attrs Attributes, half float64) []Polygon {
	n := len(poly)
	if n < 2 {
		return nil
	}

	closed := poly[0].distance(poly[n-1]) < epsilon
	verts := poly
	if closed {
		verts = poly[:n-1]
		if len(verts) < 2 {
			return nil
		}
	}

	var segs []segment
	for i := 0; i < len(verts); i++ {
		j := i + 1
		if j == len(verts) {
			if !closed {
				break
			}
			j = 0
		}
		p1, p2 := verts[i], verts[j]
		d := p2.sub(p1)
		if d.length() < epsilon {
			continue
		}
		tan := d.normalize()
		segs = append(segs, segment{p1: p1, p2: p2, tan: tan, norm: tan.perpLeft()})
	}
	if len(segs) == 0 {
		return nil
	}

	var out []Polygon
	for _, s := range segs {
		out = append(out, segmentBody(s, half))
	}

	lastIdx := len(segs) - 1
	for i := 0; i < lastIdx; i++ {
		if j := join(segs[i], segs[i+1], attrs, half); j != nil {
			out = append(out, j...)
		}
	}
	if closed && len(segs) >= 2 {
		if j := join(segs[lastIdx], segs[0], attrs, half); j != nil {
			out = append(out, j...)
		}
	}

	if !closed {
		if cap := endCap(segs[0].p1, segs[0].tan.mul(-1), segs[0].norm, attrs.Cap, half); cap != nil {
			out = append(out, cap...)
		}
		last := segs[lastIdx]
		if cap := endCap(last.p2, last.tan, last.norm, attrs.Cap, half); cap != nil {
			out = append(out, cap...)
		}
	}

	return out
}

// segmentBody returns the rectangle covering a single retained segment.
func segmentBody(s segment, half float64) Polygon {
	offset := s.norm.mul(half)
	return Polygon{
		s.p1.add(offset), s.p2.add(offset),
		s.p2.sub(offset), s.p1.sub(offset),
	}
}

// join returns the filled geometry (if any) bridging the gap between
// segment a's end and segment b's start.
func join(a, b segment, attrs Attributes, half float64) []Polygon {
	joinPoint := a.p2
	cross := a.tan.cross(b.tan)

	if math.Abs(cross) < epsilon {
		outer1 := joinPoint.add(a.norm.mul(half))
		outer2 := joinPoint.add(b.norm.mul(half))
		return []Polygon{{outer1, outer2, joinPoint}}
	}

	if cross <= 0 {
		// Concave turn: segment bodies already overlap here.
		return nil
	}

	outerSign := -1.0
	outer1 := joinPoint.add(a.norm.mul(outerSign * half))
	outer2 := joinPoint.add(b.norm.mul(outerSign * half))

	switch attrs.Join {
	case JoinBevel:
		return []Polygon{{outer1, outer2, joinPoint}}

	case JoinRound:
		return []Polygon{roundFan(joinPoint, outer1, outer2, half)}

	default: // JoinMiter
		miterPoint, ok := lineIntersect(outer1, a.tan, outer2, b.tan)
		if !ok {
			return []Polygon{{outer1, outer2, joinPoint}}
		}
		miterLen := joinPoint.distance(miterPoint)
		if miterLen/half > attrs.MiterLimit {
			return []Polygon{{outer1, outer2, joinPoint}}
		}
		return []Polygon{{outer1, miterPoint, outer2}}
	}
}

// lineIntersect finds the intersection of the line through p1 in direction
// d1 and the line through p2 in direction d2.
func lineIntersect(p1, d1, p2, d2 Point) (Point, bool) {
	denom := d1.cross(d2)
	if math.Abs(denom) < epsilon {
		return Point{}, false
	}
	diff := p2.sub(p1)
	t := diff.cross(d2) / denom
	return p1.add(d1.mul(t)), true
}

// roundFan builds a triangle fan covering the convex arc from outer1 to
// outer2 around center, using max(2, ceil(|delta|/(pi/4))) triangles.
func roundFan(center, outer1, outer2 Point, radius float64) Polygon {
	a1 := math.Atan2(outer1.Y-center.Y, outer1.X-center.X)
	a2 := math.Atan2(outer2.Y-center.Y, outer2.X-center.X)
	delta := a2 - a1
	for delta <= -math.Pi {
		delta += 2 * math.Pi
	}
	for delta > math.Pi {
		delta -= 2 * math.Pi
	}

	steps := int(math.Ceil(math.Abs(delta) / (math.Pi / 4)))
	if steps < 2 {
		steps = 2
	}

	poly := make(Polygon, 0, steps+2)
	poly = append(poly, center)
	for i := 0; i <= steps; i++ {
		t := a1 + delta*float64(i)/float64(steps)
		s, c := math.Sincos(t)
		poly = append(poly, Point{center.X + radius*c, center.Y + radius*s})
	}
	return poly
}

// endCap returns the filled geometry for an open-path endpoint. outward is
// the unit direction pointing away from the stroke body (i.e. opposite the
// segment's interior direction); norm is the segment's left-normal.
func endCap(point, outward, norm Point, cap LineCap, half float64) []Polygon {
	switch cap {
	case CapSquare:
		ext := outward.mul(half)
		a := point.add(norm.mul(half))
		b := point.sub(norm.mul(half))
		return []Polygon{{a, a.add(ext), b.add(ext), b}}

	case CapRound:
		a1 := math.Atan2(norm.Y, norm.X)
		a2 := math.Atan2(-norm.Y, -norm.X)
		// Sweep through outward so the semicircle sits outside the segment.
		if outward.cross(norm) > 0 {
			a1, a2 = a2, a1
		}
		delta := a2 - a1
		for delta <= 0 {
			delta += 2 * math.Pi
		}
		steps := int(math.Ceil(math.Pi / (math.Pi / 4)))
		if steps < 4 {
			steps = 4
		}
		poly := make(Polygon, 0, steps+2)
		poly = append(poly, point)
		for i := 0; i <= steps; i++ {
			t := a1 + delta*float64(i)/float64(steps)
			s, c := math.Sincos(t)
			poly = append(poly, Point{point.X + half*c, point.Y + half*s})
		}
		return []Polygon{poly}

	default: // CapButt
		return nil
	}
}
