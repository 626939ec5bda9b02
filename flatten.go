package rasterx

import "github.com/gogpu/rasterx/internal/path"

// Polygon is an ordered sequence of device- or path-local vertices.
type Polygon []Point

// Flatten converts a Path's recorded commands into a list of polygons at
// the engine's fixed geometric tolerance (see internal/path.Tolerance).
func Flatten(p *Path) []Polygon {
	internalElems := make([]path.PathElement, 0, len(p.elements))
	for _, e := range p.elements {
		internalElems = append(internalElems, toInternalElement(e))
	}
	polys := path.Flatten(internalElems)
	out := make([]Polygon, len(polys))
	for i, poly := range polys {
		pts := make(Polygon, len(poly))
		for j, pt := range poly {
			pts[j] = Point{X: pt.X, Y: pt.Y}
		}
		out[i] = pts
	}
	return out
}

func toInternalElement(e PathElement) path.PathElement {
	switch v := e.(type) {
	case MoveTo:
		return path.MoveTo{Point: path.Point{X: v.X, Y: v.Y}}
	case LineTo:
		return path.LineTo{Point: path.Point{X: v.X, Y: v.Y}}
	case QuadraticTo:
		return path.QuadTo{
			Control: path.Point{X: v.Cpx, Y: v.Cpy},
			Point:   path.Point{X: v.X, Y: v.Y},
		}
	case BezierTo:
		return path.CubicTo{
			Control1: path.Point{X: v.Cp1x, Y: v.Cp1y},
			Control2: path.Point{X: v.Cp2x, Y: v.Cp2y},
			Point:    path.Point{X: v.X, Y: v.Y},
		}
	case ClosePath:
		return path.Close{}
	case Arc:
		return path.ArcElem{
			Center: path.Point{X: v.Cx, Y: v.Cy}, R: v.R,
			Theta0: v.Theta0, Theta1: v.Theta1, CCW: v.CCW,
		}
	case Ellipse:
		return path.EllipseElem{
			Center: path.Point{X: v.Cx, Y: v.Cy}, Rx: v.Rx, Ry: v.Ry, Phi: v.Phi,
			Theta0: v.Theta0, Theta1: v.Theta1, CCW: v.CCW,
		}
	case ArcTo:
		return path.ArcToElem{
			P1: path.Point{X: v.X1, Y: v.Y1}, P2: path.Point{X: v.X2, Y: v.Y2}, R: v.R,
		}
	case Rect:
		return path.RectElem{X: v.X, Y: v.Y, W: v.W, H: v.H}
	default:
		panic("rasterx: unknown path element")
	}
}
