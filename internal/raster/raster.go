// Package raster implements the scanline polygon filler and specialized
// primitive rasterizers that turn device-space geometry into surface
// writes, consulting a clip mask and compositing through a paint source.
package raster

import "math"

// Point is a device-space vertex (internal copy to avoid an import cycle
// with the root package).
type Point struct {
	X, Y float64
}

// FillRule selects how winding determines span membership.
type FillRule int

const (
	// FillRuleNonZero treats a span as inside when the winding number is
	// nonzero after the left intersection.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd treats a span as inside when the winding number is
	// odd after the left intersection.
	FillRuleEvenOdd
)

// ClipMask gates which pixels the filler may write. A nil ClipMask means
// every pixel is visible.
type ClipMask interface {
	Get(x, y int) bool
}

// SourceMask records coverage for canvas-wide compositing operators: the
// filler sets a bit for every pixel it would have written, without
// touching the surface.
type SourceMask interface {
	Set(x, y int)
}

// Surface is the pixel buffer the filler writes into.
type Surface interface {
	Width() int
	Height() int
	GetPixel(x, y int) Color
	SetPixel(x, y int, c Color)
	WordAt(x, y int) uint32
	SetWord(x, y int, w uint32)
	FillSpan(x1, x2, y int, c Color)
}

// Color is a non-premultiplied RGBA color (internal copy).
type Color struct {
	R, G, B, A uint8
}

// Paint evaluates to a color at a device pixel, or reports a solid fast
// path.
type Paint interface {
	Evaluate(x, y float64) Color
	Solid() (Color, bool)
}

// edge is a non-horizontal polygon edge with y0 < y1.
type edge struct {
	y0, y1 float64
	x0     float64
	invDy  float64 // (x1-x0)/(y1-y0), for x at a given y
	dir    int      // +1 if the original edge went downward in y, else -1
}

const epsilon = 1e-10

// xwind is a scanline/edge intersection: an x coordinate plus the edge's
// winding contribution.
type xwind struct {
	x    float64
	wind int
}

func buildEdges(polygons [][]Point) []edge {
	var edges []edge
	for _, poly := range polygons {
		n := len(poly)
		if n < 2 {
			continue
		}
		for i := 0; i < n; i++ {
			p0 := poly[i]
			p1 := poly[(i+1)%n]
			dy := p1.Y - p0.Y
			if math.Abs(dy) < epsilon {
				continue
			}
			dir := 1
			a, b := p0, p1
			if a.Y > b.Y {
				dir = -1
				a, b = b, a
			}
			edges = append(edges, edge{
				y0: a.Y, y1: b.Y, x0: a.X,
				invDy: (b.X - a.X) / (b.Y - a.Y),
				dir:   dir,
			})
		}
	}
	return edges
}

// FillParams bundles fill_polygons' parameters (spec §4.3).
type FillParams struct {
	Paint            Paint
	FillRule         FillRule
	Clip             ClipMask
	GlobalAlpha      float64
	SubPixelOpacity  float64
	Composite        CompositeOp
	SourceMask       SourceMask
}

// Fill rasterizes polygons (already in device space) onto surface under
// params.
func Fill(surface Surface, polygons [][]Point, params FillParams) {
	edges := buildEdges(polygons)
	if len(edges) == 0 {
		return
	}

	yMin, yMax := math.Inf(1), math.Inf(-1)
	for _, e := range edges {
		if e.y0 < yMin {
			yMin = e.y0
		}
		if e.y1 > yMax {
			yMax = e.y1
		}
	}

	h := surface.Height()
	w := surface.Width()
	y0 := int(math.Floor(yMin))
	y1 := int(math.Ceil(yMax))
	if y0 < 0 {
		y0 = 0
	}
	if y1 > h-1 {
		y1 = h - 1
	}

	solid, isSolidFast := params.Paint.Solid()
	fastPath := isSolidFast && solid.A == 255 &&
		params.GlobalAlpha >= 1.0 && params.SubPixelOpacity >= 1.0 &&
		params.Composite == CompositeSourceOver && params.SourceMask == nil

	var packedWord uint32
	if fastPath {
		packedWord = packColor(solid)
	}

	var hits []xwind

	for y := y0; y <= y1; y++ {
		scanY := float64(y) + 0.5
		hits = hits[:0]
		for _, e := range edges {
			if scanY >= e.y0 && scanY < e.y1 {
				x := e.x0 + (scanY-e.y0)*e.invDy
				hits = append(hits, xwind{x: x, wind: e.dir})
			}
		}
		if len(hits) == 0 {
			continue
		}
		sortHits(hits)

		winding := 0
		for i := 0; i < len(hits); i++ {
			winding += hits[i].wind
			inside := false
			switch params.FillRule {
			case FillRuleEvenOdd:
				inside = winding%2 != 0
			default:
				inside = winding != 0
			}
			if !inside || i+1 >= len(hits) {
				continue
			}
			xStart := int(math.Ceil(hits[i].x))
			xEnd := int(math.Ceil(hits[i+1].x)) - 1
			if xStart < 0 {
				xStart = 0
			}
			if xEnd > w-1 {
				xEnd = w - 1
			}
			if xStart > xEnd {
				continue
			}

			if fastPath && params.Clip == nil {
				for x := xStart; x <= xEnd; x++ {
					surface.SetWord(x, y, packedWord)
				}
				continue
			}

			fillSpanStandard(surface, params, xStart, xEnd, y, packedWord, fastPath)
		}
	}
}

func fillSpanStandard(surface Surface, params FillParams, xStart, xEnd, y int, packedWord uint32, fastPath bool) {
	for x := xStart; x <= xEnd; x++ {
		if params.Clip != nil && !params.Clip.Get(x, y) {
			continue
		}
		if params.SourceMask != nil {
			params.SourceMask.Set(x, y)
			continue
		}
		if fastPath {
			surface.SetWord(x, y, packedWord)
			continue
		}
		c := params.Paint.Evaluate(float64(x), float64(y))
		c = applyOpacity(c, params.GlobalAlpha, params.SubPixelOpacity)
		dst := surface.GetPixel(x, y)
		blended := Composite(params.Composite, c, dst)
		surface.SetPixel(x, y, blended)
	}
}

func applyOpacity(c Color, globalAlpha, subPixelOpacity float64) Color {
	a := float64(c.A) * globalAlpha
	a = math.Round(a * subPixelOpacity)
	if a < 0 {
		a = 0
	}
	if a > 255 {
		a = 255
	}
	c.A = uint8(a)
	return c
}

func packColor(c Color) uint32 {
	return uint32(c.A)<<24 | uint32(c.B)<<16 | uint32(c.G)<<8 | uint32(c.R)
}

func sortHits(hits []xwind) {
	for i := 1; i < len(hits); i++ {
		key := hits[i]
		j := i - 1
		for j >= 0 && hits[j].x > key.x {
			hits[j+1] = hits[j]
			j--
		}
		hits[j+1] = key
	}
}

// PointInPolygon implements the spec's point-in-polygon test: a horizontal
// ray cast from (x, y) to +infinity, counting crossings under the same
// half-open rule used by the filler, with edge-inclusive boundary handling.
func PointInPolygon(x, y float64, poly []Point) bool {
	n := len(poly)
	if n < 2 {
		return false
	}
	if onPolygonEdge(x, y, poly) {
		return true
	}
	crossings := 0
	for i := 0; i < n; i++ {
		p0 := poly[i]
		p1 := poly[(i+1)%n]
		dy := p1.Y - p0.Y
		if math.Abs(dy) < epsilon {
			continue
		}
		lo, hi := p0.Y, p1.Y
		if lo > hi {
			lo, hi = hi, lo
		}
		if y < lo || y >= hi {
			continue
		}
		t := (y - p0.Y) / dy
		ix := p0.X + t*(p1.X-p0.X)
		if ix > x {
			crossings++
		}
	}
	return crossings%2 != 0
}

func onPolygonEdge(x, y float64, poly []Point) bool {
	n := len(poly)
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		abx, aby := b.X-a.X, b.Y-a.Y
		apx, apy := x-a.X, y-a.Y
		cross := abx*apy - aby*apx
		if math.Abs(cross) > epsilon {
			continue
		}
		dot := apx*abx + apy*aby
		lenSq := abx*abx + aby*aby
		if dot >= 0 && dot <= lenSq {
			return true
		}
	}
	return false
}
