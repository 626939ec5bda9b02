package raster

import "math"

// PixelWriter abstracts a single clipped, opacity-applied write so every
// primitive rasterizer shares one blending/clipping path instead of
// duplicating it per shape.
type PixelWriter struct {
	Surface Surface
	Clip    ClipMask
	Color   Color
	Opaque  bool
	word    uint32
}

// NewPixelWriter precomputes the packed word for the opaque fast path.
func NewPixelWriter(surface Surface, clip ClipMask, c Color) *PixelWriter {
	return &PixelWriter{Surface: surface, Clip: clip, Color: c, Opaque: c.A == 255, word: packColor(c)}
}

func (w *PixelWriter) put(x, y int) {
	if x < 0 || x >= w.Surface.Width() || y < 0 || y >= w.Surface.Height() {
		return
	}
	if w.Clip != nil && !w.Clip.Get(x, y) {
		return
	}
	if w.Opaque {
		w.Surface.SetWord(x, y, w.word)
		return
	}
	dst := w.Surface.GetPixel(x, y)
	w.Surface.SetPixel(x, y, blendSourceOver(w.Color, dst))
}

func (w *PixelWriter) putOnce(x, y int, seen map[[2]int]bool) {
	key := [2]int{x, y}
	if seen[key] {
		return
	}
	seen[key] = true
	w.put(x, y)
}

func (w *PixelWriter) span(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		w.put(x, y)
	}
}

// CircleStrokeThin rasterizes a 1-pixel-wide circle outline via the
// standard Bresenham midpoint algorithm, spec §4.4.1. A half-integer center
// shifts the octant reflection by one pixel so the drawn diameter matches
// the intended radius.
func CircleStrokeThin(w *PixelWriter, cx, cy, r float64) {
	icx := int(math.Floor(cx))
	icy := int(math.Floor(cy))
	offsetX, offsetY := 0, 0
	if cx != math.Trunc(cx) {
		offsetX = 1
	}
	if cy != math.Trunc(cy) {
		offsetY = 1
	}

	ir := int(math.Round(r))
	x, y := ir, 0
	err := 1 - ir

	var seen map[[2]int]bool
	if !w.Opaque {
		seen = make(map[[2]int]bool, 8*ir)
	}

	plot := func(px, py int) {
		if seen != nil {
			w.putOnce(px, py, seen)
		} else {
			w.put(px, py)
		}
	}

	for x >= y {
		plot(icx+x, icy+y+offsetY)
		plot(icx+y, icy+x+offsetY)
		plot(icx-y+offsetX, icy+x+offsetY)
		plot(icx-x+offsetX, icy+y+offsetY)
		plot(icx-x+offsetX, icy-y)
		plot(icx-y+offsetX, icy-x)
		plot(icx+y, icy-x)
		plot(icx+x, icy-y)

		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}

// CircleFill rasterizes a filled circle via Bresenham extents mirrored
// across the horizontal diameter, spec §4.4.2.
func CircleFill(w *PixelWriter, cx, cy, r float64) {
	gridCentered := cx == math.Trunc(cx) && cy == math.Trunc(cy)
	icx, icy := int(math.Floor(cx)), int(math.Floor(cy))
	ir := int(math.Floor(r))

	for k := 0; k <= ir; k++ {
		dy := float64(k)
		if gridCentered {
			dy += 0.5
		}
		if dy > r {
			continue
		}
		extent := math.Sqrt(r*r - dy*dy)

		if gridCentered {
			if k == ir {
				continue
			}
			xLo := icx - int(math.Floor(extent+0.5))
			xHi := icx + int(math.Floor(extent+0.5)) - 1
			w.span(xLo, xHi, icy+k)
			w.span(xLo, xHi, icy-k-1)
		} else {
			ext := int(math.Floor(extent))
			xLo := icx - ext
			xHi := icx + ext
			w.span(xLo, xHi, icy+k)
			if k != 0 {
				w.span(xLo, xHi, icy-k)
			}
		}
	}
}

// CircleStrokeThick rasterizes an annulus between r-w/2 and r+w/2, spec
// §4.4.3.
func CircleStrokeThick(w *PixelWriter, cx, cy, r, width float64) {
	rOuter := r + width/2
	rInner := r - width/2
	if rInner < 0 {
		rInner = 0
	}
	yTop := int(math.Floor(cy - rOuter - 1))
	yBottom := int(math.Ceil(cy + rOuter + 1))

	for y := yTop; y <= yBottom; y++ {
		dy := float64(y) - cy
		if math.Abs(dy) > rOuter {
			continue
		}
		outerHalf := math.Sqrt(rOuter*rOuter - dy*dy)
		xOuterLo := cx - outerHalf
		xOuterHi := cx + outerHalf

		if math.Abs(dy) >= rInner {
			w.span(int(math.Round(xOuterLo)), int(math.Round(xOuterHi)), y)
			continue
		}
		innerHalf := math.Sqrt(rInner*rInner - dy*dy)
		xInnerLo := cx - innerHalf
		xInnerHi := cx + innerHalf
		w.span(int(math.Round(xOuterLo)), int(math.Round(xInnerLo)), y)
		w.span(int(math.Round(xInnerHi)), int(math.Round(xOuterHi)), y)
	}
}

// RectFill fills an axis-aligned rectangle, spec §4.4.4.
func RectFill(w *PixelWriter, x, y, width, height float64) {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	x1 := int(math.Ceil(x + width))
	y1 := int(math.Ceil(y + height))
	for py := y0; py < y1; py++ {
		w.span(x0, x1-1, py)
	}
}

// RectStroke1px draws a 1-pixel rectangle outline, corners counted once.
func RectStroke1px(w *PixelWriter, x, y, width, height float64) {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	x1 := int(math.Ceil(x+width)) - 1
	y1 := int(math.Ceil(y+height)) - 1

	w.span(x0, x1, y0)
	w.span(x0, x1, y1)
	for py := y0 + 1; py < y1; py++ {
		w.put(x0, py)
		w.put(x1, py)
	}
}

// RectStrokeThick paints the outer-to-inner band on each of the four
// sides, using floor-rounded pixel coordinates.
func RectStrokeThick(w *PixelWriter, x, y, width, height, lineWidth float64) {
	half := lineWidth / 2
	outerX0 := int(math.Floor(x - half))
	outerY0 := int(math.Floor(y - half))
	outerX1 := int(math.Floor(x + width + half))
	outerY1 := int(math.Floor(y + height + half))
	innerX0 := int(math.Floor(x + half))
	innerY0 := int(math.Floor(y + half))
	innerX1 := int(math.Floor(x + width - half))
	innerY1 := int(math.Floor(y + height - half))

	for py := outerY0; py <= outerY1; py++ {
		if py < innerY0 || py > innerY1 {
			w.span(outerX0, outerX1, py)
			continue
		}
		w.span(outerX0, innerX0, py)
		w.span(innerX1, outerX1, py)
	}
}

// RectFillAndStroke fuses a fill and a stroke into one scanline pass, spec
// §4.4.7. For an opaque stroke the fill interior stops at the inner extent
// so the stroke overwrites the overlap exactly once; for a translucent
// stroke the fill covers the full extent so the stroke blends over a
// consistent base.
func RectFillAndStroke(fillW, strokeW *PixelWriter, x, y, width, height, lineWidth float64) {
	if strokeW.Opaque {
		half := lineWidth / 2
		RectFill(fillW, x+half, y+half, width-lineWidth, height-lineWidth)
	} else {
		RectFill(fillW, x, y, width, height)
	}
	RectStrokeThick(strokeW, x, y, width, height, lineWidth)
}

// QuadFill scanline-fills an arbitrary (possibly rotated) quadrilateral,
// spec §4.4.5, reusing the half-open scanline rule.
func QuadFill(w *PixelWriter, quad [4]Point) {
	yMin, yMax := quad[0].Y, quad[0].Y
	for _, p := range quad[1:] {
		if p.Y < yMin {
			yMin = p.Y
		}
		if p.Y > yMax {
			yMax = p.Y
		}
	}
	y0 := int(math.Floor(yMin))
	y1 := int(math.Ceil(yMax))
	if y0 < 0 {
		y0 = 0
	}
	if y1 > w.Surface.Height()-1 {
		y1 = w.Surface.Height() - 1
	}

	for y := y0; y <= y1; y++ {
		scanY := float64(y) + 0.5
		var xs []float64
		for i := 0; i < 4; i++ {
			p0 := quad[i]
			p1 := quad[(i+1)%4]
			lo, hi := p0.Y, p1.Y
			if lo > hi {
				lo, hi = hi, lo
			}
			if scanY < lo || scanY >= hi || math.Abs(p1.Y-p0.Y) < epsilon {
				continue
			}
			t := (scanY - p0.Y) / (p1.Y - p0.Y)
			xs = append(xs, p0.X+t*(p1.X-p0.X))
		}
		if len(xs) < 2 {
			continue
		}
		lo, hi := xs[0], xs[0]
		for _, x := range xs[1:] {
			if x < lo {
				lo = x
			}
			if x > hi {
				hi = x
			}
		}
		w.span(int(math.Ceil(lo)), int(math.Floor(hi)), y)
	}
}

// ThickLine converts a line segment plus half-width into a quadrilateral
// and fills it, spec §4.4.6. A degenerate (zero-length) line fills a
// w-by-w square centered on the endpoint instead.
func ThickLine(w *PixelWriter, x1, y1, x2, y2, lineWidth float64) {
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	half := lineWidth / 2

	if length < epsilon {
		RectFill(w, x1-half, y1-half, lineWidth, lineWidth)
		return
	}

	nx, ny := -dy/length*half, dx/length*half
	quad := [4]Point{
		{X: x1 + nx, Y: y1 + ny},
		{X: x2 + nx, Y: y2 + ny},
		{X: x2 - nx, Y: y2 - ny},
		{X: x1 - nx, Y: y1 - ny},
	}
	QuadFill(w, quad)
}
