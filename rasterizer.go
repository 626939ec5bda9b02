package rasterx

import (
	"math"

	"github.com/gogpu/rasterx/internal/clip"
	"github.com/gogpu/rasterx/internal/raster"
)

// CompositeOp selects the Porter-Duff operator a drawing op blends through.
type CompositeOp int

const (
	// CompositeSourceOver is the default operator: source over destination.
	CompositeSourceOver CompositeOp = iota
	// CompositeCopy replaces the destination with the source outright.
	CompositeCopy
	// CompositeDestinationIn keeps the destination only where the source
	// also covers, scaling destination alpha by source alpha.
	CompositeDestinationIn
	// CompositeXor keeps either source or destination where exactly one of
	// the two covers a pixel.
	CompositeXor
)

func toInternalComposite(op CompositeOp) raster.CompositeOp {
	switch op {
	case CompositeCopy:
		return raster.CompositeCopy
	case CompositeDestinationIn:
		return raster.CompositeDestinationIn
	case CompositeXor:
		return raster.CompositeXor
	default:
		return raster.CompositeSourceOver
	}
}

func toInternalFillRule(r FillRule) raster.FillRule {
	if r == FillRuleEvenOdd {
		return raster.FillRuleEvenOdd
	}
	return raster.FillRuleNonZero
}

// OpParams bundles the parameters bracketed by BeginOp/EndOp (spec §6).
type OpParams struct {
	Composite       CompositeOp
	GlobalAlpha     float64
	SubPixelOpacity float64
	Transform       Matrix
	FillStyle       Paint
	StrokeStyle     StrokeAttributes

	// SourceMask, when set, diverts every covered pixel into the mask
	// instead of touching the surface, for a subsequent canvas-wide
	// composite pass (spec §9's source-mask tracking note).
	SourceMask *SourceMask
}

// DefaultOpParams returns the conventional identity/opaque/source-over op:
// full opacity, identity transform, solid black fill, default stroke.
func DefaultOpParams() OpParams {
	return OpParams{
		Composite:       CompositeSourceOver,
		GlobalAlpha:     1,
		SubPixelOpacity: 1,
		Transform:       Identity(),
		FillStyle:       SolidColor{Color: Black},
		StrokeStyle:     DefaultStrokeAttributes(),
	}
}

// Rasterizer is the core drawing façade (spec §6): a Surface plus the
// persisted clip stack, consuming the paint/stroke parameters of the
// currently bracketed op. A Canvas-compatible layer owns transform/clip
// bookkeeping above this and calls BeginOp once per drawing command.
type Rasterizer struct {
	surface *Surface
	clip    *clip.Stack
	active  bool
	op      OpParams
}

// NewRasterizer creates a Rasterizer writing into surface, with an empty
// (fully visible) clip stack.
func NewRasterizer(surface *Surface) *Rasterizer {
	return &Rasterizer{surface: surface, clip: clip.NewStack()}
}

// Surface returns the backing pixel buffer.
func (r *Rasterizer) Surface() *Surface { return r.surface }

// BeginOp opens a drawing call with the given parameters. Every draw
// primitive below requires an open op; calling one without it returns
// ErrMissingBeginOp.
func (r *Rasterizer) BeginOp(p OpParams) {
	r.op = p
	r.active = true
}

// EndOp closes the current drawing call.
func (r *Rasterizer) EndOp() {
	r.active = false
}

// Save pushes a copy of the current clip mask.
func (r *Rasterizer) Save() { r.clip.Save() }

// Restore pops the most recently saved clip mask.
func (r *Rasterizer) Restore() { r.clip.Restore() }

// ClipDepth reports the current save/restore nesting depth.
func (r *Rasterizer) ClipDepth() int { return r.clip.Depth() }

func sourceMaskInterface(m *SourceMask) raster.SourceMask {
	if m == nil {
		return nil
	}
	return m
}

// clipMaskInterface converts a possibly-nil *clip.ClipMask into the
// raster.ClipMask interface, returning a literal nil interface (not a
// non-nil interface wrapping a nil pointer) when no clip is active — the
// filler and PixelWriter both test their Clip field against nil to mean
// "fully visible".
func clipMaskInterface(m *clip.ClipMask) raster.ClipMask {
	if m == nil {
		return nil
	}
	return m
}

func toRasterPolygons(polys []Polygon) [][]raster.Point {
	out := make([][]raster.Point, len(polys))
	for i, poly := range polys {
		pts := make([]raster.Point, len(poly))
		for j, pt := range poly {
			pts[j] = raster.Point{X: pt.X, Y: pt.Y}
		}
		out[i] = pts
	}
	return out
}

func toRasterColor(c Color) raster.Color {
	return raster.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// opacityAdjusted applies GlobalAlpha and SubPixelOpacity to a solid color
// ahead of a fast-path primitive write, matching applyOpacity's formula in
// the generic filler (spec §4.3): new_a = round(a * globalAlpha * subPixelOpacity).
func (r *Rasterizer) opacityAdjusted(c Color) Color {
	a := float64(c.A) * r.op.GlobalAlpha
	a = math.Round(a * r.op.SubPixelOpacity)
	return Color{R: c.R, G: c.G, B: c.B, A: clampByte(a)}
}

// paintAdapter bridges the root Paint interface (transform-aware) to the
// internal/raster package's Paint interface (already in device space) by
// closing over the op's active transform.
type paintAdapter struct {
	paint     Paint
	transform Matrix
}

func (a paintAdapter) Evaluate(x, y float64) raster.Color {
	return toRasterColor(a.paint.Evaluate(x, y, a.transform))
}

func (a paintAdapter) Solid() (raster.Color, bool) {
	c, ok := solidColor(a.paint)
	return toRasterColor(c), ok
}

// surfaceAdapter bridges Surface to internal/raster.Surface, converting
// between the root and internal Color types at each call.
type surfaceAdapter struct{ s *Surface }

func (sa surfaceAdapter) Width() int  { return sa.s.Width() }
func (sa surfaceAdapter) Height() int { return sa.s.Height() }
func (sa surfaceAdapter) GetPixel(x, y int) raster.Color {
	return toRasterColor(sa.s.GetPixel(x, y))
}
func (sa surfaceAdapter) SetPixel(x, y int, c raster.Color) {
	sa.s.SetPixel(x, y, Color{R: c.R, G: c.G, B: c.B, A: c.A})
}
func (sa surfaceAdapter) WordAt(x, y int) uint32     { return sa.s.WordAt(x, y) }
func (sa surfaceAdapter) SetWord(x, y int, w uint32) { sa.s.SetWord(x, y, w) }
func (sa surfaceAdapter) FillSpan(x1, x2, y int, c raster.Color) {
	sa.s.FillSpan(x1, x2, y, Color{R: c.R, G: c.G, B: c.B, A: c.A})
}

// opaqueConstPaint is the paint source Clip fills its scratch mask with: a
// flat fully-opaque color, so the scanline filler's fast path marks every
// covered pixel visible regardless of the shape's actual paint.
type opaqueConstPaint struct{}

func (opaqueConstPaint) Evaluate(x, y float64) raster.Color { return raster.Color{A: 255} }
func (opaqueConstPaint) Solid() (raster.Color, bool)        { return raster.Color{A: 255}, true }

// maskFillSurface adapts a clip mask as a raster.Surface, so the clip path
// can be rasterized with the exact same scanline filler used for ordinary
// fills (spec §4.5's clip-via-fill design).
type maskFillSurface struct{ mask *clip.ClipMask }

func (m maskFillSurface) Width() int  { return m.mask.Width() }
func (m maskFillSurface) Height() int { return m.mask.Height() }

func (m maskFillSurface) GetPixel(x, y int) raster.Color {
	if m.mask.Get(x, y) {
		return raster.Color{A: 255}
	}
	return raster.Color{}
}

func (m maskFillSurface) SetPixel(x, y int, c raster.Color) {
	m.mask.Set(x, y, c.A > 0)
}

func (m maskFillSurface) WordAt(x, y int) uint32 {
	if m.mask.Get(x, y) {
		return 0xFFFFFFFF
	}
	return 0
}

func (m maskFillSurface) SetWord(x, y int, w uint32) {
	m.mask.Set(x, y, w != 0)
}

func (m maskFillSurface) FillSpan(x1, x2, y int, c raster.Color) {
	visible := c.A > 0
	for x := x1; x < x2; x++ {
		m.mask.Set(x, y, visible)
	}
}

func (r *Rasterizer) fillParams(paint Paint, rule FillRule) raster.FillParams {
	return raster.FillParams{
		Paint:           paintAdapter{paint: paint, transform: r.op.Transform},
		FillRule:        toInternalFillRule(rule),
		Clip:            clipMaskInterface(r.clip.Current()),
		GlobalAlpha:     r.op.GlobalAlpha,
		SubPixelOpacity: r.op.SubPixelOpacity,
		Composite:       toInternalComposite(r.op.Composite),
		SourceMask:      sourceMaskInterface(r.op.SourceMask),
	}
}

// fillDevicePolygons runs the scanline filler (spec §4.3) over polygons
// already mapped into device space.
func (r *Rasterizer) fillDevicePolygons(polys []Polygon, rule FillRule, paint Paint) {
	raster.Fill(surfaceAdapter{r.surface}, toRasterPolygons(polys), r.fillParams(paint, rule))
}

// fastPathEligible reports whether the current op can use a direct
// PixelWriter primitive instead of the general filler: identity transform,
// plain source-over compositing, and no canvas-wide source-mask capture.
func (r *Rasterizer) fastPathEligible() bool {
	return r.op.Transform.IsIdentity() && r.op.Composite == CompositeSourceOver && r.op.SourceMask == nil
}

func (r *Rasterizer) pixelWriter(c Color) *raster.PixelWriter {
	return raster.NewPixelWriter(surfaceAdapter{r.surface}, clipMaskInterface(r.clip.Current()), toRasterColor(r.opacityAdjusted(c)))
}

// Fill rasterizes path under rule using the op's FillStyle (spec §6's
// `fill`).
func (r *Rasterizer) Fill(path *Path, rule FillRule) error {
	if !r.active {
		return ErrMissingBeginOp
	}
	polys := FlattenCached(path, r.op.Transform)
	r.fillDevicePolygons(polys, rule, r.op.FillStyle)
	return nil
}

// FillRect fills an axis-aligned rectangle with color (spec §6's
// `fill_rect`), using the direct §4.4.4 routine when the op's transform is
// identity and compositing is plain source-over, otherwise flattening to a
// polygon and routing through the general filler.
func (r *Rasterizer) FillRect(x, y, w, h float64, color Color) error {
	if !r.active {
		return ErrMissingBeginOp
	}
	if r.fastPathEligible() {
		raster.RectFill(r.pixelWriter(color), x, y, w, h)
		return nil
	}
	path := NewPath()
	path.RectOp(x, y, w, h)
	polys := FlattenCached(path, r.op.Transform)
	r.fillDevicePolygons(polys, FillRuleNonZero, SolidColor{Color: color})
	return nil
}

// Stroke runs the stroke generator (spec §4.2) then the filler over path
// using attrs and the op's FillStyle as the stroke color source (spec §6's
// `stroke`).
func (r *Rasterizer) Stroke(path *Path, attrs StrokeAttributes) error {
	if !r.active {
		return ErrMissingBeginOp
	}
	flattened := FlattenCached(path, r.op.Transform)
	strokePolys := GenerateStroke(flattened, attrs)
	r.fillDevicePolygons(strokePolys, FillRuleNonZero, r.op.FillStyle)
	return nil
}

// Clip installs path as the new clip (spec §4.5): a scratch mask is filled
// via the same scanline filler, then intersected into the persisted stack
// so clipping only ever shrinks the visible region within a save/restore
// scope.
func (r *Rasterizer) Clip(path *Path, rule FillRule) error {
	if !r.active {
		return ErrMissingBeginOp
	}
	polys := FlattenCached(path, r.op.Transform)
	scratch := clip.NewEmptyClipMask(r.surface.Width(), r.surface.Height())
	raster.Fill(maskFillSurface{mask: scratch}, toRasterPolygons(polys), raster.FillParams{
		Paint:           opaqueConstPaint{},
		FillRule:        toInternalFillRule(rule),
		GlobalAlpha:     1,
		SubPixelOpacity: 1,
		Composite:       raster.CompositeSourceOver,
	})
	r.clip.Intersect(scratch)
	return nil
}

// FillCircle fills a circle (spec §4.4.2) with the given color.
func (r *Rasterizer) FillCircle(cx, cy, radius float64, color Color) error {
	if !r.active {
		return ErrMissingBeginOp
	}
	raster.CircleFill(r.pixelWriter(color), cx, cy, radius)
	return nil
}

// StrokeCircle strokes a circle outline (spec §4.4.1/§4.4.3): a 1-pixel
// Bresenham ring when lineWidth <= 1, otherwise an annulus.
func (r *Rasterizer) StrokeCircle(cx, cy, radius, lineWidth float64, color Color) error {
	if !r.active {
		return ErrMissingBeginOp
	}
	w := r.pixelWriter(color)
	if lineWidth <= 1 {
		raster.CircleStrokeThin(w, cx, cy, radius)
	} else {
		raster.CircleStrokeThick(w, cx, cy, radius, lineWidth)
	}
	return nil
}

// FillRectAA fills an axis-aligned rectangle directly via §4.4.4 ("AA"
// here means axis-aligned, not anti-aliased — this engine has no
// anti-aliasing beyond 0.5 coverage thresholding).
func (r *Rasterizer) FillRectAA(x, y, w, h float64, color Color) error {
	if !r.active {
		return ErrMissingBeginOp
	}
	raster.RectFill(r.pixelWriter(color), x, y, w, h)
	return nil
}

// StrokeRectAA strokes an axis-aligned rectangle directly via §4.4.4: a
// 1-pixel corners-once outline when lineWidth <= 1, otherwise an
// outer-to-inner band.
func (r *Rasterizer) StrokeRectAA(x, y, w, h, lineWidth float64, color Color) error {
	if !r.active {
		return ErrMissingBeginOp
	}
	writer := r.pixelWriter(color)
	if lineWidth <= 1 {
		raster.RectStroke1px(writer, x, y, w, h)
	} else {
		raster.RectStrokeThick(writer, x, y, w, h, lineWidth)
	}
	return nil
}

// FillAndStrokeRectAA fuses a rectangle fill and stroke into one pass
// (spec §4.4.7).
func (r *Rasterizer) FillAndStrokeRectAA(x, y, w, h, lineWidth float64, fillColor, strokeColor Color) error {
	if !r.active {
		return ErrMissingBeginOp
	}
	raster.RectFillAndStroke(r.pixelWriter(fillColor), r.pixelWriter(strokeColor), x, y, w, h, lineWidth)
	return nil
}

// StrokeLine draws a thick line segment (spec §4.4.6).
func (r *Rasterizer) StrokeLine(x1, y1, x2, y2, lineWidth float64, color Color) error {
	if !r.active {
		return ErrMissingBeginOp
	}
	raster.ThickLine(r.pixelWriter(color), x1, y1, x2, y2, lineWidth)
	return nil
}

// StrokeRectRotated strokes each of the quadrilateral's four edges as a thick
// line (ThickLine, which fills each edge as a quad per spec §4.4.5), for
// rectangles under rotation/skew where §4.4.4's axis-aligned routine does
// not apply.
func (r *Rasterizer) StrokeRectRotated(quad [4]Point, lineWidth float64, color Color) error {
	if !r.active {
		return ErrMissingBeginOp
	}
	writer := r.pixelWriter(color)
	for i := 0; i < 4; i++ {
		p0, p1 := quad[i], quad[(i+1)%4]
		raster.ThickLine(writer, p0.X, p0.Y, p1.X, p1.Y, lineWidth)
	}
	return nil
}

// FillRoundRect fills a rectangle with quarter-circle corners. It builds a
// single closed path (straight edges plus four corner arcs, radius clamped)
// and fills it through the general filler with the op's FillStyle.
func (r *Rasterizer) FillRoundRect(x, y, w, h, radius float64) error {
	if !r.active {
		return ErrMissingBeginOp
	}
	path := roundRectPath(x, y, w, h, radius)
	return r.Fill(path, FillRuleNonZero)
}

// StrokeRoundRect strokes a rounded rectangle outline via the stroke
// generator over the same rounded path FillRoundRect fills.
func (r *Rasterizer) StrokeRoundRect(x, y, w, h, radius float64, attrs StrokeAttributes) error {
	if !r.active {
		return ErrMissingBeginOp
	}
	path := roundRectPath(x, y, w, h, radius)
	return r.Stroke(path, attrs)
}

// roundRectPath builds a closed rounded-rectangle subpath using four
// quarter-circle arcs at the corners, clamping radius to at most half the
// shorter side.
func roundRectPath(x, y, w, h, radius float64) *Path {
	if radius > w/2 {
		radius = w / 2
	}
	if radius > h/2 {
		radius = h / 2
	}
	if radius < 0 {
		radius = 0
	}

	p := NewPath()
	p.MoveTo(x+radius, y)
	p.LineTo(x+w-radius, y)
	p.ArcOp(x+w-radius, y+radius, radius, -math.Pi/2, 0, false)
	p.LineTo(x+w, y+h-radius)
	p.ArcOp(x+w-radius, y+h-radius, radius, 0, math.Pi/2, false)
	p.LineTo(x+radius, y+h)
	p.ArcOp(x+radius, y+h-radius, radius, math.Pi/2, math.Pi, false)
	p.LineTo(x, y+radius)
	p.ArcOp(x+radius, y+radius, radius, math.Pi, 3*math.Pi/2, false)
	p.Close()
	return p
}
