package rasterx

// Canvas is a thin Context-style convenience layer over Rasterizer: it owns
// the transform/clip save stack and a recorded current path, mirroring the
// teacher's Context, but holds no rasterization logic of its own — every
// draw call opens a Rasterizer op and immediately delegates to it.
type Canvas struct {
	r *Rasterizer

	transform      Matrix
	transformStack []Matrix

	path *Path

	fillStyle       Paint
	strokeStyle     StrokeAttributes
	globalAlpha     float64
	subPixelOpacity float64
	composite       CompositeOp
}

// NewCanvas allocates a width x height surface and wraps it in a Canvas
// with an identity transform, no clip, an empty current path, and the
// conventional opaque-black/source-over defaults.
func NewCanvas(width, height int) (*Canvas, error) {
	surface, err := NewSurface(width, height)
	if err != nil {
		return nil, err
	}
	return &Canvas{
		r:               NewRasterizer(surface),
		transform:       Identity(),
		path:            NewPath(),
		fillStyle:       SolidColor{Color: Black},
		strokeStyle:     DefaultStrokeAttributes(),
		globalAlpha:     1,
		subPixelOpacity: 1,
		composite:       CompositeSourceOver,
	}, nil
}

// Surface returns the backing pixel buffer.
func (c *Canvas) Surface() *Surface { return c.r.Surface() }

// Save pushes the current transform and clip mask.
func (c *Canvas) Save() {
	c.transformStack = append(c.transformStack, c.transform)
	c.r.Save()
}

// Restore pops the most recently saved transform and clip mask. A restore
// with nothing saved is a no-op.
func (c *Canvas) Restore() {
	if n := len(c.transformStack); n > 0 {
		c.transform = c.transformStack[n-1]
		c.transformStack = c.transformStack[:n-1]
	}
	c.r.Restore()
}

// Translate, Scale, and Rotate post-multiply the current transform, in the
// Canvas-API convention where later calls apply closer to the drawn shape.
func (c *Canvas) Translate(x, y float64) { c.transform = c.transform.Multiply(Translate(x, y)) }
func (c *Canvas) Scale(x, y float64)     { c.transform = c.transform.Multiply(Scale(x, y)) }
func (c *Canvas) Rotate(angle float64)   { c.transform = c.transform.Multiply(Rotate(angle)) }

// SetTransform replaces the current transform outright.
func (c *Canvas) SetTransform(m Matrix) { c.transform = m }

// Transform returns the current transform.
func (c *Canvas) Transform() Matrix { return c.transform }

// SetFillStyle sets the paint used by Fill and by Stroke (stroke geometry is
// painted with the fill style). FillRect paints with its color argument.
func (c *Canvas) SetFillStyle(p Paint) { c.fillStyle = p }

// SetStrokeStyle sets the attributes used by Stroke.
func (c *Canvas) SetStrokeStyle(attrs StrokeAttributes) { c.strokeStyle = attrs }

// SetGlobalAlpha sets the per-op opacity multiplier applied on top of each
// drawn color's own alpha.
func (c *Canvas) SetGlobalAlpha(a float64) { c.globalAlpha = a }

// SetComposite sets the Porter-Duff operator subsequent draws blend
// through.
func (c *Canvas) SetComposite(op CompositeOp) { c.composite = op }

// BeginPath discards the current path, starting a new empty one.
func (c *Canvas) BeginPath() { c.path = NewPath() }

// MoveTo, LineTo, QuadraticTo, CubicTo, ArcTo, and ClosePath record onto
// the current path in user space; the transform is applied when the path
// is finally flattened for drawing, not at record time.
func (c *Canvas) MoveTo(x, y float64)      { c.path.MoveTo(x, y) }
func (c *Canvas) LineTo(x, y float64)      { c.path.LineTo(x, y) }
func (c *Canvas) ClosePath()               { c.path.Close() }
func (c *Canvas) QuadraticTo(cx, cy, x, y float64) {
	c.path.QuadraticTo(cx, cy, x, y)
}
func (c *Canvas) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	c.path.CubicTo(c1x, c1y, c2x, c2y, x, y)
}
func (c *Canvas) ArcTo(x1, y1, x2, y2, r float64) { c.path.ArcTo(x1, y1, x2, y2, r) }

// Path returns the current recorded path.
func (c *Canvas) Path() *Path { return c.path }

func (c *Canvas) opParams() OpParams {
	return OpParams{
		Composite:       c.composite,
		GlobalAlpha:     c.globalAlpha,
		SubPixelOpacity: c.subPixelOpacity,
		Transform:       c.transform,
		FillStyle:       c.fillStyle,
		StrokeStyle:     c.strokeStyle,
	}
}

// Fill fills the current path under rule using the active fill style.
func (c *Canvas) Fill(rule FillRule) error {
	c.r.BeginOp(c.opParams())
	defer c.r.EndOp()
	return c.r.Fill(c.path, rule)
}

// Stroke strokes the current path using the active stroke style.
func (c *Canvas) Stroke() error {
	c.r.BeginOp(c.opParams())
	defer c.r.EndOp()
	return c.r.Stroke(c.path, c.strokeStyle)
}

// Clip intersects the persisted clip mask with the current path under
// rule.
func (c *Canvas) Clip(rule FillRule) error {
	c.r.BeginOp(c.opParams())
	defer c.r.EndOp()
	return c.r.Clip(c.path, rule)
}

// FillRect fills an axis-aligned rectangle in user space with color.
func (c *Canvas) FillRect(x, y, w, h float64, color Color) error {
	c.r.BeginOp(c.opParams())
	defer c.r.EndOp()
	return c.r.FillRect(x, y, w, h, color)
}
