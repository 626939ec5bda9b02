// Package rasterx provides a CPU-only 2D raster graphics engine with an
// immediate-mode drawing API in the style of HTML Canvas.
//
// # Overview
//
// rasterx is a Pure Go 2D rasterizer: it takes recorded path commands,
// stroke attributes, and paint sources (solid colors, gradients, image
// patterns) and scanline-fills them into a Surface, a plain RGBA pixel
// buffer. There is no GPU path and no font rasterization; anti-aliasing is
// limited to the 0.5-pixel-center coverage rule the scanline filler
// already applies.
//
// # Quick Start
//
//	import "github.com/gogpu/rasterx"
//
//	c, _ := rasterx.NewCanvas(512, 512)
//	c.SetFillStyle(rasterx.SolidColor{Color: rasterx.RGB(255, 0, 0)})
//	c.MoveTo(156, 256)
//	c.ArcTo(256, 156, 356, 256, 100)
//	c.Fill(rasterx.FillRuleNonZero)
//	c.Surface().SavePNG("output.png")
//
// # Architecture
//
// The library is organized into:
//   - Public API: Rasterizer (the core façade, spec-level drawing ops),
//     Canvas (a thin save/restore + path-recording convenience layer),
//     Path, Paint, Matrix, Point, Surface.
//   - Internal: raster (scanline filler + primitive rasterizers), path
//     (Bezier/arc flattening), stroke (outline generation), clip (the
//     persisted clip-mask stack), cache (flatten-result memoization),
//     color (sRGB/linear conversions for gradient interpolation).
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increasing clockwise in device space
package rasterx
