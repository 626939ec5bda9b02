package rasterx

import (
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// Surface dimension limits from spec §3: a single dimension may not exceed
// maxSurfaceDimension, and W*H may not exceed maxSurfaceArea. Both are
// checked before any allocation.
const (
	maxSurfaceDimension = 16384
	maxSurfaceArea      = 1 << 28
)

var (
	_ image.Image = (*Surface)(nil)
)

// Surface is the pixel buffer the rasterizer draws into: width W, height H,
// storing W*H pixels in RGBA order, 8 bits per channel, non-premultiplied
// (spec §3). It exposes two aliased views over one backing byte slice: the
// byte view via Bytes, and a 32-bit little-endian ABGR word view via
// WordAt/SetWord — realized as a length-checked reinterpretation through
// encoding/binary rather than unsafe, so fully opaque writes still cost one
// store per pixel.
type Surface struct {
	width, height int
	data          []byte
}

// NewSurface allocates a Surface, returning InvalidSurfaceDimensionsError
// if width/height violate the dimension or area limits.
func NewSurface(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 || width > maxSurfaceDimension || height > maxSurfaceDimension {
		return nil, &InvalidSurfaceDimensionsError{Width: width, Height: height}
	}
	if width*height > maxSurfaceArea {
		return nil, &InvalidSurfaceDimensionsError{Width: width, Height: height}
	}
	return &Surface{width: width, height: height, data: make([]byte, width*height*4)}, nil
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// Stride returns the number of bytes per row (always width*4).
func (s *Surface) Stride() int { return s.width * 4 }

// Bytes exposes the raw backing storage in RGBA byte order.
func (s *Surface) Bytes() []byte { return s.data }

// SetPixel writes a non-premultiplied color at (x, y), ignoring
// out-of-bounds coordinates.
func (s *Surface) SetPixel(x, y int, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	i := (y*s.width + x) * 4
	s.data[i+0] = c.R
	s.data[i+1] = c.G
	s.data[i+2] = c.B
	s.data[i+3] = c.A
}

// GetPixel returns the color at (x, y), or transparent black outside
// bounds.
func (s *Surface) GetPixel(x, y int) Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Transparent
	}
	i := (y*s.width + x) * 4
	return Color{R: s.data[i+0], G: s.data[i+1], B: s.data[i+2], A: s.data[i+3]}
}

// WordAt returns the little-endian ABGR-packed word for pixel (x, y).
func (s *Surface) WordAt(x, y int) uint32 {
	i := (y*s.width + x) * 4
	return binary.LittleEndian.Uint32(s.data[i : i+4])
}

// SetWord writes a pre-packed little-endian ABGR word directly, bypassing
// per-channel stores; used by the filler's opaque fast path.
func (s *Surface) SetWord(x, y int, w uint32) {
	i := (y*s.width + x) * 4
	binary.LittleEndian.PutUint32(s.data[i:i+4], w)
}

// Clear fills the entire surface with a single color.
func (s *Surface) Clear(c Color) {
	w := c.Pack()
	for i := 0; i < len(s.data); i += 4 {
		binary.LittleEndian.PutUint32(s.data[i:i+4], w)
	}
}

// FillSpan fills a horizontal run of pixels [x1, x2) on row y with a solid
// color, no blending. Optimized for long spans via doubling copies, as the
// teacher's pixel buffer does for its own batch fills.
func (s *Surface) FillSpan(x1, x2, y int, c Color) {
	if y < 0 || y >= s.height || x1 >= x2 {
		return
	}
	if x1 < 0 {
		x1 = 0
	}
	if x2 > s.width {
		x2 = s.width
	}
	if x1 >= x2 {
		return
	}

	startIdx := (y*s.width + x1) * 4
	length := x2 - x1

	s.data[startIdx+0] = c.R
	s.data[startIdx+1] = c.G
	s.data[startIdx+2] = c.B
	s.data[startIdx+3] = c.A

	filled := 1
	for filled < length {
		copyLen := filled
		if filled+copyLen > length {
			copyLen = length - filled
		}
		copy(s.data[startIdx+filled*4:], s.data[startIdx:startIdx+copyLen*4])
		filled += copyLen
	}
}

// FillSpanBlend fills a horizontal run of pixels [x1, x2) on row y, source-
// over blending into the existing contents.
func (s *Surface) FillSpanBlend(x1, x2, y int, c Color) {
	if y < 0 || y >= s.height || x1 >= x2 {
		return
	}
	if x1 < 0 {
		x1 = 0
	}
	if x2 > s.width {
		x2 = s.width
	}
	if x1 >= x2 {
		return
	}
	if c.IsOpaque() {
		s.FillSpan(x1, x2, y, c)
		return
	}
	startIdx := (y*s.width + x1) * 4
	for i := startIdx; i < startIdx+(x2-x1)*4; i += 4 {
		dst := Color{R: s.data[i+0], G: s.data[i+1], B: s.data[i+2], A: s.data[i+3]}
		blended := blendSourceOver(c, dst)
		s.data[i+0] = blended.R
		s.data[i+1] = blended.G
		s.data[i+2] = blended.B
		s.data[i+3] = blended.A
	}
}

// At implements image.Image.
func (s *Surface) At(x, y int) color.Color {
	c := s.GetPixel(x, y)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Set implements draw.Image, so a Surface can be a destination for
// standard-library image composition.
func (s *Surface) Set(x, y int, c color.Color) {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	s.SetPixel(x, y, Color{R: nrgba.R, G: nrgba.G, B: nrgba.B, A: nrgba.A})
}

// Bounds implements image.Image.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements image.Image.
func (s *Surface) ColorModel() color.Model {
	return color.NRGBAModel
}

// ToImage copies the surface into a standard image.NRGBA.
func (s *Surface) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, s.data)
	return img
}

// SavePNG encodes the surface as a PNG file at path.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is caller-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, s.ToImage())
}

// DrawImage composites src into the rectangle dst on the surface,
// source-over blending and resampling with a bilinear scaler when dst's
// size differs from src's bounds. This backs ImagePattern's "load a
// reference image at a different resolution than it will be sampled at"
// path, and ad hoc image placement outside the core rasterization pipeline.
func (s *Surface) DrawImage(src image.Image, dst image.Rectangle) {
	draw.BiLinear.Scale(s, dst, src, src.Bounds(), draw.Over, nil)
}

// SurfaceFromImage copies a standard image.Image into a new Surface.
func SurfaceFromImage(img image.Image) (*Surface, error) {
	bounds := img.Bounds()
	s, err := NewSurface(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			nrgba := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			s.SetPixel(x, y, Color{R: nrgba.R, G: nrgba.G, B: nrgba.B, A: nrgba.A})
		}
	}
	return s, nil
}
