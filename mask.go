package rasterx

import "github.com/gogpu/rasterx/internal/clip"

// SourceMask tracks which pixels a canvas-wide compositing operation wrote,
// using the same 1-bit-per-pixel packed layout as the clip mask (spec §3's
// Source Coverage Mask), but initialized to all-0 rather than all-1. It
// additionally carries an integer bounding box of the pixels touched so far,
// so a canvas-wide composite operator can limit its second pass to the
// region that was actually drawn.
type SourceMask struct {
	bits          *clip.ClipMask
	minX, minY    int
	maxX, maxY    int
	empty         bool
}

// NewSourceMask creates an empty (all-clear) source mask for a width x
// height surface.
func NewSourceMask(width, height int) *SourceMask {
	return &SourceMask{bits: clip.NewEmptyClipMask(width, height), empty: true}
}

// Width returns the mask width.
func (m *SourceMask) Width() int { return m.bits.Width() }

// Height returns the mask height.
func (m *SourceMask) Height() int { return m.bits.Height() }

// Set records that (x, y) was written by the current operation, growing the
// bounding box. Out-of-bounds coordinates are ignored.
func (m *SourceMask) Set(x, y int) {
	if x < 0 || x >= m.bits.Width() || y < 0 || y >= m.bits.Height() {
		return
	}
	m.bits.Set(x, y, true)
	if m.empty {
		m.minX, m.maxX, m.minY, m.maxY = x, x, y, y
		m.empty = false
		return
	}
	if x < m.minX {
		m.minX = x
	}
	if x > m.maxX {
		m.maxX = x
	}
	if y < m.minY {
		m.minY = y
	}
	if y > m.maxY {
		m.maxY = y
	}
}

// Get reports whether (x, y) was recorded as written.
func (m *SourceMask) Get(x, y int) bool {
	return m.bits.Get(x, y)
}

// Bounds reports the integer bounding box of pixels written so far. ok is
// false if nothing has been written.
func (m *SourceMask) Bounds() (minX, minY, maxX, maxY int, ok bool) {
	return m.minX, m.minY, m.maxX, m.maxY, !m.empty
}

// Clear resets the mask and bounding box to empty, without shrinking the
// underlying allocation.
func (m *SourceMask) Clear() {
	m.bits = clip.NewEmptyClipMask(m.bits.Width(), m.bits.Height())
	m.minX, m.minY, m.maxX, m.maxY = 0, 0, 0, 0
	m.empty = true
}
