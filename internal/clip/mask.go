package clip

// ClipMask is a 1-bit-per-pixel visibility mask packed into ceil(W*H/8)
// bytes: bit i of byte i/8 corresponds to pixel i = y*W+x, least-significant
// bit first within the byte. Bit 1 means visible, 0 means clipped out.
//
// Width and height are fixed for the life of the mask. Bits beyond the
// first W*H are always 0, including the unused tail of the final byte.
type ClipMask struct {
	width, height int
	bits          []byte
}

// NewClipMask creates a mask for a width x height surface with every pixel
// initially visible.
func NewClipMask(width, height int) *ClipMask {
	n := (width*height + 7) / 8
	m := &ClipMask{width: width, height: height, bits: make([]byte, n)}
	for i := range m.bits {
		m.bits[i] = 0xFF
	}
	m.clearTrailingBits()
	return m
}

// NewEmptyClipMask creates a mask of the same dimensions with every pixel
// initially clipped out, used as the scratch buffer for clip installation.
func NewEmptyClipMask(width, height int) *ClipMask {
	n := (width*height + 7) / 8
	return &ClipMask{width: width, height: height, bits: make([]byte, n)}
}

func (m *ClipMask) clearTrailingBits() {
	total := m.width * m.height
	if total == 0 {
		for i := range m.bits {
			m.bits[i] = 0
		}
		return
	}
	lastByte := (total - 1) / 8
	validBits := total - lastByte*8
	if validBits < 8 {
		m.bits[lastByte] &= byte(1<<uint(validBits)) - 1
	}
}

// Width returns the mask width in pixels.
func (m *ClipMask) Width() int { return m.width }

// Height returns the mask height in pixels.
func (m *ClipMask) Height() int { return m.height }

// Get reports whether pixel (x, y) is visible. Out-of-bounds coordinates
// are never visible.
func (m *ClipMask) Get(x, y int) bool {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return false
	}
	i := y*m.width + x
	return m.bits[i/8]&(1<<uint(i%8)) != 0
}

// Set marks pixel (x, y) visible or not. Out-of-bounds coordinates are
// ignored.
func (m *ClipMask) Set(x, y int, visible bool) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	i := y*m.width + x
	if visible {
		m.bits[i/8] |= 1 << uint(i%8)
	} else {
		m.bits[i/8] &^= 1 << uint(i%8)
	}
}

// Clone returns a deep copy. A nil receiver clones to nil, so Clone can be
// called directly on a possibly-absent clip.
func (m *ClipMask) Clone() *ClipMask {
	if m == nil {
		return nil
	}
	c := &ClipMask{width: m.width, height: m.height, bits: make([]byte, len(m.bits))}
	copy(c.bits, m.bits)
	return c
}

// And intersects other into m in place, byte by byte. Both masks must share
// the same dimensions.
func (m *ClipMask) And(other *ClipMask) {
	for i := range m.bits {
		m.bits[i] &= other.bits[i]
	}
}

// Bytes exposes the packed bit storage, for the filler's fast-path clip
// checks (a clip byte of 0xFF means eight consecutive visible pixels).
func (m *ClipMask) Bytes() []byte { return m.bits }
