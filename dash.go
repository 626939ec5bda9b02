package rasterx

import "math"

// DashPattern defines a dash pattern for stroking: alternating dash and gap
// lengths, plus a starting offset into the pattern.
type DashPattern struct {
	// Array contains alternating dash/gap lengths. If the array has an odd
	// number of elements, it is logically duplicated to create an
	// even-length pattern (e.g., [5] becomes [5, 5]).
	Array []float64

	// Offset is the starting offset into the pattern.
	Offset float64
}

// NewDash creates a dash pattern from alternating dash/gap lengths.
// Returns nil if no lengths are provided or all lengths are zero or negative.
func NewDash(lengths ...float64) *DashPattern {
	if len(lengths) == 0 {
		return nil
	}

	allZeroOrNeg := true
	for _, l := range lengths {
		if l > 0 {
			allZeroOrNeg = false
			break
		}
	}
	if allZeroOrNeg {
		return nil
	}

	normalized := make([]float64, len(lengths))
	for i, l := range lengths {
		normalized[i] = math.Abs(l)
	}

	return &DashPattern{Array: normalized}
}

// WithOffset returns a new DashPattern with the given offset.
func (d *DashPattern) WithOffset(offset float64) *DashPattern {
	if d == nil {
		return nil
	}
	return &DashPattern{Array: d.Array, Offset: offset}
}

// PatternLength returns the total length of one complete pattern cycle.
func (d *DashPattern) PatternLength() float64 {
	if d == nil || len(d.Array) == 0 {
		return 0
	}
	var total float64
	for _, l := range d.Array {
		total += l
	}
	if len(d.Array)%2 != 0 {
		total *= 2
	}
	return total
}

// IsDashed reports whether this represents an active (non-solid) pattern.
func (d *DashPattern) IsDashed() bool {
	if d == nil || len(d.Array) == 0 {
		return false
	}
	for _, l := range d.Array {
		if l > 0 {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the pattern.
func (d *DashPattern) Clone() *DashPattern {
	if d == nil {
		return nil
	}
	arrayCopy := make([]float64, len(d.Array))
	copy(arrayCopy, d.Array)
	return &DashPattern{Array: arrayCopy, Offset: d.Offset}
}

func (d *DashPattern) effectiveArray() []float64 {
	if d == nil || len(d.Array) == 0 {
		return nil
	}
	if len(d.Array)%2 == 0 {
		return d.Array
	}
	result := make([]float64, len(d.Array)*2)
	copy(result, d.Array)
	copy(result[len(d.Array):], d.Array)
	return result
}

// NormalizedOffset returns the offset normalized to lie within one pattern
// cycle.
func (d *DashPattern) NormalizedOffset() float64 {
	if d == nil {
		return 0
	}
	patternLen := d.PatternLength()
	if patternLen <= 0 {
		return 0
	}
	offset := math.Mod(d.Offset, patternLen)
	if offset < 0 {
		offset += patternLen
	}
	return offset
}

// Scale returns a new DashPattern with all lengths multiplied by factor,
// used to keep dash lengths in user-space units consistent under a
// coordinate transform.
func (d *DashPattern) Scale(factor float64) *DashPattern {
	if d == nil || factor <= 0 {
		return d
	}
	scaledArray := make([]float64, len(d.Array))
	for i, l := range d.Array {
		scaledArray[i] = l * factor
	}
	return &DashPattern{Array: scaledArray, Offset: d.Offset * factor}
}

// applyDash walks poly's perimeter and splits it into the "on" runs defined
// by dash, returning each run as its own open polyline ready for the
// segment/join/cap stroke machinery.
func applyDash(poly Polygon, dash *DashPattern) []Polygon {
	pattern := dash.effectiveArray()
	if len(pattern) == 0 || len(poly) < 2 {
		return []Polygon{poly}
	}

	patternLen := dash.PatternLength()
	pos := math.Mod(dash.Offset, patternLen)
	if pos < 0 {
		pos += patternLen
	}

	idx := 0
	for pos >= pattern[idx] {
		pos -= pattern[idx]
		idx = (idx + 1) % len(pattern)
	}
	on := idx%2 == 0
	remaining := pattern[idx] - pos

	var runs []Polygon
	var current Polygon
	if on {
		current = Polygon{poly[0]}
	}

	for i := 0; i < len(poly)-1; i++ {
		p0, p1 := poly[i], poly[i+1]
		segLen := p0.Distance(p1)
		segPos := 0.0

		for segLen-segPos > remaining {
			segPos += remaining
			t := segPos / segLen
			cut := p0.Lerp(p1, t)
			if on {
				current = append(current, cut)
				runs = append(runs, current)
				current = nil
			} else {
				current = Polygon{cut}
			}
			on = !on
			idx = (idx + 1) % len(pattern)
			remaining = pattern[idx]
		}

		remaining -= segLen - segPos
		if on {
			current = append(current, p1)
		}
	}

	if on && len(current) >= 2 {
		runs = append(runs, current)
	}
	return runs
}
