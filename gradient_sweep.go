package rasterx

import "math"

// SweepGradient paints an angular (conic) color transition around Center,
// sweeping from StartAngle to EndAngle. Also known as a conic gradient;
// useful for color wheels, pie charts, and radar displays.
//
// Example:
//
//	wheel := rasterx.NewSweepGradient(50, 50, 0).
//	    AddColorStop(0, rasterx.RGB(255, 0, 0)).
//	    AddColorStop(0.5, rasterx.RGB(0, 255, 255)).
//	    AddColorStop(1, rasterx.RGB(255, 0, 0))
type SweepGradient struct {
	nonSolidPaint

	Center     Point       // Center of the sweep
	StartAngle float64     // Start angle in radians
	EndAngle   float64     // End angle in radians
	Stops      []ColorStop // Color stops defining the gradient
	Extend     ExtendMode  // How the gradient extends beyond bounds
}

// NewSweepGradient creates a new sweep gradient centered at (cx, cy).
// startAngle is the angle where the gradient begins (in radians). The
// gradient sweeps a full turn by default.
func NewSweepGradient(cx, cy, startAngle float64) *SweepGradient {
	return &SweepGradient{
		Center:     Point{X: cx, Y: cy},
		StartAngle: startAngle,
		EndAngle:   startAngle + 2*math.Pi,
		Extend:     ExtendPad,
	}
}

// SetEndAngle sets the end angle of the sweep. Returns the gradient for
// method chaining.
func (g *SweepGradient) SetEndAngle(endAngle float64) *SweepGradient {
	g.EndAngle = endAngle
	return g
}

// AddColorStop adds a color stop at the specified offset, typically in
// [0, 1]. Returns the gradient for method chaining.
func (g *SweepGradient) AddColorStop(offset float64, c Color) *SweepGradient {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// SetExtend sets the extend mode for the gradient. Returns the gradient
// for method chaining.
func (g *SweepGradient) SetExtend(mode ExtendMode) *SweepGradient {
	g.Extend = mode
	return g
}

// Evaluate implements Paint.
func (g *SweepGradient) Evaluate(x, y float64, transform Matrix) Color {
	p := paintSpacePoint(x, y, transform)

	dx := p.X - g.Center.X
	dy := p.Y - g.Center.Y
	if dx == 0 && dy == 0 {
		return firstStopColor(g.Stops)
	}

	angle := math.Atan2(dy, dx)
	t := g.angleToT(angle)

	return colorAtOffset(g.Stops, t, g.Extend)
}

// angleToT converts an angle to a gradient parameter t in [0, 1].
func (g *SweepGradient) angleToT(angle float64) float64 {
	sweepRange := g.EndAngle - g.StartAngle
	if sweepRange == 0 {
		return 0
	}

	relativeAngle := angle - g.StartAngle
	relativeAngle = normalizeAngle(relativeAngle, sweepRange)

	return relativeAngle / sweepRange
}

// normalizeAngle normalizes an angle relative to a sweep direction.
func normalizeAngle(angle float64, sweepRange float64) float64 {
	twoPi := 2 * math.Pi

	if sweepRange > 0 {
		for angle < 0 {
			angle += twoPi
		}
		for angle >= twoPi {
			angle -= twoPi
		}
	} else {
		for angle > 0 {
			angle -= twoPi
		}
		for angle <= -twoPi {
			angle += twoPi
		}
	}

	return angle
}
