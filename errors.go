package rasterx

import (
	"errors"
	"fmt"
)

// ErrMissingBeginOp is returned when a draw primitive is invoked on a
// Rasterizer outside of a BeginOp/EndOp bracket.
var ErrMissingBeginOp = errors.New("rasterx: draw primitive invoked outside BeginOp")

// InvalidSurfaceDimensionsError reports a surface width or height that is
// not a positive integer, or that exceeds the engine's size limits.
type InvalidSurfaceDimensionsError struct {
	Width, Height int
}

func (e *InvalidSurfaceDimensionsError) Error() string {
	return fmt.Sprintf("rasterx: invalid surface dimensions %dx%d", e.Width, e.Height)
}

// NonInvertibleTransformError reports a Matrix whose determinant's
// magnitude fell below the invertibility threshold.
type NonInvertibleTransformError struct {
	Determinant float64
}

func (e *NonInvertibleTransformError) Error() string {
	return fmt.Sprintf("rasterx: matrix is not invertible (det=%g)", e.Determinant)
}

// InvalidPaintSourceError reports a paint value that is neither a solid
// color, a gradient, nor a pattern.
type InvalidPaintSourceError struct {
	Got any
}

func (e *InvalidPaintSourceError) Error() string {
	return fmt.Sprintf("rasterx: invalid paint source %T", e.Got)
}
