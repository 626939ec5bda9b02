package rasterx

import "math"

// invertEpsilon is the minimum |determinant| below which a Matrix is
// considered non-invertible.
const invertEpsilon = 1e-10

// Matrix is a 2D affine transformation mapping (x,y) to
// (a*x + c*y + e, b*x + d*y + f).
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, D: 1, E: x, F: y}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, D: y}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{A: cos, B: sin, C: -sin, D: cos}
}

// Shear creates a shear matrix.
func Shear(x, y float64) Matrix {
	return Matrix{A: 1, B: y, C: x, D: 1}
}

// Multiply returns m right-multiplied by other: applying the result to a
// point is equivalent to applying other first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.C*other.B,
		B: m.B*other.A + m.D*other.B,
		C: m.A*other.C + m.C*other.D,
		D: m.B*other.C + m.D*other.D,
		E: m.A*other.E + m.C*other.F + m.E,
		F: m.B*other.E + m.D*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// TransformVector applies the linear part of the transformation, ignoring
// translation.
func (m Matrix) TransformVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y,
		Y: m.B*p.X + m.D*p.Y,
	}
}

// Determinant returns a*d - b*c.
func (m Matrix) Determinant() float64 {
	return m.A*m.D - m.B*m.C
}

// Invert returns the inverse matrix. It returns a *NonInvertibleTransformError
// when |det| < 1e-10.
func (m Matrix) Invert() (Matrix, error) {
	det := m.Determinant()
	if math.Abs(det) < invertEpsilon {
		return Matrix{}, &NonInvertibleTransformError{Determinant: det}
	}

	invDet := 1.0 / det
	return Matrix{
		A: m.D * invDet,
		B: -m.B * invDet,
		C: -m.C * invDet,
		D: m.A * invDet,
		E: (m.C*m.F - m.D*m.E) * invDet,
		F: (m.B*m.E - m.A*m.F) * invDet,
	}, nil
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 && m.D == 1 && m.E == 0 && m.F == 0
}

// IsTranslation returns true if the matrix is only a translation.
func (m Matrix) IsTranslation() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 && m.D == 1
}

// IsTranslationOnly is an alias for IsTranslation, named to match the
// IsScaleOnly/MaxScaleFactor family below.
func (m Matrix) IsTranslationOnly() bool {
	return m.IsTranslation()
}

// IsScaleOnly returns true if the matrix has no shear or rotation
// component: its linear part is diagonal, so it only scales (possibly
// non-uniformly, possibly with a reflection) and translates.
func (m Matrix) IsScaleOnly() bool {
	return m.B == 0 && m.C == 0
}

// MaxScaleFactor returns the largest singular value of the matrix's linear
// part: the maximum factor by which it stretches any unit vector. Nothing
// in the package calls it: stroke widths are applied to already-transformed
// polygons and the flattening tolerance is fixed.
//
// The linear part maps (x,y) to (A*x+C*y, B*x+D*y); its columns are
// (A,B) and (C,D). The squared singular values are the eigenvalues of the
// 2x2 Gram matrix [[p,q],[q,r]] with p = A²+B², r = C²+D², q = A*C+B*D.
func (m Matrix) MaxScaleFactor() float64 {
	p := m.A*m.A + m.B*m.B
	r := m.C*m.C + m.D*m.D
	q := m.A*m.C + m.B*m.D

	sum := p + r
	diff := p - r
	disc := math.Sqrt(diff*diff + 4*q*q)
	maxEigenvalue := (sum + disc) / 2
	if maxEigenvalue < 0 {
		maxEigenvalue = 0
	}
	return math.Sqrt(maxEigenvalue)
}
