package fxmath

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Matrix3x3 represents a 2D projective transformation matrix.
// It uses a 3x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//	| g  h  i |
//
// Applied to a homogeneous point (x, y, z):
//
//	x' = a*x + b*y + c*z
//	y' = d*x + e*y + f*z
//	z' = g*x + h*y + i*z
//
// The zero value is the zero matrix, not the identity. Use Identity or one
// of the builders below, which always set I.
type Matrix3x3 struct {
	A, B, C float64
	D, E, F float64
	G, H, I float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix3x3 {
	return Matrix3x3{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
		G: 0, H: 0, I: 1,
	}
}

// Translation creates a translation matrix.
func Translation(x, y float64) Matrix3x3 {
	return Matrix3x3{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
		G: 0, H: 0, I: 1,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix3x3 {
	return Matrix3x3{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
		G: 0, H: 0, I: 1,
	}
}

// ScaleUniform creates a scaling matrix with the same factor on both axes.
func ScaleUniform(s float64) Matrix3x3 {
	return Scale(s, s)
}

// Rotation creates a rotation matrix (angle in radians).
//
// The matrix is [c s 0; -s c 0; 0 0 1]: with Y pointing up, a positive
// angle turns clockwise. TransformCanonical negates the angle so that a
// positive user rotation is counter-clockwise.
func Rotation(rads float64) Matrix3x3 {
	c := math.Cos(rads)
	s := math.Sin(rads)
	return Matrix3x3{
		A: c, B: s, C: 0,
		D: -s, E: c, F: 0,
		G: 0, H: 0, I: 1,
	}
}

// SkewXY creates a skew matrix. With skewOrderYX false the X skew is
// applied after the Y skew, which puts the 1+skewX*skewY term on A;
// with skewOrderYX true it lands on E.
func SkewXY(skewX, skewY float64, skewOrderYX bool) Matrix3x3 {
	a, e := 1+skewX*skewY, 1.0
	if skewOrderYX {
		a, e = 1, 1+skewX*skewY
	}
	return Matrix3x3{
		A: a, B: skewX, C: 0,
		D: skewY, E: e, F: 0,
		G: 0, H: 0, I: 1,
	}
}

// RotationAroundPoint rotates around (px, py): T(p)·R·T(-p).
func RotationAroundPoint(rads, px, py float64) Matrix3x3 {
	return Translation(px, py).Multiply(Rotation(rads).Multiply(Translation(-px, -py)))
}

// ScaleAroundPoint scales around (px, py): T(p)·S·T(-p).
func ScaleAroundPoint(scaleX, scaleY, px, py float64) Matrix3x3 {
	return Translation(px, py).Multiply(Scale(scaleX, scaleY).Multiply(Translation(-px, -py)))
}

// Multiply returns m1·m2. Applied to a point, m2 acts first.
func Multiply(m1, m2 Matrix3x3) Matrix3x3 {
	return Matrix3x3{
		A: m1.A*m2.A + m1.B*m2.D + m1.C*m2.G,
		B: m1.A*m2.B + m1.B*m2.E + m1.C*m2.H,
		C: m1.A*m2.C + m1.B*m2.F + m1.C*m2.I,
		D: m1.D*m2.A + m1.E*m2.D + m1.F*m2.G,
		E: m1.D*m2.B + m1.E*m2.E + m1.F*m2.H,
		F: m1.D*m2.C + m1.E*m2.F + m1.F*m2.I,
		G: m1.G*m2.A + m1.H*m2.D + m1.I*m2.G,
		H: m1.G*m2.B + m1.H*m2.E + m1.I*m2.H,
		I: m1.G*m2.C + m1.H*m2.F + m1.I*m2.I,
	}
}

// Multiply multiplies two matrices (m * other).
func (m Matrix3x3) Multiply(other Matrix3x3) Matrix3x3 {
	return Multiply(m, other)
}

// TransformPoint applies the transformation to a homogeneous point.
// The result is not normalized; see Point3D.Normalize.
func (m Matrix3x3) TransformPoint(p Point3D) Point3D {
	return Point3D{
		X: m.A*p.X + m.B*p.Y + m.C*p.Z,
		Y: m.D*p.X + m.E*p.Y + m.F*p.Z,
		Z: m.G*p.X + m.H*p.Y + m.I*p.Z,
	}
}

// TransformPoint3 is the free-function form of m.TransformPoint(p).
func TransformPoint3(m Matrix3x3, p Point3D) Point3D {
	return m.TransformPoint(p)
}

// Determinant returns the determinant, expanded along the first row.
func Determinant(m Matrix3x3) float64 {
	return m.A*(m.E*m.I-m.H*m.F) -
		m.B*(m.D*m.I-m.G*m.F) +
		m.C*(m.D*m.H-m.G*m.E)
}

// ScaledAdjoint returns the adjoint (transposed cofactor matrix) of m
// multiplied by s.
func ScaledAdjoint(m Matrix3x3, s float64) Matrix3x3 {
	return Matrix3x3{
		A: s * (m.E*m.I - m.H*m.F),
		B: s * (m.C*m.H - m.B*m.I),
		C: s * (m.B*m.F - m.C*m.E),
		D: s * (m.F*m.G - m.D*m.I),
		E: s * (m.A*m.I - m.C*m.G),
		F: s * (m.C*m.D - m.A*m.F),
		G: s * (m.D*m.H - m.E*m.G),
		H: s * (m.B*m.G - m.A*m.H),
		I: s * (m.A*m.E - m.B*m.D),
	}
}

// Inverse returns the inverse matrix.
//
// A singular matrix is not reported as an error: the division by a zero
// determinant leaves infinities or NaNs in the result. Check IsFinite
// before using it.
func Inverse(m Matrix3x3) Matrix3x3 {
	return ScaledAdjoint(m, 1/Determinant(m))
}

// InverseWithDeterminant is Inverse for callers that already computed
// the determinant (typically to test it against zero first).
func InverseWithDeterminant(m Matrix3x3, det float64) Matrix3x3 {
	return ScaledAdjoint(m, 1/det)
}

// Invert returns Inverse(m).
func (m Matrix3x3) Invert() Matrix3x3 {
	return Inverse(m)
}

// IsIdentity returns true if the matrix is exactly the identity matrix.
func (m Matrix3x3) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0 &&
		m.G == 0 && m.H == 0 && m.I == 1
}

// IsFinite returns true if no entry is NaN or infinite.
// An Inverse of a singular matrix is never finite.
func (m Matrix3x3) IsFinite() bool {
	for _, v := range [...]float64{m.A, m.B, m.C, m.D, m.E, m.F, m.G, m.H, m.I} {
		if !isFinite(v) {
			return false
		}
	}
	return true
}

// IsAffine returns true if the bottom row is (0, 0, 1).
func (m Matrix3x3) IsAffine() bool {
	return m.G == 0 && m.H == 0 && m.I == 1
}

// Aff3 returns the top two rows as an f64.Aff3, the layout used by
// golang.org/x/image/draw. The bottom row is dropped; check IsAffine first.
func (m Matrix3x3) Aff3() f64.Aff3 {
	return f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
}

// Mat3 returns the matrix as an f64.Mat3 (row-major).
func (m Matrix3x3) Mat3() f64.Mat3 {
	return f64.Mat3{m.A, m.B, m.C, m.D, m.E, m.F, m.G, m.H, m.I}
}

// FromMat3 converts a row-major f64.Mat3.
func FromMat3(m f64.Mat3) Matrix3x3 {
	return Matrix3x3{
		A: m[0], B: m[1], C: m[2],
		D: m[3], E: m[4], F: m[5],
		G: m[6], H: m[7], I: m[8],
	}
}

// ToDegrees converts radians to degrees.
func ToDegrees(rads float64) float64 {
	return rads * 180 / math.Pi
}

// ToRadians converts degrees to radians.
func ToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
