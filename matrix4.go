package fxmath

// Matrix4x4 is a 4x4 matrix of 16 values in row-major order.
//
// Unlike Matrix3x3 builders, the zero value is zero-filled, not the
// identity. Callers must not assume an identity default.
type Matrix4x4 struct {
	Data [16]float64
}

// At returns the element at (row, col). Indices outside 0..3 are a
// programming error: they panic in fxdebug builds and read element (0, 0)
// otherwise.
func (m Matrix4x4) At(row, col int) float64 {
	return m.Data[index4(row, col)]
}

// Set stores v at (row, col), with the same bounds policy as At.
func (m *Matrix4x4) Set(row, col int, v float64) {
	m.Data[index4(row, col)] = v
}

func index4(row, col int) int {
	if row < 0 || row > 3 || col < 0 || col > 3 {
		debugAssert(false, "Matrix4x4 index out of range")
		return 0
	}
	return row*4 + col
}

// Multiply4 returns m1·m2.
func Multiply4(m1, m2 Matrix4x4) Matrix4x4 {
	var ret Matrix4x4
	for i := range 4 {
		for j := range 4 {
			var sum float64
			for x := range 4 {
				sum += m1.Data[i*4+x] * m2.Data[x*4+j]
			}
			ret.Data[i*4+j] = sum
		}
	}
	return ret
}

// Multiply multiplies two matrices (m * other).
func (m Matrix4x4) Multiply(other Matrix4x4) Matrix4x4 {
	return Multiply4(m, other)
}

// TransformPoint applies the matrix to a homogeneous point. The caller
// divides by W if it is not 1.
func (m Matrix4x4) TransformPoint(p Point4D) Point4D {
	var ret Point4D
	for i := range 4 {
		var sum float64
		for j := range 4 {
			sum += m.Data[i*4+j] * p.At(j)
		}
		ret.Set(i, sum)
	}
	return ret
}

// Matrix4x4FromMatrix3x3 embeds a 3x3 matrix in the upper-left corner of
// a 4x4 matrix whose last row and column are those of the identity.
func Matrix4x4FromMatrix3x3(m Matrix3x3) Matrix4x4 {
	return Matrix4x4{Data: [16]float64{
		m.A, m.B, m.C, 0,
		m.D, m.E, m.F, 0,
		m.G, m.H, m.I, 0,
		0, 0, 0, 1,
	}}
}

// Identity4 returns the 4x4 identity matrix.
func Identity4() Matrix4x4 {
	return Matrix4x4FromMatrix3x3(Identity())
}
