package fxmath

import "math"

// Point3D is a homogeneous 2D point.
// Z is normally 1 before a transform; after a projective transform the
// caller divides by Z (see Normalize).
type Point3D struct {
	X, Y, Z float64
}

// Pt3 is a convenience function to create a Point3D with Z = 1.
func Pt3(x, y float64) Point3D {
	return Point3D{X: x, Y: y, Z: 1}
}

// Normalize performs the perspective divide by Z.
// The result is non-finite when Z is 0.
func (p Point3D) Normalize() Point3D {
	return Point3D{X: p.X / p.Z, Y: p.Y / p.Z, Z: 1}
}

// IsFinite returns true if no coordinate is NaN or infinite.
func (p Point3D) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y) && isFinite(p.Z)
}

// Point4D is a homogeneous 3D point, indexable by position 0..3.
type Point4D struct {
	X, Y, Z, W float64
}

// At returns the coordinate at index i (0 = X, 1 = Y, 2 = Z, 3 = W).
// An out-of-range index is a programming error: it panics in fxdebug
// builds and returns X otherwise.
func (p Point4D) At(i int) float64 {
	switch i {
	case 0:
		return p.X
	case 1:
		return p.Y
	case 2:
		return p.Z
	case 3:
		return p.W
	default:
		debugAssert(false, "Point4D index out of range")
		return p.X
	}
}

// Set stores v at index i. Out-of-range indices write X, like At reads it.
func (p *Point4D) Set(i int, v float64) {
	switch i {
	case 0:
		p.X = v
	case 1:
		p.Y = v
	case 2:
		p.Z = v
	case 3:
		p.W = v
	default:
		debugAssert(false, "Point4D index out of range")
		p.X = v
	}
}

// PointD is a 2D point in canonical or sub-pixel coordinates.
type PointD struct {
	X, Y float64
}

// Sub returns the difference of two points (vector subtraction).
func (p PointD) Sub(q PointD) PointD {
	return PointD{X: p.X - q.X, Y: p.Y - q.Y}
}

// Dot returns the dot product of two vectors.
func (p PointD) Dot(q PointD) float64 {
	return p.X*q.X + p.Y*q.Y
}

// LengthSquared returns the squared length of the vector.
func (p PointD) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

// PointI is an integer pixel position.
type PointI struct {
	X, Y int
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
