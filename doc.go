// Package fxmath provides the geometry math used by image-processing effects.
//
// # Overview
//
// fxmath is a Pure Go library of the numeric building blocks shared by
// transform and merge effects: 3x3 and 4x4 homogeneous matrices, the
// canonical transform chain (translate, rotate, skew, scale around a
// center), the pixel/canonical coordinate mapping, and axis-aligned
// rectangle helpers for region-of-interest computation.
//
// Compositing operators live in the merge sub-package and ramp curves in
// ramp. The imaging package applies both to image.Image values through
// golang.org/x/image/draw.
//
// # Quick Start
//
//	import "github.com/gogpu/fxmath"
//
//	// Source to destination, in canonical coordinates.
//	fwd := fxmath.TransformCanonical(10, 0, 2, 2, 0, 0, false, 0, 0, 0)
//	p := fwd.TransformPoint(fxmath.Point3D{X: 1, Y: 1, Z: 1}) // (12, 2, 1)
//
//	// Destination to source, used when resampling.
//	inv := fxmath.InverseTransformCanonical(10, 0, 2, 2, 0, 0, false, 0, 0, 0)
//
// # Composition Order
//
// Matrix products are never commutative. Multiply(m1, m2) applied to a
// point p computes m1·(m2·p): the right-most matrix is applied first.
// All transform builders in this package follow that convention.
//
// # Degenerate Transforms
//
// Inverse never fails. A singular matrix produces non-finite entries;
// callers test the result with Matrix3x3.IsFinite and fall back to their
// own default (TransformRegion, for instance, returns an infinite rect).
//
// # Coordinate System
//
// Canonical coordinates are resolution independent. Pixel coordinates
// depend on the render scale, the pixel aspect ratio and, for interlaced
// video, on whether the image is a single field.
//
// # Concurrency
//
// Every function is a pure computation over value types and is safe for
// concurrent use.
package fxmath

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
