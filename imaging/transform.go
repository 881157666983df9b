// Package imaging applies fxmath transforms and merge operators to Go
// images.
//
// Resampling is delegated to golang.org/x/image/draw, so only affine
// transforms are supported. Merging works on 16-bit premultiplied RGBA.
//
// Quick Start:
//
//	t := fxmath.Transform{ScaleX: 0.5, ScaleY: 0.5, Rotate: 0.3, CenterX: 320, CenterY: 240}
//	dst := image.NewRGBA64(src.Bounds())
//	err := imaging.TransformImage(dst, src, t, fxmath.FullResolution(), draw.BiLinear)
package imaging

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/fxmath"
)

// Errors returned by TransformImage.
var (
	ErrSingularTransform = errors.New("imaging: singular transform")
	ErrProjective        = errors.New("imaging: projective transform")
)

// Affine returns the affine part of m in the layout used by
// golang.org/x/image/draw. It returns false when m is projective or holds a
// non-finite value.
func Affine(m fxmath.Matrix3x3) (f64.Aff3, bool) {
	if !m.IsFinite() || !m.IsAffine() {
		return f64.Aff3{}, false
	}
	return m.Aff3(), true
}

// TransformImage resamples src into dst through t applied in the pixel
// space described by px. Pixels of dst that no source pixel maps to are
// left untouched. interp selects the filter; nil means draw.BiLinear.
func TransformImage(dst draw.Image, src image.Image, t fxmath.Transform, px fxmath.Pixel, interp draw.Transformer) error {
	return Resample(dst, src, px.Forward(t), interp)
}

// Resample is TransformImage for a matrix m mapping source pixel
// coordinates to destination pixel coordinates.
func Resample(dst draw.Image, src image.Image, m fxmath.Matrix3x3, interp draw.Transformer) error {
	if !fxmath.Inverse(m).IsFinite() {
		fxmath.Logger().Warn("imaging: transform is not invertible", "matrix", m)
		return fmt.Errorf("%w: %+v", ErrSingularTransform, m)
	}
	s2d, ok := Affine(m)
	if !ok {
		return fmt.Errorf("%w: %+v", ErrProjective, m)
	}
	if interp == nil {
		interp = draw.BiLinear
	}

	if m.IsIdentity() {
		fxmath.Logger().Debug("imaging: identity transform, copying")
		draw.Draw(dst, src.Bounds(), src, src.Bounds().Min, draw.Src)
		return nil
	}

	fxmath.Logger().Debug("imaging: resample",
		"src", src.Bounds(), "dst", dst.Bounds(), "aff3", s2d)
	interp.Transform(dst, s2d, src, src.Bounds(), draw.Src, nil)
	return nil
}

// TransformedBounds returns the smallest integer rectangle enclosing r
// mapped through m. An unbounded result is clipped to clip.
func TransformedBounds(r image.Rectangle, m fxmath.Matrix3x3, clip image.Rectangle) image.Rectangle {
	rod := fxmath.TransformRegion(fxmath.RectD{
		X1: float64(r.Min.X), Y1: float64(r.Min.Y),
		X2: float64(r.Max.X), Y2: float64(r.Max.Y),
	}, m)
	if rod.IsInfinite() {
		return clip
	}
	pr := fxmath.ToPixelEnclosing(rod, fxmath.PointD{X: 1, Y: 1}, 1)
	out := image.Rect(pr.X1, pr.Y1, pr.X2, pr.Y2)
	return out.Intersect(clip)
}
