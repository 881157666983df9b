package imaging

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/fxmath"
	"github.com/gogpu/fxmath/internal/parallel"
	"github.com/gogpu/fxmath/merge"
)

// ErrNilImage is returned by MergeImages when an argument is nil.
var ErrNilImage = errors.New("imaging: nil image")

// MergeImages composites a (the source) with b (the destination) into dst
// using op. Both inputs are read over dst.Bounds() as 16-bit premultiplied
// RGBA; pixels outside an input are transparent black. Results are clamped
// to [0, 65535]. Row bands are merged concurrently. dst may be the same
// image as a or b.
func MergeImages(dst *image.RGBA64, a, b image.Image, op merge.Operator, doAlphaMasking bool) error {
	if dst == nil || a == nil || b == nil {
		return ErrNilImage
	}
	if !op.Valid() {
		return fmt.Errorf("imaging: %w: %d", merge.ErrUnknownOperator, op)
	}

	bounds := dst.Bounds()
	if bounds.Empty() {
		return nil
	}
	ra := toRGBA64(a, bounds)
	rb := toRGBA64(b, bounds)

	fxmath.Logger().Debug("imaging: merge",
		"op", op, "masking", doAlphaMasking, "bounds", bounds)

	m := merge.NewMerger(op, doAlphaMasking, 4, float64(merge.MaxUint16))
	w := bounds.Dx()
	parallel.Rows(bounds.Min.Y, bounds.Max.Y, 0, func(band parallel.Band) {
		rowA := make([]float64, w*4)
		rowB := make([]float64, w*4)
		out := make([]float64, w*4)
		for y := band.Y0; y < band.Y1; y++ {
			loadRow(rowA, ra, bounds.Min.X, y)
			loadRow(rowB, rb, bounds.Min.X, y)
			m.Row(out, rowA, rowB)
			storeRow(dst, out, bounds.Min.X, y)
		}
	})
	return nil
}

// toRGBA64 returns img as an *image.RGBA64 covering r, converting when
// needed.
func toRGBA64(img image.Image, r image.Rectangle) *image.RGBA64 {
	if rgba, ok := img.(*image.RGBA64); ok && r.In(rgba.Bounds()) {
		return rgba
	}
	out := image.NewRGBA64(r)
	draw.Draw(out, r, img, r.Min, draw.Src)
	return out
}

// loadRow decodes the big-endian 16-bit channels of row y starting at x0.
func loadRow(row []float64, img *image.RGBA64, x0, y int) {
	off := img.PixOffset(x0, y)
	pix := img.Pix[off : off+len(row)*2]
	for i := range row {
		row[i] = float64(uint16(pix[2*i])<<8 | uint16(pix[2*i+1]))
	}
}

func storeRow(img *image.RGBA64, row []float64, x0, y int) {
	off := img.PixOffset(x0, y)
	pix := img.Pix[off : off+len(row)*2]
	for i, v := range row {
		c := merge.Clamp(v, uint16(merge.MaxUint16))
		pix[2*i] = uint8(c >> 8)
		pix[2*i+1] = uint8(c)
	}
}
