package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/fxmath"
	"github.com/gogpu/fxmath/imaging"
	"github.com/gogpu/fxmath/ramp"
)

// Colors of the ramp ends and the checker background.
var (
	rampStart = color.RGBA64{R: 0xffff, G: 0x8000, B: 0x1000, A: 0xffff}
	rampEnd   = color.RGBA64{R: 0x1000, G: 0x4000, B: 0xffff, A: 0xffff}
	checkDark = color.RGBA64{R: 0x3000, G: 0x3000, B: 0x3000, A: 0xffff}
	checkLite = color.RGBA64{R: 0x6000, G: 0x6000, B: 0x6000, A: 0xffff}
)

const checkSize = 16

// outputBounds returns the pixel rectangle of the scene. A positive width
// and height override the format.
func outputBounds(cfg config, width, height int) image.Rectangle {
	canonical := cfg.Format.Bounds()
	if width > 0 && height > 0 {
		canonical = fxmath.RectD{X2: float64(width) * cfg.Pixel.PAR, Y2: float64(height)}
	}
	r := fxmath.ToPixelEnclosing(canonical, cfg.Pixel.RenderScale(), cfg.Pixel.PAR)
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
}

// renderScene draws the ramp, transforms it and merges it over a checker.
func renderScene(cfg config, bounds image.Rectangle) (*image.RGBA64, error) {
	interp, err := cfg.interpolator()
	if err != nil {
		return nil, err
	}

	fwd, _ := cfg.Transform.Matrices(cfg.Invert)
	m := cfg.Pixel.ToPixel().Multiply(fwd).Multiply(cfg.Pixel.ToCanonical())

	layer := image.NewRGBA64(bounds)
	rod := imaging.TransformedBounds(bounds, m, bounds)
	fxmath.Logger().Debug("fxdemo: transformed layer", "bounds", bounds, "rod", rod)
	if !rod.Empty() {
		if err := imaging.Resample(layer, rampImage(cfg, bounds), m, interp); err != nil {
			return nil, fmt.Errorf("fxdemo: transform: %w", err)
		}
	}

	dst := checker(bounds)
	if err := imaging.MergeImages(dst, layer, dst, cfg.Operator, cfg.AlphaMasking); err != nil {
		return nil, fmt.Errorf("fxdemo: merge: %w", err)
	}
	return dst, nil
}

// rampImage shades bounds along the configured ramp axis.
func rampImage(cfg config, bounds image.Rectangle) *image.RGBA64 {
	img := image.NewRGBA64(bounds)
	axis := ramp.NewAxis(
		fxmath.PointD{X: cfg.Ramp.X0, Y: cfg.Ramp.Y0},
		fxmath.PointD{X: cfg.Ramp.X1, Y: cfg.Ramp.Y1},
	)
	curve := ramp.Func(cfg.Ramp.Type)
	rs := cfg.Pixel.RenderScale()

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			p := fxmath.ToCanonical(fxmath.PointI{X: x, Y: y}, rs, cfg.Pixel.PAR)
			img.SetRGBA64(x, y, lerp(rampStart, rampEnd, curve(axis.Project(p))))
		}
	}
	return img
}

func lerp(a, b color.RGBA64, t float64) color.RGBA64 {
	mix := func(u, v uint16) uint16 {
		return uint16(float64(u) + (float64(v)-float64(u))*t + 0.5)
	}
	return color.RGBA64{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

func checker(bounds image.Rectangle) *image.RGBA64 {
	img := image.NewRGBA64(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := checkDark
			if (x/checkSize+y/checkSize)%2 != 0 {
				c = checkLite
			}
			img.SetRGBA64(x, y, c)
		}
	}
	return img
}
