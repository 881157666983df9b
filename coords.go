package fxmath

import "math"

// Conversions between canonical and pixel coordinates for points and
// rectangles. Pixel (i, j) covers canonical [i, i+1) x [j, j+1) scaled by
// par/renderScale, and its center sits at i+0.5.

// ToPixelEnclosing returns the smallest pixel rectangle covering a
// canonical region.
func ToPixelEnclosing(r RectD, renderScale PointD, par float64) RectI {
	return RectI{
		X1: int(math.Floor(r.X1 * renderScale.X / par)),
		Y1: int(math.Floor(r.Y1 * renderScale.Y)),
		X2: int(math.Ceil(r.X2 * renderScale.X / par)),
		Y2: int(math.Ceil(r.Y2 * renderScale.Y)),
	}
}

// ToCanonicalRect maps a pixel rectangle to canonical coordinates.
func ToCanonicalRect(r RectI, renderScale PointD, par float64) RectD {
	return RectD{
		X1: float64(r.X1) * par / renderScale.X,
		Y1: float64(r.Y1) / renderScale.Y,
		X2: float64(r.X2) * par / renderScale.X,
		Y2: float64(r.Y2) / renderScale.Y,
	}
}

// ToPixel returns the pixel containing a canonical point.
func ToPixel(p PointD, renderScale PointD, par float64) PointI {
	return PointI{
		X: int(math.Floor(p.X * renderScale.X / par)),
		Y: int(math.Floor(p.Y * renderScale.Y)),
	}
}

// ToPixelSub maps a canonical point to sub-pixel coordinates, where
// integer values are pixel centers.
func ToPixelSub(p PointD, renderScale PointD, par float64) PointD {
	return PointD{
		X: p.X*renderScale.X/par - 0.5,
		Y: p.Y*renderScale.Y - 0.5,
	}
}

// ToCanonical returns the canonical position of the center of a pixel.
func ToCanonical(p PointI, renderScale PointD, par float64) PointD {
	return PointD{
		X: (float64(p.X) + 0.5) * par / renderScale.X,
		Y: (float64(p.Y) + 0.5) / renderScale.Y,
	}
}

// ToCanonicalSub is the inverse of ToPixelSub.
func ToCanonicalSub(p PointD, renderScale PointD, par float64) PointD {
	return PointD{
		X: (p.X + 0.5) * par / renderScale.X,
		Y: (p.Y + 0.5) / renderScale.Y,
	}
}
