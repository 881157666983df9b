package fxmath

import "math"

// ScaleFromMipmapLevel returns 1/2^level.
func ScaleFromMipmapLevel(level uint) float64 {
	return math.Ldexp(1, -int(level))
}

// MipmapLevelFromScale returns the level L such that 2^-L best matches s,
// that is round(-log2(s)). s must be in (0, 1]; other values panic in
// fxdebug builds and give an unspecified level otherwise.
func MipmapLevelFromScale(s float64) uint {
	debugAssert(0 < s && s <= 1, "mipmap scale out of (0, 1]")
	level := -int(math.Floor(math.Log2(s) + 0.5))
	if level < 0 {
		return 0
	}
	return uint(level)
}

// DownscalePowerOfTwoSmallestEnclosing scales a pixel rectangle down by
// 2^level and returns the smallest rectangle enclosing the exact result:
// lower bounds are floored, upper bounds are ceiled. Infinite sides pass
// through unchanged.
//
// Use it on pixel coordinates only; canonical rectangles go through
// ToPixelEnclosing instead.
func DownscalePowerOfTwoSmallestEnclosing(r RectI, level uint) RectI {
	if level == 0 {
		return r
	}

	var ret RectI
	if r.X1 <= InfiniteMin {
		ret.X1 = InfiniteMin
	} else {
		ret.X1 = r.X1 >> level
	}
	if r.X2 >= InfiniteMax {
		ret.X2 = InfiniteMax
	} else {
		ret.X2 = ceilShift(r.X2, level)
	}
	if r.Y1 <= InfiniteMin {
		ret.Y1 = InfiniteMin
	} else {
		ret.Y1 = r.Y1 >> level
	}
	if r.Y2 >= InfiniteMax {
		ret.Y2 = InfiniteMax
	} else {
		ret.Y2 = ceilShift(r.Y2, level)
	}
	return ret
}

// ceilShift returns ceil(v / 2^level) for any level.
func ceilShift(v int, level uint) int {
	return -((-v) >> level)
}
