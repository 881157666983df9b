package fxmath

import "math"

// TransformRegion returns the bounding box of r mapped through m, with a
// perspective divide on each corner. It is used both ways around: with
// the forward matrix to get a region of definition, and with the inverse
// matrix to get the region of interest in the source.
//
// If r is infinite, m is not finite, or a corner lands on or behind the
// viewer (z <= 0), the region is unbounded and InfiniteRect is returned.
func TransformRegion(r RectD, m Matrix3x3) RectD {
	if r.IsInfinite() || !m.IsFinite() {
		return InfiniteRect[float64]()
	}

	corners := [4]Point3D{
		{X: r.X1, Y: r.Y1, Z: 1},
		{X: r.X2, Y: r.Y1, Z: 1},
		{X: r.X2, Y: r.Y2, Z: 1},
		{X: r.X1, Y: r.Y2, Z: 1},
	}

	ret := RectD{
		X1: math.Inf(1), Y1: math.Inf(1),
		X2: math.Inf(-1), Y2: math.Inf(-1),
	}
	for _, c := range corners {
		p := m.TransformPoint(c)
		if p.Z <= 0 {
			return InfiniteRect[float64]()
		}
		p = p.Normalize()
		if !p.IsFinite() {
			return InfiniteRect[float64]()
		}
		ret.X1 = math.Min(ret.X1, p.X)
		ret.X2 = math.Max(ret.X2, p.X)
		ret.Y1 = math.Min(ret.Y1, p.Y)
		ret.Y2 = math.Max(ret.Y2, p.Y)
	}
	return ret
}
