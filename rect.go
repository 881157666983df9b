package fxmath

import "math"

// Sentinel bounds marking an unbounded side of a rectangle.
const (
	InfiniteMin = math.MinInt32
	InfiniteMax = math.MaxInt32
)

// Coord is the set of rectangle coordinate types.
type Coord interface {
	~int | ~float64
}

// Rect is an axis-aligned rectangle. A well-formed rect has X1 <= X2 and
// Y1 <= Y2; anything else is empty by convention. A side at or beyond
// InfiniteMin/InfiniteMax is unbounded.
type Rect[T Coord] struct {
	X1, Y1, X2, Y2 T
}

// RectI is a rectangle in integer pixel coordinates.
type RectI = Rect[int]

// RectD is a rectangle in canonical (or sub-pixel) coordinates.
type RectD = Rect[float64]

// InfiniteRect returns a rectangle unbounded on all sides.
func InfiniteRect[T Coord]() Rect[T] {
	return Rect[T]{X1: InfiniteMin, Y1: InfiniteMin, X2: InfiniteMax, Y2: InfiniteMax}
}

// Width returns X2 - X1.
func (r Rect[T]) Width() T {
	return r.X2 - r.X1
}

// Height returns Y2 - Y1.
func (r Rect[T]) Height() T {
	return r.Y2 - r.Y1
}

// IsEmpty returns true if the rectangle has no area.
func (r Rect[T]) IsEmpty() bool {
	return r.X2 <= r.X1 || r.Y2 <= r.Y1
}

// IsInfinite returns true if any side reaches a sentinel bound.
func (r Rect[T]) IsInfinite() bool {
	return r.X1 <= InfiniteMin || r.X2 >= InfiniteMax ||
		r.Y1 <= InfiniteMin || r.Y2 >= InfiniteMax
}

// Intersect returns the intersection of r1 and r2 and whether they
// intersect. Empty inputs and disjoint inputs yield the zero rect and false.
// Rectangles sharing only an edge intersect with an empty result.
func Intersect[T Coord](r1, r2 Rect[T]) (Rect[T], bool) {
	if r1.IsEmpty() || r2.IsEmpty() {
		return Rect[T]{}, false
	}
	if r1.X1 > r2.X2 || r2.X1 > r1.X2 || r1.Y1 > r2.Y2 || r2.Y1 > r1.Y2 {
		return Rect[T]{}, false
	}

	var ret Rect[T]
	ret.X1 = max(r1.X1, r2.X1)
	// maximin: the result is at worst empty, never inverted
	ret.X2 = max(ret.X1, min(r1.X2, r2.X2))
	ret.Y1 = max(r1.Y1, r2.Y1)
	ret.Y2 = max(ret.Y1, min(r1.Y2, r2.Y2))
	return ret, true
}

// Intersect is the method form of Intersect(r, other).
func (r Rect[T]) Intersect(other Rect[T]) (Rect[T], bool) {
	return Intersect(r, other)
}

// BoundingBox returns the smallest rectangle containing both r1 and r2.
func BoundingBox[T Coord](r1, r2 Rect[T]) Rect[T] {
	var ret Rect[T]
	ret.X1 = min(r1.X1, r2.X1)
	ret.X2 = max(ret.X1, max(r1.X2, r2.X2))
	ret.Y1 = min(r1.Y1, r2.Y1)
	ret.Y2 = max(ret.Y1, max(r1.Y2, r2.Y2))
	return ret
}

// Union is the method form of BoundingBox(r, other).
func (r Rect[T]) Union(other Rect[T]) Rect[T] {
	return BoundingBox(r, other)
}

// Contains returns true if the point (x, y) lies in [X1, X2) x [Y1, Y2).
func (r Rect[T]) Contains(x, y T) bool {
	return x >= r.X1 && x < r.X2 && y >= r.Y1 && y < r.Y2
}

// EnlargeRectI grows every side of r by delta pixels, then clamps the
// result to bounds.
func EnlargeRectI(r RectI, delta int, bounds RectI) RectI {
	return RectI{
		X1: max(bounds.X1, r.X1-delta),
		X2: min(bounds.X2, r.X2+delta),
		Y1: max(bounds.Y1, r.Y1-delta),
		Y2: min(bounds.Y2, r.Y2+delta),
	}
}
