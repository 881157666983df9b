package merge

import "github.com/gogpu/fxmath"

// Number is the set of supported channel types.
type Number interface {
	~uint8 | ~uint16 | ~uint32 | ~float32 | ~float64
}

// Full-intensity channel values of the common pixel types.
const (
	MaxUint8  = 255
	MaxUint16 = 65535
	MaxFloat  = 1.0
)

// Merger applies one operator to pixels of a fixed channel count.
// The operator is resolved once at construction, so a Merger is meant to be
// built per row or per image and reused. The zero value is not usable.
type Merger[T Number] struct {
	fn         Func
	masking    bool
	components int
	max        float64
}

// NewMerger returns a Merger for op on pixels of components channels
// (clamped to 1..4) with full-intensity value max.
// Alpha masking only takes effect for maskable operators on 4-channel pixels.
// An unknown operator is logged and produces all-zero pixels.
func NewMerger[T Number](op Operator, doAlphaMasking bool, components int, max T) Merger[T] {
	if !op.Valid() {
		fxmath.Logger().Warn("merge: unknown operator, output is zero", "op", int(op))
	}
	return newMerger(op, doAlphaMasking, components, max)
}

func newMerger[T Number](op Operator, doAlphaMasking bool, components int, max T) Merger[T] {
	switch {
	case components < 1:
		components = 1
	case components > 4:
		components = 4
	}
	return Merger[T]{
		fn:         Lookup(op),
		masking:    doAlphaMasking && op.Maskable() && components == 4,
		components: components,
		max:        float64(max),
	}
}

// Components returns the number of channels per pixel.
func (m Merger[T]) Components() int {
	return m.components
}

// Pixel merges source pixel a over destination pixel b into dst.
// Channel 3 of a and b is read as alpha whatever the channel count.
// dst must hold at least Components values.
func (m Merger[T]) Pixel(a, b [4]T, dst []T) {
	n := m.components
	alphaA := float64(a[3])
	alphaB := float64(b[3])
	if m.masking {
		dst[3] = T(alphaA + alphaB - alphaA*alphaB/m.max)
		n = 3
	}
	for i := 0; i < n; i++ {
		dst[i] = T(m.fn(float64(a[i]), float64(b[i]), alphaA, alphaB, m.max))
	}
}

// Row merges interleaved pixel rows. It processes as many whole pixels as
// the shortest of dst, a and b holds and returns that count. dst may alias b.
// Pixels with fewer than four channels are merged with zero alpha.
func (m Merger[T]) Row(dst, a, b []T) int {
	c := m.components
	n := min(len(dst), len(a), len(b)) / c

	var pa, pb [4]T
	for i := 0; i < n; i++ {
		off := i * c
		copy(pa[:c], a[off:off+c])
		copy(pb[:c], b[off:off+c])
		m.Pixel(pa, pb, dst[off:off+c])
	}
	return n
}

// MergePixel merges a single pixel. The channel count is len(dst), at most 4.
// Use a Merger when merging more than a handful of pixels.
func MergePixel[T Number](op Operator, doAlphaMasking bool, a, b [4]T, dst []T, max T) {
	if len(dst) == 0 {
		return
	}
	newMerger(op, doAlphaMasking, len(dst), max).Pixel(a, b, dst)
}

// Clamp converts v to T after clamping it to [0, max]. NaN maps to 0.
func Clamp[T Number](v float64, max T) T {
	switch {
	case v > float64(max):
		return max
	case v > 0:
		return T(v)
	default:
		return 0
	}
}
