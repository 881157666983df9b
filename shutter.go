package fxmath

// ShutterOffset positions the motion-blur shutter interval relative to the
// current frame.
type ShutterOffset int

const (
	// ShutterCentered opens from t-shutter/2 to t+shutter/2.
	ShutterCentered ShutterOffset = iota
	// ShutterStart opens at the frame, from t to t+shutter.
	ShutterStart
	// ShutterEnd closes at the frame, from t-shutter to t.
	ShutterEnd
	// ShutterCustom opens at t+custom, until t+custom+shutter.
	ShutterCustom
)

// ShutterRange returns the interval during which the shutter is open, in
// frames. Unknown offsets behave like ShutterCentered.
func ShutterRange(time, shutter float64, offset ShutterOffset, custom float64) (t0, t1 float64) {
	switch offset {
	case ShutterStart:
		return time, time + shutter
	case ShutterEnd:
		return time - shutter, time
	case ShutterCustom:
		return time + custom, time + custom + shutter
	default:
		return time - shutter/2, time + shutter/2
	}
}

// ShutterSamples returns n evenly spaced times covering the shutter
// interval, endpoints included. n < 2 returns the interval midpoint.
func ShutterSamples(time, shutter float64, offset ShutterOffset, custom float64, n int) []float64 {
	t0, t1 := ShutterRange(time, shutter, offset, custom)
	if n < 2 {
		return []float64{(t0 + t1) / 2}
	}
	times := make([]float64, n)
	for i := range n {
		times[i] = t0 + (t1-t0)*float64(i)/float64(n-1)
	}
	return times
}
