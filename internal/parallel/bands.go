// Package parallel splits row ranges of an image across goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// MinBandRows is the smallest band worth a goroutine of its own.
const MinBandRows = 32

// Band is the half-open row range [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Split divides [y0, y1) into at most workers contiguous bands of at least
// MinBandRows rows each (the last band may be shorter when the range is).
// If workers is 0 or negative, GOMAXPROCS is used.
func Split(y0, y1, workers int) []Band {
	rows := y1 - y0
	if rows <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	n := min(workers, max(1, rows/MinBandRows))

	bands := make([]Band, n)
	start := y0
	for i := range n {
		// Spread the remainder over the first bands.
		size := rows / n
		if i < rows%n {
			size++
		}
		bands[i] = Band{Y0: start, Y1: start + size}
		start += size
	}
	return bands
}

// Rows calls fn once per band of [y0, y1) and waits for all calls to
// return. A single band runs on the calling goroutine.
func Rows(y0, y1, workers int, fn func(b Band)) {
	bands := Split(y0, y1, workers)
	switch len(bands) {
	case 0:
		return
	case 1:
		fn(bands[0])
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(bands))
	for _, b := range bands {
		go func() {
			defer wg.Done()
			fn(b)
		}()
	}
	wg.Wait()
}
