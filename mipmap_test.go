package fxmath

import "testing"

func TestScaleFromMipmapLevel(t *testing.T) {
	tests := []struct {
		level uint
		want  float64
	}{
		{0, 1},
		{1, 0.5},
		{2, 0.25},
		{3, 0.125},
		{10, 1.0 / 1024},
		{64, 1.0 / (1 << 32) / (1 << 32)},
		{2000, 0},
	}
	for _, tt := range tests {
		if got := ScaleFromMipmapLevel(tt.level); got != tt.want {
			t.Errorf("ScaleFromMipmapLevel(%d) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestMipmapLevelFromScale(t *testing.T) {
	tests := []struct {
		name string
		s    float64
		want uint
	}{
		{"full", 1, 0},
		{"half", 0.5, 1},
		{"quarter", 0.25, 2},
		{"0.4 rounds to 1", 0.4, 1},
		{"0.3 rounds to 2", 0.3, 2},
		{"0.75 rounds to 0", 0.75, 0},
		{"tiny", 1.0 / 4096, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MipmapLevelFromScale(tt.s); got != tt.want {
				t.Errorf("MipmapLevelFromScale(%v) = %d, want %d", tt.s, got, tt.want)
			}
		})
	}
}

func TestMipmapLevelRoundTrip(t *testing.T) {
	for level := uint(0); level <= 20; level++ {
		if got := MipmapLevelFromScale(ScaleFromMipmapLevel(level)); got != level {
			t.Errorf("MipmapLevelFromScale(ScaleFromMipmapLevel(%d)) = %d", level, got)
		}
	}
}

func TestDownscalePowerOfTwoSmallestEnclosing(t *testing.T) {
	tests := []struct {
		name  string
		r     RectI
		level uint
		want  RectI
	}{
		{"level 0", RectI{X1: -3, Y1: 1, X2: 7, Y2: 9}, 0, RectI{X1: -3, Y1: 1, X2: 7, Y2: 9}},
		{"aligned", RectI{X1: 0, Y1: 0, X2: 1920, Y2: 1080}, 1, RectI{X1: 0, Y1: 0, X2: 960, Y2: 540}},
		{"odd bounds", RectI{X1: 1, Y1: 3, X2: 5, Y2: 7}, 1, RectI{X1: 0, Y1: 1, X2: 3, Y2: 4}},
		{"negative", RectI{X1: -3, Y1: -5, X2: -1, Y2: 5}, 1, RectI{X1: -2, Y1: -3, X2: 0, Y2: 3}},
		{"level 3", RectI{X1: 9, Y1: -9, X2: 17, Y2: 8}, 3, RectI{X1: 1, Y1: -2, X2: 3, Y2: 1}},
		{"infinite", InfiniteRect[int](), 4, InfiniteRect[int]()},
		{
			"half infinite",
			RectI{X1: InfiniteMin, Y1: 5, X2: 13, Y2: InfiniteMax}, 2,
			RectI{X1: InfiniteMin, Y1: 1, X2: 4, Y2: InfiniteMax},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DownscalePowerOfTwoSmallestEnclosing(tt.r, tt.level); got != tt.want {
				t.Errorf("DownscalePowerOfTwoSmallestEnclosing(%+v, %d) = %+v, want %+v",
					tt.r, tt.level, got, tt.want)
			}
		})
	}
}

func TestDownscaleAlwaysEncloses(t *testing.T) {
	for level := uint(0); level <= 6; level++ {
		pot := 1 << level
		for x1 := -20; x1 <= 20; x1 += 3 {
			for w := 0; w <= 23; w += 5 {
				r := RectI{X1: x1, Y1: -x1, X2: x1 + w, Y2: -x1 + w + 1}
				got := DownscalePowerOfTwoSmallestEnclosing(r, level)

				// The scaled-back result covers r.
				if got.X1*pot > r.X1 || got.Y1*pot > r.Y1 || got.X2*pot < r.X2 || got.Y2*pot < r.Y2 {
					t.Fatalf("level %d: %+v does not enclose %+v", level, got, r)
				}
				// And is the smallest such rectangle.
				if (got.X1+1)*pot <= r.X1 || (got.Y1+1)*pot <= r.Y1 || (got.X2-1)*pot >= r.X2 || (got.Y2-1)*pot >= r.Y2 {
					t.Fatalf("level %d: %+v is not the smallest enclosing rect of %+v", level, got, r)
				}
			}
		}
	}

	large := []struct {
		name  string
		r     RectI
		level uint
		want  RectI
	}{
		{"level 31", RectI{X1: 0, Y1: 0, X2: 10, Y2: 10}, 31, RectI{X1: 0, Y1: 0, X2: 1, Y2: 1}},
		{"level 63", RectI{X1: 0, Y1: 0, X2: 10, Y2: 10}, 63, RectI{X1: 0, Y1: 0, X2: 1, Y2: 1}},
		{"level 64", RectI{X1: -10, Y1: -10, X2: 10, Y2: 10}, 64, RectI{X1: -1, Y1: -1, X2: 1, Y2: 1}},
		{"level 200", RectI{X1: -5, Y1: 3, X2: -2, Y2: 7}, 200, RectI{X1: -1, Y1: 0, X2: 0, Y2: 1}},
		{"empty at origin", RectI{}, 63, RectI{}},
	}
	for _, tt := range large {
		t.Run(tt.name, func(t *testing.T) {
			if got := DownscalePowerOfTwoSmallestEnclosing(tt.r, tt.level); got != tt.want {
				t.Errorf("DownscalePowerOfTwoSmallestEnclosing(%+v, %d) = %+v, want %+v", tt.r, tt.level, got, tt.want)
			}
		})
	}
}
