package ramp

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/fxmath"
)

const epsilon = 1e-12

func TestEval(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
		t    float64
		want float64
	}{
		{"none inside", None, 0.3, 1},
		{"none below", None, -2, 1},
		{"linear", Linear, 0.3, 0.3},
		{"plinear", PLinear, 0.5, 0.125},
		{"ease-in", EaseIn, 0.5, 0.375},
		{"ease-out", EaseOut, 0.5, 0.625},
		{"smooth", Smooth, 0.25, 0.15625},
		{"smooth midpoint", Smooth, 0.5, 0.5},
		{"clamped below", Smooth, -1, 0},
		{"clamped above", PLinear, 3, 1},
		{"nan", EaseOut, math.NaN(), 0},
		{"unknown is linear", Type(42), 0.7, 0.7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Eval(tt.t, tt.typ); math.Abs(got-tt.want) > epsilon {
				t.Errorf("Eval(%v, %v) = %v, want %v", tt.t, tt.typ, got, tt.want)
			}
		})
	}
}

func TestCurvesMonotonic(t *testing.T) {
	for typ := Linear; typ < typeCount; typ++ {
		f := Func(typ)
		if f(0) != 0 || f(1) != 1 {
			t.Errorf("%v: f(0) = %v, f(1) = %v", typ, f(0), f(1))
		}
		prev := f(0)
		for i := 1; i <= 100; i++ {
			v := f(float64(i) / 100)
			if v < prev {
				t.Fatalf("%v decreases at t=%v", typ, float64(i)/100)
			}
			prev = v
		}
	}
}

func TestParseType(t *testing.T) {
	for typ := None; typ < typeCount; typ++ {
		got, err := ParseType(typ.String())
		if err != nil || got != typ {
			t.Errorf("ParseType(%q) = %v, %v", typ.String(), got, err)
		}
	}
	if got, err := ParseType(" Ease-In "); err != nil || got != EaseIn {
		t.Errorf("ParseType(\" Ease-In \") = %v, %v", got, err)
	}
	if _, err := ParseType("cubic"); !errors.Is(err, ErrUnknownType) {
		t.Errorf("ParseType(cubic) error = %v, want ErrUnknownType", err)
	}
	if got := Type(9).String(); got != "Type(9)" {
		t.Errorf("Type(9).String() = %q", got)
	}
}

func TestTypeText(t *testing.T) {
	var typ Type
	if err := typ.UnmarshalText([]byte("smooth")); err != nil || typ != Smooth {
		t.Fatalf("UnmarshalText(smooth) = %v, %v", typ, err)
	}
	text, err := typ.MarshalText()
	if err != nil || string(text) != "smooth" {
		t.Errorf("MarshalText() = %q, %v", text, err)
	}
	if _, err := Type(9).MarshalText(); !errors.Is(err, ErrUnknownType) {
		t.Errorf("MarshalText() of unknown type error = %v", err)
	}
}

func TestAxis(t *testing.T) {
	a := NewAxis(fxmath.PointD{X: 10, Y: 0}, fxmath.PointD{X: 10, Y: 20})
	tests := []struct {
		p    fxmath.PointD
		want float64
	}{
		{fxmath.PointD{X: 10, Y: 0}, 0},
		{fxmath.PointD{X: 10, Y: 20}, 1},
		{fxmath.PointD{X: -50, Y: 5}, 0.25},
		{fxmath.PointD{X: 3, Y: 30}, 1.5},
		{fxmath.PointD{X: 3, Y: -30}, -1.5},
	}
	for _, tt := range tests {
		if got := a.Project(tt.p); math.Abs(got-tt.want) > epsilon {
			t.Errorf("Project(%+v) = %v, want %v", tt.p, got, tt.want)
		}
	}

	if got := a.At(fxmath.PointD{X: 0, Y: 10}, Smooth); math.Abs(got-0.5) > epsilon {
		t.Errorf("At(midpoint, smooth) = %v, want 0.5", got)
	}
	if got := a.At(fxmath.PointD{X: 0, Y: 40}, Linear); got != 1 {
		t.Errorf("At(beyond P1) = %v, want 1", got)
	}
}

func TestAxisDiagonal(t *testing.T) {
	a := NewAxis(fxmath.PointD{}, fxmath.PointD{X: 4, Y: 4})
	// Points on a line perpendicular to the axis share a value.
	p := a.Project(fxmath.PointD{X: 0, Y: 4})
	q := a.Project(fxmath.PointD{X: 4, Y: 0})
	if math.Abs(p-0.5) > epsilon || math.Abs(q-0.5) > epsilon {
		t.Errorf("perpendicular projections = %v, %v, want 0.5", p, q)
	}
}

func TestAxisDegenerate(t *testing.T) {
	p := fxmath.PointD{X: 3, Y: 3}
	a := NewAxis(p, p)
	if got := a.Project(fxmath.PointD{X: 100, Y: -7}); got != 0 {
		t.Errorf("Project() on a zero-length axis = %v, want 0", got)
	}
	if got := a.At(p, None); got != 1 {
		t.Errorf("At(none) = %v, want 1", got)
	}
}
