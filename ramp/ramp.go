// Package ramp provides the easing curves used to shade linear ramps
// between two points.
//
// Curves follow the usual compositing conventions:
//
//	linear   t
//	plinear  t³, perceptually linear in Rec.709
//	ease-in  t²(2-t), Catmull-Rom with a smooth start and a linear end
//	ease-out t(1+t(1-t)), Catmull-Rom with a linear start and a smooth end
//	smooth   t²(3-2t), smoothstep
//
// Every curve maps 0 to 0 and 1 to 1. Inputs are clamped to [0, 1].
package ramp

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/gogpu/fxmath"
)

// ErrUnknownType is returned by ParseType for names that match no ramp type.
var ErrUnknownType = errors.New("ramp: unknown type")

// Type selects a ramp curve.
type Type uint8

const (
	None    Type = iota // constant 1
	Linear              // t
	PLinear             // t³
	EaseIn              // t²(2-t)
	EaseOut             // t(1+t(1-t))
	Smooth              // t²(3-2t)

	typeCount
)

var typeNames = [typeCount]string{
	None:    "none",
	Linear:  "linear",
	PLinear: "plinear",
	EaseIn:  "ease-in",
	EaseOut: "ease-out",
	Smooth:  "smooth",
}

// String returns the name of the ramp type.
func (typ Type) String() string {
	if typ >= typeCount {
		return fmt.Sprintf("Type(%d)", typ)
	}
	return typeNames[typ]
}

// MarshalText implements encoding.TextMarshaler.
func (typ Type) MarshalText() ([]byte, error) {
	if typ >= typeCount {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, typ)
	}
	return []byte(typeNames[typ]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (typ *Type) UnmarshalText(text []byte) error {
	v, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*typ = v
	return nil
}

// ParseType looks a ramp type up by name, ignoring case and surrounding space.
func ParseType(name string) (Type, error) {
	key := cases.Fold().String(strings.TrimSpace(name))
	for i, n := range typeNames {
		if n == key {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

// Func resolves the curve of typ once. Unknown types behave as Linear.
func Func(typ Type) func(t float64) float64 {
	switch typ {
	case None:
		return none
	case PLinear:
		return plinear
	case EaseIn:
		return easeIn
	case EaseOut:
		return easeOut
	case Smooth:
		return smooth
	default:
		return linear
	}
}

// Eval evaluates the curve of typ at t.
func Eval(t float64, typ Type) float64 {
	return Func(typ)(t)
}

// clamp01 reports whether t is outside (0, 1) and the clamped value.
// NaN clamps to 0.
func clamp01(t float64) (float64, bool) {
	switch {
	case t >= 1:
		return 1, true
	case t > 0:
		return t, false
	default:
		return 0, true
	}
}

func none(float64) float64 { return 1 }

func linear(t float64) float64 {
	t, _ = clamp01(t)
	return t
}

func plinear(t float64) float64 {
	if t, ok := clamp01(t); ok {
		return t
	}
	return t * t * t
}

func easeIn(t float64) float64 {
	if t, ok := clamp01(t); ok {
		return t
	}
	return t * t * (2 - t)
}

func easeOut(t float64) float64 {
	if t, ok := clamp01(t); ok {
		return t
	}
	return t * (1 + t*(1-t))
}

func smooth(t float64) float64 {
	if t, ok := clamp01(t); ok {
		return t
	}
	return t * t * (3 - 2*t)
}

// Axis is a ramp direction from P0 (value 0) to P1 (value 1) in canonical
// coordinates.
type Axis struct {
	P0, P1 fxmath.PointD

	// P0->P1 divided by its squared length.
	n fxmath.PointD
}

// NewAxis returns the axis from p0 to p1. When both points coincide every
// point projects to 0.
func NewAxis(p0, p1 fxmath.PointD) Axis {
	d := p1.Sub(p0)
	l2 := d.LengthSquared()
	a := Axis{P0: p0, P1: p1}
	if l2 > 0 {
		a.n = fxmath.PointD{X: d.X / l2, Y: d.Y / l2}
	}
	return a
}

// Project returns the unclamped position of p along the axis: 0 at P0,
// 1 at P1.
func (a Axis) Project(p fxmath.PointD) float64 {
	return p.Sub(a.P0).Dot(a.n)
}

// At evaluates the ramp of typ at p.
func (a Axis) At(p fxmath.PointD, typ Type) float64 {
	return Eval(a.Project(p), typ)
}
