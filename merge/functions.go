package merge

import "math"

// Func computes one output channel from source value a, destination value b,
// their alphas and the full-intensity value max. Results are not clamped.
type Func func(a, b, alphaA, alphaB, max float64) float64

var funcs = [operatorCount]Func{
	Atop:         atop,
	Average:      average,
	ColorBurn:    colorBurn,
	ColorDodge:   colorDodge,
	ConjointOver: conjointOver,
	Copy:         copyA,
	Difference:   difference,
	DisjointOver: disjointOver,
	Divide:       divide,
	Exclusion:    exclusion,
	Freeze:       freeze,
	From:         from,
	Geometric:    geometric,
	HardLight:    hardLight,
	Hypot:        hypot,
	In:           in,
	Interpolated: interpolated,
	Mask:         mask,
	Matte:        matte,
	Lighten:      lighten,
	Darken:       darken,
	Minus:        minus,
	Multiply:     multiply,
	Out:          out,
	Over:         over,
	Overlay:      overlay,
	PinLight:     pinLight,
	Plus:         plus,
	Reflect:      reflect,
	Screen:       screen,
	SoftLight:    softLight,
	Stencil:      stencil,
	Under:        under,
	Xor:          xor,
}

// Lookup returns the channel function of op. Unknown operators map to a
// function that always returns 0.
func Lookup(op Operator) Func {
	if !op.Valid() {
		return zero
	}
	return funcs[op]
}

func zero(_, _, _, _, _ float64) float64 { return 0 }

func average(a, b, _, _, _ float64) float64 { return (a + b) / 2 }

func copyA(a, _, _, _, _ float64) float64 { return a }

func plus(a, b, _, _, _ float64) float64 { return a + b }

func difference(a, b, _, _, _ float64) float64 { return math.Abs(a - b) }

func divide(a, b, _, _, _ float64) float64 {
	if b <= 0 {
		return 0
	}
	return a / b
}

func exclusion(a, b, _, _, max float64) float64 { return a + b - 2*a*b/max }

func from(a, b, _, _, _ float64) float64 { return b - a }

func geometric(a, b, _, _, _ float64) float64 {
	if a+b == 0 {
		return 0
	}
	return 2 * a * b / (a + b)
}

func multiply(a, b, _, _, max float64) float64 { return a * b / max }

func screen(a, b, _, _, max float64) float64 { return a + b - a*b/max }

func hardLight(a, b, _, _, max float64) float64 {
	if a < max/2 {
		return 2 * a * b / max
	}
	return max * (1 - 2*(1-a/max)*(1-b/max))
}

// softLight follows the SVG compositing draft of March 2009.
func softLight(a, b, _, _, max float64) float64 {
	an := a / max
	bn := b / max
	switch {
	case 2*an <= 1:
		return max * (bn - (1-2*an)*bn*(1-bn))
	case 4*bn <= 1:
		return max * (bn + (2*an-1)*(4*bn*(4*bn+1)*(bn-1)+7*bn))
	default:
		return max * (bn + (2*an-1)*(math.Sqrt(bn)-bn))
	}
}

func hypot(a, b, _, _, _ float64) float64 { return math.Sqrt(a*a + b*b) }

func minus(a, b, _, _, _ float64) float64 { return a - b }

func darken(a, b, _, _, _ float64) float64 { return math.Min(a, b) }

func lighten(a, b, _, _, _ float64) float64 { return math.Max(a, b) }

func overlay(a, b, _, _, max float64) float64 {
	an := a / max
	bn := b / max
	if 2*bn <= 1 {
		return max * 2 * an * bn
	}
	return max * (1 - 2*(1-bn)*(1-an))
}

func colorDodge(a, b, _, _, max float64) float64 {
	if a >= max {
		return a
	}
	return max * math.Min(1, b/(max-a))
}

func colorBurn(a, b, _, _, max float64) float64 {
	if a <= 0 {
		return a
	}
	return max * (1 - math.Min(1, (max-b)/a))
}

func pinLight(a, b, _, _, max float64) float64 {
	half := max / 2
	if a >= half {
		return math.Max(b, (a-half)*2)
	}
	return math.Min(b, a*2)
}

func reflect(a, b, _, _, max float64) float64 {
	if b >= max {
		return max
	}
	return math.Min(max, a*a/(max-b))
}

func freeze(a, b, _, _, max float64) float64 {
	if b <= 0 {
		return 0
	}
	return math.Max(0, max*(1-math.Sqrt(math.Max(0, 1-a/max))/(b/max)))
}

func interpolated(a, b, _, _, max float64) float64 {
	an := a / max
	bn := b / max
	return max * (0.5 - 0.25*(math.Cos(math.Pi*an)-math.Cos(math.Pi*bn)))
}

func atop(a, b, alphaA, alphaB, max float64) float64 { return a*alphaB/max + b*(1-alphaA/max) }

func conjointOver(a, b, alphaA, alphaB, max float64) float64 {
	if alphaA > alphaB {
		return a
	}
	if alphaB <= 0 {
		return a + b
	}
	return a + b*(max-alphaA)/alphaB
}

func disjointOver(a, b, alphaA, alphaB, max float64) float64 {
	if alphaA+alphaB < max || alphaB <= 0 {
		return a + b
	}
	return a + b*(max-alphaA)/alphaB
}

func in(a, _, _, alphaB, max float64) float64 { return a * alphaB / max }

func matte(a, b, alphaA, _, max float64) float64 { return a*alphaA/max + b*(1-alphaA/max) }

func mask(_, b, alphaA, _, max float64) float64 { return b * alphaA / max }

func out(a, _, _, alphaB, max float64) float64 { return a * (1 - alphaB/max) }

func over(a, b, alphaA, _, max float64) float64 { return a + b*(1-alphaA/max) }

func stencil(_, b, alphaA, _, max float64) float64 { return b * (1 - alphaA/max) }

func under(a, b, _, alphaB, max float64) float64 { return a*(1-alphaB/max) + b }

func xor(a, b, alphaA, alphaB, max float64) float64 {
	return a*(1-alphaB/max) + b*(1-alphaA/max)
}
