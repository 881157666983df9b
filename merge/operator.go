package merge

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// ErrUnknownOperator is returned by ParseOperator for names that match no operator.
var ErrUnknownOperator = errors.New("merge: unknown operator")

// Operator identifies a compositing function.
//
// A, B are the source and destination channel values, a, b their alphas and
// M the full-intensity value of the pixel type.
type Operator uint8

const (
	Atop         Operator = iota // A*b/M + B*(1-a/M)
	Average                      // (A+B)/2
	ColorBurn                    // M - M*min(1, (M-B)/A), A if A <= 0
	ColorDodge                   // M*min(1, B/(M-A)), A if A >= M
	ConjointOver                 // A + B*(M-a)/b, A if a > b
	Copy                         // A
	Difference                   // |A-B|
	DisjointOver                 // A+B if a+b < M, else A + B*(M-a)/b
	Divide                       // A/B, 0 if B <= 0
	Exclusion                    // A + B - 2AB/M
	Freeze                       // max(0, M - M*sqrt(1-A/M)*M/B), 0 if B <= 0
	From                         // B-A
	Geometric                    // 2AB/(A+B)
	HardLight                    // 2AB/M if A < M/2, else M - 2(M-A)(M-B)/M
	Hypot                        // sqrt(A*A + B*B)
	In                           // A*b/M
	Interpolated                 // M/2 - M/4*(cos(pi*A/M) - cos(pi*B/M))
	Mask                         // B*a/M
	Matte                        // A*a/M + B*(1-a/M)
	Lighten                      // max(A, B)
	Darken                       // min(A, B)
	Minus                        // A-B
	Multiply                     // AB/M
	Out                          // A*(1-b/M)
	Over                         // A + B*(1-a/M)
	Overlay                      // 2AB/M if B <= M/2, else M - 2(M-A)(M-B)/M
	PinLight                     // max(B, 2A-M) if A >= M/2, else min(B, 2A)
	Plus                         // A+B
	Reflect                      // min(M, A*A/(M-B)), M if B >= M
	Screen                       // A + B - AB/M
	SoftLight                    // M times SVG soft-light of A/M over B/M
	Stencil                      // B*(1-a/M)
	Under                        // A*(1-b/M) + B
	Xor                          // A*(1-b/M) + B*(1-a/M)

	operatorCount
)

var operatorNames = [operatorCount]string{
	Atop:         "atop",
	Average:      "average",
	ColorBurn:    "color-burn",
	ColorDodge:   "color-dodge",
	ConjointOver: "conjoint-over",
	Copy:         "copy",
	Difference:   "difference",
	DisjointOver: "disjoint-over",
	Divide:       "divide",
	Exclusion:    "exclusion",
	Freeze:       "freeze",
	From:         "from",
	Geometric:    "geometric",
	HardLight:    "hard-light",
	Hypot:        "hypot",
	In:           "in",
	Interpolated: "interpolated",
	Mask:         "mask",
	Matte:        "matte",
	Lighten:      "max",
	Darken:       "min",
	Minus:        "minus",
	Multiply:     "multiply",
	Out:          "out",
	Over:         "over",
	Overlay:      "overlay",
	PinLight:     "pinlight",
	Plus:         "plus",
	Reflect:      "reflect",
	Screen:       "screen",
	SoftLight:    "soft-light",
	Stencil:      "stencil",
	Under:        "under",
	Xor:          "xor",
}

// Operators whose result for a channel does not depend on the alpha
// channels. Only these honor alpha masking.
var maskable = [operatorCount]bool{
	Average:      true,
	ColorBurn:    true,
	ColorDodge:   true,
	Difference:   true,
	Divide:       true,
	Exclusion:    true,
	Freeze:       true,
	From:         true,
	Geometric:    true,
	HardLight:    true,
	Hypot:        true,
	Interpolated: true,
	Lighten:      true,
	Darken:       true,
	Minus:        true,
	Multiply:     true,
	Overlay:      true,
	PinLight:     true,
	Plus:         true,
	Reflect:      true,
	SoftLight:    true,
}

var usesAlpha = [operatorCount]bool{
	Atop:         true,
	ConjointOver: true,
	DisjointOver: true,
	In:           true,
	Mask:         true,
	Matte:        true,
	Out:          true,
	Over:         true,
	Stencil:      true,
	Under:        true,
	Xor:          true,
}

var aliases = map[string]Operator{
	"lighten":   Lighten,
	"darken":    Darken,
	"pin-light": PinLight,
}

var operatorsByName = func() map[string]Operator {
	m := make(map[string]Operator, len(operatorNames)+len(aliases))
	for i, name := range operatorNames {
		m[name] = Operator(i)
	}
	for name, op := range aliases {
		m[name] = op
	}
	return m
}()

// Valid reports whether op is a known operator.
func (op Operator) Valid() bool {
	return op < operatorCount
}

// String returns the canonical name of the operator.
func (op Operator) String() string {
	if !op.Valid() {
		return fmt.Sprintf("Operator(%d)", op)
	}
	return operatorNames[op]
}

// Maskable reports whether op honors alpha masking. Operators that read
// the alpha channels (over, in, out...) and copy or screen never do.
// Unknown operators are not maskable.
func (op Operator) Maskable() bool {
	return op.Valid() && maskable[op]
}

// UsesAlpha reports whether op reads the alpha channels of its inputs.
func (op Operator) UsesAlpha() bool {
	return op.Valid() && usesAlpha[op]
}

// MarshalText implements encoding.TextMarshaler.
func (op Operator) MarshalText() ([]byte, error) {
	if !op.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOperator, op)
	}
	return []byte(operatorNames[op]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (op *Operator) UnmarshalText(text []byte) error {
	v, err := ParseOperator(string(text))
	if err != nil {
		return err
	}
	*op = v
	return nil
}

// Operators returns every operator in declaration order.
func Operators() []Operator {
	ops := make([]Operator, operatorCount)
	for i := range ops {
		ops[i] = Operator(i)
	}
	return ops
}

// ParseOperator looks an operator up by name. Matching is case-insensitive,
// ignores surrounding space and accepts "lighten", "darken" and "pin-light"
// besides the canonical names.
func ParseOperator(name string) (Operator, error) {
	key := cases.Fold().String(strings.TrimSpace(name))
	if op, ok := operatorsByName[key]; ok {
		return op, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOperator, name)
}
