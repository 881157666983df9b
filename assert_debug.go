//go:build fxdebug

package fxmath

// debugAssert panics with msg when cond is false.
func debugAssert(cond bool, msg string) {
	if !cond {
		panic("fxmath: " + msg)
	}
}
