//go:build !fxdebug

package fxmath

// debugAssert is a no-op in release builds. Build with -tags fxdebug to
// turn precondition violations into panics.
func debugAssert(bool, string) {}
