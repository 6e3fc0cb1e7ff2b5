//go:build !debug

package debug

// Assert is a no-op when not built with the 'debug' tag.
func Assert(cond bool, msg string) {}

// Assertf is a no-op when not built with the 'debug' tag.
func Assertf(cond bool, format string, args ...interface{}) {}
