//go:build debug

package debug

// Assert logs an error when cond is false. Builds without the 'debug' tag
// compile this away entirely. Assertions flag unsupported host behavior;
// they must never abort, so a violation is logged and execution continues.
func Assert(cond bool, msg string) {
	if !cond {
		defaultLogger.Error("assertion failed: %s", msg)
	}
}

// Assertf is Assert with a format string.
func Assertf(cond bool, format string, args ...interface{}) {
	if !cond {
		defaultLogger.Error("assertion failed: "+format, args...)
	}
}
