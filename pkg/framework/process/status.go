// Package process provides the per-block buffer view and processing
// context handed to a plugin's process call.
package process

// StatusKind discriminates the Status values a process call can report.
type StatusKind int

const (
	// KindError means processing failed for this block. The instance
	// stays alive; the host just discards the block.
	KindError StatusKind = iota
	// KindNormal means output was produced from live input.
	KindNormal
	// KindTail means the input has stopped but a tail (reverb, delay) is
	// still sounding for a known number of samples.
	KindTail
	// KindKeepAlive means the plugin produces output regardless of input
	// and must keep being called.
	KindKeepAlive
)

// Status is the result of one process call.
type Status struct {
	Kind StatusKind
	// TailSamples is only meaningful for KindTail.
	TailSamples uint32
	// Err is only set for KindError.
	Err error
}

// Error reports a processing failure for the current block.
func Error(err error) Status {
	return Status{Kind: KindError, Err: err}
}

// Normal reports ordinary processing.
func Normal() Status {
	return Status{Kind: KindNormal}
}

// Tail reports that a tail of the given length is still sounding.
func Tail(samples uint32) Status {
	return Status{Kind: KindTail, TailSamples: samples}
}

// KeepAlive reports that the plugin must keep being called.
func KeepAlive() Status {
	return Status{Kind: KindKeepAlive}
}
