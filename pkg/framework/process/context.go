package process

import (
	"github.com/justyntemme/clapgo/pkg/event"
	"github.com/justyntemme/clapgo/pkg/framework/bus"
)

// LatencyReporter is the wrapper-side sink for plugin latency changes.
type LatencyReporter interface {
	// SetLatencySamples records the plugin's current latency and, when
	// needed, defers notifying the host to its main thread. Safe to call
	// from the audio thread.
	SetLatencySamples(samples uint32)
}

// Context carries the per-call environment into a plugin's initialize and
// process capabilities. It borrows the wrapper's event list for the
// duration of the call.
type Context struct {
	BufferConfig bus.BufferConfig

	events  []event.Event
	latency LatencyReporter
}

// NewContext builds a context over the given block's events. The events
// slice is borrowed, not copied.
func NewContext(cfg bus.BufferConfig, events []event.Event, latency LatencyReporter) *Context {
	return &Context{
		BufferConfig: cfg,
		events:       events,
		latency:      latency,
	}
}

// Events returns the input events for the current block, ordered as the
// host delivered them. The slice is only valid during the current call.
func (c *Context) Events() []event.Event {
	return c.events
}

// SetLatency reports the plugin's latency in samples. The host is
// notified asynchronously on its main thread.
func (c *Context) SetLatency(samples uint32) {
	if c.latency != nil {
		c.latency.SetLatencySamples(samples)
	}
}
