// Package plugin defines the capability set a plugin implementation hands
// to the wrapper.
package plugin

import (
	"github.com/justyntemme/clapgo/pkg/framework/bus"
	"github.com/justyntemme/clapgo/pkg/framework/param"
	"github.com/justyntemme/clapgo/pkg/framework/process"
)

// Plugin is the boundary between the wrapper and the actual audio
// processor. One instance is created per host instance and must not be
// shared; the wrapper serializes every call except where noted on the
// methods.
type Plugin interface {
	// Info returns the plugin's descriptor metadata.
	Info() Info

	// Buses declares the default IO configuration. Called once at
	// construction; later changes only happen while inactive.
	Buses() bus.Config

	// ParameterIDs declares the stable enumeration order of the string
	// parameter IDs. Hosts see parameters in exactly this order.
	ParameterIDs() []string

	// Parameters maps each declared ID to its handle. Handles must be at
	// their default values when the wrapper is constructed. The returned
	// map is read once; the handles themselves are borrowed for the
	// instance's lifetime.
	Parameters() map[string]*param.Parameter

	// Initialize is called on every activation with the configuration
	// for the upcoming processing run. Returning false rejects the
	// configuration and the activation fails.
	Initialize(busConfig bus.Config, bufferConfig bus.BufferConfig, ctx *process.Context) bool

	// Process renders one block into the bound output buffer. It runs on
	// the audio thread and must not block or allocate.
	Process(buffer *process.Buffer, ctx *process.Context) process.Status
}
