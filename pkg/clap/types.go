// Package clap models the CLAP host ABI surface the wrapper speaks.
//
// The real ABI is a set of C vtables; here each vtable is a Go interface
// with one implementation per supported host shim, and the wire structs
// mirror the C layouts closely enough that a cgo shim can fill them in
// with plain assignments.
package clap

// ProcessStatus is the value a process call reports back to the host.
type ProcessStatus int32

const (
	// ProcessError signals that processing failed for this block only.
	ProcessError ProcessStatus = 0
	// ProcessContinue asks the host to keep calling process.
	ProcessContinue ProcessStatus = 1
	// ProcessContinueIfNotQuiet asks the host to keep calling process
	// until the plugin's input falls silent.
	ProcessContinueIfNotQuiet ProcessStatus = 2
	// ProcessSleep tells the host the plugin has no more work to do.
	ProcessSleep ProcessStatus = 4
)

// Extension identifiers understood by Wrapper.GetExtension.
const (
	ExtParams = "clap.params"
	ExtState  = "clap.state"

	// Host-side extensions queried at construction time.
	ExtHostThreadCheck = "clap.thread-check"
	ExtHostLatency     = "clap.latency"
)

// Parameter info flags.
const (
	ParamIsStepped     uint32 = 1 << 0
	ParamIsPeriodic    uint32 = 1 << 1
	ParamIsHidden      uint32 = 1 << 2
	ParamIsReadOnly    uint32 = 1 << 3
	ParamIsBypass      uint32 = 1 << 4
	ParamIsAutomatable uint32 = 1 << 5
)

// ParamInfo describes one parameter to the host. Values are plain values:
// the normalized value multiplied by the step count for stepped parameters.
type ParamInfo struct {
	ID           uint32
	Flags        uint32
	Name         string
	Module       string
	MinValue     float64
	MaxValue     float64
	DefaultValue float64
}
