// Package wrapper bridges a host's CLAP-shaped callback protocol onto a
// plugin implementation. It owns the instance state machine, the
// parameter registry and update protocol, event dispatch, the output
// buffer view and the main-thread task queue.
package wrapper

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/justyntemme/clapgo/pkg/clap"
	"github.com/justyntemme/clapgo/pkg/event"
	"github.com/justyntemme/clapgo/pkg/framework/bus"
	"github.com/justyntemme/clapgo/pkg/framework/debug"
	"github.com/justyntemme/clapgo/pkg/framework/param"
	plug "github.com/justyntemme/clapgo/pkg/framework/plugin"
	"github.com/justyntemme/clapgo/pkg/framework/process"
)

// Lifecycle states. Transitions only move along
// created -> initialized -> activated -> processing and back; Process is
// valid from activated onward.
const (
	stateCreated int32 = iota
	stateInitialized
	stateActivated
	stateProcessing
	stateDestroyed
)

// inputEventCapacity is the number of decoded events kept without
// reallocating. Blocks carrying more still work; the append just grows
// the backing array outside the steady state.
const inputEventCapacity = 512

// Wrapper is one plugin instance as the host sees it. The host may call
// lifecycle and query methods from any thread; the audio thread calls
// Process. All host-facing methods degrade to failure returns instead of
// panicking.
type Wrapper struct {
	// mu guards the plugin's own state. Process takes it exclusively;
	// main-thread queries that reach into the plugin share it.
	mu     sync.RWMutex
	plugin plug.Plugin

	// registry is immutable after construction and safe everywhere.
	registry *param.Registry

	busConfig    atomic.Pointer[bus.Config]
	bufferConfig atomic.Pointer[bus.BufferConfig] // nil until first successful activate

	// bypass is the synthesized bypass parameter. It is reported and
	// edited through the params extension but intentionally not yet
	// wired into the processing decision.
	bypass  atomic.Bool
	latency atomic.Uint32

	eventsMu    sync.Mutex
	inputEvents []event.Event

	// bufMu guards the output buffer view storage independently of the
	// plugin state, so sizing at activation and binding per block never
	// interleave.
	bufMu        sync.RWMutex
	outputBuffer process.Buffer

	host        clap.Host
	threadCheck clap.ThreadChecker
	latencyHost clap.LatencyHost

	tasks         chan Task
	mainGoroutine uint64

	state atomic.Int32
}

// New builds a wrapper around a plugin for one host instance. It computes
// the parameter registry up front; a plugin that declares the reserved
// bypass ID or a colliding hash fails here, before the host ever sees the
// instance. The calling goroutine is recorded as the main thread fallback
// for hosts without the thread-check capability.
func New(p plug.Plugin, host clap.Host) (*Wrapper, error) {
	if p == nil {
		return nil, errors.New("wrapper: nil plugin")
	}
	if host == nil {
		return nil, errors.New("wrapper: nil host")
	}

	registry, err := param.NewRegistry(p.ParameterIDs(), p.Parameters())
	if err != nil {
		return nil, err
	}

	w := &Wrapper{
		plugin:        p,
		registry:      registry,
		host:          host,
		tasks:         make(chan Task, TaskQueueCapacity),
		mainGoroutine: goroutineID(),
		inputEvents:   make([]event.Event, 0, inputEventCapacity),
	}

	cfg := p.Buses()
	w.busConfig.Store(&cfg)

	if tc, ok := host.GetExtension(clap.ExtHostThreadCheck).(clap.ThreadChecker); ok {
		w.threadCheck = tc
	}
	if lh, ok := host.GetExtension(clap.ExtHostLatency).(clap.LatencyHost); ok {
		w.latencyHost = lh
	}

	return w, nil
}

// Init completes construction from the host's side. No work is needed
// beyond the transition.
func (w *Wrapper) Init() bool {
	return w.state.CompareAndSwap(stateCreated, stateInitialized)
}

// Destroy marks the instance dead. The host must not call anything
// afterwards; memory is reclaimed by the collector.
func (w *Wrapper) Destroy() {
	w.state.Store(stateDestroyed)
}

// Activate fixes the sample rate and maximum block size for the upcoming
// processing run. Every parameter smoother is force-reset to its current
// value before the plugin sees the new configuration. Returns false,
// with no state change, when the plugin rejects the configuration.
func (w *Wrapper) Activate(sampleRate float64, minFrames, maxFrames uint32) bool {
	if w.state.Load() != stateInitialized {
		return false
	}

	busCfg := *w.busConfig.Load()
	bufferCfg := bus.BufferConfig{
		SampleRate:   sampleRate,
		MaxBlockSize: maxFrames,
	}

	w.registry.Each(func(_ uint32, p *param.Parameter) {
		p.UpdateSmoother(bufferCfg.SampleRate, true)
	})

	ctx := process.NewContext(bufferCfg, nil, w)
	w.mu.Lock()
	ok := w.plugin.Initialize(busCfg, bufferCfg, ctx)
	w.mu.Unlock()
	if !ok {
		return false
	}

	w.bufMu.Lock()
	w.outputBuffer.Resize(busCfg.NumOutputChannels)
	w.bufMu.Unlock()

	// Kept so the plugin can be reinitialized after a state restore.
	w.bufferConfig.Store(&bufferCfg)
	w.state.Store(stateActivated)
	return true
}

// Deactivate returns the instance to the initialized state.
func (w *Wrapper) Deactivate() {
	w.state.CompareAndSwap(stateActivated, stateInitialized)
}

// StartProcessing is advisory; no extra state is needed beyond the
// transition.
func (w *Wrapper) StartProcessing() bool {
	return w.state.CompareAndSwap(stateActivated, stateProcessing)
}

// StopProcessing undoes StartProcessing.
func (w *Wrapper) StopProcessing() {
	w.state.CompareAndSwap(stateProcessing, stateActivated)
}

// SetBusConfig replaces the IO configuration. Only legal while inactive.
func (w *Wrapper) SetBusConfig(cfg bus.Config) bool {
	if s := w.state.Load(); s == stateActivated || s == stateProcessing {
		return false
	}
	w.busConfig.Store(&cfg)
	return true
}

// BusConfig returns the current IO configuration.
func (w *Wrapper) BusConfig() bus.Config {
	return *w.busConfig.Load()
}

// Info returns the wrapped plugin's descriptor.
func (w *Wrapper) Info() plug.Info {
	return w.plugin.Info()
}

// Bypassed reports the synthesized bypass parameter's state.
func (w *Wrapper) Bypassed() bool {
	return w.bypass.Load()
}

// LatencySamples returns the plugin's last reported latency.
func (w *Wrapper) LatencySamples() uint32 {
	return w.latency.Load()
}

// SetLatencySamples records a latency change and defers the host
// notification to the main thread. Implements process.LatencyReporter;
// safe from the audio thread, and best-effort when the task queue is
// full.
func (w *Wrapper) SetLatencySamples(samples uint32) {
	w.latency.Store(samples)
	if !w.ScheduleTask(TaskLatencyChanged) {
		debug.Warn("task queue full, dropping latency change notification")
	}
}

// GetExtension performs capability discovery. The instance claims the
// parameters and state capabilities.
func (w *Wrapper) GetExtension(id string) any {
	switch id {
	case clap.ExtParams, clap.ExtState:
		return w
	default:
		return nil
	}
}

// Process runs one block. Valid between activate and deactivate only;
// any panic from plugin code is confined to an error status for this
// block so the audio context can never abort the host.
func (w *Wrapper) Process(proc *clap.Process) (status clap.ProcessStatus) {
	defer func() {
		if r := recover(); r != nil {
			debug.Error("panic in process call: %v", r)
			status = clap.ProcessError
		}
	}()

	if proc == nil {
		return clap.ProcessError
	}
	if s := w.state.Load(); s != stateActivated && s != stateProcessing {
		return clap.ProcessError
	}

	// Events are resolved once per block, up front; there is no way to
	// ask for the last event per parameter, so every one is dispatched.
	if proc.InEvents != nil {
		for i := uint32(0); i < proc.InEvents.Size(); i++ {
			w.handleEvent(proc.InEvents.Get(i))
		}
	}

	// A call with no frames or no output bus is an event flush.
	if proc.FramesCount == 0 || len(proc.AudioOutputs) == 0 {
		debug.Debug("process call with no audio, events flushed")
		return clap.ProcessContinue
	}

	// Supported setups: one input bus, one output bus, or both.
	debug.Assert(len(proc.AudioInputs) <= 1 && len(proc.AudioOutputs) <= 1,
		"the host provides more than one input or output bus")

	out := &proc.AudioOutputs[0]

	w.bufMu.Lock()
	debug.Assertf(uint32(w.outputBuffer.ChannelCount()) == out.ChannelCount,
		"output channel count %d does not match activation %d",
		out.ChannelCount, w.outputBuffer.ChannelCount())
	w.outputBuffer.Bind(out, proc.FramesCount)

	// Most hosts process in place; when the input pointers do not alias
	// the output, copy so the plugin can treat the output as in-place.
	if len(proc.AudioInputs) > 0 {
		in := &proc.AudioInputs[0]
		debug.Assert(in.ChannelCount <= out.ChannelCount,
			"stereo to mono and similar configurations are not supported")
		process.CopyNonAliased(in, out, proc.FramesCount)
	}

	cfg := w.bufferConfig.Load()

	w.eventsMu.Lock()
	ctx := process.NewContext(*cfg, w.inputEvents, w)

	w.mu.Lock()
	result := w.plugin.Process(&w.outputBuffer, ctx)
	w.mu.Unlock()

	w.inputEvents = w.inputEvents[:0]
	w.eventsMu.Unlock()
	w.bufMu.Unlock()

	switch result.Kind {
	case process.KindError:
		debug.Error("process error: %v", result.Err)
		return clap.ProcessError
	case process.KindNormal:
		return clap.ProcessContinueIfNotQuiet
	default: // KindTail, KindKeepAlive
		return clap.ProcessContinue
	}
}
