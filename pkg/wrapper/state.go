package wrapper

import (
	"github.com/justyntemme/clapgo/pkg/clap"
	"github.com/justyntemme/clapgo/pkg/framework/debug"
	"github.com/justyntemme/clapgo/pkg/framework/param"
	"github.com/justyntemme/clapgo/pkg/framework/state"
)

// SaveState writes the parameter values and bypass flag to the host's
// stream. May be called in any lifecycle state.
func (w *Wrapper) SaveState(stream clap.Stream) bool {
	if err := state.Save(stream, w.registry, w.bypass.Load()); err != nil {
		debug.Error("saving state: %v", err)
		return false
	}
	return true
}

// LoadState restores parameter values and the bypass flag from the
// host's stream. When the instance is active the smoothers snap to the
// restored values so the next block starts from them instead of ramping.
func (w *Wrapper) LoadState(stream clap.Stream) bool {
	bypassed, err := state.Load(stream, w.registry)
	if err != nil {
		debug.Error("loading state: %v", err)
		return false
	}
	w.bypass.Store(bypassed)

	if cfg := w.bufferConfig.Load(); cfg != nil {
		w.registry.Each(func(_ uint32, p *param.Parameter) {
			p.UpdateSmoother(cfg.SampleRate, true)
		})
	}
	return true
}
