package wrapper

import (
	"github.com/justyntemme/clapgo/pkg/clap"
	"github.com/justyntemme/clapgo/pkg/framework/debug"
	"github.com/justyntemme/clapgo/pkg/framework/param"
)

// ParamUpdateKind distinguishes an absolute set from a relative
// modulation offset.
type ParamUpdateKind int

const (
	// PlainValueSet carries an absolute plain value.
	PlainValueSet ParamUpdateKind = iota
	// PlainValueMod carries a plain-value delta added onto the current
	// normalized value.
	PlainValueMod
)

// ParamUpdate is one pending change to a parameter, expressed in the
// host's plain-value domain.
type ParamUpdate struct {
	Kind  ParamUpdateKind
	Value float64
}

// UpdatePlainValueByHash applies an update addressed by parameter hash.
// Plain values are normalized values scaled by the step count, so the
// conversion back is a division by StepCountOr1. Returns false when the
// hash matches no parameter; the update is dropped.
func (w *Wrapper) UpdatePlainValueByHash(hash uint32, update ParamUpdate) bool {
	if hash == param.BypassHash() {
		switch update.Kind {
		case PlainValueSet:
			w.bypass.Store(update.Value >= 0.5)
		case PlainValueMod:
			// A modulation offset toggles by sign; zero leaves the
			// current state alone.
			if update.Value > 0.0 {
				w.bypass.Store(true)
			} else if update.Value < 0.0 {
				w.bypass.Store(false)
			}
		}
		return true
	}

	p, ok := w.registry.Lookup(hash)
	if !ok {
		return false
	}

	steps := float64(p.StepCountOr1())
	var normalized float64
	switch update.Kind {
	case PlainValueSet:
		normalized = update.Value / steps
	case PlainValueMod:
		normalized = p.NormalizedValue() + update.Value/steps
	}
	p.SetNormalizedValue(normalized)

	// Before activation there is no sample rate, so the smoother target
	// is refreshed lazily on the next activate instead.
	if cfg := w.bufferConfig.Load(); cfg != nil {
		p.UpdateSmoother(cfg.SampleRate, false)
	}
	return true
}

// ParamCount reports the declared parameters plus the synthesized bypass
// parameter, which always sits at the last index.
func (w *Wrapper) ParamCount() uint32 {
	return uint32(w.registry.Count()) + 1
}

// ParamInfo describes the parameter at a stable index. The bypass entry
// is stepped, automatable, off by default and flagged as the bypass
// control.
func (w *Wrapper) ParamInfo(index uint32) (clap.ParamInfo, bool) {
	declared := uint32(w.registry.Count())
	if index > declared {
		return clap.ParamInfo{}, false
	}

	if index == declared {
		return clap.ParamInfo{
			ID:           param.BypassHash(),
			Flags:        clap.ParamIsStepped | clap.ParamIsBypass | clap.ParamIsAutomatable,
			Name:         "Bypass",
			Module:       "",
			MinValue:     0.0,
			MaxValue:     1.0,
			DefaultValue: 0.0,
		}, true
	}

	hash := w.registry.Hashes()[index]
	p, _ := w.registry.Lookup(hash)
	def, _ := w.registry.DefaultNormalized(hash)

	flags := clap.ParamIsAutomatable
	if p.StepCount > 0 {
		flags |= clap.ParamIsStepped
	}
	steps := float64(p.StepCountOr1())

	return clap.ParamInfo{
		ID:           hash,
		Flags:        flags,
		Name:         p.Name,
		Module:       "",
		MinValue:     0.0,
		MaxValue:     steps,
		DefaultValue: def * steps,
	}, true
}

// ParamValue returns the current plain value for a parameter hash.
func (w *Wrapper) ParamValue(hash uint32) (float64, bool) {
	if hash == param.BypassHash() {
		if w.bypass.Load() {
			return 1.0, true
		}
		return 0.0, true
	}
	p, ok := w.registry.Lookup(hash)
	if !ok {
		return 0.0, false
	}
	return p.NormalizedValue() * float64(p.StepCountOr1()), true
}

// ParamValueToText formats a plain value for display.
func (w *Wrapper) ParamValueToText(hash uint32, value float64) (string, bool) {
	if hash == param.BypassHash() {
		if value > 0.5 {
			return "Bypassed", true
		}
		return "Not Bypassed", true
	}
	p, ok := w.registry.Lookup(hash)
	if !ok {
		return "", false
	}
	return p.NormalizedToString(value / float64(p.StepCountOr1())), true
}

// ParamTextToValue parses a display string back into a plain value.
func (w *Wrapper) ParamTextToValue(hash uint32, text string) (float64, bool) {
	if hash == param.BypassHash() {
		switch text {
		case "Bypassed":
			return 1.0, true
		case "Not Bypassed":
			return 0.0, true
		default:
			return 0.0, false
		}
	}
	p, ok := w.registry.Lookup(hash)
	if !ok {
		return 0.0, false
	}
	normalized, ok := p.StringToNormalized(text)
	if !ok {
		return 0.0, false
	}
	return normalized * float64(p.StepCountOr1()), true
}

// FlushParams processes parameter events outside of an audio block. The
// host calls this when the instance is inactive but automation still
// needs to land.
func (w *Wrapper) FlushParams(in clap.EventList) {
	if in == nil {
		return
	}
	for i := uint32(0); i < in.Size(); i++ {
		w.handleEvent(in.Get(i))
	}
	debug.Debug("flushed %d events", in.Size())
}
