package wrapper

import (
	"github.com/justyntemme/clapgo/pkg/clap"
	"github.com/justyntemme/clapgo/pkg/event"
	"github.com/justyntemme/clapgo/pkg/framework/debug"

	"gitlab.com/gomidi/midi/v2"
)

// handleEvent routes one wire event. Parameter events take effect
// immediately; note and expression events are queued for the plugin's
// next process call. Events outside the core namespace are ignored.
func (w *Wrapper) handleEvent(ev any) {
	switch e := ev.(type) {
	case *clap.ParamValueEvent:
		if e.Header.SpaceID != clap.CoreEventSpaceID {
			return
		}
		if !w.UpdatePlainValueByHash(e.ParamID, ParamUpdate{Kind: PlainValueSet, Value: e.Value}) {
			debug.Debug("set for unknown parameter hash %#x", e.ParamID)
		}
	case *clap.ParamModEvent:
		if e.Header.SpaceID != clap.CoreEventSpaceID {
			return
		}
		if !w.UpdatePlainValueByHash(e.ParamID, ParamUpdate{Kind: PlainValueMod, Value: e.Amount}) {
			debug.Debug("modulation for unknown parameter hash %#x", e.ParamID)
		}
	case *clap.NoteEvent:
		if e.Header.SpaceID != clap.CoreEventSpaceID {
			return
		}
		switch e.Header.Type {
		case clap.EventNoteOn:
			w.enqueueEvent(&event.NoteOn{
				Header:   event.Header{Time: e.Header.Time},
				Channel:  uint8(e.Channel),
				Note:     uint8(e.Key),
				Velocity: float32(e.Velocity),
			})
		case clap.EventNoteOff, clap.EventNoteChoke:
			w.enqueueEvent(&event.NoteOff{
				Header:   event.Header{Time: e.Header.Time},
				Channel:  uint8(e.Channel),
				Note:     uint8(e.Key),
				Velocity: float32(e.Velocity),
			})
		}
	case *clap.NoteExpressionEvent:
		if e.Header.SpaceID != clap.CoreEventSpaceID {
			return
		}
		w.handleNoteExpression(e)
	case *clap.MIDIEvent:
		if e.Header.SpaceID != clap.CoreEventSpaceID {
			return
		}
		w.handleMIDI(e)
	default:
		debug.Warn("unhandled event: %v", ev)
	}
}

func (w *Wrapper) handleNoteExpression(e *clap.NoteExpressionEvent) {
	hdr := event.Header{Time: e.Header.Time}
	ch := uint8(e.Channel)
	note := uint8(e.Key)
	val := float32(e.Value)

	switch e.ExpressionID {
	case clap.NoteExpressionVolume:
		w.enqueueEvent(&event.PolyVolume{Header: hdr, Channel: ch, Note: note, Gain: val})
	case clap.NoteExpressionPan:
		w.enqueueEvent(&event.PolyPan{Header: hdr, Channel: ch, Note: note, Pan: val})
	case clap.NoteExpressionTuning:
		w.enqueueEvent(&event.PolyTuning{Header: hdr, Channel: ch, Note: note, Tuning: val})
	case clap.NoteExpressionVibrato:
		w.enqueueEvent(&event.PolyVibrato{Header: hdr, Channel: ch, Note: note, Vibrato: val})
	case clap.NoteExpressionExpression:
		w.enqueueEvent(&event.PolyExpression{Header: hdr, Channel: ch, Note: note, Expression: val})
	case clap.NoteExpressionBrightness:
		w.enqueueEvent(&event.PolyBrightness{Header: hdr, Channel: ch, Note: note, Brightness: val})
	case clap.NoteExpressionPressure:
		w.enqueueEvent(&event.PolyPressure{Header: hdr, Channel: ch, Note: note, Pressure: val})
	default:
		debug.Debug("unhandled note expression %d", e.ExpressionID)
	}
}

// handleMIDI decodes a raw three-byte message into the matching event.
// Controller values are scaled to [0, 1]; pitch bend uses the absolute
// 14-bit value with 0.5 as center.
func (w *Wrapper) handleMIDI(e *clap.MIDIEvent) {
	msg := midi.Message(e.Data[:])
	hdr := event.Header{Time: e.Header.Time}

	var (
		ch, key, vel uint8
		cc, ccVal    uint8
		rel          int16
		abs          uint16
	)
	switch {
	case msg.GetNoteStart(&ch, &key, &vel):
		w.enqueueEvent(&event.NoteOn{Header: hdr, Channel: ch, Note: key, Velocity: float32(vel) / 127.0})
	case msg.GetNoteOff(&ch, &key, &vel):
		w.enqueueEvent(&event.NoteOff{Header: hdr, Channel: ch, Note: key, Velocity: float32(vel) / 127.0})
	case msg.GetNoteEnd(&ch, &key):
		// A note on with zero velocity; there is no release velocity.
		w.enqueueEvent(&event.NoteOff{Header: hdr, Channel: ch, Note: key, Velocity: 0})
	case msg.GetPolyAfterTouch(&ch, &key, &vel):
		w.enqueueEvent(&event.PolyPressure{Header: hdr, Channel: ch, Note: key, Pressure: float32(vel) / 127.0})
	case msg.GetAfterTouch(&ch, &vel):
		w.enqueueEvent(&event.ChannelPressure{Header: hdr, Channel: ch, Pressure: float32(vel) / 127.0})
	case msg.GetControlChange(&ch, &cc, &ccVal):
		w.enqueueEvent(&event.ControlChange{Header: hdr, Channel: ch, Controller: cc, Value: float32(ccVal) / 127.0})
	case msg.GetPitchBend(&ch, &rel, &abs):
		w.enqueueEvent(&event.PitchBend{Header: hdr, Channel: ch, Value: float32(abs) / 16383.0})
	default:
		debug.Debug("unhandled MIDI message %s", msg)
	}
}

func (w *Wrapper) enqueueEvent(ev event.Event) {
	w.eventsMu.Lock()
	w.inputEvents = append(w.inputEvents, ev)
	w.eventsMu.Unlock()
}
