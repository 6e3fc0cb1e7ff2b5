// Package event defines the note and expression events delivered to a
// plugin's process call. All timings are sample offsets within the current
// block; channel and note numbers are zero-indexed and passed through
// without validation.
package event

import (
	"fmt"

	"github.com/justyntemme/clapgo/pkg/framework/debug"
)

// Event is one incoming performance event. Implementations are pointers to
// the structs below so SubtractTiming can adjust timing in place.
type Event interface {
	// Timing returns the sample within the current block this event
	// belongs to.
	Timing() uint32
	// SubtractTiming shifts the event earlier, used to renormalize
	// offsets when an upstream stage read all of a block's events before
	// knowing the sub-block boundary. Shifting past zero is a caller bug.
	SubtractTiming(samples uint32)
	String() string
}

// Header carries the timing shared by every event kind.
type Header struct {
	Time uint32
}

// Timing returns the sample offset within the current block.
func (h *Header) Timing() uint32 {
	return h.Time
}

// SubtractTiming shifts the event earlier by the given number of samples.
func (h *Header) SubtractTiming(samples uint32) {
	debug.Assert(samples <= h.Time, "event timing shifted past zero")
	h.Time -= samples
}

// NoteOn starts a note. Velocity is normalized to [0, 1].
type NoteOn struct {
	Header
	Channel  uint8
	Note     uint8
	Velocity float32
}

func (e *NoteOn) String() string {
	return fmt.Sprintf("NoteOn{ch:%d, note:%d, vel:%.3f, t:%d}", e.Channel, e.Note, e.Velocity, e.Time)
}

// NoteOff ends a note. Velocity is normalized to [0, 1].
type NoteOff struct {
	Header
	Channel  uint8
	Note     uint8
	Velocity float32
}

func (e *NoteOff) String() string {
	return fmt.Sprintf("NoteOff{ch:%d, note:%d, vel:%.3f, t:%d}", e.Channel, e.Note, e.Velocity, e.Time)
}

// PolyPressure is polyphonic aftertouch for one note, normalized to [0, 1].
type PolyPressure struct {
	Header
	Channel  uint8
	Note     uint8
	Pressure float32
}

func (e *PolyPressure) String() string {
	return fmt.Sprintf("PolyPressure{ch:%d, note:%d, p:%.3f, t:%d}", e.Channel, e.Note, e.Pressure, e.Time)
}

// PolyVolume is a per-note volume expression. Gain is a voltage gain
// ratio, 1.0 being unity.
type PolyVolume struct {
	Header
	Channel uint8
	Note    uint8
	Gain    float32
}

func (e *PolyVolume) String() string {
	return fmt.Sprintf("PolyVolume{ch:%d, note:%d, gain:%.3f, t:%d}", e.Channel, e.Note, e.Gain, e.Time)
}

// PolyPan is a per-note panning expression, from -1 (hard left) to 1
// (hard right).
type PolyPan struct {
	Header
	Channel uint8
	Note    uint8
	Pan     float32
}

func (e *PolyPan) String() string {
	return fmt.Sprintf("PolyPan{ch:%d, note:%d, pan:%.3f, t:%d}", e.Channel, e.Note, e.Pan, e.Time)
}

// PolyTuning is a per-note tuning expression in semitones, from -120 to 120.
type PolyTuning struct {
	Header
	Channel uint8
	Note    uint8
	Tuning  float32
}

func (e *PolyTuning) String() string {
	return fmt.Sprintf("PolyTuning{ch:%d, note:%d, semi:%.3f, t:%d}", e.Channel, e.Note, e.Tuning, e.Time)
}

// PolyVibrato is a per-note vibrato expression, normalized to [0, 1].
type PolyVibrato struct {
	Header
	Channel uint8
	Note    uint8
	Vibrato float32
}

func (e *PolyVibrato) String() string {
	return fmt.Sprintf("PolyVibrato{ch:%d, note:%d, v:%.3f, t:%d}", e.Channel, e.Note, e.Vibrato, e.Time)
}

// PolyExpression is a per-note expression amount, normalized to [0, 1].
type PolyExpression struct {
	Header
	Channel    uint8
	Note       uint8
	Expression float32
}

func (e *PolyExpression) String() string {
	return fmt.Sprintf("PolyExpression{ch:%d, note:%d, e:%.3f, t:%d}", e.Channel, e.Note, e.Expression, e.Time)
}

// PolyBrightness is a per-note brightness expression, normalized to [0, 1].
type PolyBrightness struct {
	Header
	Channel    uint8
	Note       uint8
	Brightness float32
}

func (e *PolyBrightness) String() string {
	return fmt.Sprintf("PolyBrightness{ch:%d, note:%d, b:%.3f, t:%d}", e.Channel, e.Note, e.Brightness, e.Time)
}

// ChannelPressure is channel aftertouch, normalized to [0, 1].
type ChannelPressure struct {
	Header
	Channel  uint8
	Pressure float32
}

func (e *ChannelPressure) String() string {
	return fmt.Sprintf("ChannelPressure{ch:%d, p:%.3f, t:%d}", e.Channel, e.Pressure, e.Time)
}

// PitchBend is a channel pitch bend, normalized to [0, 1] with 0.5 at
// center.
type PitchBend struct {
	Header
	Channel uint8
	Value   float32
}

func (e *PitchBend) String() string {
	return fmt.Sprintf("PitchBend{ch:%d, val:%.3f, t:%d}", e.Channel, e.Value, e.Time)
}

// ControlChange is a MIDI control change with the value normalized to
// [0, 1]; multiply by 127 to recover the raw value.
type ControlChange struct {
	Header
	Channel    uint8
	Controller uint8
	Value      float32
}

func (e *ControlChange) String() string {
	return fmt.Sprintf("CC{ch:%d, cc:%d, val:%.3f, t:%d}", e.Channel, e.Controller, e.Value, e.Time)
}
