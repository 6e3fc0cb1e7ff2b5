package clap

// CoreEventSpaceID is the namespace of the events defined by the core
// protocol. Events from other namespaces are passed through untouched and
// ignored by the wrapper.
const CoreEventSpaceID uint16 = 0

// Core event types.
const (
	EventNoteOn         uint16 = 0
	EventNoteOff        uint16 = 1
	EventNoteChoke      uint16 = 2
	EventNoteExpression uint16 = 3
	EventParamValue     uint16 = 4
	EventParamMod       uint16 = 5
	EventMIDI           uint16 = 6
)

// Note expression identifiers carried by NoteExpressionEvent.
const (
	NoteExpressionVolume     int32 = 0
	NoteExpressionPan        int32 = 1
	NoteExpressionTuning     int32 = 2
	NoteExpressionVibrato    int32 = 3
	NoteExpressionExpression int32 = 4
	NoteExpressionBrightness int32 = 5
	NoteExpressionPressure   int32 = 6
)

// EventHeader is the common prefix of every wire event. Time is the sample
// offset within the current block.
type EventHeader struct {
	Size    uint32
	Time    uint32
	SpaceID uint16
	Type    uint16
	Flags   uint32
}

// ParamValueEvent sets a parameter to an absolute plain value.
type ParamValueEvent struct {
	Header  EventHeader
	ParamID uint32
	Value   float64

	NoteID  int32
	Channel int16
	Key     int16
}

// ParamModEvent adds a delta to a parameter's current plain value.
type ParamModEvent struct {
	Header  EventHeader
	ParamID uint32
	Amount  float64

	NoteID  int32
	Channel int16
	Key     int16
}

// NoteEvent is a note on/off/choke in the core dialect. Velocity is
// normalized to [0, 1].
type NoteEvent struct {
	Header    EventHeader
	NoteID    int32
	PortIndex int16
	Channel   int16
	Key       int16
	Velocity  float64
}

// NoteExpressionEvent carries a per-note expression value. The range of
// Value depends on ExpressionID: gain ratio for volume, [-1, 1] for pan,
// semitones for tuning, [0, 1] for the rest.
type NoteExpressionEvent struct {
	Header       EventHeader
	ExpressionID int32
	NoteID       int32
	PortIndex    int16
	Channel      int16
	Key          int16
	Value        float64
}

// MIDIEvent is a raw three-byte MIDI 1.0 message.
type MIDIEvent struct {
	Header    EventHeader
	PortIndex uint16
	Data      [3]byte
}

// EventList is the host's view over the events for one process or flush
// call. Get returns a pointer to one of the event structs above; the
// wrapper type-switches on it the way the C side casts the header.
type EventList interface {
	Size() uint32
	Get(index uint32) any
}

// Events is a slice-backed EventList for hosts living in the same
// process.
type Events []any

func (e Events) Size() uint32         { return uint32(len(e)) }
func (e Events) Get(index uint32) any { return e[index] }
