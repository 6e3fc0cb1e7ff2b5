package clap

import "unsafe"

// AudioBusBuffers describes one audio bus for one block. Data32 points at
// the host-owned array of per-channel sample pointers (a **float32); both
// levels of pointer are only valid for the duration of the process call.
type AudioBusBuffers struct {
	ChannelCount uint32
	Latency      uint32
	ConstantMask uint64
	Data32       unsafe.Pointer
}

// Channel32 returns the raw sample pointer for one channel.
func (b *AudioBusBuffers) Channel32(index uint32) *float32 {
	ptrs := unsafe.Slice((**float32)(b.Data32), b.ChannelCount)
	return ptrs[index]
}

// Process is the per-block payload handed to the wrapper's process call.
type Process struct {
	SteadyTime   int64
	FramesCount  uint32
	AudioInputs  []AudioBusBuffers
	AudioOutputs []AudioBusBuffers
	InEvents     EventList
}

// Stream is the host-provided stream used by the state extension.
type Stream interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
}
