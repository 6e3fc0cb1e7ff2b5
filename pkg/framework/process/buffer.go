package process

import (
	"unsafe"

	"github.com/justyntemme/clapgo/pkg/clap"
)

// Buffer exposes the host's output channels to the plugin as ordinary
// slices. A nested slice cannot be built directly from the host's pointer
// to pointers without allocating, so the slice headers are preallocated at
// activation time and re-pointed at host memory every block.
//
// The re-pointed slices borrow host-owned memory that is only valid for
// the duration of one process call. Neither the plugin nor the wrapper may
// retain them past that call.
type Buffer struct {
	channels [][]float32
	frames   uint32
}

// Resize preallocates the per-channel slice headers. Called once per
// activation with the configured output channel count; the headers start
// empty and stay empty until the first Bind.
func (b *Buffer) Resize(channels uint32) {
	if uint32(cap(b.channels)) >= channels {
		b.channels = b.channels[:channels]
	} else {
		b.channels = make([][]float32, channels)
	}
	for i := range b.channels {
		b.channels[i] = nil
	}
	b.frames = 0
}

// Bind re-points every channel slice at the host's raw channel pointers
// for the current block, bounded to the block's frame count.
//
// This is the trust boundary with the host: the pointers in bus are only
// valid during the current call, so the resulting slices must not escape
// it. Bind allocates nothing.
func (b *Buffer) Bind(bus *clap.AudioBusBuffers, frames uint32) {
	for i := range b.channels {
		b.channels[i] = unsafe.Slice(bus.Channel32(uint32(i)), frames)
	}
	b.frames = frames
}

// Channel returns one bound output channel.
func (b *Buffer) Channel(index int) []float32 {
	return b.channels[index]
}

// Channels returns all bound output channels.
func (b *Buffer) Channels() [][]float32 {
	return b.channels
}

// ChannelCount returns the number of output channels.
func (b *Buffer) ChannelCount() int {
	return len(b.channels)
}

// Frames returns the frame count of the currently bound block.
func (b *Buffer) Frames() uint32 {
	return b.frames
}

// CopyNonAliased copies input samples into the output channels wherever
// the host did not hand over aliased (in-place) pointers. Most hosts
// process in place, making this a pointer comparison per channel; when the
// pointers differ the copy lets the plugin do plain in-place processing on
// the output. Channels are copied up to min(input, output); extra output
// channels are left untouched.
func CopyNonAliased(in, out *clap.AudioBusBuffers, frames uint32) {
	channels := in.ChannelCount
	if out.ChannelCount < channels {
		channels = out.ChannelCount
	}
	for ch := uint32(0); ch < channels; ch++ {
		inPtr := in.Channel32(ch)
		outPtr := out.Channel32(ch)
		if inPtr == outPtr {
			continue
		}
		copy(unsafe.Slice(outPtr, frames), unsafe.Slice(inPtr, frames))
	}
}
