// Package bus holds the IO and buffer configuration shared between the
// wrapper and the plugin.
package bus

// Config describes the single main input and output bus the wrapper
// supports. It may only change while the instance is inactive.
type Config struct {
	NumInputChannels  uint32
	NumOutputChannels uint32
}

// Stereo returns the default two-in, two-out configuration.
func Stereo() Config {
	return Config{NumInputChannels: 2, NumOutputChannels: 2}
}

// Mono returns a one-in, one-out configuration.
func Mono() Config {
	return Config{NumInputChannels: 1, NumOutputChannels: 1}
}

// BufferConfig is set once per activation and read by parameter smoothers
// and the plugin's own initialization.
type BufferConfig struct {
	SampleRate   float64
	MaxBlockSize uint32
}
