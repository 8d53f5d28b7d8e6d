package audio

import (
	"github.com/gen2brain/malgo"
)

const (
	// DefaultSampleRate is the playback sample rate in Hz.
	DefaultSampleRate = 44_100
	// DefaultChannels is mono (1 channel).
	DefaultChannels = 1
)

// DeviceConfig configures a playback device. Only signed 16-bit samples are
// produced by the sources in this package.
type DeviceConfig struct {
	Format           malgo.FormatType
	PlaybackChannels int
	SampleRate       int
}

// DefaultDeviceConfig returns a mono S16 playback configuration.
func DefaultDeviceConfig() *DeviceConfig {
	return &DeviceConfig{
		Format:           malgo.FormatS16,
		PlaybackChannels: DefaultChannels,
		SampleRate:       DefaultSampleRate,
	}
}
