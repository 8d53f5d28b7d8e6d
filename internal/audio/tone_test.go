package audio_test

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/alkime/musicslider/internal/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toneConfig(rate, channels int) *audio.DeviceConfig {
	conf := audio.DefaultDeviceConfig()
	conf.SampleRate = rate
	conf.PlaybackChannels = channels

	return conf
}

func TestTone_DurationAndAdvance(t *testing.T) {
	t.Parallel()

	tone := audio.NewTone(440, 2*time.Second, toneConfig(1000, 1))
	assert.Equal(t, 2*time.Second, tone.Duration())
	assert.Equal(t, time.Duration(0), tone.Position())

	tone.Fill(make([]byte, 500*2))
	assert.Equal(t, 500*time.Millisecond, tone.Position())
	assert.False(t, tone.Done())
}

func TestTone_SilenceAfterEnd(t *testing.T) {
	t.Parallel()

	tone := audio.NewTone(100, 10*time.Millisecond, toneConfig(1000, 1))

	buf := make([]byte, 40*2)
	tone.Fill(buf)

	assert.True(t, tone.Done())
	assert.Equal(t, 10*time.Millisecond, tone.Position())

	for i := 10; i < 40; i++ {
		assert.Zero(t, binary.LittleEndian.Uint16(buf[i*2:]), "frame %d", i)
	}
}

func TestTone_ProducesSignal(t *testing.T) {
	t.Parallel()

	tone := audio.NewTone(100, time.Second, toneConfig(1000, 1))

	buf := make([]byte, 20*2)
	tone.Fill(buf)

	nonZero := 0
	for i := range 20 {
		if int16(binary.LittleEndian.Uint16(buf[i*2:])) != 0 {
			nonZero++
		}
	}

	assert.Greater(t, nonZero, 10)
}

func TestTone_ChannelsDuplicated(t *testing.T) {
	t.Parallel()

	tone := audio.NewTone(100, time.Second, toneConfig(1000, 2))

	buf := make([]byte, 8*4)
	tone.Fill(buf)

	for i := range 8 {
		left := binary.LittleEndian.Uint16(buf[i*4:])
		right := binary.LittleEndian.Uint16(buf[i*4+2:])
		require.Equal(t, left, right, "frame %d", i)
	}

	assert.Equal(t, 8*time.Millisecond, tone.Position())
}

func TestTone_SeekClamps(t *testing.T) {
	t.Parallel()

	tone := audio.NewTone(440, time.Second, toneConfig(1000, 1))

	tone.Seek(300 * time.Millisecond)
	assert.Equal(t, 300*time.Millisecond, tone.Position())

	tone.Seek(5 * time.Second)
	assert.Equal(t, time.Second, tone.Position())
	assert.True(t, tone.Done())

	tone.Seek(-time.Second)
	assert.Equal(t, time.Duration(0), tone.Position())
}

func TestNewDevice_NotAllocated(t *testing.T) {
	t.Parallel()

	dev := audio.NewDevice(nil)

	assert.False(t, dev.IsStarted())
	require.ErrorIs(t, dev.Start(t.Context()), audio.ErrNoDevice)
	require.ErrorIs(t, dev.Toggle(t.Context()), audio.ErrNoDevice)
	require.NoError(t, dev.Stop(t.Context()))
	dev.Dealloc(t.Context())
}
