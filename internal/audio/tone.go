package audio

import (
	"encoding/binary"
	"math"
	"sync/atomic"
	"time"
)

// toneAmplitude keeps the generated tone well below full scale.
const toneAmplitude = 0.25 * math.MaxInt16

// Tone is a seekable sine wave Source of fixed length. Its frame cursor
// is atomic so the UI can seek while the device thread is filling.
type Tone struct {
	freq       float64
	sampleRate int
	channels   int
	frames     int64

	cursor atomic.Int64
}

// NewTone creates a tone of the given frequency and duration.
func NewTone(freq float64, length time.Duration, conf *DeviceConfig) *Tone {
	if conf == nil {
		conf = DefaultDeviceConfig()
	}

	return &Tone{
		freq:       freq,
		sampleRate: conf.SampleRate,
		channels:   max(1, conf.PlaybackChannels),
		frames:     int64(length.Seconds() * float64(conf.SampleRate)),
	}
}

// Fill writes S16LE frames into out and advances the cursor. Past the end
// of the tone it writes silence.
func (t *Tone) Fill(out []byte) {
	frameSize := 2 * t.channels
	n := len(out) / frameSize
	pos := t.cursor.Load()

	for i := range n {
		var sample int16

		if frame := pos + int64(i); frame < t.frames {
			phase := 2 * math.Pi * t.freq * float64(frame) / float64(t.sampleRate)
			sample = int16(toneAmplitude * math.Sin(phase))
		}

		for ch := range t.channels {
			off := i*frameSize + ch*2
			binary.LittleEndian.PutUint16(out[off:], uint16(sample))
		}
	}

	// A concurrent Seek wins over this advance.
	t.cursor.CompareAndSwap(pos, min(pos+int64(n), t.frames))
}

// Seek moves the cursor, clamped to the tone's bounds.
func (t *Tone) Seek(d time.Duration) {
	frame := int64(d.Seconds() * float64(t.sampleRate))
	t.cursor.Store(min(max(frame, 0), t.frames))
}

// Position returns the current playback position.
func (t *Tone) Position() time.Duration {
	return t.framesToDuration(t.cursor.Load())
}

// Duration returns the tone length.
func (t *Tone) Duration() time.Duration {
	return t.framesToDuration(t.frames)
}

// Done reports whether every frame has been played.
func (t *Tone) Done() bool {
	return t.cursor.Load() >= t.frames
}

func (t *Tone) framesToDuration(frames int64) time.Duration {
	return time.Duration(frames) * time.Second / time.Duration(t.sampleRate)
}
