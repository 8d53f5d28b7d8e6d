package player

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alkime/musicslider/internal/audio"
)

// Tone is a Transport that plays a generated tone through an audio device.
type Tone struct {
	dev  audio.Device
	tone *audio.Tone
}

// NewTone allocates a playback device for a tone of the given frequency and
// length. The transport starts paused.
func NewTone(ctx context.Context, dev audio.Device, conf *audio.DeviceConfig, freq float64, length time.Duration) (*Tone, error) {
	tone := audio.NewTone(freq, length, conf)

	if err := dev.Play(ctx, tone); err != nil {
		return nil, fmt.Errorf("failed to prepare playback: %w", err)
	}

	return &Tone{dev: dev, tone: tone}, nil
}

func (t *Tone) Position() time.Duration {
	return t.tone.Position()
}

func (t *Tone) Duration() time.Duration {
	return t.tone.Duration()
}

func (t *Tone) Seek(d time.Duration) {
	t.tone.Seek(d)
}

func (t *Tone) Toggle(ctx context.Context) error {
	if !t.dev.IsStarted() && t.tone.Done() {
		t.tone.Seek(0)
	}

	if err := t.dev.Toggle(ctx); err != nil {
		return fmt.Errorf("failed to toggle playback: %w", err)
	}

	return nil
}

// IsPlaying reports false once the tone has played out, even though the
// device keeps running and emitting silence.
func (t *Tone) IsPlaying() bool {
	return t.dev.IsStarted() && !t.tone.Done()
}

func (t *Tone) Close(ctx context.Context) {
	if err := t.dev.Stop(ctx); err != nil {
		slog.Error("failed to stop audio device", "error", err)
	}

	t.dev.Dealloc(ctx)
	slog.Debug("Audio device deallocated")
}
