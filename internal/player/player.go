// Package player provides playback transports whose position a slider can
// display and seek.
package player

import (
	"context"
	"time"
)

// Transport is a playable timeline.
type Transport interface {
	// Position returns the current playback position.
	Position() time.Duration
	// Duration returns the total length of the timeline.
	Duration() time.Duration
	// Seek moves the playback position, clamped to [0, Duration()].
	Seek(d time.Duration)

	// Toggle plays or pauses.
	Toggle(ctx context.Context) error
	// IsPlaying returns whether playback is running.
	IsPlaying() bool

	// Close releases any underlying resources.
	Close(ctx context.Context)
}

func clampPosition(d, total time.Duration) time.Duration {
	return min(max(d, 0), total)
}
