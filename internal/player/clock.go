package player

import (
	"context"
	"sync"
	"time"
)

// Clock is a Transport that plays nothing; its position advances with wall
// clock time while playing and stops at the end of the timeline.
type Clock struct {
	mu       sync.Mutex
	now      func() time.Time
	duration time.Duration
	offset   time.Duration // position when playback last (re)started
	started  time.Time     // zero while paused
}

// NewClock creates a paused clock transport of the given length.
func NewClock(duration time.Duration) *Clock {
	return NewClockWithNow(duration, time.Now)
}

// NewClockWithNow is NewClock with an injectable time source.
func NewClockWithNow(duration time.Duration, now func() time.Time) *Clock {
	return &Clock{
		now:      now,
		duration: max(duration, 0),
	}
}

func (c *Clock) Position() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.position()
}

func (c *Clock) position() time.Duration {
	pos := c.offset
	if !c.started.IsZero() {
		pos += c.now().Sub(c.started)
	}

	return clampPosition(pos, c.duration)
}

func (c *Clock) Duration() time.Duration {
	return c.duration
}

func (c *Clock) Seek(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.offset = clampPosition(d, c.duration)
	if !c.started.IsZero() {
		c.started = c.now()
	}
}

// Toggle never fails.
func (c *Clock) Toggle(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.started.IsZero() {
		c.offset = c.position()
		c.started = time.Time{}

		return nil
	}

	// Playing from the end restarts the timeline.
	if c.offset >= c.duration {
		c.offset = 0
	}

	c.started = c.now()

	return nil
}

// IsPlaying reports false once the end of the timeline is reached.
func (c *Clock) IsPlaying() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return !c.started.IsZero() && c.position() < c.duration
}

func (c *Clock) Close(_ context.Context) {}
