package tui

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alkime/musicslider/internal/player"
	"github.com/alkime/musicslider/internal/tui/components/musicslider"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// outputChecker provides helpers for testing teatest output.
type outputChecker struct {
	intervl, timeout time.Duration
}

func defaultChecker() outputChecker {
	return outputChecker{
		intervl: 50 * time.Millisecond,
		timeout: 3 * time.Second,
	}
}

func (o outputChecker) checkString(t *testing.T, tm *teatest.TestModel, substr string) {
	t.Helper()
	teatest.WaitFor(t, tm.Output(), func(buf []byte) bool {
		return bytes.Contains(buf, []byte(substr))
	},
		teatest.WithCheckInterval(o.intervl),
		teatest.WithDuration(o.timeout))
}

// stepClock is a time source the test advances by hand.
type stepClock struct {
	mu sync.Mutex
	t  time.Time
}

func (s *stepClock) now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.t
}

func (s *stepClock) advance(d time.Duration) {
	s.mu.Lock()
	s.t = s.t.Add(d)
	s.mu.Unlock()
}

func newTestModel(t *testing.T, tr player.Transport, opts ...musicslider.Option) (*teatest.TestModel, *bool) {
	t.Helper()

	cancelled := false
	m := New(context.Background(), Config{
		Cancel:        func() { cancelled = true },
		Title:         "Test Tone",
		Transport:     tr,
		SliderOptions: opts,
	})

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(31, 10))

	return tm, &cancelled
}

func quit(t *testing.T, tm *teatest.TestModel) *model {
	t.Helper()

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	fm := tm.FinalModel(t, teatest.WithFinalTimeout(3*time.Second))

	m, ok := fm.(*model)
	require.True(t, ok)

	return m
}

func TestPlayer_InitialView(t *testing.T) {
	checker := defaultChecker()
	tr := player.NewClockWithNow(3*time.Minute+30*time.Second, (&stepClock{}).now)

	tm, cancelled := newTestModel(t, tr)

	checker.checkString(t, tm, "Test Tone")
	checker.checkString(t, tm, "Paused")
	checker.checkString(t, tm, "3:30")
	checker.checkString(t, tm, "play/pause")

	quit(t, tm)
	assert.True(t, *cancelled)
}

func TestPlayer_TogglePlaysAndTicks(t *testing.T) {
	checker := defaultChecker()
	clk := &stepClock{t: time.Unix(0, 0)}
	tr := player.NewClockWithNow(time.Minute, clk.now)

	tm, _ := newTestModel(t, tr)

	tm.Send(tea.KeyMsg{Type: tea.KeySpace})
	checker.checkString(t, tm, "Playing")

	clk.advance(42 * time.Second)
	checker.checkString(t, tm, "0:42")

	m := quit(t, tm)
	assert.InDelta(t, 42.0, m.position.Read(), 1e-9)
}

func TestPlayer_KeySeek(t *testing.T) {
	tr := player.NewClockWithNow(time.Minute, (&stepClock{}).now)
	tr.Seek(20 * time.Second)

	tm, _ := newTestModel(t, tr)

	tm.Send(tea.KeyMsg{Type: tea.KeyRight})
	tm.Send(tea.KeyMsg{Type: tea.KeyRight})
	tm.Send(tea.KeyMsg{Type: tea.KeyLeft})

	m := quit(t, tm)
	assert.Equal(t, 25*time.Second, tr.Position())
	assert.InDelta(t, 25.0, m.position.Read(), 1e-9)
}

func TestPlayer_DragSeeks(t *testing.T) {
	checker := defaultChecker()
	tr := player.NewClockWithNow(time.Minute, (&stepClock{}).now)

	tm, _ := newTestModel(t, tr)
	checker.checkString(t, tm, "1:00")

	// 31 columns: column 15 is the middle of the track
	tm.Send(tea.MouseMsg{X: 15, Y: sliderRow, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	tm.Send(tea.MouseMsg{X: 100, Y: sliderRow, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	tm.Send(tea.MouseMsg{X: 15, Y: sliderRow, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	tm.Send(tea.MouseMsg{X: 15, Y: sliderRow, Action: tea.MouseActionRelease})

	checker.checkString(t, tm, "0:30")

	m := quit(t, tm)
	assert.Equal(t, 30*time.Second, tr.Position())
	assert.Equal(t, 1, m.seeks)
	assert.False(t, m.slider.Dragging())
}

func TestPlayer_ScrubThickensTrack(t *testing.T) {
	tr := player.NewClockWithNow(time.Minute, (&stepClock{}).now)
	m, ok := New(context.Background(), Config{Title: "x", Transport: tr}).(*model)
	require.True(t, ok)

	m.Update(tea.WindowSizeMsg{Width: 20, Height: 10})

	m.Update(tea.MouseMsg{X: 3, Y: sliderRow, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.InDelta(t, scrubHeight, m.height.Read(), 0)
	assert.Contains(t, m.View(), "▇")

	// ticks do not fight the drag
	m.Update(TickMsg{})
	assert.InDelta(t, 3.0/19*60, m.position.Read(), 1e-9)

	m.Update(tea.MouseMsg{X: 3, Y: sliderRow, Action: tea.MouseActionRelease})
	assert.NotContains(t, m.View(), "▇")
	assert.Contains(t, m.View(), "▂")
}

func TestPlayer_BlurEndsScrub(t *testing.T) {
	tr := player.NewClockWithNow(time.Minute, (&stepClock{}).now)
	m, ok := New(context.Background(), Config{Title: "x", Transport: tr}).(*model)
	require.True(t, ok)

	m.Update(tea.WindowSizeMsg{Width: 11, Height: 10})
	m.Update(tea.MouseMsg{X: 10, Y: sliderRow, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.BlurMsg{})

	assert.Equal(t, time.Minute, tr.Position())
	assert.Equal(t, 1, m.seeks)
}

func TestPlayer_FixedWidthIgnoresTerminalSize(t *testing.T) {
	checker := defaultChecker()
	tr := player.NewClockWithNow(time.Minute, (&stepClock{}).now)

	m := New(context.Background(), Config{Title: "Fixed", Transport: tr, Width: 12})
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(31, 10))

	checker.checkString(t, tm, "Fixed")

	// last column of the 12-wide slider is the end of the track
	tm.Send(tea.MouseMsg{X: 11, Y: sliderRow, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	tm.Send(tea.MouseMsg{X: 11, Y: sliderRow, Action: tea.MouseActionRelease})
	checker.checkString(t, tm, "1:00")

	fm := quit(t, tm)
	assert.Equal(t, 12, fm.slider.Width())
	assert.Equal(t, time.Minute, tr.Position())
}

func TestPlayer_ZeroWidthFollowsTerminal(t *testing.T) {
	tr := player.NewClockWithNow(time.Minute, (&stepClock{}).now)
	m, ok := New(context.Background(), Config{Title: "x", Transport: tr}).(*model)
	require.True(t, ok)

	m.Update(tea.WindowSizeMsg{Width: 50, Height: 10})
	assert.Equal(t, 50, m.slider.Width())

	m.Update(tea.WindowSizeMsg{Width: 25, Height: 10})
	assert.Equal(t, 25, m.slider.Width())
}

func TestPlayer_CustomKnob(t *testing.T) {
	checker := defaultChecker()
	tr := player.NewClockWithNow(time.Minute, (&stepClock{}).now)

	tm, _ := newTestModel(t, tr, musicslider.WithKnob(func() string { return "◆" }))
	checker.checkString(t, tm, "◆")

	quit(t, tm)
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   time.Duration
		want string
	}{
		{in: 0, want: "0:00"},
		{in: 9 * time.Second, want: "0:09"},
		{in: 3*time.Minute + 30*time.Second, want: "3:30"},
		{in: time.Hour + 2*time.Minute + 3*time.Second, want: "1:02:03"},
		{in: -time.Second, want: "0:00"},
		{in: 1499 * time.Millisecond, want: "0:01"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatDuration(tt.in), "%v", tt.in)
	}
}
