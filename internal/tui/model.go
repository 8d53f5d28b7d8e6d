// Package tui implements the player screen: a playback position slider
// driven by a transport.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/alkime/musicslider/internal/player"
	"github.com/alkime/musicslider/internal/slider"
	"github.com/alkime/musicslider/internal/tui/components/musicslider"
	"github.com/alkime/musicslider/internal/tui/style"
	"github.com/alkime/musicslider/pkg/uictl"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	// scrubHeight is the track thickness while the user drags the knob.
	scrubHeight = 20.0

	seekStep     = 5 * time.Second
	tickInterval = 100 * time.Millisecond

	// sliderRow is the screen row the slider is drawn on.
	sliderRow = 2
)

// TickMsg refreshes the displayed playback position.
type TickMsg struct{}

// Config configures the player screen.
type Config struct {
	Cancel    context.CancelFunc
	Title     string
	Transport player.Transport
	// Width fixes the slider width in columns. Zero follows the terminal.
	Width int
	// SliderOptions customize the slider's appearance.
	SliderOptions []musicslider.Option
}

type model struct {
	ctx    context.Context
	config Config
	keys   KeyMap
	help   help.Model

	// position is the slider's bound value, in seconds.
	position *uictl.Cell[float64]
	height   *uictl.Cell[float64]
	slider   musicslider.Model
	seeks    int
}

// New creates the player screen.
func New(ctx context.Context, config Config) tea.Model {
	tr := config.Transport
	position := uictl.NewCell(tr.Position().Seconds())
	height := uictl.NewCell(slider.DefaultHeight)

	m := &model{
		ctx:      ctx,
		config:   config,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		position: position,
		height:   height,
	}

	opts := append([]musicslider.Option{
		musicslider.WithHeight(height),
		musicslider.WithOrigin(0, sliderRow),
		musicslider.WithOnChange(func(float64) {
			height.Set(scrubHeight)
		}),
	}, config.SliderOptions...)

	if config.Width > 0 {
		opts = append(opts, musicslider.WithWidth(config.Width))
	}

	m.slider = musicslider.New(position, tr.Duration().Seconds(), m.seekTo, opts...)

	return m
}

// seekTo is the slider's onEnded callback.
func (m *model) seekTo(seconds float64) {
	m.height.Set(slider.DefaultHeight)
	m.config.Transport.Seek(secondsToDuration(seconds))
	m.seeks++

	slog.Debug("seek", "position", seconds)
}

func (m *model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

func (m *model) Update(teaMsg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := teaMsg.(type) {
	case TickMsg:
		m.syncPosition()
		return m, tick()

	case tea.WindowSizeMsg:
		if m.config.Width <= 0 {
			m.slider.SetWidth(max(1, msg.Width))
		}
		m.help.Width = msg.Width

		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.slider, cmd = m.slider.Update(teaMsg)

	return m, cmd
}

func (m *model) handleKey(km tea.KeyMsg) (tea.Model, tea.Cmd) {
	tr := m.config.Transport

	switch {
	case key.Matches(km, m.keys.Quit):
		if m.config.Cancel != nil {
			m.config.Cancel()
		}

		return m, tea.Quit

	case key.Matches(km, m.keys.Toggle):
		if err := tr.Toggle(m.ctx); err != nil {
			slog.Error("toggle playback", "error", err)
		}

	case key.Matches(km, m.keys.SeekBack):
		tr.Seek(tr.Position() - seekStep)

	case key.Matches(km, m.keys.SeekForward):
		tr.Seek(tr.Position() + seekStep)
	}

	m.syncPosition()

	return m, nil
}

// syncPosition copies the transport position into the slider binding,
// unless the user is dragging the knob.
func (m *model) syncPosition() {
	if m.slider.Dragging() {
		return
	}

	m.position.Set(m.config.Transport.Position().Seconds())
}

func (m *model) View() string {
	tr := m.config.Transport

	var sb strings.Builder

	sb.WriteString(style.Title.Render(m.config.Title))
	sb.WriteString(" ")

	if tr.IsPlaying() {
		sb.WriteString(style.Success.Render("▶ Playing"))
	} else {
		sb.WriteString(style.Warning.Render("⏸ Paused"))
	}
	sb.WriteString("\n\n")

	sb.WriteString(m.slider.View())
	sb.WriteString("\n")

	sb.WriteString(m.timeLine(secondsToDuration(m.position.Read()), tr.Duration()))
	sb.WriteString("\n\n")

	sb.WriteString(m.help.View(m.keys))

	return sb.String()
}

// timeLine renders elapsed time on the left and total time on the right,
// spanning the slider width.
func (m *model) timeLine(elapsed, total time.Duration) string {
	left := style.Time.Render(formatDuration(elapsed))
	right := style.Time.Render(formatDuration(total))

	gap := m.slider.Width() - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return left + strings.Repeat(" ", gap) + right
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// formatDuration renders m:ss, or h:mm:ss for an hour or more.
func formatDuration(d time.Duration) string {
	d = max(d, 0).Round(time.Second)

	h := int(d / time.Hour)
	mins := int(d/time.Minute) % 60
	secs := int(d/time.Second) % 60

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, mins, secs)
	}

	return fmt.Sprintf("%d:%02d", mins, secs)
}
