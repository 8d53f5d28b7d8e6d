// Package musicslider provides a draggable slider TUI component, typically
// used as a playback position scrubber.
package musicslider

import (
	"math"
	"strings"

	"github.com/alkime/musicslider/internal/slider"
	"github.com/alkime/musicslider/internal/tui/style"
	"github.com/alkime/musicslider/pkg/uictl"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Track thickness levels (eighths of a cell, bottom aligned).
// Index 0 is never drawn; a track is at least one eighth thick.
const trackChars = " ▁▂▃▄▅▆▇█"

const defaultWidth = 40

// Metrics maps slider layout units onto terminal cells.
type Metrics struct {
	CellWidth  float64
	CellHeight float64
}

// DefaultMetrics makes one row hold the whole slider frame and one column
// match the knob centering correction.
var DefaultMetrics = Metrics{
	CellWidth:  slider.KnobCentering,
	CellHeight: slider.FrameHeight,
}

// Option configures a Model.
type Option func(*Model)

// WithIndicatorColor sets the color of the filled part of the track.
func WithIndicatorColor(c lipgloss.TerminalColor) Option {
	return func(m *Model) { m.indicator = c }
}

// WithBackgroundColor sets the color of the unfilled track.
func WithBackgroundColor(c lipgloss.TerminalColor) Option {
	return func(m *Model) { m.background = c }
}

// WithHeight binds the track thickness. The slider only reads it.
func WithHeight(h uictl.Binding[float64]) Option {
	return func(m *Model) { m.height = h }
}

// WithKnob replaces the knob view. It is called once per View.
func WithKnob(knob func() string) Option {
	return func(m *Model) { m.knob = knob }
}

// WithOnChange registers a callback fired on every drag update.
func WithOnChange(fn func(float64)) Option {
	return func(m *Model) { m.onChange = fn }
}

// WithMetrics overrides the cell metrics. Metrics without a positive,
// finite cell size are ignored.
func WithMetrics(mt Metrics) Option {
	return func(m *Model) {
		if slider.Usable(mt.CellWidth) && slider.Usable(mt.CellHeight) {
			m.metrics = mt
		}
	}
}

// WithWidth sets the slider width in columns.
func WithWidth(cols int) Option {
	return func(m *Model) { m.width = cols }
}

// WithOrigin sets the screen cell of the slider's top-left corner, used to
// hit test mouse events.
func WithOrigin(x, y int) Option {
	return func(m *Model) { m.originX, m.originY = x, y }
}

// Model is a horizontal slider bound to an application owned value.
// It draws a background track, a fill proportional to value/total and a
// knob at the end of the fill, and turns left-button mouse drags into
// writes on the bound value.
type Model struct {
	value      uictl.Binding[float64]
	height     uictl.Binding[float64]
	indicator  lipgloss.TerminalColor
	background lipgloss.TerminalColor
	knob       func() string
	onChange   func(float64)
	onEnded    func(float64)
	metrics    Metrics
	width      int
	originX    int
	originY    int

	gesture slider.Gesture
}

// New creates a slider over [0, total] bound to value. onEnded is called
// once each time a drag completes.
func New(value uictl.Binding[float64], total float64, onEnded func(float64), opts ...Option) Model {
	m := Model{
		value:      value,
		height:     uictl.NewConstant(slider.DefaultHeight),
		indicator:  style.Indicator,
		background: style.TrackBackground,
		knob:       defaultKnob,
		onEnded:    onEnded,
		metrics:    DefaultMetrics,
		width:      defaultWidth,
	}

	for _, opt := range opts {
		opt(&m)
	}

	m.gesture = slider.NewGesture(m.value, total, m.onChange, m.onEnded)

	return m
}

func defaultKnob() string {
	return style.Knob.Render("●")
}

// Init implements tea.Model. The slider needs no startup command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles mouse drags over the slider.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.BlurMsg:
		// The terminal lost focus mid-drag; the release will never arrive.
		m.gesture.Cancel()
	}

	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Action { //nolint:exhaustive // only press/motion/release matter
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && m.hit(msg.X, msg.Y) {
			m.gesture.Begin(m.pointX(msg.X), m.trackWidth())
		}
	case tea.MouseActionMotion:
		if m.gesture.Dragging() {
			m.gesture.Move(m.pointX(msg.X), m.trackWidth())
		}
	case tea.MouseActionRelease:
		m.gesture.End()
	}
}

// hit reports whether the screen cell lies inside the slider frame.
func (m Model) hit(x, y int) bool {
	return x >= m.originX && x < m.originX+m.width &&
		y >= m.originY && y < m.originY+m.rows()
}

// pointX converts a screen column to a track x position. The first and
// last columns map to the two ends of the track.
func (m Model) pointX(col int) float64 {
	if m.width <= 1 {
		return 0
	}

	return float64(col-m.originX) * m.trackWidth() / float64(m.width-1)
}

func (m Model) trackWidth() float64 {
	return float64(m.width) * m.metrics.CellWidth
}

func (m Model) rows() int {
	return max(1, int(math.Ceil(slider.FrameHeight/m.metrics.CellHeight)))
}

// Geometry lays out the slider for its current value, total and width.
func (m Model) Geometry() slider.Geometry {
	return slider.Layout(m.value.Read(), m.gesture.Total(), m.trackWidth(), m.height.Read())
}

// View renders the slider frame.
func (m Model) View() string {
	if m.width <= 0 {
		return ""
	}

	g := m.Geometry()

	fillCols, knobCol := 0, 0
	if slider.Usable(m.gesture.Total()) && g.Valid() {
		fillCols = int(math.Round(g.FillWidth / m.metrics.CellWidth))
		knobCol = int(math.Round(g.KnobOffset / m.metrics.CellWidth))
	}

	// A terminal cannot draw past the frame, so out of range values are
	// pinned to its edges here.
	fillCols = min(max(fillCols, 0), m.width)

	glyph := m.trackGlyph()
	knob := m.knob()
	knobW := lipgloss.Width(knob)

	var sb strings.Builder

	if knobW == 0 || knobW > m.width {
		sb.WriteString(m.segment(0, m.width, fillCols, glyph))
	} else {
		knobCol = min(max(knobCol, 0), m.width-knobW)
		sb.WriteString(m.segment(0, knobCol, fillCols, glyph))
		sb.WriteString(knob)
		sb.WriteString(m.segment(knobCol+knobW, m.width, fillCols, glyph))
	}

	track := sb.String()

	rows := m.rows()
	if rows == 1 {
		return track
	}

	blank := strings.Repeat(" ", m.width)
	lines := make([]string, rows)

	for i := range lines {
		lines[i] = blank
	}

	lines[(rows-1)/2] = track

	return strings.Join(lines, "\n")
}

// segment renders track cells [from, to), coloring the ones left of fill.
func (m Model) segment(from, to, fill int, glyph string) string {
	if from >= to {
		return ""
	}

	var sb strings.Builder

	if split := min(max(fill, from), to); split > from {
		sb.WriteString(lipgloss.NewStyle().Foreground(m.indicator).
			Render(strings.Repeat(glyph, split-from)))
		from = split
	}

	if from < to {
		sb.WriteString(lipgloss.NewStyle().Foreground(m.background).
			Render(strings.Repeat(glyph, to-from)))
	}

	return sb.String()
}

// trackGlyph picks the block character matching the track thickness.
func (m Model) trackGlyph() string {
	h := m.height.Read()
	if math.IsNaN(h) {
		h = 0
	}

	// Clamp before converting so an infinite height stays in range.
	eighths := slider.Clamp(math.Round(h/m.metrics.CellHeight*8), 1, 8)

	return string([]rune(trackChars)[int(eighths)])
}

// Value returns the bound value.
func (m Model) Value() float64 {
	return m.value.Read()
}

// Total returns the range upper bound.
func (m Model) Total() float64 {
	return m.gesture.Total()
}

// SetTotal changes the range upper bound.
func (m *Model) SetTotal(total float64) {
	m.gesture.SetTotal(total)
}

// Dragging reports whether a drag is in progress.
func (m Model) Dragging() bool {
	return m.gesture.Dragging()
}

// Width returns the slider width in columns.
func (m Model) Width() int {
	return m.width
}

// SetWidth sets the slider width in columns.
func (m *Model) SetWidth(cols int) {
	m.width = cols
}

// SetOrigin moves the slider's top-left screen cell.
func (m *Model) SetOrigin(x, y int) {
	m.originX, m.originY = x, y
}
