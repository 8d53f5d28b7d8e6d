package slider

import "github.com/alkime/musicslider/pkg/uictl"

// Phase is the state of a drag gesture.
type Phase int

const (
	Idle Phase = iota
	Dragging
)

// Gesture turns drag events into writes on a bound value.
//
// Every Begin/Move sequence is closed by exactly one onEnded call, whether
// the host reports a normal End or an interrupting Cancel.
type Gesture struct {
	value    uictl.Binding[float64]
	total    float64
	onChange func(float64)
	onEnded  func(float64)
	phase    Phase
}

// NewGesture creates an idle gesture writing into value. onChange may be nil.
func NewGesture(
	value uictl.Binding[float64],
	total float64,
	onChange func(float64),
	onEnded func(float64),
) Gesture {
	return Gesture{
		value:    value,
		total:    total,
		onChange: onChange,
		onEnded:  onEnded,
		phase:    Idle,
	}
}

// Begin starts a drag at pointer x on a track of the given width.
func (g *Gesture) Begin(x, width float64) {
	g.Move(x, width)
}

// Move updates the bound value from pointer x and fires onChange.
// It is ignored when the slider is disabled.
func (g *Gesture) Move(x, width float64) {
	if !Usable(g.total) || width <= 0 {
		return
	}

	v := ValueAt(x, width, g.total)
	g.value.Set(v)
	g.phase = Dragging

	if g.onChange != nil {
		g.onChange(v)
	}
}

// End completes the drag and fires onEnded with the current value.
// Calling End while idle does nothing.
func (g *Gesture) End() {
	if g.phase != Dragging {
		return
	}

	g.phase = Idle

	if g.onEnded != nil {
		g.onEnded(g.value.Read())
	}
}

// Cancel handles an interrupted drag. It closes the gesture the same way
// End does.
func (g *Gesture) Cancel() {
	g.End()
}

// Phase returns the current gesture state.
func (g *Gesture) Phase() Phase {
	return g.phase
}

// Dragging reports whether a drag is in progress.
func (g *Gesture) Dragging() bool {
	return g.phase == Dragging
}

// SetTotal changes the range upper bound, e.g. once a track's duration is
// known.
func (g *Gesture) SetTotal(total float64) {
	g.total = total
}

// Total returns the range upper bound.
func (g *Gesture) Total() float64 {
	return g.total
}

// Value returns the bound value.
func (g *Gesture) Value() float64 {
	return g.value.Read()
}
