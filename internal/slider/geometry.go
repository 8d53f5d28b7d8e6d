// Package slider implements the geometry and drag gesture handling of a
// horizontal value slider. It knows nothing about how the slider is drawn;
// renderers turn a Geometry into pixels or terminal cells.
package slider

import "math"

const (
	// DefaultHeight is the default track thickness.
	DefaultHeight = 6.0

	// FrameHeight is the fixed height of the slider's bounding box.
	FrameHeight = 24.0

	// KnobCentering is subtracted from the fill width so the default knob
	// sits centered on the end of the fill.
	KnobCentering = 9.0
)

// Geometry is the laid out slider for one render pass. All lengths share
// the unit of the track width passed to Layout.
type Geometry struct {
	TrackWidth  float64
	TrackHeight float64
	FrameHeight float64
	FillWidth   float64
	KnobOffset  float64
}

// Valid reports whether the geometry is drawable. A zero or non-finite
// total produces a non-finite fill.
func (g Geometry) Valid() bool {
	return isFinite(g.FillWidth) && isFinite(g.KnobOffset)
}

// Ratio returns value/total. It is deliberately unguarded: a zero total
// yields ±Inf (or NaN for 0/0) and a value outside [0, total] yields a
// ratio outside [0, 1].
func Ratio(value, total float64) float64 {
	return value / total
}

// Layout computes the slider geometry for a track of the given width and
// thickness.
func Layout(value, total, width, height float64) Geometry {
	fill := Ratio(value, total) * width

	return Geometry{
		TrackWidth:  width,
		TrackHeight: height,
		FrameHeight: FrameHeight,
		FillWidth:   fill,
		KnobOffset:  fill - KnobCentering,
	}
}

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	return min(max(lo, x), hi)
}

// ValueAt maps a pointer x position on a track of the given width to a
// value in [0, total].
func ValueAt(x, width, total float64) float64 {
	return (Clamp(x, 0, width) / width) * total
}

// Usable reports whether total describes a range the slider can operate
// on. Non-positive or non-finite totals disable the slider.
func Usable(total float64) bool {
	return total > 0 && isFinite(total)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
