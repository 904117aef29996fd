package marquee

import (
	"fmt"
	"math"
)

// Measurer reports the rendered width of a piece of content in the host's
// distance units (pixels for the window, cells for the terminal).
type Measurer interface {
	Measure(text string) float64
}

// MeasurerFunc adapts a function to the Measurer interface.
type MeasurerFunc func(text string) float64

func (f MeasurerFunc) Measure(text string) float64 { return f(text) }

// StripLayout carries the layout properties of the strip a block is placed in.
type StripLayout struct {
	Gap float64
}

// MeasureBlock returns the width of one block of tpl laid out in layout:
// rendered content width plus the strip's inter-block spacing.
func MeasureBlock(m Measurer, tpl *Template, layout StripLayout) (float64, error) {
	if tpl == nil {
		return 0, ErrMissingTemplate
	}
	w := m.Measure(tpl.Text()) + layout.Gap
	if !validBlockWidth(w) {
		return 0, fmt.Errorf("%w: block %q measured %v", ErrDegenerateGeometry, tpl.ID(), w)
	}
	return w, nil
}

func validBlockWidth(w float64) bool {
	return w > 0 && !math.IsInf(w, 0) && !math.IsNaN(w)
}
