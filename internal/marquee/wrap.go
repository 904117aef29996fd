package marquee

import (
	"errors"
	"log/slog"
	"math"
)

// Env bundles the host services a wrap depends on.
type Env struct {
	Measurer  Measurer
	Scheduler *Scheduler
	Logger    *slog.Logger
}

func (e Env) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.Default()
}

// Wrap hosts one marquee. It owns the pristine template, the live strip and
// the driver animating it, and is the only thing that replaces them.
type Wrap struct {
	id       string
	opts     Options
	template *Template
	env      Env

	width   float64
	strip   *Strip
	driver  *Driver
	hovered bool
	err     error
}

// NewWrap creates an unbuilt wrap. The first Observe builds it.
func NewWrap(id string, tpl *Template, opts Options, env Env) (*Wrap, error) {
	if tpl == nil {
		return nil, ErrMissingTemplate
	}
	return &Wrap{
		id:       id,
		opts:     opts,
		template: tpl,
		env:      env,
		width:    math.NaN(),
	}, nil
}

// Observe reports the wrap's current layout width. Only a change in width
// counts; the same width again is ignored. On a change the wrap is rebuilt
// from its pristine template. It reports whether a rebuild happened.
func (w *Wrap) Observe(width float64) bool {
	if width < 0 || math.IsInf(width, 0) || math.IsNaN(width) {
		w.env.logger().Debug("marquee: ignoring invalid width", "wrap", w.id, "width", width)
		return false
	}
	if width == w.width {
		return false
	}
	prev := w.width
	w.width = width
	if !math.IsNaN(prev) {
		w.env.logger().Debug("marquee: width changed", "wrap", w.id, "from", prev, "to", width)
	}
	w.rebuild()
	return true
}

// rebuild cancels the current frame before anything else, then discards the
// strip and builds a fresh strip and driver.
func (w *Wrap) rebuild() {
	w.teardown()

	bw, err := MeasureBlock(w.env.Measurer, w.template, StripLayout{Gap: w.opts.Gap})
	if err == nil {
		w.strip, err = BuildStrip(w.template, w.width, bw)
	}
	if err != nil {
		w.err = err
		w.strip = nil
		if errors.Is(err, ErrDegenerateGeometry) || errors.Is(err, ErrInvalidWidth) {
			w.env.logger().Warn("marquee: build aborted", "wrap", w.id, "width", w.width, "error", err)
		} else {
			w.env.logger().Error("marquee: build failed", "wrap", w.id, "error", err)
		}
		return
	}
	w.err = nil

	w.driver = newDriver(w.strip, w.env.Scheduler, w.opts)
	w.driver.Start()
	if w.hovered && w.opts.PauseOnHover {
		w.driver.Pause()
	}

	w.env.logger().Debug("marquee: built strip",
		"wrap", w.id,
		"width", w.width,
		"block_width", bw,
		"blocks", w.strip.Len(),
	)
}

func (w *Wrap) teardown() {
	if w.driver != nil {
		w.driver.Cancel()
		w.driver = nil
	}
	if w.strip != nil {
		w.strip.detach()
		w.strip = nil
	}
}

// Teardown cancels the animation and discards the strip. The wrap is rebuilt
// by the next Observe with any width.
func (w *Wrap) Teardown() {
	w.teardown()
	w.width = math.NaN()
}

// SetHover soft-pauses the animation while the pointer is over the wrap,
// when the wrap asks for it.
func (w *Wrap) SetHover(over bool) {
	if w.hovered == over {
		return
	}
	w.hovered = over
	if !w.opts.PauseOnHover || w.driver == nil {
		return
	}
	if over {
		w.driver.Pause()
	} else {
		w.driver.Resume()
	}
}

func (w *Wrap) ID() string { return w.id }
func (w *Wrap) Options() Options { return w.opts }
func (w *Wrap) Template() *Template { return w.template }
func (w *Wrap) Width() float64 { return w.width }
func (w *Wrap) Hovered() bool { return w.hovered }

// Strip returns the live strip, or nil when the wrap is unbuilt or its build failed.
func (w *Wrap) Strip() *Strip { return w.strip }

// Driver returns the live driver, or nil when there is no strip.
func (w *Wrap) Driver() *Driver { return w.driver }

// Err returns the error from the last build attempt.
func (w *Wrap) Err() error { return w.err }
