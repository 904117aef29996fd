package term

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/iburimskiy/marquee/internal/config"
	"github.com/iburimskiy/marquee/internal/marquee"
)

// Measurer measures content in terminal cells.
var Measurer = marquee.MeasurerFunc(func(s string) float64 {
	return float64(runewidth.StringWidth(s))
})

// Host renders a page of marquees into a tcell screen, one wrap per row.
type Host struct {
	screen tcell.Screen
	page   *marquee.Page
	sched  *marquee.Scheduler
	logger *slog.Logger
	title  string
	fps    int

	width, height int
	mouseX        int
	mouseY        int
}

// New builds a host over an initialized screen. Wraps are discovered from
// layout with cell-width measurement.
func New(screen tcell.Screen, layout *config.Layout, fps int, logger *slog.Logger) *Host {
	sched := marquee.NewScheduler()
	page := marquee.NewPage(layout.Roots(), marquee.Env{
		Measurer:  Measurer,
		Scheduler: sched,
		Logger:    logger,
	})
	if fps <= 0 {
		fps = 60
	}

	h := &Host{
		screen: screen,
		page:   page,
		sched:  sched,
		logger: logger,
		title:  layout.Title,
		fps:    fps,
		mouseX: -1,
		mouseY: -1,
	}
	h.width, h.height = screen.Size()
	h.observe()
	return h
}

func (h *Host) Page() *marquee.Page { return h.page }

func (h *Host) Scheduler() *marquee.Scheduler { return h.sched }

func rowY(i int) int {
	return config.TermRowTop + i*config.TermRowStep
}

func (h *Host) rowWidth() float64 {
	return float64(max(0, h.width-2*config.TermMarginX))
}

// span returns the columns [left, right) a wrap scrolls across. Fullscreen
// wraps ignore the row margins.
func (h *Host) span(w *marquee.Wrap) (int, int) {
	if w.Options().Fullscreen {
		return 0, h.width
	}
	return config.TermMarginX, config.TermMarginX + int(h.rowWidth())
}

// observe hands each wrap its current width. Only the width is passed on;
// height changes never rebuild anything.
func (h *Host) observe() {
	n := h.page.ObserveEach(func(w *marquee.Wrap) float64 {
		left, right := h.span(w)
		return float64(right - left)
	})
	if n > 0 {
		h.logger.Debug("term: rebuilt wraps", "count", n, "width", h.width)
	}
}

// HandleEvent applies one input event. It returns false when the user asked to quit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}

	case *tcell.EventResize:
		h.width, h.height = ev.Size()
		h.screen.Sync()
		h.observe()

	case *tcell.EventMouse:
		h.mouseX, h.mouseY = ev.Position()
		h.applyHover()
	}
	return true
}

func (h *Host) applyHover() {
	for i, w := range h.page.Wraps() {
		left, right := h.span(w)
		w.SetHover(h.mouseY == rowY(i) && h.mouseX >= left && h.mouseX < right)
	}
}

// Frame advances every driver by one frame and redraws.
func (h *Host) Frame() {
	h.sched.Tick()
	h.draw()
}

func (h *Host) draw() {
	h.screen.Clear()

	titleStyle := tcell.StyleDefault.Bold(true)
	h.drawText(config.TermMarginX, 0, h.title, titleStyle, config.TermMarginX, h.width-config.TermMarginX)

	styles := []tcell.Style{
		tcell.StyleDefault.Foreground(tcell.ColorAqua),
		tcell.StyleDefault.Foreground(tcell.ColorYellow),
		tcell.StyleDefault.Foreground(tcell.ColorFuchsia),
		tcell.StyleDefault.Foreground(tcell.ColorLime),
	}

	for i, w := range h.page.Wraps() {
		left, right := h.span(w)
		y := rowY(i)
		if y >= h.height {
			break
		}
		s := w.Strip()
		if s == nil {
			continue
		}
		style := styles[i%len(styles)]
		if w.Hovered() && w.Options().PauseOnHover {
			style = style.Dim(true)
		}
		s.Each(func(_ int, x float64, b marquee.Block) bool {
			cx := left + int(math.Floor(x))
			if cx >= right {
				return false
			}
			h.drawText(cx, y, b.Text, style, left, right)
			return true
		})
	}

	h.screen.Show()
}

// drawText writes s starting at column x, skipping cells outside [clipL, clipR).
func (h *Host) drawText(x, y int, s string, style tcell.Style, clipL, clipR int) {
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x >= clipR {
			return
		}
		if x >= clipL && x+rw <= clipR {
			h.screen.SetContent(x, y, r, nil, style)
		}
		x += rw
	}
}

// Run polls events and draws frames at the configured rate until the user
// quits or ctx is cancelled.
func (h *Host) Run(ctx context.Context) error {
	h.screen.EnableMouse(tcell.MouseMotionEvents)
	defer h.screen.DisableMouse()

	ticker := time.NewTicker(time.Second / time.Duration(h.fps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	h.logger.Info("term: running", "wraps", len(h.page.Wraps()), "fps", h.fps)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			if !h.HandleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			h.Frame()
		}
	}
}

// Close stops every wrap on the page.
func (h *Host) Close() {
	h.page.Teardown()
}
