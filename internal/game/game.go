package game

import (
	"image"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/marquee/internal/config"
	"github.com/iburimskiy/marquee/internal/marquee"
)

const idleTitle = "Nothing playing - click Open File"

// Game renders a page of marquees in an ebiten window. Each call to Update
// is one frame: it reconciles row widths, applies hover, then ticks the
// frame scheduler so every driver advances exactly once.
type Game struct {
	logger *slog.Logger
	face   text.Face
	sched  *marquee.Scheduler
	env    marquee.Env
	page   *marquee.Page

	nowPlaying *marquee.Wrap
	player     *player

	width, height int
	colorPhase    float64

	// input edge detection
	prevKey map[ebiten.Key]bool

	// button state
	buttonHovered bool
	buttonPressed bool

	lastErr error
}

// NewGame builds the window host for the wraps found in layout.
func NewGame(layout *config.Layout, logger *slog.Logger) *Game {
	face := text.NewGoXFace(basicfont.Face7x13)
	sched := marquee.NewScheduler()
	env := marquee.Env{
		Measurer:  marquee.MeasurerFunc(func(s string) float64 { return text.Advance(s, face) }),
		Scheduler: sched,
		Logger:    logger,
	}

	g := &Game{
		logger:  logger,
		face:    face,
		sched:   sched,
		env:     env,
		page:    marquee.NewPage(layout.Roots(), env),
		player:  newPlayer(logger),
		width:   config.WindowWidth,
		height:  config.WindowHeight,
		prevKey: map[ebiten.Key]bool{},
	}
	g.setNowPlaying(idleTitle)

	logger.Info("game: page ready", "wraps", len(g.page.Wraps()))
	return g
}

// setNowPlaying replaces the now-playing wrap. A wrap's template never
// changes, so new content means a new wrap.
func (g *Game) setNowPlaying(title string) {
	if g.nowPlaying != nil {
		g.nowPlaying.Teardown()
	}
	w, err := marquee.NewWrap("now-playing", marquee.NewTemplate("now-playing", title), marquee.Options{
		Speed:        1,
		Direction:    marquee.Forward,
		PauseOnHover: true,
		Gap:          64,
	}, g.env)
	if err != nil {
		g.lastErr = err
		return
	}
	g.nowPlaying = w
}

// rows lists the wraps in screen order: now playing first, then the page.
func (g *Game) rows() []*marquee.Wrap {
	rows := make([]*marquee.Wrap, 0, len(g.page.Wraps())+1)
	if g.nowPlaying != nil {
		rows = append(rows, g.nowPlaying)
	}
	return append(rows, g.page.Wraps()...)
}

func rowRect(i, width int) image.Rectangle {
	y := config.RowTop + i*(config.RowHeight+config.RowGap)
	return image.Rect(config.RowMarginX, y, width-config.RowMarginX, y+config.RowHeight)
}

// wrapRect is rowRect widened to the whole window for fullscreen wraps.
func wrapRect(i int, w *marquee.Wrap, width int) image.Rectangle {
	r := rowRect(i, width)
	if w.Options().Fullscreen {
		r.Min.X, r.Max.X = 0, width
	}
	return r
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	mouseX, mouseY := ebiten.CursorPosition()
	g.buttonHovered = mouseX >= config.ButtonX && mouseX <= config.ButtonX+config.ButtonWidth &&
		mouseY >= config.ButtonY && mouseY <= config.ButtonY+config.ButtonHeight

	if g.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.buttonPressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonPressed && g.buttonHovered {
			g.openTrack()
		}
		g.buttonPressed = false
	}

	if g.player.poll() {
		g.setNowPlaying(idleTitle)
	}

	if justPressed(ebiten.KeySpace) {
		g.player.togglePause()
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	cursor := image.Pt(mouseX, mouseY)
	for i, w := range g.rows() {
		r := wrapRect(i, w, g.width)
		w.Observe(float64(r.Dx()))
		w.SetHover(cursor.In(r))
	}

	g.sched.Tick()
	g.colorPhase += config.ColorShiftSpeed
	return nil
}

func (g *Game) openTrack() {
	path, err := g.player.choose()
	if err != nil {
		g.lastErr = err
		return
	}
	if path == "" {
		return
	}
	if err := g.player.load(path); err != nil {
		g.logger.Warn("game: failed to load track", "path", path, "error", err)
		g.lastErr = err
		return
	}
	g.lastErr = nil
	g.setNowPlaying(trackTitle(path, g.player.length))
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 14, G: 16, B: 24, A: 255})

	g.drawButton(screen)
	for i, w := range g.rows() {
		g.drawRow(screen, i, w)
	}

	status := "Space: pause audio | Esc/Q: quit"
	if g.player.playing() {
		status = formatDuration(g.player.position()) + " / " + formatDuration(g.player.length) + " | " + status
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

// drawRow paints a wrap's strip, clipped to the row. Blocks are placed from
// the strip's own numbers; nothing is measured here.
func (g *Game) drawRow(screen *ebiten.Image, i int, w *marquee.Wrap) {
	r := wrapRect(i, w, g.width)
	bg := color.RGBA{R: 24, G: 28, B: 40, A: 255}
	if w.Hovered() {
		bg = color.RGBA{R: 32, G: 38, B: 56, A: 255}
	}
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bg, false)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, color.RGBA{R: 60, G: 70, B: 90, A: 255}, false)

	s := w.Strip()
	if s == nil {
		return
	}

	clip := screen.SubImage(r).(*ebiten.Image)
	metrics := g.face.Metrics()
	y := float64(r.Min.Y) + (float64(r.Dy())-(metrics.HAscent+metrics.HDescent))/2
	col := rowColor(i, g.colorPhase)
	width := float64(r.Dx())

	s.Each(func(_ int, x float64, b marquee.Block) bool {
		if x >= width {
			return false
		}
		if x+s.BlockWidth() <= 0 {
			return true
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(r.Min.X)+x, y)
		op.ColorScale.ScaleWithColor(col)
		text.Draw(clip, b.Text, g.face, op)
		return true
	})
}

func (g *Game) drawButton(screen *ebiten.Image) {
	var bgColor color.Color
	if g.buttonPressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	} else if g.buttonHovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	} else {
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255} // Normal
	}

	vector.DrawFilledRect(screen, float32(config.ButtonX), float32(config.ButtonY), float32(config.ButtonWidth), float32(config.ButtonHeight), bgColor, false)
	vector.StrokeRect(screen, float32(config.ButtonX), float32(config.ButtonY), float32(config.ButtonWidth), float32(config.ButtonHeight), 2, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

	label := "Open File"
	labelWidth := len(label) * 6 // debug font is 6px wide
	ebitenutil.DebugPrintAt(screen, label, config.ButtonX+(config.ButtonWidth-labelWidth)/2, config.ButtonY+(config.ButtonHeight-16)/2)
}

// Layout tracks the window size; a width change reaches the wraps on the next Update.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Close stops every marquee and the audio device.
func (g *Game) Close() {
	g.page.Teardown()
	if g.nowPlaying != nil {
		g.nowPlaying.Teardown()
	}
	g.player.close()
}
