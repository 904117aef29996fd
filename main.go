package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/marquee/internal/config"
	"github.com/iburimskiy/marquee/internal/game"
	"github.com/iburimskiy/marquee/internal/term"
)

// logOutput picks where logs go. The terminal backend owns the screen, so
// without a log file its logs are dropped.
func logOutput(cfg *config.App) (io.Writer, func(), error) {
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		return f, func() { _ = f.Close() }, nil
	}
	if cfg.Backend == config.BackendTerminal {
		return io.Discard, func() {}, nil
	}
	return os.Stderr, func() {}, nil
}

func loadLayout(cfg *config.App) (*config.Layout, error) {
	if cfg.LayoutPath == "" {
		return config.DefaultLayout()
	}
	return config.LoadLayout(cfg.LayoutPath)
}

func runWindow(cfg *config.App, layout *config.Layout, logger *slog.Logger) error {
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle(layout.Title + " - Open File: now playing, Space: pause, Esc/Q: quit")

	g := game.NewGame(layout, logger)
	defer g.Close()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func runTerminal(cfg *config.App, layout *config.Layout, logger *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	h := term.New(screen, layout, cfg.FPS, logger)
	defer h.Close()

	if err := h.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func main() {
	cfg, err := config.LoadApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	out, closeLog, err := logOutput(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: cfg.Level()}))
	slog.SetDefault(logger)

	layout, err := loadLayout(cfg)
	if err != nil {
		logger.Error("main: failed to load layout", "path", cfg.LayoutPath, "error", err)
		os.Exit(1)
	}

	switch cfg.Backend {
	case config.BackendTerminal:
		err = runTerminal(cfg, layout, logger)
	default:
		err = runWindow(cfg, layout, logger)
	}
	if err != nil {
		logger.Error("main: exited with error", "backend", cfg.Backend, "error", err)
		os.Exit(1)
	}
}
