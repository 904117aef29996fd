package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

const (
	WindowWidth  = 1024
	WindowHeight = 512

	// Row geometry for the window host
	RowHeight  = 40
	RowGap     = 12
	RowMarginX = 20
	RowTop     = 100

	// Open button, as in the header of the window
	ButtonWidth  = 120
	ButtonHeight = 40
	ButtonX      = 20
	ButtonY      = 40

	// Terminal host
	TermMarginX = 1
	TermRowTop  = 2
	TermRowStep = 2

	ColorShiftSpeed = 0.002
)

// Backends understood by main.
const (
	BackendWindow   = "window"
	BackendTerminal = "terminal"
)

// App is the process configuration read from the environment.
type App struct {
	Backend      string `env:"MARQUEE_BACKEND" envDefault:"window"`
	LayoutPath   string `env:"MARQUEE_LAYOUT"`
	WindowWidth  int    `env:"MARQUEE_WINDOW_WIDTH" envDefault:"1024"`
	WindowHeight int    `env:"MARQUEE_WINDOW_HEIGHT" envDefault:"512"`
	FPS          int    `env:"MARQUEE_FPS" envDefault:"60"`
	LogLevel     string `env:"MARQUEE_LOG_LEVEL" envDefault:"info"`
	LogFile      string `env:"MARQUEE_LOG_FILE"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadApp parses and validates the process configuration.
func LoadApp() (*App, error) {
	var cfg App
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}
	cfg.Backend = strings.ToLower(strings.TrimSpace(cfg.Backend))
	switch cfg.Backend {
	case BackendWindow, BackendTerminal:
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
	if cfg.WindowWidth <= 0 || cfg.WindowHeight <= 0 {
		return nil, fmt.Errorf("window size must be positive, got %dx%d", cfg.WindowWidth, cfg.WindowHeight)
	}
	if cfg.FPS <= 0 {
		return nil, fmt.Errorf("fps must be positive, got %d", cfg.FPS)
	}
	return &cfg, nil
}

// Level maps the configured log level name to a slog level. Unknown names mean info.
func (a *App) Level() slog.Level {
	switch strings.ToLower(a.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
