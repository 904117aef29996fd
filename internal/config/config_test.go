package config

import (
	"log/slog"
	"strings"
	"testing"
)

type envTestConfig struct {
	Port int `env:"MARQUEE_TEST_PORT" envDefault:"123"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("MARQUEE_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadAppDefaults(t *testing.T) {
	cfg, err := LoadApp()
	if err != nil {
		t.Fatalf("load app: %v", err)
	}
	if cfg.Backend != BackendWindow {
		t.Fatalf("expected window backend, got %q", cfg.Backend)
	}
	if cfg.WindowWidth != WindowWidth || cfg.WindowHeight != WindowHeight {
		t.Fatalf("expected %dx%d, got %dx%d", WindowWidth, WindowHeight, cfg.WindowWidth, cfg.WindowHeight)
	}
	if cfg.FPS != 60 {
		t.Fatalf("expected 60 fps, got %d", cfg.FPS)
	}
	if cfg.Level() != slog.LevelInfo {
		t.Fatalf("expected info level, got %v", cfg.Level())
	}
}

func TestLoadAppOverrides(t *testing.T) {
	t.Setenv("MARQUEE_BACKEND", " Terminal ")
	t.Setenv("MARQUEE_FPS", "30")
	t.Setenv("MARQUEE_LOG_LEVEL", "debug")
	t.Setenv("MARQUEE_LAYOUT", "/tmp/layout.yaml")

	cfg, err := LoadApp()
	if err != nil {
		t.Fatalf("load app: %v", err)
	}
	if cfg.Backend != BackendTerminal {
		t.Fatalf("expected terminal backend, got %q", cfg.Backend)
	}
	if cfg.FPS != 30 {
		t.Fatalf("expected 30 fps, got %d", cfg.FPS)
	}
	if cfg.Level() != slog.LevelDebug {
		t.Fatalf("expected debug level, got %v", cfg.Level())
	}
	if cfg.LayoutPath != "/tmp/layout.yaml" {
		t.Fatalf("expected layout path override, got %q", cfg.LayoutPath)
	}
}

func TestLoadAppRejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"MARQUEE_BACKEND":      "browser",
		"MARQUEE_FPS":          "0",
		"MARQUEE_WINDOW_WIDTH": "-1",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := LoadApp(); err == nil {
				t.Fatalf("expected error for %s=%s", key, value)
			}
		})
	}
}
