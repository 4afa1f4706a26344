package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultSwipeyConfig() {
		t.Errorf("embedded defaults differ from DefaultSwipeyConfig():\n%+v\n%+v", cfg, DefaultSwipeyConfig())
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("asteroids:\n  count: 7\nround:\n  dev_seconds: 5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Asteroids.Count != 7 {
		t.Errorf("Asteroids.Count = %d, expected 7", cfg.Asteroids.Count)
	}
	if cfg.Round.DevSeconds != 5 {
		t.Errorf("Round.DevSeconds = %v, expected 5", cfg.Round.DevSeconds)
	}
	// Untouched fields keep defaults
	if cfg.Asteroids.MinRadius != 25 {
		t.Errorf("Asteroids.MinRadius = %d, expected default 25", cfg.Asteroids.MinRadius)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() with missing file should fail")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"inverted radius", "asteroids:\n  min_radius: 50\n  max_radius: 10\n"},
		{"zero round", "round:\n  standard_seconds: 0\n"},
		{"bad mode", "input:\n  mode: joystick\n"},
		{"too few vertices", "asteroids:\n  min_vertices: 2\n"},
		{"zero attempts", "collectible:\n  spawn_attempts: 0\n"},
		{"negative stars", "world:\n  stars: -1\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Parse() error = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("world: [oops")); err == nil {
		t.Error("Parse() should fail on malformed YAML")
	}
}

func TestRoundDuration(t *testing.T) {
	cfg := DefaultSwipeyConfig()
	if got := cfg.RoundDuration(RoundDev); got != 10 {
		t.Errorf("RoundDuration(dev) = %v, expected 10", got)
	}
	if got := cfg.RoundDuration(RoundStandard); got != 60 {
		t.Errorf("RoundDuration(standard) = %v, expected 60", got)
	}
	if got := cfg.RoundDuration(""); got != 60 {
		t.Errorf("RoundDuration(\"\") = %v, expected standard 60", got)
	}
}

func TestApplyMode(t *testing.T) {
	cfg := DefaultSwipeyConfig()

	if !ApplyMode(&cfg, "thrust") || cfg.Input.Mode != "thrust" {
		t.Errorf("ApplyMode(thrust) failed, mode = %q", cfg.Input.Mode)
	}
	if ApplyMode(&cfg, "joystick") {
		t.Error("ApplyMode should reject unknown modes")
	}
	if cfg.Input.Mode != "thrust" {
		t.Error("rejected mode must not change config")
	}
	if !ApplyMode(&cfg, "") {
		t.Error("empty mode is a no-op and should succeed")
	}
}
