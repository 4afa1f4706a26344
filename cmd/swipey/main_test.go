package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/swipey/internal/config"
)

func TestConfigCommandPrintsDefaults(t *testing.T) {
	var out bytes.Buffer
	configCmd.SetOut(&out)
	if err := configCmd.RunE(configCmd, nil); err != nil {
		t.Fatalf("config command failed: %v", err)
	}

	cfg, err := config.Parse(out.Bytes())
	if err != nil {
		t.Fatalf("printed config does not parse: %v", err)
	}
	if cfg != config.DefaultSwipeyConfig() {
		t.Error("printed config differs from the defaults")
	}
}

func TestNewLogger(t *testing.T) {
	if _, _, err := newLogger("", "loud"); err == nil {
		t.Error("newLogger should reject an unknown level")
	}

	path := filepath.Join(t.TempDir(), "swipey.log")
	logger, closeLog, err := newLogger(path, "debug")
	if err != nil {
		t.Fatalf("newLogger failed: %v", err)
	}
	logger.Info("round ended", "round", 1)
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "round ended") {
		t.Errorf("log file = %q, expected the logged message", data)
	}
}

func TestValidatePlayFlags(t *testing.T) {
	fps, volume := flagFPS, flagVolume
	t.Cleanup(func() { flagFPS, flagVolume = fps, volume })

	tests := []struct {
		name    string
		fps     int
		volume  float64
		wantErr bool
	}{
		{"defaults", 60, 0.6, false},
		{"muted", 30, 0, false},
		{"full volume", 30, 1, false},
		{"zero fps", 0, 0.6, true},
		{"negative fps", -5, 0.6, true},
		{"volume above one", 60, 1.5, true},
		{"negative volume", 60, -0.1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flagFPS, flagVolume = tt.fps, tt.volume
			err := validatePlayFlags()
			if (err != nil) != tt.wantErr {
				t.Errorf("validatePlayFlags() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRunPlayRejectsZeroFPS(t *testing.T) {
	fps := flagFPS
	t.Cleanup(func() { flagFPS = fps })

	flagFPS = 0
	err := runPlay(playCmd, nil)
	if err == nil || !strings.Contains(err.Error(), "--fps") {
		t.Errorf("runPlay() error = %v, expected an --fps error", err)
	}
}
