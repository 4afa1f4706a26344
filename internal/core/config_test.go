package core

import (
	"math"
	"testing"
)

func TestRuntimeConfigRate(t *testing.T) {
	tests := []struct {
		tickRate int
		rate     int
		dt       float64
	}{
		{60, 60, 1.0 / 60},
		{30, 30, 1.0 / 30},
		{0, DefaultTickRate, 1.0 / DefaultTickRate},
		{-10, DefaultTickRate, 1.0 / DefaultTickRate},
	}

	for _, tt := range tests {
		cfg := RuntimeConfig{TickRate: tt.tickRate}
		if got := cfg.Rate(); got != tt.rate {
			t.Errorf("Rate() with TickRate %d = %d, expected %d", tt.tickRate, got, tt.rate)
		}
		if got := cfg.DT(); math.Abs(got-tt.dt) > 1e-12 {
			t.Errorf("DT() with TickRate %d = %v, expected %v", tt.tickRate, got, tt.dt)
		}
	}
}

func TestDefaultConfigRate(t *testing.T) {
	if got := DefaultConfig().Rate(); got != DefaultTickRate {
		t.Errorf("DefaultConfig().Rate() = %d, expected %d", got, DefaultTickRate)
	}
}
