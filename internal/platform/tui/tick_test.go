package tui

import (
	"testing"
	"time"
)

func TestTickInterval(t *testing.T) {
	tests := []struct {
		rate     int
		expected time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / 60},
		{-5, time.Second / 60},
	}

	for _, tt := range tests {
		if got := tickInterval(tt.rate); got != tt.expected {
			t.Errorf("tickInterval(%d) = %v, expected %v", tt.rate, got, tt.expected)
		}
	}
}

func TestTickCmdZeroRate(t *testing.T) {
	if tickCmd(0) == nil {
		t.Error("tickCmd(0) should still schedule a tick")
	}
}
