package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never finished")
	return nil
}

func TestCollectGeneratorLength(t *testing.T) {
	rate := beep.SampleRate(22050)
	samples := drain(t, NewCollectGenerator(rate))

	expected := rate.N(150 * time.Millisecond)
	if len(samples) != expected {
		t.Errorf("got %d samples, expected %d", len(samples), expected)
	}
}

func TestCollectGeneratorRangeAndDecay(t *testing.T) {
	rate := beep.SampleRate(22050)
	samples := drain(t, NewCollectGenerator(rate))

	peak := func(from, to int) float64 {
		m := 0.0
		for _, s := range samples[from:to] {
			m = math.Max(m, math.Abs(s[0]))
		}
		return m
	}

	for i, s := range samples {
		if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
			t.Fatalf("sample %d = %v, expected mono in [-1, 1]", i, s)
		}
	}

	n := len(samples)
	head, tail := peak(0, n/5), peak(n-n/5, n)
	if tail >= head {
		t.Errorf("envelope should decay: head peak %v, tail peak %v", head, tail)
	}
}

func TestNewCueAllKinds(t *testing.T) {
	rate := beep.SampleRate(22050)
	for _, cue := range []Cue{CueCollect, CueCrash, CueRoundEnd} {
		s := NewCue(cue, rate, 0.5)
		if s == nil {
			t.Fatalf("NewCue(%d) = nil", cue)
		}
		if len(drain(t, s)) == 0 {
			t.Errorf("cue %d produced no samples", cue)
		}
	}
	if NewCue(Cue(99), rate, 1) != nil {
		t.Error("unknown cue should return nil")
	}
}

func TestSilentVolume(t *testing.T) {
	rate := beep.SampleRate(22050)
	for i, s := range drain(t, NewCue(CueCollect, rate, 0)) {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("sample %d = %v, expected silence", i, s)
		}
	}
}

func TestVolumeAboveOneIsFullScale(t *testing.T) {
	rate := beep.SampleRate(22050)
	full := drain(t, NewCue(CueCollect, rate, 1))
	loud := drain(t, NewCue(CueCollect, rate, 4))

	if len(loud) != len(full) {
		t.Fatalf("got %d samples, expected %d", len(loud), len(full))
	}
	for i := range full {
		if loud[i] != full[i] {
			t.Fatalf("sample %d = %v, expected %v at full scale", i, loud[i], full[i])
		}
	}
}

func TestSilentPlayer(t *testing.T) {
	var p Player = Silent{}
	p.Play(CueCollect)
	p.Close()
}
