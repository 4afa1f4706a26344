package swipe

import (
	"math"
	"testing"

	"github.com/vovakirdan/swipey/internal/core"
)

func linePoints(n int, step float64) []core.Vec2 {
	pts := make([]core.Vec2, n)
	for i := range pts {
		pts[i] = core.V(float64(i)*step, 0)
	}
	return pts
}

func feed(p *Processor, pts []core.Vec2) {
	p.StartSwipe(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.AddPoint(pt.X, pt.Y)
	}
}

func TestEndSwipeTooFewSamples(t *testing.T) {
	p := NewProcessor(NewParameters(5, 5, 5), 60)

	// Never started
	if got := p.EndSwipe(); !got.IsZero() {
		t.Errorf("EndSwipe() without start = %v, expected zero", got)
	}

	p.StartSwipe(10, 10)
	if got := p.EndSwipe(); !got.IsZero() {
		t.Errorf("EndSwipe() with one sample = %v, expected zero", got)
	}
	if p.Active() {
		t.Error("processor should be inactive after EndSwipe")
	}
}

func TestAddPointIgnoredWhenInactive(t *testing.T) {
	p := NewProcessor(NewParameters(5, 5, 5), 60)
	p.AddPoint(1, 1)
	if len(p.Points()) != 0 {
		t.Errorf("AddPoint while inactive recorded %d points", len(p.Points()))
	}
}

func TestStillGestureYieldsZero(t *testing.T) {
	p := NewProcessor(NewParameters(10, 10, 10), 60)
	feed(p, []core.Vec2{core.V(5, 5), core.V(5, 5), core.V(5, 5)})
	if got := p.EndSwipe(); !got.IsZero() {
		t.Errorf("still gesture = %v, expected zero", got)
	}
}

func TestEndSwipeStraightLine(t *testing.T) {
	// 11 samples 10px apart; every stage keeps direction (10, 0).
	p := NewProcessor(NewParameters(10, 10, 10), 1)
	feed(p, linePoints(11, 10))

	got := p.EndSwipe()
	if math.Abs(got.X-10) > 1e-9 || math.Abs(got.Y) > 1e-9 {
		t.Errorf("EndSwipe() = %v, expected (10, 0)", got)
	}
	if p.LastFocusStart() != 0 {
		t.Errorf("LastFocusStart() = %d, expected 0 at full focus", p.LastFocusStart())
	}
	if len(p.Points()) != 0 {
		t.Error("samples should be consumed by EndSwipe")
	}
}

func TestFocusSelectsFinalFlick(t *testing.T) {
	// Slow drift right then a fast flick up. Low focus and smoothness see only the flick.
	pts := linePoints(20, 1)
	last := pts[len(pts)-1]
	pts = append(pts, core.V(last.X, last.Y-50))

	p := NewProcessor(NewParameters(10, 1, 1), 1)
	feed(p, pts)
	got := p.EndSwipe()

	if got.X != 0 || got.Y != -50 {
		t.Errorf("EndSwipe() = %v, expected (0, -50)", got)
	}
	if p.LastFocusStart() != len(pts)-2 {
		t.Errorf("LastFocusStart() = %d, expected %d", p.LastFocusStart(), len(pts)-2)
	}
}

func TestFocusCountProperties(t *testing.T) {
	for _, n := range []int{2, 3, 7, 10, 25, 100, 333} {
		prev := 0
		for focus := MinValue; focus <= MaxValue; focus++ {
			c := FocusCount(n, focus)
			if c < 2 || c > n {
				t.Errorf("FocusCount(%d, %d) = %d, out of [2, %d]", n, focus, c, n)
			}
			if c < prev {
				t.Errorf("FocusCount(%d, %d) = %d decreased from %d", n, focus, c, prev)
			}
			lo := int(float64(n) * 0.1)
			if c < lo {
				t.Errorf("FocusCount(%d, %d) = %d below 10%% (%d)", n, focus, c, lo)
			}
			prev = c
		}
		if FocusCount(n, MaxValue) != n {
			t.Errorf("FocusCount(%d, 10) = %d, expected all samples", n, FocusCount(n, MaxValue))
		}
	}

	if FocusCount(1, 5) != 1 || FocusCount(0, 5) != 0 {
		t.Error("FocusCount with fewer than two samples should return n")
	}
}

func TestSmoothWindowMonotonic(t *testing.T) {
	for _, n := range []int{2, 3, 5, 11, 50, 101} {
		prev := 0
		for s := MinValue; s <= MaxValue; s++ {
			w := SmoothWindow(n, s)
			if w < 1 || w > n-1 {
				t.Errorf("SmoothWindow(%d, %d) = %d, out of [1, %d]", n, s, w, n-1)
			}
			if w < prev {
				t.Errorf("SmoothWindow(%d, %d) = %d decreased from %d", n, s, w, prev)
			}
			prev = w
		}
	}
	if SmoothWindow(1, 5) != 0 {
		t.Error("SmoothWindow with no segments should be 0")
	}
	if SmoothWindow(11, 5) != 5 {
		t.Errorf("SmoothWindow(11, 5) = %d, expected 5", SmoothWindow(11, 5))
	}
}

func TestStrengthMonotonic(t *testing.T) {
	pts := linePoints(12, 7)
	prev := 0.0
	for s := MinValue; s <= MaxValue; s++ {
		p := NewProcessor(NewParameters(s, 5, 5), 60)
		feed(p, pts)
		mag := p.EndSwipe().Len()
		if mag < prev {
			t.Errorf("strength %d magnitude %v < previous %v", s, mag, prev)
		}
		prev = mag
	}
}

func TestSetParameterShared(t *testing.T) {
	params := NewParameters(5, 5, 5)
	p := NewProcessor(params, 60)

	p.SetParameter(ParamStrength, 99)
	p.SetParameter("unknown", 3)

	if params.Strength != 10 {
		t.Errorf("shared Strength = %d, expected 10", params.Strength)
	}
	if got := p.Parameters(); got != (Parameters{Strength: 10, Focus: 5, Smoothness: 5}) {
		t.Errorf("Parameters() = %+v", got)
	}
}

func TestCancelDropsCapture(t *testing.T) {
	p := NewProcessor(NewParameters(5, 5, 5), 60)
	feed(p, linePoints(5, 3))
	p.Cancel()
	if p.Active() || len(p.Points()) != 0 {
		t.Error("Cancel should clear capture")
	}
	if got := p.EndSwipe(); !got.IsZero() {
		t.Errorf("EndSwipe after Cancel = %v, expected zero", got)
	}
}
