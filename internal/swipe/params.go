// Package swipe turns pointer input into player impulses.
//
// Two paths share one Parameters value: Processor handles discrete
// press-drag-release gestures through Focus, Smoothness and Strength
// stages, and Thrust turns per-tick pointer motion into a continuous,
// smoothed push.
package swipe

import "github.com/vovakirdan/swipey/internal/core"

// Parameter names accepted by Set, Get and Adjust.
const (
	ParamStrength   = "strength"
	ParamFocus      = "focus"
	ParamSmoothness = "smoothness"
)

// Parameter bounds. All three parameters share the same closed range.
const (
	MinValue = 1
	MaxValue = 10
)

// Names lists every parameter in display order.
var Names = []string{ParamStrength, ParamFocus, ParamSmoothness}

// Parameters are the tunable swipe filters.
// Values are always within [MinValue, MaxValue].
type Parameters struct {
	Strength   int
	Focus      int
	Smoothness int
}

// NewParameters returns clamped parameters.
func NewParameters(strength, focus, smoothness int) *Parameters {
	return &Parameters{
		Strength:   clamp(strength),
		Focus:      clamp(focus),
		Smoothness: clamp(smoothness),
	}
}

// Set stores a clamped value. Unknown names are ignored and report false.
func (p *Parameters) Set(name string, v int) bool {
	switch name {
	case ParamStrength:
		p.Strength = clamp(v)
	case ParamFocus:
		p.Focus = clamp(v)
	case ParamSmoothness:
		p.Smoothness = clamp(v)
	default:
		return false
	}
	return true
}

// Get returns the value of a named parameter.
func (p *Parameters) Get(name string) (int, bool) {
	switch name {
	case ParamStrength:
		return p.Strength, true
	case ParamFocus:
		return p.Focus, true
	case ParamSmoothness:
		return p.Smoothness, true
	}
	return 0, false
}

// CanAdjust reports whether adding delta would change the clamped value.
func (p *Parameters) CanAdjust(name string, delta int) bool {
	v, ok := p.Get(name)
	if !ok || delta == 0 {
		return false
	}
	return clamp(v+delta) != v
}

// Adjust adds delta to a parameter and reports whether the value changed.
func (p *Parameters) Adjust(name string, delta int) bool {
	if !p.CanAdjust(name, delta) {
		return false
	}
	v, _ := p.Get(name)
	return p.Set(name, v+delta)
}

// Multiplier maps a parameter value onto [0.1, 1.0]: 1 -> 0.1, 10 -> 1.0.
func Multiplier(v int) float64 {
	return 0.1 + float64(clamp(v)-MinValue)/float64(MaxValue-MinValue)*0.9
}

func clamp(v int) int {
	return core.Clamp(v, MinValue, MaxValue)
}
