package swipe

import "github.com/vovakirdan/swipey/internal/core"

// DefaultHistory is the number of motion samples Thrust keeps.
const DefaultHistory = 100

// Thrust computes a continuous push from recent pointer motion.
// The history is a bounded ring; the smoothness parameter picks how many
// trailing samples are averaged and strength scales the result.
type Thrust struct {
	params    *Parameters
	scale     float64
	windowPer int

	history []core.Vec2
	head    int // next write index once full
	size    int
}

// NewThrust creates a thrust calculator.
// capacity <= 0 uses DefaultHistory; windowPer is samples per smoothness step.
func NewThrust(params *Parameters, capacity int, scale float64, windowPer int) *Thrust {
	if capacity <= 0 {
		capacity = DefaultHistory
	}
	if windowPer <= 0 {
		windowPer = 1
	}
	return &Thrust{
		params:    params,
		scale:     scale,
		windowPer: windowPer,
		history:   make([]core.Vec2, capacity),
	}
}

// Push records one tick's pointer displacement, evicting the oldest sample when full.
func (t *Thrust) Push(d core.Vec2) {
	t.history[t.head] = d
	t.head = (t.head + 1) % len(t.history)
	if t.size < len(t.history) {
		t.size++
	}
}

// Len returns the number of samples held.
func (t *Thrust) Len() int { return t.size }

// Window returns how many trailing samples Vector averages.
func (t *Thrust) Window() int {
	w := t.params.Smoothness * t.windowPer
	if w > t.size {
		w = t.size
	}
	return w
}

// Vector returns the current thrust impulse.
func (t *Thrust) Vector() core.Vec2 {
	w := t.Window()
	if w == 0 {
		return core.Vec2{}
	}

	var sum core.Vec2
	idx := t.head
	for i := 0; i < w; i++ {
		idx = (idx - 1 + len(t.history)) % len(t.history)
		sum = sum.Add(t.history[idx])
	}
	return sum.Scale(Multiplier(t.params.Strength) * t.scale / float64(w))
}

// Reset clears the history.
func (t *Thrust) Reset() {
	t.head = 0
	t.size = 0
}
