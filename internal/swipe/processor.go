package swipe

import (
	"math"

	"github.com/vovakirdan/swipey/internal/core"
)

// Processor captures one gesture at a time and converts it to an impulse.
type Processor struct {
	params        *Parameters
	velocityScale float64

	points         []core.Vec2
	active         bool
	lastFocusStart int
}

// NewProcessor creates a processor reading the shared parameters.
// velocityScale converts per-sample displacement into world units per second.
func NewProcessor(params *Parameters, velocityScale float64) *Processor {
	return &Processor{
		params:        params,
		velocityScale: velocityScale,
	}
}

// StartSwipe begins a new capture, discarding any previous samples.
func (p *Processor) StartSwipe(x, y float64) {
	p.active = true
	p.points = append(p.points[:0], core.V(x, y))
}

// AddPoint appends a sample while a capture is active.
func (p *Processor) AddPoint(x, y float64) {
	if !p.active {
		return
	}
	p.points = append(p.points, core.V(x, y))
}

// EndSwipe finishes the capture and returns the resulting impulse.
// Fewer than two samples yield the zero vector.
func (p *Processor) EndSwipe() core.Vec2 {
	wasActive := p.active
	p.active = false
	defer func() { p.points = p.points[:0] }()

	n := len(p.points)
	if !wasActive || n < 2 {
		p.lastFocusStart = 0
		return core.Vec2{}
	}

	kept := FocusCount(n, p.params.Focus)
	p.lastFocusStart = n - kept
	focused := p.points[p.lastFocusStart:]

	dir := averageDirection(focused, p.params.Smoothness)
	return dir.Scale(Multiplier(p.params.Strength) * p.velocityScale)
}

// Cancel drops the current capture without producing an impulse.
func (p *Processor) Cancel() {
	p.active = false
	p.points = p.points[:0]
	p.lastFocusStart = 0
}

// Active reports whether a gesture is being captured.
func (p *Processor) Active() bool { return p.active }

// Points returns a copy of the samples captured so far.
func (p *Processor) Points() []core.Vec2 {
	out := make([]core.Vec2, len(p.points))
	copy(out, p.points)
	return out
}

// FocusStart is the index where the focused tail of the current capture
// would begin if it ended now.
func (p *Processor) FocusStart() int {
	n := len(p.points)
	if n < 2 {
		return 0
	}
	return n - FocusCount(n, p.params.Focus)
}

// LastFocusStart returns the focus start index of the last finished gesture.
func (p *Processor) LastFocusStart() int { return p.lastFocusStart }

// SetParameter clamps and stores a parameter; unknown names are ignored.
func (p *Processor) SetParameter(name string, v int) {
	p.params.Set(name, v)
}

// Parameters returns a copy of the current parameters.
func (p *Processor) Parameters() Parameters { return *p.params }

// FocusCount returns how many trailing samples of n the focus filter keeps.
// At least two samples are kept when two exist.
func FocusCount(n, focus int) int {
	if n < 2 {
		return n
	}
	count := int(float64(n)*Multiplier(focus) + 1e-9)
	if count < 2 {
		count = 2
	}
	if count > n {
		count = n
	}
	return count
}

// SmoothWindow returns how many trailing displacement segments of an
// n-sample path are averaged. Zero only when there are no segments.
func SmoothWindow(n, smoothness int) int {
	segments := n - 1
	if segments <= 0 {
		return 0
	}
	w := int(math.Round(float64(segments) * float64(clamp(smoothness)) / float64(MaxValue)))
	if w < 1 {
		w = 1
	}
	if w > segments {
		w = segments
	}
	return w
}

// averageDirection averages the last SmoothWindow segments of points.
func averageDirection(points []core.Vec2, smoothness int) core.Vec2 {
	n := len(points)
	if n < 2 {
		return core.Vec2{}
	}

	w := SmoothWindow(n, smoothness)
	if w == 0 {
		return points[n-1].Sub(points[0])
	}

	var sum core.Vec2
	for i := n - 1 - w; i < n-1; i++ {
		sum = sum.Add(points[i+1].Sub(points[i]))
	}
	return sum.Scale(1 / float64(w))
}
