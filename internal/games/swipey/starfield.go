package swipey

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/swipey/internal/core"
)

// star is one twinkling background point in cell coordinates.
type star struct {
	x, y   int
	big    bool
	period float64 // seconds per twinkle cycle
	phase  float64
}

// Starfield is purely decorative and uses its own random stream so it
// never shifts the simulation's draws.
type Starfield struct {
	stars []star
}

// NewStarfield scatters count stars over a w x h cell grid.
func NewStarfield(seed int64, count, w, h int) *Starfield {
	rng := rand.New(rand.NewSource(seed ^ 0x5f3759df))
	sf := &Starfield{stars: make([]star, 0, count)}
	if w <= 0 || h <= 0 {
		return sf
	}
	for i := 0; i < count; i++ {
		sf.stars = append(sf.stars, star{
			x:      rng.Intn(w),
			y:      rng.Intn(h),
			big:    rng.Intn(3) == 0,
			period: 2 + rng.Float64()*4,
			phase:  rng.Float64() * 2 * math.Pi,
		})
	}
	return sf
}

// opacity returns the twinkle level in [0.2, 1.0] at time t seconds.
func (s star) opacity(t float64) float64 {
	o := 0.6 + 0.4*math.Sin(2*math.Pi*t/s.period+s.phase)
	return core.ClampF(o, 0.2, 1.0)
}

// Draw renders the stars at time t.
func (sf *Starfield) Draw(dst *core.Screen, t float64) {
	for _, s := range sf.stars {
		r := '·'
		if s.big {
			r = '+'
		}
		dst.SetColored(s.x, s.y, r, core.StarShade(s.opacity(t)))
	}
}
