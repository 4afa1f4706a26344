package swipey

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/swipey/internal/config"
	"github.com/vovakirdan/swipey/internal/core"
)

// Asteroid is a drifting, rotating disk with an irregular silhouette.
// Mass is radius squared and never changes after creation.
type Asteroid struct {
	pos      core.Vec2
	vel      core.Vec2
	radius   float64
	mass     float64
	rotation float64
	spin     float64
	offsets  []float64 // per-vertex radius multipliers
	shade    int       // grey level 80-120

	worldW float64
	worldH float64
}

// newAsteroid draws a random asteroid somewhere in the world.
func newAsteroid(rng *rand.Rand, cfg config.AsteroidConfig, worldW, worldH float64) *Asteroid {
	radius := float64(cfg.MinRadius + rng.Intn(cfg.MaxRadius-cfg.MinRadius+1))

	vertices := cfg.MinVertices + rng.Intn(cfg.MaxVertices-cfg.MinVertices+1)
	offsets := make([]float64, vertices)
	for i := range offsets {
		offsets[i] = uniform(rng, cfg.MinOffset, cfg.MaxOffset)
	}

	angle := rng.Float64() * 2 * math.Pi
	speed := uniform(rng, cfg.MinSpeed, cfg.MaxSpeed)

	return &Asteroid{
		pos:      core.V(rng.Float64()*worldW, rng.Float64()*worldH),
		vel:      core.V(math.Cos(angle)*speed, math.Sin(angle)*speed),
		radius:   radius,
		mass:     radius * radius,
		rotation: rng.Float64() * 2 * math.Pi,
		spin:     uniform(rng, -cfg.MaxSpin, cfg.MaxSpin),
		offsets:  offsets,
		shade:    80 + rng.Intn(41),
		worldW:   worldW,
		worldH:   worldH,
	}
}

// NewAsteroid creates an asteroid with an explicit state.
// The silhouette is a regular polygon with the given vertex count.
func NewAsteroid(pos, vel core.Vec2, radius float64, vertices int, worldW, worldH float64) *Asteroid {
	offsets := make([]float64, vertices)
	for i := range offsets {
		offsets[i] = 1
	}
	return &Asteroid{
		pos:     pos,
		vel:     vel,
		radius:  radius,
		mass:    radius * radius,
		offsets: offsets,
		shade:   100,
		worldW:  worldW,
		worldH:  worldH,
	}
}

// Update advances position and rotation, wrapping at the world edges.
func (a *Asteroid) Update(dt float64) {
	a.pos = core.Wrap(a.pos.Add(a.vel.Scale(dt)), a.radius, a.worldW, a.worldH)
	a.rotation += a.spin * dt
}

// Position returns the asteroid centre.
func (a *Asteroid) Position() core.Vec2 { return a.pos }

// BoundingRadius returns the collision radius.
func (a *Asteroid) BoundingRadius() float64 { return a.radius }

// Velocity returns the drift velocity.
func (a *Asteroid) Velocity() core.Vec2 { return a.vel }

// Mass returns the fixed mass.
func (a *Asteroid) Mass() float64 { return a.mass }

// Rotation returns the current rotation in radians.
func (a *Asteroid) Rotation() float64 { return a.rotation }

// Spin returns the rotation speed in radians per second.
func (a *Asteroid) Spin() float64 { return a.spin }

// Shade returns the grey level used to draw the asteroid.
func (a *Asteroid) Shade() int { return a.shade }

// Vertices returns the silhouette corners in world coordinates.
func (a *Asteroid) Vertices() []core.Vec2 {
	n := len(a.offsets)
	out := make([]core.Vec2, n)
	for i, off := range a.offsets {
		angle := a.rotation + 2*math.Pi*float64(i)/float64(n)
		r := a.radius * off
		out[i] = a.pos.Add(core.V(math.Cos(angle)*r, math.Sin(angle)*r))
	}
	return out
}

// AsteroidField owns a fixed set of asteroids for the lifetime of a game.
type AsteroidField struct {
	asteroids []*Asteroid
	rng       *rand.Rand
	cfg       config.AsteroidConfig
	worldW    float64
	worldH    float64
}

// NewAsteroidField spawns cfg.Count random asteroids.
func NewAsteroidField(rng *rand.Rand, cfg config.AsteroidConfig, worldW, worldH float64) *AsteroidField {
	f := &AsteroidField{
		asteroids: make([]*Asteroid, cfg.Count),
		rng:       rng,
		cfg:       cfg,
		worldW:    worldW,
		worldH:    worldH,
	}
	for i := range f.asteroids {
		f.asteroids[i] = newAsteroid(rng, cfg, worldW, worldH)
	}
	return f
}

// newFieldOf builds a field from existing asteroids.
func newFieldOf(rng *rand.Rand, cfg config.AsteroidConfig, worldW, worldH float64, asteroids ...*Asteroid) *AsteroidField {
	return &AsteroidField{asteroids: asteroids, rng: rng, cfg: cfg, worldW: worldW, worldH: worldH}
}

// Asteroids returns the asteroids in the field.
func (f *AsteroidField) Asteroids() []*Asteroid { return f.asteroids }

// Bodies returns the asteroids as bodies.
func (f *AsteroidField) Bodies() []Body {
	out := make([]Body, len(f.asteroids))
	for i, a := range f.asteroids {
		out[i] = a
	}
	return out
}

// Update moves every asteroid, then resolves asteroid-asteroid contacts.
func (f *AsteroidField) Update(dt float64) {
	for _, a := range f.asteroids {
		a.Update(dt)
	}
	for i := 0; i < len(f.asteroids); i++ {
		for j := i + 1; j < len(f.asteroids); j++ {
			f.resolve(f.asteroids[i], f.asteroids[j])
		}
	}
}

// resolve applies an elastic bounce to closing pairs and always separates
// overlapping pairs. Coincident centres have no normal and are skipped.
func (f *AsteroidField) resolve(a, b *Asteroid) bool {
	delta := b.pos.Sub(a.pos)
	d := delta.Len()
	if d == 0 || d >= a.radius+b.radius {
		return false
	}
	n := delta.Scale(1 / d)

	dvn := a.vel.Sub(b.vel).Dot(n)
	if dvn > 0 {
		impulse := 2 * dvn / (a.mass + b.mass)
		a.vel = a.vel.Sub(n.Scale(impulse * b.mass))
		b.vel = b.vel.Add(n.Scale(impulse * a.mass))

		a.spin += uniform(f.rng, -f.cfg.CollisionSpin, f.cfg.CollisionSpin)
		b.spin += uniform(f.rng, -f.cfg.CollisionSpin, f.cfg.CollisionSpin)
	}

	push := (a.radius+b.radius-d)/2 + f.cfg.SeparationSlack
	a.pos = a.pos.Sub(n.Scale(push))
	b.pos = b.pos.Add(n.Scale(push))
	return true
}

// CheckCollision reports whether a circle at point touches any asteroid.
// Asteroid radii are shrunk by the configured hit factor.
func (f *AsteroidField) CheckCollision(point core.Vec2, radius float64) bool {
	for _, a := range f.asteroids {
		if circlesOverlap(point, radius, a.pos, a.radius*f.cfg.HitShrink) {
			return true
		}
	}
	return false
}

// RespawnAwayFrom moves every asteroid to a random spot farther than
// minDistance from point. Each asteroid gets a bounded number of draws
// and keeps the last one if none qualified.
func (f *AsteroidField) RespawnAwayFrom(point core.Vec2, minDistance float64) {
	for _, a := range f.asteroids {
		for attempt := 0; attempt < f.cfg.RespawnAttempts; attempt++ {
			a.pos = core.V(f.rng.Float64()*f.worldW, f.rng.Float64()*f.worldH)
			if a.pos.Dist(point) > minDistance {
				break
			}
		}
	}
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
