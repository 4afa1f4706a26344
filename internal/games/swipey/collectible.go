package swipey

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/swipey/internal/config"
	"github.com/vovakirdan/swipey/internal/core"
)

// Collectible is the single pulsing target. It is moved, never recreated.
type Collectible struct {
	pos   core.Vec2
	size  float64
	pulse float64

	rng    *rand.Rand
	cfg    config.CollectibleConfig
	worldW float64
	worldH float64
}

// NewCollectible creates a target sized relative to the player.
// It sits at the world centre until the first Spawn.
func NewCollectible(rng *rand.Rand, cfg config.CollectibleConfig, worldW, worldH, playerRadius float64) *Collectible {
	return &Collectible{
		pos:    core.V(worldW/2, worldH/2),
		size:   math.Floor(playerRadius * cfg.SizeFraction),
		rng:    rng,
		cfg:    cfg,
		worldW: worldW,
		worldH: worldH,
	}
}

// Spawn picks a new position inside the safe rectangle that keeps clear of
// the player and every obstacle. After SpawnAttempts failed draws the last
// candidate is kept; the return value reports whether the constraints held.
func (c *Collectible) Spawn(player core.Vec2, obstacles []Body) bool {
	minX, maxX := c.worldW*c.cfg.Margin, c.worldW*(1-c.cfg.Margin)
	minY, maxY := c.worldH*c.cfg.Margin, c.worldH*(1-c.cfg.Margin)
	minPlayer := c.cfg.PlayerDistance * math.Min(c.worldW, c.worldH)

	for attempt := 0; attempt < c.cfg.SpawnAttempts; attempt++ {
		c.pos = core.V(uniform(c.rng, minX, maxX), uniform(c.rng, minY, maxY))
		if c.clearOf(player, minPlayer, obstacles) {
			return true
		}
	}
	return false
}

func (c *Collectible) clearOf(player core.Vec2, minPlayer float64, obstacles []Body) bool {
	if c.pos.Dist(player) < minPlayer {
		return false
	}
	for _, ob := range obstacles {
		if c.pos.Dist(ob.Position()) < ob.BoundingRadius()+c.size+c.cfg.ObstacleClearance {
			return false
		}
	}
	return true
}

// Update advances the pulse animation.
func (c *Collectible) Update(dt float64) {
	c.pulse += c.cfg.PulseRate * dt
}

// CheckCollision reports whether a circle at point reaches the target.
func (c *Collectible) CheckCollision(point core.Vec2, radius float64) bool {
	return circlesOverlap(point, radius, c.pos, c.size)
}

// Position returns the target centre.
func (c *Collectible) Position() core.Vec2 { return c.pos }

// BoundingRadius returns the target size.
func (c *Collectible) BoundingRadius() float64 { return c.size }

// PulseScale returns the current draw scale, oscillating in [0.8, 1.2].
func (c *Collectible) PulseScale() float64 {
	return 1 + 0.2*math.Sin(c.pulse)
}
