package swipey

import "github.com/vovakirdan/swipey/internal/core"

// Player is a frictionless sphere. Velocity persists until an impulse changes it.
type Player struct {
	pos    core.Vec2
	vel    core.Vec2
	radius float64
	worldW float64
	worldH float64
}

// NewPlayer creates a player at rest in the centre of the world.
func NewPlayer(worldW, worldH, radius float64) *Player {
	p := &Player{radius: radius, worldW: worldW, worldH: worldH}
	p.Reset()
	return p
}

// ApplyImpulse adds d to the velocity.
func (p *Player) ApplyImpulse(d core.Vec2) {
	p.vel = p.vel.Add(d)
}

// Update moves the player and wraps it around the world edges.
func (p *Player) Update(dt float64) {
	p.pos = core.Wrap(p.pos.Add(p.vel.Scale(dt)), p.radius, p.worldW, p.worldH)
}

// Reset recentres the player and stops it.
func (p *Player) Reset() {
	p.pos = core.V(p.worldW/2, p.worldH/2)
	p.vel = core.Vec2{}
}

// Stop zeroes the velocity without moving the player.
func (p *Player) Stop() { p.vel = core.Vec2{} }

// Position returns the centre of the player.
func (p *Player) Position() core.Vec2 { return p.pos }

// Velocity returns the current velocity in world units per second.
func (p *Player) Velocity() core.Vec2 { return p.vel }

// BoundingRadius returns the sphere radius.
func (p *Player) BoundingRadius() float64 { return p.radius }

// place puts the player at pos with velocity vel.
func (p *Player) place(pos, vel core.Vec2) {
	p.pos = pos
	p.vel = vel
}
