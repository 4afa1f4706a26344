package swipey

import (
	"fmt"
	"hash/fnv"
	"io"
	"math"
)

// BodyState is the kinematic state of one body.
type BodyState struct {
	X, Y   float64
	VX, VY float64
	Radius float64
}

// Snapshot contains the observable game state for tests and debugging.
type Snapshot struct {
	Tick          uint64
	Phase         string
	Score         int
	Level         int
	TimeRemaining float64
	Strength      int
	Focus         int
	Smoothness    int
	Mode          string

	Player      BodyState
	Asteroids   []BodyState
	Collectible BodyState
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	ppos, pvel := g.player.Position(), g.player.Velocity()
	snap := Snapshot{
		Tick:          g.tick,
		Phase:         g.phase,
		Score:         g.score,
		Level:         g.level,
		TimeRemaining: g.timeRemaining,
		Strength:      g.params.Strength,
		Focus:         g.params.Focus,
		Smoothness:    g.params.Smoothness,
		Mode:          string(g.mode),
		Player:        BodyState{X: ppos.X, Y: ppos.Y, VX: pvel.X, VY: pvel.Y, Radius: g.player.BoundingRadius()},
		Asteroids:     make([]BodyState, 0, len(g.field.Asteroids())),
	}
	for _, a := range g.field.Asteroids() {
		pos, vel := a.Position(), a.Velocity()
		snap.Asteroids = append(snap.Asteroids, BodyState{X: pos.X, Y: pos.Y, VX: vel.X, VY: vel.Y, Radius: a.BoundingRadius()})
	}
	cpos := g.collectible.Position()
	snap.Collectible = BodyState{X: cpos.X, Y: cpos.Y, Radius: g.collectible.BoundingRadius()}
	return snap
}

// Hash returns an FNV-1a hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "T:%d;P:%s;S:%d;L:%d;R:%x;", snap.Tick, snap.Phase, snap.Score, snap.Level, math.Float64bits(snap.TimeRemaining))
	fmt.Fprintf(h, "K:%d,%d,%d,%s;", snap.Strength, snap.Focus, snap.Smoothness, snap.Mode)
	writeBody(h, "p", snap.Player)
	for _, a := range snap.Asteroids {
		writeBody(h, "a", a)
	}
	writeBody(h, "c", snap.Collectible)
	return h.Sum64()
}

func writeBody(w io.Writer, tag string, b BodyState) {
	fmt.Fprintf(w, "%s:%x,%x,%x,%x,%x;", tag,
		math.Float64bits(b.X), math.Float64bits(b.Y),
		math.Float64bits(b.VX), math.Float64bits(b.VY),
		math.Float64bits(b.Radius))
}
