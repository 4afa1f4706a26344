package swipey

import "github.com/vovakirdan/swipey/internal/core"

// Body is the capability shared by every moving entity.
// Kind-specific responses (elastic bounces between asteroids) stay outside it.
type Body interface {
	Update(dt float64)
	Position() core.Vec2
	BoundingRadius() float64
}

// circlesOverlap reports whether two circles are closer than the sum of their radii.
func circlesOverlap(p1 core.Vec2, r1 float64, p2 core.Vec2, r2 float64) bool {
	reach := r1 + r2
	return p1.Sub(p2).LenSq() < reach*reach
}
