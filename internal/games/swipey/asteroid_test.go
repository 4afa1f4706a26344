package swipey

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/swipey/internal/config"
	"github.com/vovakirdan/swipey/internal/core"
)

func testField(asteroids ...*Asteroid) *AsteroidField {
	return newFieldOf(rand.New(rand.NewSource(1)), config.DefaultSwipeyConfig().Asteroids, 1000, 1000, asteroids...)
}

func TestNewAsteroidFieldRanges(t *testing.T) {
	cfg := config.DefaultSwipeyConfig().Asteroids
	cfg.Count = 25
	f := NewAsteroidField(rand.New(rand.NewSource(7)), cfg, 960, 576)

	if len(f.Asteroids()) != 25 {
		t.Fatalf("field has %d asteroids, expected 25", len(f.Asteroids()))
	}
	for i, a := range f.Asteroids() {
		r := a.BoundingRadius()
		if r < float64(cfg.MinRadius) || r > float64(cfg.MaxRadius) || r != math.Floor(r) {
			t.Errorf("asteroid %d radius %v outside integer range [%d, %d]", i, r, cfg.MinRadius, cfg.MaxRadius)
		}
		if a.Mass() != r*r {
			t.Errorf("asteroid %d mass %v, expected %v", i, a.Mass(), r*r)
		}
		if n := len(a.Vertices()); n < cfg.MinVertices || n > cfg.MaxVertices {
			t.Errorf("asteroid %d has %d vertices", i, n)
		}
		speed := a.Velocity().Len()
		if speed < cfg.MinSpeed-1e-9 || speed > cfg.MaxSpeed+1e-9 {
			t.Errorf("asteroid %d speed %v outside [%v, %v]", i, speed, cfg.MinSpeed, cfg.MaxSpeed)
		}
		if math.Abs(a.Spin()) > cfg.MaxSpin {
			t.Errorf("asteroid %d spin %v exceeds %v", i, a.Spin(), cfg.MaxSpin)
		}
		if a.Shade() < 80 || a.Shade() > 120 {
			t.Errorf("asteroid %d shade %d outside [80, 120]", i, a.Shade())
		}
	}
}

func TestHeadOnCollisionExchangesVelocities(t *testing.T) {
	a := NewAsteroid(core.V(100, 100), core.V(50, 0), 20, 8, 1000, 1000)
	b := NewAsteroid(core.V(130, 100), core.V(-50, 0), 20, 8, 1000, 1000)
	f := testField(a, b)

	if !f.resolve(a, b) {
		t.Fatal("overlapping pair should be resolved")
	}
	if a.Velocity() != core.V(-50, 0) {
		t.Errorf("a velocity = %v, expected (-50, 0)", a.Velocity())
	}
	if b.Velocity() != core.V(50, 0) {
		t.Errorf("b velocity = %v, expected (50, 0)", b.Velocity())
	}
}

func TestCollisionConservesMomentum(t *testing.T) {
	a := NewAsteroid(core.V(200, 200), core.V(30, 10), 40, 8, 1000, 1000)
	b := NewAsteroid(core.V(240, 220), core.V(-20, -5), 25, 8, 1000, 1000)
	f := testField(a, b)

	before := a.Velocity().Scale(a.Mass()).Add(b.Velocity().Scale(b.Mass()))
	f.resolve(a, b)
	after := a.Velocity().Scale(a.Mass()).Add(b.Velocity().Scale(b.Mass()))

	if before.Dist(after) > 1e-6 {
		t.Errorf("momentum changed: before %v, after %v", before, after)
	}
}

func TestResolveLeavesNoOverlap(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 200; i++ {
		ra := 25 + rng.Float64()*20
		rb := 25 + rng.Float64()*20
		pa := core.V(500, 500)
		angle := rng.Float64() * 2 * math.Pi
		dist := 0.1 + rng.Float64()*(ra+rb-0.2)
		pb := pa.Add(core.V(math.Cos(angle)*dist, math.Sin(angle)*dist))

		a := NewAsteroid(pa, core.V(rng.Float64()*160-80, rng.Float64()*160-80), ra, 8, 1000, 1000)
		b := NewAsteroid(pb, core.V(rng.Float64()*160-80, rng.Float64()*160-80), rb, 8, 1000, 1000)
		f := testField(a, b)
		f.resolve(a, b)

		if d := a.Position().Dist(b.Position()); d < ra+rb-1e-9 {
			t.Fatalf("case %d: residual overlap, distance %v < %v", i, d, ra+rb)
		}
	}
}

func TestSeparatingPairKeepsVelocities(t *testing.T) {
	a := NewAsteroid(core.V(100, 100), core.V(-10, 0), 20, 8, 1000, 1000)
	b := NewAsteroid(core.V(130, 100), core.V(10, 0), 20, 8, 1000, 1000)
	f := testField(a, b)

	f.resolve(a, b)
	if a.Velocity() != core.V(-10, 0) || b.Velocity() != core.V(10, 0) {
		t.Errorf("separating pair velocities changed: %v, %v", a.Velocity(), b.Velocity())
	}
	if d := a.Position().Dist(b.Position()); d < 40 {
		t.Errorf("separating pair still overlaps: distance %v", d)
	}
}

func TestCoincidentCentersSkipped(t *testing.T) {
	a := NewAsteroid(core.V(100, 100), core.V(5, 0), 20, 8, 1000, 1000)
	b := NewAsteroid(core.V(100, 100), core.V(-5, 0), 20, 8, 1000, 1000)
	f := testField(a, b)

	if f.resolve(a, b) {
		t.Error("coincident pair should be skipped")
	}
	if a.Position() != b.Position() || a.Velocity() != core.V(5, 0) {
		t.Error("coincident pair should be left untouched")
	}
}

func TestFieldUpdateMovesAndWraps(t *testing.T) {
	a := NewAsteroid(core.V(1020, 500), core.V(60, 0), 20, 8, 1000, 1000)
	f := testField(a)

	f.Update(1.0 / 60.0)
	if a.Position().X != -20 {
		t.Errorf("asteroid X = %v, expected wrap to -20", a.Position().X)
	}
}

func TestFieldCheckCollisionShrink(t *testing.T) {
	a := NewAsteroid(core.V(500, 500), core.Vec2{}, 40, 8, 1000, 1000)
	f := testField(a)

	// Shrunk radius is 32; a probe of radius 5 must be closer than 37.
	if f.CheckCollision(core.V(540, 500), 5) {
		t.Error("probe at 40 should miss the shrunk asteroid")
	}
	if !f.CheckCollision(core.V(530, 500), 5) {
		t.Error("probe at 30 should hit")
	}
}

func TestRespawnAwayFrom(t *testing.T) {
	cfg := config.DefaultSwipeyConfig().Asteroids
	cfg.Count = 10
	f := NewAsteroidField(rand.New(rand.NewSource(3)), cfg, 1000, 1000)
	center := core.V(500, 500)

	f.RespawnAwayFrom(center, 200)
	for i, a := range f.Asteroids() {
		if a.Position().Dist(center) <= 200 {
			t.Errorf("asteroid %d at %v is within 200 of centre", i, a.Position())
		}
	}
}

func TestRespawnAwayFromTerminatesWhenImpossible(t *testing.T) {
	cfg := config.DefaultSwipeyConfig().Asteroids
	cfg.Count = 3
	f := NewAsteroidField(rand.New(rand.NewSource(3)), cfg, 1000, 1000)

	f.RespawnAwayFrom(core.V(500, 500), 1e9)
	for i, a := range f.Asteroids() {
		p := a.Position()
		if p.X < 0 || p.X > 1000 || p.Y < 0 || p.Y > 1000 {
			t.Errorf("asteroid %d fallback position %v outside field", i, p)
		}
	}
}

func TestVerticesFollowRotation(t *testing.T) {
	a := NewAsteroid(core.V(0, 0), core.Vec2{}, 10, 4, 1000, 1000)
	v := a.Vertices()
	if math.Abs(v[0].X-10) > 1e-9 || math.Abs(v[0].Y) > 1e-9 {
		t.Errorf("first vertex = %v, expected (10, 0)", v[0])
	}
	if math.Abs(v[1].X) > 1e-9 || math.Abs(v[1].Y-10) > 1e-9 {
		t.Errorf("second vertex = %v, expected (0, 10)", v[1])
	}
}

func TestPointInPolygon(t *testing.T) {
	square := []core.Vec2{core.V(0, 0), core.V(10, 0), core.V(10, 10), core.V(0, 10)}
	if !pointInPolygon(core.V(5, 5), square) {
		t.Error("centre should be inside")
	}
	if pointInPolygon(core.V(15, 5), square) {
		t.Error("outside point reported inside")
	}
}
