// Package config provides YAML-based game configuration loading,
// validation and round presets for Swipey.
package config

// SwipeyConfig contains all tunable configuration for the game.
type SwipeyConfig struct {
	World       WorldConfig       `yaml:"world"`
	Swipe       SwipeConfig       `yaml:"swipe"`
	Thrust      ThrustConfig      `yaml:"thrust"`
	Player      PlayerConfig      `yaml:"player"`
	Asteroids   AsteroidConfig    `yaml:"asteroids"`
	Collectible CollectibleConfig `yaml:"collectible"`
	Round       RoundConfig       `yaml:"round"`
	Input       InputConfig       `yaml:"input"`
}

// WorldConfig maps terminal cells to world units.
// The simulation runs in pixels; each cell covers CellWidth x CellHeight.
type WorldConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
	Stars      int     `yaml:"stars"`
}

// SwipeConfig holds the starting parameters and the gesture impulse scale.
type SwipeConfig struct {
	Strength      int     `yaml:"strength"`
	Focus         int     `yaml:"focus"`
	Smoothness    int     `yaml:"smoothness"`
	VelocityScale float64 `yaml:"velocity_scale"` // per-frame displacement -> px/s
}

// ThrustConfig tunes the continuous-thrust path.
type ThrustConfig struct {
	History             int     `yaml:"history"`               // max samples kept
	Scale               float64 `yaml:"scale"`                 // impulse per px of averaged motion
	WindowPerSmoothness int     `yaml:"window_per_smoothness"` // samples averaged per smoothness step
}

// PlayerConfig defines the player sphere.
type PlayerConfig struct {
	RadiusFraction float64 `yaml:"radius_fraction"` // of world width
}

// AsteroidConfig defines asteroid generation and collision tuning.
type AsteroidConfig struct {
	Count           int     `yaml:"count"`
	MinRadius       int     `yaml:"min_radius"`
	MaxRadius       int     `yaml:"max_radius"`
	MinVertices     int     `yaml:"min_vertices"`
	MaxVertices     int     `yaml:"max_vertices"`
	MinOffset       float64 `yaml:"min_offset"`
	MaxOffset       float64 `yaml:"max_offset"`
	MinSpeed        float64 `yaml:"min_speed"`
	MaxSpeed        float64 `yaml:"max_speed"`
	MaxSpin         float64 `yaml:"max_spin"`
	CollisionSpin   float64 `yaml:"collision_spin"`
	HitShrink       float64 `yaml:"hit_shrink"`
	SeparationSlack float64 `yaml:"separation_slack"`
	RespawnMargin   float64 `yaml:"respawn_margin"`
	RespawnAttempts int     `yaml:"respawn_attempts"`
}

// CollectibleConfig defines the target and its spawn constraints.
type CollectibleConfig struct {
	SizeFraction      float64 `yaml:"size_fraction"`      // of player radius
	Margin            float64 `yaml:"margin"`             // safe-rect margin, fraction of each side
	PlayerDistance    float64 `yaml:"player_distance"`    // fraction of the shorter side
	ObstacleClearance float64 `yaml:"obstacle_clearance"` // px beyond radius + size
	SpawnAttempts     int     `yaml:"spawn_attempts"`
	PulseRate         float64 `yaml:"pulse_rate"` // radians per second
}

// RoundConfig defines the timed round structure.
type RoundConfig struct {
	StandardSeconds float64 `yaml:"standard_seconds"`
	DevSeconds      float64 `yaml:"dev_seconds"`
	TitleDelay      float64 `yaml:"title_delay"`
}

// InputConfig defines how player input drives the sphere.
type InputConfig struct {
	Mode          string  `yaml:"mode"`           // "gesture" or "thrust"
	NudgeInterval float64 `yaml:"nudge_interval"` // min seconds between keyboard nudges
}

// ControlMode selects how pointer input turns into impulses.
type ControlMode string

const (
	ModeGesture ControlMode = "gesture" // discrete swipes through the swipe processor
	ModeThrust  ControlMode = "thrust"  // continuous smoothed thrust from drag motion
)

// ParseControlMode returns the mode for a name; empty selects gesture.
func ParseControlMode(s string) (ControlMode, bool) {
	switch ControlMode(s) {
	case "", ModeGesture:
		return ModeGesture, true
	case ModeThrust:
		return ModeThrust, true
	default:
		return "", false
	}
}
