package config

import (
	_ "embed"
)

//go:embed defaults/swipey.yaml
var defaultSwipeyYAML []byte

// DefaultSwipeyConfig returns the hard-coded default configuration.
// It mirrors defaults/swipey.yaml and is the fallback if the embed fails to parse.
func DefaultSwipeyConfig() SwipeyConfig {
	return SwipeyConfig{
		World: WorldConfig{
			CellWidth:  12,
			CellHeight: 24,
			Stars:      100,
		},
		Swipe: SwipeConfig{
			Strength:      5,
			Focus:         5,
			Smoothness:    5,
			VelocityScale: 60,
		},
		Thrust: ThrustConfig{
			History:             100,
			Scale:               0.5,
			WindowPerSmoothness: 10,
		},
		Player: PlayerConfig{
			RadiusFraction: 0.03,
		},
		Asteroids: AsteroidConfig{
			Count:           3,
			MinRadius:       25,
			MaxRadius:       45,
			MinVertices:     7,
			MaxVertices:     10,
			MinOffset:       0.7,
			MaxOffset:       1.3,
			MinSpeed:        30,
			MaxSpeed:        80,
			MaxSpin:         0.5,
			CollisionSpin:   0.3,
			HitShrink:       0.8,
			SeparationSlack: 1,
			RespawnMargin:   200,
			RespawnAttempts: 50,
		},
		Collectible: CollectibleConfig{
			SizeFraction:      0.8,
			Margin:            0.1,
			PlayerDistance:    0.2,
			ObstacleClearance: 20,
			SpawnAttempts:     100,
			PulseRate:         3,
		},
		Round: RoundConfig{
			StandardSeconds: 60,
			DevSeconds:      10,
			TitleDelay:      1.0,
		},
		Input: InputConfig{
			Mode:          string(ModeGesture),
			NudgeInterval: 0.5,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSwipeyYAML
}
