package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Load loads the Swipey configuration.
// Search order: customPath -> ~/.swipey/configs/swipey.yaml -> ./configs/swipey.yaml -> embedded default.
// Files are parsed on top of the defaults, so partial files only override what they name.
func Load(customPath string) (SwipeyConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SwipeyConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return SwipeyConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("swipey.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "swipey.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultSwipeyYAML)
	if err != nil {
		return DefaultSwipeyConfig(), nil
	}
	return cfg, nil
}

// Parse decodes YAML over the built-in defaults and validates the result.
func Parse(data []byte) (SwipeyConfig, error) {
	cfg := DefaultSwipeyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SwipeyConfig{}, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return SwipeyConfig{}, err
	}
	return cfg, nil
}

// Validate checks for values the simulation cannot work with.
func (c SwipeyConfig) Validate() error {
	if c.World.CellWidth <= 0 || c.World.CellHeight <= 0 {
		return fmt.Errorf("%w: world cell size must be positive", ErrInvalid)
	}
	if c.World.Stars < 0 {
		return fmt.Errorf("%w: world.stars must not be negative", ErrInvalid)
	}
	if c.Swipe.VelocityScale <= 0 {
		return fmt.Errorf("%w: swipe.velocity_scale must be positive", ErrInvalid)
	}
	if c.Thrust.History <= 0 || c.Thrust.WindowPerSmoothness <= 0 {
		return fmt.Errorf("%w: thrust history and window must be positive", ErrInvalid)
	}
	if c.Player.RadiusFraction <= 0 {
		return fmt.Errorf("%w: player.radius_fraction must be positive", ErrInvalid)
	}

	a := c.Asteroids
	if a.Count < 0 {
		return fmt.Errorf("%w: asteroids.count must not be negative", ErrInvalid)
	}
	if a.MinRadius <= 0 || a.MaxRadius < a.MinRadius {
		return fmt.Errorf("%w: asteroid radius range [%d, %d]", ErrInvalid, a.MinRadius, a.MaxRadius)
	}
	if a.MinVertices < 3 || a.MaxVertices < a.MinVertices {
		return fmt.Errorf("%w: asteroid vertex range [%d, %d]", ErrInvalid, a.MinVertices, a.MaxVertices)
	}
	if a.MaxOffset < a.MinOffset || a.MaxSpeed < a.MinSpeed {
		return fmt.Errorf("%w: asteroid offset or speed range inverted", ErrInvalid)
	}
	if a.RespawnAttempts <= 0 {
		return fmt.Errorf("%w: asteroids.respawn_attempts must be positive", ErrInvalid)
	}

	if c.Collectible.SpawnAttempts <= 0 {
		return fmt.Errorf("%w: collectible.spawn_attempts must be positive", ErrInvalid)
	}
	if c.Collectible.Margin < 0 || c.Collectible.Margin >= 0.5 {
		return fmt.Errorf("%w: collectible.margin must be in [0, 0.5)", ErrInvalid)
	}

	if c.Round.StandardSeconds <= 0 || c.Round.DevSeconds <= 0 {
		return fmt.Errorf("%w: round durations must be positive", ErrInvalid)
	}
	if c.Round.TitleDelay < 0 || c.Input.NudgeInterval < 0 {
		return fmt.Errorf("%w: delays must not be negative", ErrInvalid)
	}
	if _, ok := ParseControlMode(c.Input.Mode); !ok {
		return fmt.Errorf("%w: unknown input.mode %q", ErrInvalid, c.Input.Mode)
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".swipey", "configs", filename)
}
