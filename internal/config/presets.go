package config

// RoundPreset selects one of the two supported round durations.
type RoundPreset string

const (
	RoundStandard RoundPreset = "standard"
	RoundDev      RoundPreset = "dev" // short rounds for development
)

// RoundDuration returns the round length in seconds for a preset.
// Anything other than dev is treated as standard.
func (c SwipeyConfig) RoundDuration(preset RoundPreset) float64 {
	if preset == RoundDev {
		return c.Round.DevSeconds
	}
	return c.Round.StandardSeconds
}

// ApplyMode overrides the control mode if name is non-empty.
// Returns false for an unknown mode name; the config is left unchanged.
func ApplyMode(cfg *SwipeyConfig, name string) bool {
	if name == "" {
		return true
	}
	mode, ok := ParseControlMode(name)
	if !ok {
		return false
	}
	cfg.Input.Mode = string(mode)
	return true
}
