package core

// DefaultTickRate is used when a RuntimeConfig carries no usable tick rate.
const DefaultTickRate = 60

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Rate returns the tick rate, falling back to DefaultTickRate when unset or negative.
func (c RuntimeConfig) Rate() int {
	if c.TickRate <= 0 {
		return DefaultTickRate
	}
	return c.TickRate
}

// DT returns the fixed timestep in seconds.
func (c RuntimeConfig) DT() float64 {
	return 1.0 / float64(c.Rate())
}

// GameState is the summary a game reports to the platform after each tick.
type GameState struct {
	Score         int     // Current score, never negative
	Level         int     // Current round number
	TimeRemaining float64 // Seconds left in the current round
	Phase         string  // Title, Playing, Transition
	Paused        bool    // Whether the game is paused
}

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventCollected    EventKind = iota // player picked up the target
	EventCrashed                       // player hit an asteroid
	EventRoundEnded                    // round timer expired
	EventPhaseChanged                  // phase machine moved
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventCollected:
		return "collected"
	case EventCrashed:
		return "crashed"
	case EventRoundEnded:
		return "round_ended"
	case EventPhaseChanged:
		return "phase_changed"
	default:
		return "unknown"
	}
}

// RoundSummary describes a completed round.
type RoundSummary struct {
	Level      int
	Score      int
	Collected  int
	Crashes    int
	Strength   int
	Focus      int
	Smoothness int
	Mode       string
}

// Event is emitted by a game for presentation collaborators (audio, logs).
type Event struct {
	Kind  EventKind
	Phase string        // new phase for EventPhaseChanged
	Round *RoundSummary // set for EventRoundEnded
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Collected reports whether a collection happened this tick.
func (r StepResult) Collected() bool {
	for _, e := range r.Events {
		if e.Kind == EventCollected {
			return true
		}
	}
	return false
}
