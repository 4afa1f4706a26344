// Package registry maps game IDs to factories.
// Games register themselves in init() so the CLI can create them by name
// without importing their internals.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/swipey/internal/core"
)

// Game is the interface the terminal platform drives.
// Implementations hold pure simulation logic and never import Bubble Tea;
// the platform owns input mapping, timing, audio and the round log.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "swipey").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a fresh run.
	// Called at start, on restart and when the terminal is resized.
	// The RuntimeConfig provides screen dimensions, tick rate and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input arrives as semantic actions plus world-space pointer events.
	// The result carries the new state and the events raised this tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, round, phase, paused).
	State() core.GameState
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a game factory under id, usually from the game's init().
// Panics if the id is already taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}
