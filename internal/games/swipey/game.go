// Package swipey implements the Swipey arcade game: a frictionless sphere
// steered by filtered swipes, chasing a pulsing target between drifting
// asteroids in timed rounds.
package swipey

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/swipey/internal/config"
	"github.com/vovakirdan/swipey/internal/core"
	"github.com/vovakirdan/swipey/internal/registry"
	"github.com/vovakirdan/swipey/internal/swipe"
)

// Phases of the round state machine.
const (
	PhaseTitle      = "title"
	PhasePlaying    = "playing"
	PhaseTransition = "transition"
)

// Minimum terminal size the game can lay out in.
const (
	MinScreenW = 40
	MinScreenH = 16
)

// timeEpsilon absorbs float drift when the timer is decremented by dt.
const timeEpsilon = 1e-9

// configPath stores the custom config path set via CLI
var configPath string

// roundPreset stores the round preset set via CLI
var roundPreset config.RoundPreset

// controlMode stores the control mode override set via CLI
var controlMode string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetRoundPreset selects dev or standard round length.
func SetRoundPreset(preset string) {
	switch preset {
	case string(config.RoundDev):
		roundPreset = config.RoundDev
	default:
		roundPreset = config.RoundStandard
	}
}

// SetControlMode overrides the configured control mode ("gesture" or "thrust").
func SetControlMode(mode string) {
	controlMode = mode
}

// Game implements the Swipey game logic.
type Game struct {
	// Configuration
	runtime  core.RuntimeConfig
	cfg      config.SwipeyConfig
	override *config.SwipeyConfig
	preset   config.RoundPreset
	mode     config.ControlMode
	rng      *rand.Rand
	dt       float64
	worldW   float64
	worldH   float64

	// Input pipeline
	params    *swipe.Parameters
	processor *swipe.Processor
	thrust    *swipe.Thrust

	// Entities
	player      *Player
	field       *AsteroidField
	collectible *Collectible
	stars       *Starfield

	// Round state
	phase          string
	score          int
	level          int
	timeRemaining  float64
	roundDuration  float64
	titleTicks     int
	titleTicksLeft int
	nudgeCooldown  float64
	paused         bool
	collected      int // this round
	crashes        int // this round
	buttons        []Button

	tick     uint64
	elapsed  float64
	events   []core.Event
	tooSmall bool
}

// New creates a Swipey game that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with an explicit config and round preset.
func NewWithConfig(cfg config.SwipeyConfig, preset config.RoundPreset) *Game {
	return &Game{override: &cfg, preset: preset}
}

func init() {
	registry.Register("swipey", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "swipey" }

// Title returns the display name.
func (g *Game) Title() string { return "Swipey" }

// Reset initializes or restarts the whole run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.loadConfig()

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.dt = runtime.DT()
	g.worldW = float64(runtime.ScreenW) * g.cfg.World.CellWidth
	g.worldH = float64(runtime.ScreenH) * g.cfg.World.CellHeight
	g.tooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH

	g.params = swipe.NewParameters(g.cfg.Swipe.Strength, g.cfg.Swipe.Focus, g.cfg.Swipe.Smoothness)
	g.processor = swipe.NewProcessor(g.params, g.cfg.Swipe.VelocityScale)
	g.thrust = swipe.NewThrust(g.params, g.cfg.Thrust.History, g.cfg.Thrust.Scale, g.cfg.Thrust.WindowPerSmoothness)

	g.player = NewPlayer(g.worldW, g.worldH, g.worldW*g.cfg.Player.RadiusFraction)
	g.field = NewAsteroidField(g.rng, g.cfg.Asteroids, g.worldW, g.worldH)
	g.field.RespawnAwayFrom(g.player.Position(), g.cfg.Asteroids.RespawnMargin)
	g.collectible = NewCollectible(g.rng, g.cfg.Collectible, g.worldW, g.worldH, g.player.BoundingRadius())
	g.collectible.Spawn(g.player.Position(), g.field.Bodies())
	g.stars = NewStarfield(runtime.Seed, g.cfg.World.Stars, runtime.ScreenW, runtime.ScreenH)

	g.roundDuration = g.cfg.RoundDuration(g.preset)
	g.titleTicks = int(math.Ceil(g.cfg.Round.TitleDelay/g.dt - timeEpsilon))

	g.phase = PhaseTitle
	g.score = 0
	g.level = 0
	g.timeRemaining = g.roundDuration
	g.titleTicksLeft = g.titleTicks
	g.nudgeCooldown = 0
	g.paused = false
	g.collected = 0
	g.crashes = 0
	g.buttons = nil
	g.tick = 0
	g.elapsed = 0
	g.events = nil
}

// loadConfig resolves the config, round preset and control mode.
func (g *Game) loadConfig() {
	if g.override != nil {
		g.cfg = *g.override
	} else {
		cfg, err := config.Load(configPath)
		if err != nil {
			cfg = config.DefaultSwipeyConfig()
		}
		g.cfg = cfg
		g.preset = roundPreset
	}

	config.ApplyMode(&g.cfg, controlMode)
	mode, ok := config.ParseControlMode(g.cfg.Input.Mode)
	if !ok {
		mode = config.ModeGesture
	}
	g.mode = mode
}

// Step advances the game by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		g.emitPhase()
		return g.result()
	}

	g.tick++
	g.elapsed += g.dt

	switch g.phase {
	case PhaseTitle:
		g.stepTitle()
	case PhasePlaying:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if !g.paused {
			g.stepPlaying(in)
		}
	case PhaseTransition:
		g.stepTransition(in)
	}

	return g.result()
}

func (g *Game) result() core.StepResult {
	var events []core.Event
	if len(g.events) > 0 {
		events = make([]core.Event, len(g.events))
		copy(events, g.events)
	}
	return core.StepResult{State: g.State(), Events: events}
}

// stepTitle counts down the title delay in fixed ticks.
func (g *Game) stepTitle() {
	g.titleTicksLeft--
	if g.titleTicksLeft > 0 {
		return
	}
	g.level = 1
	g.startRound()
}

// stepPlaying runs one tick of gameplay.
func (g *Game) stepPlaying(in core.InputFrame) {
	g.timeRemaining -= g.dt

	g.applyInput(in)
	g.applyNudges(in)

	for _, b := range []Body{g.player, g.collectible} {
		b.Update(g.dt)
	}
	g.field.Update(g.dt)

	playerPos := g.player.Position()
	radius := g.player.BoundingRadius()

	if g.collectible.CheckCollision(playerPos, radius) {
		g.score++
		g.collected++
		g.collectible.Spawn(playerPos, g.field.Bodies())
		g.emit(core.Event{Kind: core.EventCollected})
	}

	if g.field.CheckCollision(playerPos, radius) {
		g.player.Reset()
		g.score = max(0, g.score-1)
		g.crashes++
		g.field.RespawnAwayFrom(g.player.Position(), g.cfg.Asteroids.RespawnMargin)
		g.processor.Cancel()
		g.thrust.Reset()
		g.emit(core.Event{Kind: core.EventCrashed})
	}

	if g.timeRemaining <= timeEpsilon {
		g.endRound()
	}
}

// applyInput turns pointer input into player impulses for the active control mode.
func (g *Game) applyInput(in core.InputFrame) {
	if g.mode == config.ModeThrust {
		g.thrust.Push(in.Delta)
		if v := g.thrust.Vector(); !v.IsZero() {
			g.player.ApplyImpulse(v)
		}
		return
	}

	for _, ev := range in.Pointer {
		switch ev.Kind {
		case core.PointerPress:
			g.processor.StartSwipe(ev.Pos.X, ev.Pos.Y)
		case core.PointerMove:
			g.processor.AddPoint(ev.Pos.X, ev.Pos.Y)
		case core.PointerRelease:
			g.player.ApplyImpulse(g.processor.EndSwipe())
		}
	}
}

// nudgeActions maps parameter keys to their parameter and direction.
var nudgeActions = []struct {
	action core.Action
	param  string
	delta  int
}{
	{core.ActionStrengthUp, swipe.ParamStrength, +1},
	{core.ActionStrengthDown, swipe.ParamStrength, -1},
	{core.ActionFocusUp, swipe.ParamFocus, +1},
	{core.ActionFocusDown, swipe.ParamFocus, -1},
	{core.ActionSmoothUp, swipe.ParamSmoothness, +1},
	{core.ActionSmoothDown, swipe.ParamSmoothness, -1},
}

// applyNudges applies at most one held parameter key per nudge interval.
func (g *Game) applyNudges(in core.InputFrame) {
	if g.nudgeCooldown > 0 {
		g.nudgeCooldown -= g.dt
		return
	}
	for _, n := range nudgeActions {
		if !in.Has(n.action) || !g.offers(n.param) {
			continue
		}
		g.params.Adjust(n.param, n.delta)
		g.nudgeCooldown = g.cfg.Input.NudgeInterval
		return
	}
}

// stepTransition waits for exactly one choice from keys or buttons.
func (g *Game) stepTransition(in core.InputFrame) {
	for _, n := range nudgeActions {
		if in.Has(n.action) && g.Choose(n.param, n.delta) {
			return
		}
	}
	for _, ev := range in.Pointer {
		if ev.Kind != core.PointerPress {
			continue
		}
		if b, ok := hitButton(g.buttons, ev.CellX, ev.CellY); ok && g.Choose(b.Param, b.Delta) {
			return
		}
	}
}

// Choose applies a transition choice. It is accepted only on the
// transition screen and only if it changes the parameter; an accepted
// choice starts the next round.
func (g *Game) Choose(param string, delta int) bool {
	if g.phase != PhaseTransition || !g.offers(param) {
		return false
	}
	if !g.params.Adjust(param, delta) {
		return false
	}
	g.startRound()
	return true
}

// offers reports whether a parameter can be tuned in the current control mode.
// Focus only shapes discrete gestures.
func (g *Game) offers(param string) bool {
	switch param {
	case swipe.ParamStrength, swipe.ParamSmoothness:
		return true
	case swipe.ParamFocus:
		return g.mode == config.ModeGesture
	}
	return false
}

// OfferedParams lists the tunable parameters in display order.
func (g *Game) OfferedParams() []string {
	out := make([]string, 0, len(swipe.Names))
	for _, name := range swipe.Names {
		if g.offers(name) {
			out = append(out, name)
		}
	}
	return out
}

// startRound enters Playing with a full timer and a motionless player.
func (g *Game) startRound() {
	g.phase = PhasePlaying
	g.timeRemaining = g.roundDuration
	g.player.Stop()
	g.processor.Cancel()
	g.thrust.Reset()
	g.nudgeCooldown = 0
	g.paused = false
	g.collected = 0
	g.crashes = 0
	g.buttons = nil
	g.emitPhase()
}

// endRound freezes play and offers the parameter choices.
func (g *Game) endRound() {
	g.timeRemaining = 0
	summary := &core.RoundSummary{
		Level:      g.level,
		Score:      g.score,
		Collected:  g.collected,
		Crashes:    g.crashes,
		Strength:   g.params.Strength,
		Focus:      g.params.Focus,
		Smoothness: g.params.Smoothness,
		Mode:       string(g.mode),
	}
	g.level++
	g.phase = PhaseTransition
	g.processor.Cancel()
	g.thrust.Reset()
	g.buttons = layoutButtons(g.OfferedParams(), g.params, g.runtime.ScreenW, g.runtime.ScreenH)

	g.emit(core.Event{Kind: core.EventRoundEnded, Round: summary})
	g.emitPhase()
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

func (g *Game) emitPhase() {
	g.emit(core.Event{Kind: core.EventPhaseChanged, Phase: g.phase})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:         g.score,
		Level:         g.level,
		TimeRemaining: g.timeRemaining,
		Phase:         g.phase,
		Paused:        g.paused,
	}
}

// Phase returns the current phase.
func (g *Game) Phase() string { return g.phase }

// Parameters returns a copy of the current swipe parameters.
func (g *Game) Parameters() swipe.Parameters { return *g.params }

// Mode returns the control mode fixed at Reset.
func (g *Game) Mode() config.ControlMode { return g.mode }

// Buttons returns the transition buttons, empty outside the transition screen.
func (g *Game) Buttons() []Button { return g.buttons }

// Player returns the player body.
func (g *Game) Player() *Player { return g.player }

// Field returns the asteroid field.
func (g *Game) Field() *AsteroidField { return g.field }

// Collectible returns the target.
func (g *Game) Collectible() *Collectible { return g.collectible }

// CellSize returns the world size of one screen cell.
func (g *Game) CellSize() (w, h float64) {
	return g.cfg.World.CellWidth, g.cfg.World.CellHeight
}
