package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/swipey/internal/audio"
	"github.com/vovakirdan/swipey/internal/core"
	"github.com/vovakirdan/swipey/internal/registry"
	"github.com/vovakirdan/swipey/internal/storage"
)

// helpLines is the number of terminal rows reserved below the game for the help bar.
const helpLines = 1

// Options are the collaborators a session talks to. All fields are optional.
type Options struct {
	Store  *storage.Store // round log; nil disables history
	Audio  audio.Player   // cue output; nil plays nothing
	Logger *log.Logger    // event log; nil discards

	// MouseAllMotion reports motion without a held button (thrust control).
	MouseAllMotion bool
}

// Model is the Bubble Tea model for a Swipey session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	audio      audio.Player
	logger     *log.Logger
	config     core.RuntimeConfig
	fixedSeed  bool
	keys       KeyMap
	help       help.Model
	pointer    *PointerMapper
	history    *History
	inputFrame core.InputFrame
	gameState  core.GameState
	width      int
	height     int
	showing    bool // history overlay visible
	quitting   bool
}

// NewModel creates a Bubble Tea model for the given game.
// cfg.ScreenW and cfg.ScreenH are the full terminal size.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	fixedSeed := cfg.Seed != 0
	if !fixedSeed {
		cfg.Seed = time.Now().UnixNano()
	}

	width, height := cfg.ScreenW, cfg.ScreenH
	cfg.ScreenH = gameHeight(height)

	player := opts.Audio
	if player == nil {
		player = audio.Silent{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false
	h.Width = width

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		audio:      player,
		logger:     logger,
		config:     cfg,
		fixedSeed:  fixedSeed,
		keys:       DefaultKeyMap(),
		help:       h,
		pointer:    NewPointerMapper(defaultCellWidth, defaultCellHeight),
		history:    NewHistory(opts.Store),
		inputFrame: core.NewInputFrame(),
		width:      width,
		height:     height,
	}
}

// gameHeight returns the rows left for the game in a terminal of height h.
func gameHeight(h int) int {
	if h-helpLines < 1 {
		return 1
	}
	return h - helpLines
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.resetGame()
	return tickCmd(m.config.Rate())
}

// resetGame starts a fresh run at the current size and seed.
func (m *Model) resetGame() {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	if cs, ok := m.game.(cellSizer); ok {
		w, h := cs.CellSize()
		*m.pointer = *NewPointerMapper(w, h)
	} else {
		m.pointer.Reset()
	}
	m.logger.Info("run started",
		"game", m.game.ID(),
		"width", m.config.ScreenW,
		"height", m.config.ScreenH,
		"seed", m.config.Seed,
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if !m.showing {
			m.pointer.MapMouse(msg, &m.inputFrame)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.MapKey(msg); action {
	case core.ActionNone:
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score, "round", m.gameState.Level)
		return m, tea.Quit
	case core.ActionToggleHistory:
		m.showing = !m.showing
		if m.showing {
			m.history.Refresh()
		}
	case core.ActionRestart:
		m.restart()
	default:
		if !m.showing {
			m.inputFrame.Set(action)
		}
	}
	return m, nil
}

// restart begins a new run with a new round log and, unless pinned, a new seed.
func (m *Model) restart() {
	if !m.fixedSeed {
		m.config.Seed = time.Now().UnixNano()
	}
	if m.store != nil {
		m.store.NewRun()
	}
	m.inputFrame.Clear()
	m.showing = false
	m.resetGame()
}

// handleResize processes window resize events.
// The world is sized from the terminal, so a new size starts a new run.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width

	w, h := msg.Width, gameHeight(msg.Height)
	if w == m.config.ScreenW && h == m.config.ScreenH {
		return m, nil
	}
	m.config.ScreenW = w
	m.config.ScreenH = h
	m.screen.Resize(w, h)
	m.logger.Debug("resized", "width", w, "height", h)

	if m.store != nil {
		m.store.NewRun()
	}
	m.inputFrame.Clear()
	m.resetGame()
	return m, nil
}

// handleTick processes simulation ticks.
// The simulation is frozen while the history overlay is open.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.showing {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.Rate())
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.dispatch(result.Events)

	m.inputFrame.Clear()

	return m, tickCmd(m.config.Rate())
}

// dispatch forwards tick events to audio, the round log and the logger.
func (m *Model) dispatch(events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventCollected:
			m.audio.Play(audio.CueCollect)
			m.logger.Debug("collected", "score", m.gameState.Score)

		case core.EventCrashed:
			m.audio.Play(audio.CueCrash)
			m.logger.Debug("crashed", "score", m.gameState.Score)

		case core.EventRoundEnded:
			m.audio.Play(audio.CueRoundEnd)
			if e.Round == nil {
				continue
			}
			r := *e.Round
			m.logger.Info("round ended",
				"round", r.Level,
				"score", r.Score,
				"collected", r.Collected,
				"crashes", r.Crashes,
				"strength", r.Strength,
				"focus", r.Focus,
				"smoothness", r.Smoothness,
			)
			if m.store == nil {
				continue
			}
			if _, err := m.store.SaveRound(r); err != nil {
				m.logger.Warn("could not save round", "error", err)
			}

		case core.EventPhaseChanged:
			m.logger.Debug("phase changed", "phase", e.Phase, "round", m.gameState.Level)
		}
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showing {
		return m.history.View(m.width, m.height)
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	mouse := tea.WithMouseCellMotion()
	if opts.MouseAllMotion {
		mouse = tea.WithMouseAllMotion()
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		mouse,
	)

	_, err := p.Run()
	return err
}
