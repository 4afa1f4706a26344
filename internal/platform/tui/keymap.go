package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/swipey/internal/core"
)

// KeyMap defines the key bindings for a Swipey session.
// Terminals do not report key releases, so a held key arrives as
// repeated presses and the game rate-limits the nudges itself.
type KeyMap struct {
	StrengthUp   key.Binding
	StrengthDown key.Binding
	FocusUp      key.Binding
	FocusDown    key.Binding
	SmoothUp     key.Binding
	SmoothDown   key.Binding
	Pause        key.Binding
	Restart      key.Binding
	History      key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		StrengthUp: key.NewBinding(
			key.WithKeys("q", "Q"),
			key.WithHelp("q/a", "strength"),
		),
		StrengthDown: key.NewBinding(
			key.WithKeys("a", "A"),
		),
		FocusUp: key.NewBinding(
			key.WithKeys("w", "W"),
			key.WithHelp("w/s", "focus"),
		),
		FocusDown: key.NewBinding(
			key.WithKeys("s", "S"),
		),
		SmoothUp: key.NewBinding(
			key.WithKeys("e", "E"),
			key.WithHelp("e/d", "smoothness"),
		),
		SmoothDown: key.NewBinding(
			key.WithKeys("d", "D"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		History: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "rounds"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.StrengthUp, k.FocusUp, k.SmoothUp, k.Pause, k.Restart, k.History, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.StrengthUp, k.StrengthDown, k.FocusUp, k.FocusDown, k.SmoothUp, k.SmoothDown},
		{k.Pause, k.Restart, k.History, k.Quit},
	}
}

// MapKey translates a key message to a game action.
// Returns ActionNone for unbound keys.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.StrengthUp):
		return core.ActionStrengthUp
	case key.Matches(msg, k.StrengthDown):
		return core.ActionStrengthDown
	case key.Matches(msg, k.FocusUp):
		return core.ActionFocusUp
	case key.Matches(msg, k.FocusDown):
		return core.ActionFocusDown
	case key.Matches(msg, k.SmoothUp):
		return core.ActionSmoothUp
	case key.Matches(msg, k.SmoothDown):
		return core.ActionSmoothDown
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.History):
		return core.ActionToggleHistory
	}
	return core.ActionNone
}
