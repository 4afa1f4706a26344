package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/swipey/internal/storage"
)

// historyMaxHeight caps the table rows shown in the overlay.
const historyMaxHeight = 12

// History is the round-log overlay for the current run.
type History struct {
	store  *storage.Store
	table  table.Model
	rounds []storage.RoundEntry
	best   *storage.RoundEntry
	err    error
}

// NewHistory creates the overlay backed by the given store (may be nil).
func NewHistory(store *storage.Store) *History {
	h := &History{store: store}
	h.table = newHistoryTable(historyMaxHeight)
	return h
}

func newHistoryTable(height int) table.Model {
	columns := []table.Column{
		{Title: "Round", Width: 6},
		{Title: "Score", Width: 7},
		{Title: "Got", Width: 5},
		{Title: "Hit", Width: 5},
		{Title: "Str", Width: 4},
		{Title: "Foc", Width: 4},
		{Title: "Smo", Width: 4},
		{Title: "Mode", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("25")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Refresh reloads the current run's rounds from the store.
func (h *History) Refresh() {
	h.rounds, h.best, h.err = nil, nil, nil
	if h.store != nil {
		runID := h.store.RunID()
		h.rounds, h.err = h.store.Rounds(runID)
		if h.err == nil {
			h.best, h.err = h.store.BestRound(runID)
		}
	}

	rows := make([]table.Row, len(h.rounds))
	for i, r := range h.rounds {
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.Level),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Collected),
			fmt.Sprintf("%d", r.Crashes),
			fmt.Sprintf("%d", r.Strength),
			fmt.Sprintf("%d", r.Focus),
			fmt.Sprintf("%d", r.Smoothness),
			r.Mode,
		}
	}
	h.table.SetRows(rows)
	h.table.GotoBottom()
}

// Rounds returns the rounds loaded by the last Refresh.
func (h *History) Rounds() []storage.RoundEntry { return h.rounds }

// Best returns the best round loaded by the last Refresh, or nil.
func (h *History) Best() *storage.RoundEntry { return h.best }

// View renders the overlay centered in a width x height area.
func (h *History) View(width, height int) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("75"))
	dimStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var b strings.Builder
	b.WriteString(titleStyle.Render("ROUND HISTORY"))
	b.WriteString("\n\n")

	switch {
	case h.err != nil:
		b.WriteString(dimStyle.Render("Round log unavailable: " + h.err.Error()))
	case len(h.rounds) == 0:
		b.WriteString(dimStyle.Italic(true).Render("No rounds finished yet."))
	default:
		b.WriteString(h.table.View())
		if h.best != nil {
			b.WriteString("\n\n")
			b.WriteString(fmt.Sprintf("Best: round %d, %d collected (str %d, foc %d, smo %d)",
				h.best.Level, h.best.Collected, h.best.Strength, h.best.Focus, h.best.Smoothness))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("h to close"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, boxStyle.Render(b.String()))
}
