package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/swipey/internal/core"
)

// Default world size of one terminal cell, used when the game does not say.
const (
	defaultCellWidth  = 12.0
	defaultCellHeight = 24.0
)

// cellSizer is implemented by games that work in world units rather than cells.
type cellSizer interface {
	CellSize() (w, h float64)
}

// PointerMapper turns terminal mouse messages into world-space pointer input.
// A gesture is the span between a left press and its release; motion deltas
// are tracked across every motion report for the thrust control mode.
type PointerMapper struct {
	cellW, cellH float64
	pressed      bool
	last         core.Vec2
	hasLast      bool
}

// NewPointerMapper creates a mapper for the given cell size in world units.
func NewPointerMapper(cellW, cellH float64) *PointerMapper {
	if cellW <= 0 || cellH <= 0 {
		cellW, cellH = defaultCellWidth, defaultCellHeight
	}
	return &PointerMapper{cellW: cellW, cellH: cellH}
}

// ToWorld returns the world position at the centre of a cell.
func (p *PointerMapper) ToWorld(x, y int) core.Vec2 {
	return core.V((float64(x)+0.5)*p.cellW, (float64(y)+0.5)*p.cellH)
}

// Pressed reports whether a gesture is in progress.
func (p *PointerMapper) Pressed() bool { return p.pressed }

// MapMouse records a mouse message into the frame.
func (p *PointerMapper) MapMouse(msg tea.MouseMsg, frame *core.InputFrame) {
	pos := p.ToWorld(msg.X, msg.Y)
	if p.hasLast {
		frame.AddDelta(pos.Sub(p.last))
	}
	p.last = pos
	p.hasLast = true

	ev := core.PointerEvent{Pos: pos, CellX: msg.X, CellY: msg.Y}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		p.pressed = true
		ev.Kind = core.PointerPress
	case tea.MouseActionMotion:
		if !p.pressed {
			return
		}
		ev.Kind = core.PointerMove
	case tea.MouseActionRelease:
		if !p.pressed {
			return
		}
		p.pressed = false
		ev.Kind = core.PointerRelease
	default:
		return
	}
	frame.AddPointer(ev)
}

// Reset forgets any gesture in progress and the last known position.
func (p *PointerMapper) Reset() {
	p.pressed = false
	p.hasLast = false
	p.last = core.Vec2{}
}
