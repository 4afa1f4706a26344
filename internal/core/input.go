package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone          Action = iota
	ActionPause                // freeze or resume play
	ActionRestart              // start a new run
	ActionQuit                 // leave the program (platform only)
	ActionStrengthUp           // raise strength by one step
	ActionStrengthDown         // lower strength by one step
	ActionFocusUp              // raise focus by one step
	ActionFocusDown            // lower focus by one step
	ActionSmoothUp             // raise smoothness by one step
	ActionSmoothDown           // lower smoothness by one step
	ActionToggleHistory        // show/hide round history (platform only)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionStrengthUp:
		return "StrengthUp"
	case ActionStrengthDown:
		return "StrengthDown"
	case ActionFocusUp:
		return "FocusUp"
	case ActionFocusDown:
		return "FocusDown"
	case ActionSmoothUp:
		return "SmoothUp"
	case ActionSmoothDown:
		return "SmoothDown"
	case ActionToggleHistory:
		return "ToggleHistory"
	default:
		return "Unknown"
	}
}

// PointerKind distinguishes the phases of a pointer gesture.
type PointerKind int

const (
	PointerPress   PointerKind = iota // button went down (swipe start)
	PointerMove                       // motion while the button is held
	PointerRelease                    // button released (swipe end)
)

// PointerEvent is one pointer sample in world coordinates.
// Cell is the screen cell the event came from, used for button hit tests.
type PointerEvent struct {
	Kind  PointerKind
	Pos   Vec2
	CellX int
	CellY int
}

// InputFrame is everything the platform collected during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pointer holds gesture events in arrival order.
	Pointer []PointerEvent

	// Delta is the summed raw pointer displacement during this tick.
	Delta Vec2
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// AddPointer appends a pointer event.
func (f *InputFrame) AddPointer(ev PointerEvent) {
	f.Pointer = append(f.Pointer, ev)
}

// AddDelta accumulates raw pointer displacement.
func (f *InputFrame) AddDelta(d Vec2) {
	f.Delta = f.Delta.Add(d)
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = f.Pointer[:0]
	f.Delta = Vec2{}
}
