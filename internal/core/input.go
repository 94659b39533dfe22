package core

import "strings"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionFire           // Space - fire, flip, hard drop
	ActionConfirm        // Enter - confirm selection, start game
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R - reset the current game
	ActionQuit           // Q, Ctrl+C - exit
	ActionPause          // P - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// ParseAction resolves an action name case-insensitively, as used by scripted input.
func ParseAction(name string) (Action, bool) {
	for a := ActionUp; a <= ActionPause; a++ {
		if strings.EqualFold(a.String(), name) {
			return a, true
		}
	}
	return ActionNone, false
}

// InputFrame is what a game's Step receives. A frame carries the discrete
// input events that arrived together and, when Tick is set, asks the game
// to advance its simulation by one platform tick after applying them.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Tick requests one simulation step.
	Tick bool

	click    Point
	hasClick bool
	digit    int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// NewTickFrame creates a frame that only advances the simulation.
func NewTickFrame() InputFrame {
	f := NewInputFrame()
	f.Tick = true
	return f
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

// SetClick records a pointer press at screen cell (x, y).
func (f *InputFrame) SetClick(x, y int) {
	f.click = Point{X: x, Y: y}
	f.hasClick = true
}

// Click returns the pointer press position, if any.
func (f InputFrame) Click() (Point, bool) {
	return f.click, f.hasClick
}

// SetDigit records a numeric key press in 1..9. Other values are ignored.
func (f *InputFrame) SetDigit(d int) {
	if d >= 1 && d <= 9 {
		f.digit = d
	}
}

// Digit returns the numeric key pressed this frame, or 0.
func (f InputFrame) Digit() int {
	return f.digit
}

// Empty reports whether the frame carries no input events.
func (f InputFrame) Empty() bool {
	for _, v := range f.Actions {
		if v {
			return false
		}
	}
	return !f.hasClick && f.digit == 0
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Tick = false
	f.hasClick = false
	f.click = Point{}
	f.digit = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := f
	clone.Actions = make(map[Action]bool, len(f.Actions))
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
