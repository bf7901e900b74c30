package core

// Action represents a logical button, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, K, Up arrow - cursor up
	ActionDown             // S, J, Down arrow - cursor down
	ActionLeft             // A, H, Left arrow - cursor left
	ActionRight            // D, L, Right arrow - cursor right
	ActionPrimary          // Space, Z - slide the selected tile
	ActionAlternate        // X - slide the selected tile (alternate button)
	ActionStart            // Enter - start / play again
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
	case ActionPrimary:
		return "Primary"
	case ActionAlternate:
		return "Alternate"
	case ActionStart:
		return "Start"
	default:
		return "Unknown"
	}
}

// InputFrame is a snapshot of the buttons held during one tick.
// A button may stay held across many frames; games debounce on their own.
type InputFrame struct {
	// Actions maps action types to whether they are held this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// HasAny returns true if at least one of the given actions is held.
func (f InputFrame) HasAny(actions ...Action) bool {
	for _, a := range actions {
		if f.Has(a) {
			return true
		}
	}
	return false
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
