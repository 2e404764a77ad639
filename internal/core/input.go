package core

// Action represents a semantic game action, abstracted from physical key
// presses. This allows games to work with high-level intents rather than raw
// input. Primary actions belong to player 1; the Alt variants belong to the
// second local player in versus mode.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // Arrow up - steer player 1 up
	ActionDown            // Arrow down - steer player 1 down
	ActionLeft            // Arrow left - steer player 1 left
	ActionRight           // Arrow right - steer player 1 right
	ActionFire            // M - player 1 fires a projectile
	ActionAltUp           // W - steer player 2 up
	ActionAltDown         // S - steer player 2 down
	ActionAltLeft         // A - steer player 2 left
	ActionAltRight        // D - steer player 2 right
	ActionAltFire         // F - player 2 fires a projectile
	ActionConfirm         // Enter/Space - continue after a round
	ActionBack            // B, Escape - go back to menu
	ActionRestart         // R - restart after game over
	ActionQuit            // Q, Ctrl+C - exit game/session
	ActionPause           // P - pause/unpause game
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
	case ActionAltUp:
		return "AltUp"
	case ActionAltDown:
		return "AltDown"
	case ActionAltLeft:
		return "AltLeft"
	case ActionAltRight:
		return "AltRight"
	case ActionAltFire:
		return "AltFire"
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

// InputFrame represents the input state during one platform frame.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
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
