package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone          Action = iota
	ActionLeft                 // Left arrow, A - held movement
	ActionRight                // Right arrow, D - held movement
	ActionJump                 // Space, X, Up - instant jump / double jump
	ActionChargeStart          // C pressed while not charging
	ActionChargeRelease        // C pressed again while charging
	ActionConfirm              // Enter - confirm initials, dismiss overlays
	ActionBackspace            // Backspace - edit initials
	ActionPause                // P, Escape - pause/unpause game
	ActionQuit                 // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionChargeStart:
		return "ChargeStart"
	case ActionChargeRelease:
		return "ChargeRelease"
	case ActionConfirm:
		return "Confirm"
	case ActionBackspace:
		return "Backspace"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// Held keys appear in every frame they are held; one-shot commands appear
// only in the frame that follows the key event.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Text holds printable characters typed this frame, in order.
	// Only overlays that accept free text read it.
	Text []rune
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

// Type appends a typed character to the frame.
func (f *InputFrame) Type(r rune) {
	f.Text = append(f.Text, r)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action and no text was recorded.
func (f InputFrame) Empty() bool {
	for _, on := range f.Actions {
		if on {
			return false
		}
	}
	return len(f.Text) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Text = f.Text[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if len(f.Text) > 0 {
		clone.Text = append([]rune(nil), f.Text...)
	}
	return clone
}
