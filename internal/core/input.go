package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // A, Left arrow - shift piece left
	ActionRight            // D, Right arrow - shift piece right
	ActionDown             // S, Down arrow - soft drop
	ActionRotate           // W, Up arrow, X - rotate clockwise
	ActionRotateCCW        // Z - rotate counter-clockwise
	ActionHardDrop         // Space - drop and lock
	ActionHold             // C, Shift - push active piece into hold
	ActionSlot1            // 1 - swap with held piece #1
	ActionSlot2            // 2 - swap with held piece #2
	ActionSlot3            // 3 - swap with held piece #3
	ActionConfirm          // Enter - confirm selection in menu
	ActionBack             // B, Escape - go back to menu
	ActionRestart          // R key - restart game after game over
	ActionQuit             // Q, Ctrl+C - exit game/session
	ActionPause            // P - pause/unpause game
)

var actionNames = map[Action]string{
	ActionNone:      "None",
	ActionLeft:      "Left",
	ActionRight:     "Right",
	ActionDown:      "Down",
	ActionRotate:    "Rotate",
	ActionRotateCCW: "RotateCCW",
	ActionHardDrop:  "HardDrop",
	ActionHold:      "Hold",
	ActionSlot1:     "Slot1",
	ActionSlot2:     "Slot2",
	ActionSlot3:     "Slot3",
	ActionConfirm:   "Confirm",
	ActionBack:      "Back",
	ActionRestart:   "Restart",
	ActionQuit:      "Quit",
	ActionPause:     "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// SlotIndex returns the zero-based hold slot for ActionSlotN actions.
func (a Action) SlotIndex() (int, bool) {
	switch a {
	case ActionSlot1:
		return 0, true
	case ActionSlot2:
		return 1, true
	case ActionSlot3:
		return 2, true
	default:
		return 0, false
	}
}

// InputFrame collects the discrete actions delivered during one simulation tick.
// Actions arrive already debounced; the frame keeps both a set for quick lookup
// and the arrival order so games can replay several presses in one tick.
type InputFrame struct {
	Actions map[Action]bool
	order   []Action
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
	f.order = append(f.order, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Sequence returns the actions in the order they were set, duplicates included.
func (f InputFrame) Sequence() []Action {
	out := make([]Action, len(f.order))
	copy(out, f.order)
	return out
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.order) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.order = f.order[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.order = append(clone.order, f.order...)
	return clone
}
