package core

// Action represents a semantic platform action, abstracted from physical
// key presses. Typed practice characters travel separately as runes so that
// letters used for actions elsewhere (like "q") stay typeable during play.
type Action int

const (
	ActionNone Action = iota
	ActionBack        // Esc - leave the current session
	ActionQuit        // Ctrl+C - exit the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the input gathered between two simulation ticks:
// triggered actions plus the characters typed, in order. Each typed rune is
// one match attempt against the falling targets.
type InputFrame struct {
	Actions map[Action]bool
	Runes   []rune
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

// PushRune queues a typed character for the next tick.
func (f *InputFrame) PushRune(r rune) {
	f.Runes = append(f.Runes, r)
}

// Clear resets all actions and typed characters for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Runes = f.Runes[:0]
}
