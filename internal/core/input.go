package core

// Action is a logical control, independent of the physical key that
// produced it.
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionPause
	ActionQuit
)

var actionNames = [...]string{
	ActionNone:  "None",
	ActionUp:    "Up",
	ActionDown:  "Down",
	ActionLeft:  "Left",
	ActionRight: "Right",
	ActionPause: "Pause",
	ActionQuit:  "Quit",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "Unknown"
}

// InputFrame is the set of actions held during one simulation tick.
// The zero value holds nothing.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// FrameOf builds a frame with the given actions held.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks a as held.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether a is held.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear releases every action, keeping the map for reuse.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}
