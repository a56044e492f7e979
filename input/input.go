// Package input holds the engine-independent view of player controls.
// Systems poll the engine once per frame and hand the result to the UI as
// an immutable Frame, so nothing below the systems layer reads global input.
package input

// Control represents a logical button the battle UI reacts to
type Control int

const (
	None Control = iota
	Up
	Down
	Left
	Right
	Confirm
	Cancel
	Count // Must be last - used for array sizing
)

func (c Control) String() string {
	switch c {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Confirm:
		return "Confirm"
	case Cancel:
		return "Cancel"
	}
	return "None"
}

// ActionState represents the temporal state of a control
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// Frame is a snapshot of the controls for a single frame.
// JustPressed/JustReleased are derived by comparing against the previous frame.
type Frame struct {
	current  [Count]bool
	previous [Count]bool
}

// NewFrame builds a snapshot from this frame's and the previous frame's held state.
func NewFrame(current, previous [Count]bool) Frame {
	return Frame{current: current, previous: previous}
}

// Press returns a frame in which the given controls were just pressed.
func Press(controls ...Control) Frame {
	var f Frame
	for _, c := range controls {
		if c > None && c < Count {
			f.current[c] = true
		}
	}
	return f
}

// State returns the full ActionState for a control.
func (f Frame) State(c Control) ActionState {
	if c <= None || c >= Count {
		return ActionState{}
	}
	curr := f.current[c]
	prev := f.previous[c]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// Pressed reports whether the control went down this frame.
func (f Frame) Pressed(c Control) bool {
	return f.State(c).JustPressed
}

// Held reports whether the control is down, regardless of when it was pressed.
func (f Frame) Held(c Control) bool {
	return f.State(c).Pressed
}

// Next returns the frame that follows f when the controls in current are held.
func (f Frame) Next(current [Count]bool) Frame {
	return Frame{current: current, previous: f.current}
}
