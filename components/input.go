package components

import (
	"strings"

	"github.com/DoNotDoughnut/firecore-battle-gui/input"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

// ControllerMethod guesses the button layout from a gamepad's name.
// Anything that is not a PlayStation pad gets Xbox glyphs.
func ControllerMethod(name string) InputMethod {
	name = strings.ToLower(name)
	for _, s := range []string{"ps4", "ps5", "playstation", "dualshock", "dualsense"} {
		if strings.Contains(name, s) {
			return InputPlayStation
		}
	}
	return InputXbox
}

// Hint returns the Confirm/Cancel prompt in this device's button names.
func (m InputMethod) Hint() string {
	switch m {
	case InputXbox:
		return "A Select  B Back"
	case InputPlayStation:
		return "Cross Select  Circle Back"
	default:
		return "X Select  Z Back"
	}
}

// InputData stores the current and previous frame's pressed state for all controls.
// JustPressed/JustReleased are derived by the input.Frame built from it.
type InputData struct {
	Current         [input.Count]bool // Current frame's Pressed state
	Previous        [input.Count]bool // Previous frame's Pressed state
	LastInputMethod InputMethod       // Most recently used input method, picks the button hint
}

// Frame returns the immutable snapshot handed to the battle UI.
func (d *InputData) Frame() input.Frame {
	return input.NewFrame(d.Current, d.Previous)
}

var Input = donburi.NewComponentType[InputData]()
