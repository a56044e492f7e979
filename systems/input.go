package systems

import (
	"github.com/DoNotDoughnut/firecore-battle-gui/components"
	cfg "github.com/DoNotDoughnut/firecore-battle-gui/config"
	"github.com/DoNotDoughnut/firecore-battle-gui/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE UpdateBattle in the system order.
func UpdateInput(ecs *ecs.ECS) {
	data := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	data.Previous = data.Current
	data.Current = [input.Count]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	analogLeft, analogRight, analogUp, analogDown, analogGpID := getAnalogStickState(gamepadIDs)

	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	for control, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				data.Current[control] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					data.Current[control] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	// Merge analog stick into directional controls
	analog := [...]struct {
		control input.Control
		held    bool
	}{
		{input.Left, analogLeft},
		{input.Right, analogRight},
		{input.Up, analogUp},
		{input.Down, analogDown},
	}
	for _, a := range analog {
		if a.held {
			data.Current[a.control] = true
			gamepadUsed = true
			activeGamepadID = analogGpID
		}
	}

	// Gamepad takes priority if both used
	if gamepadUsed {
		data.LastInputMethod = getControllerType(activeGamepadID)
	} else if keyboardUsed {
		data.LastInputMethod = components.InputKeyboard
	}
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	method := components.ControllerMethod(ebiten.GamepadName(gpID))
	controllerTypeCache[gpID] = method
	return method
}

// getAnalogStickState reads the left analog stick from all gamepads.
// Returns directional states past the deadzone and the gamepad that produced them.
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right, up, down bool, activeGpID ebiten.GamepadID) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		if horizontal < -deadzone {
			left = true
			activeGpID = gpID
		}
		if horizontal > deadzone {
			right = true
			activeGpID = gpID
		}
		if vertical < -deadzone {
			up = true
			activeGpID = gpID
		}
		if vertical > deadzone {
			down = true
			activeGpID = gpID
		}
	}

	return
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// LastInputMethod returns the device the player used most recently.
func LastInputMethod(ecs *ecs.ECS) components.InputMethod {
	return getOrCreateInput(ecs).LastInputMethod
}

// CurrentFrame returns this frame's input snapshot.
func CurrentFrame(ecs *ecs.ECS) input.Frame {
	return getOrCreateInput(ecs).Frame()
}
