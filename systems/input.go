package systems

import (
	cfg "github.com/automoto/starblaster/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices to avoid per-frame allocations
var (
	gamepadIDs []ebiten.GamepadID
	pressed    []cfg.ActionID
)

// UpdateInput polls the keyboard and gamepads into the intent snapshot.
// Must run BEFORE UpdateSession in the system order.
func UpdateInput(ecs *ecs.ECS) {
	intent := GetOrCreateIntent(ecs)
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	pressed = pressed[:0]

	for actionID, binding := range cfg.Input.Bindings {
		if bindingPressed(binding, gamepadIDs) {
			pressed = append(pressed, actionID)
		}
	}
	pressed = appendAnalogStick(pressed, gamepadIDs)

	intent.Push(pressed...)
}

func bindingPressed(binding cfg.InputBinding, gamepads []ebiten.GamepadID) bool {
	for _, key := range binding.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				return true
			}
		}
	}
	return false
}

// appendAnalogStick merges the left sticks of all gamepads into the
// directional actions.
func appendAnalogStick(actions []cfg.ActionID, gamepads []ebiten.GamepadID) []cfg.ActionID {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		if horizontal < -deadzone {
			actions = append(actions, cfg.ActionMoveLeft)
		}
		if horizontal > deadzone {
			actions = append(actions, cfg.ActionMoveRight)
		}
		if vertical < -deadzone {
			actions = append(actions, cfg.ActionMoveUp)
		}
		if vertical > deadzone {
			actions = append(actions, cfg.ActionMoveDown)
		}
	}
	return actions
}

