package systems

import (
	"math"

	"github.com/automoto/soliman/components"
	cfg "github.com/automoto/soliman/config"
	"github.com/automoto/soliman/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices to avoid allocations
var (
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
)

// UpdateInput polls raw input into the Input component: action states and
// the pointer normalized to [-1, 1] on both axes. Must run before the
// systems that read it.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	// Pointer: a deflected right stick wins, then the first touch, then
	// the mouse cursor.
	if x, y, ok := rightStick(gamepadIDs); ok {
		input.PointerX, input.PointerY = x, y
		gamepadUsed = true
	} else {
		touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
		if len(touchIDs) > 0 {
			input.CursorX, input.CursorY = ebiten.TouchPosition(touchIDs[0])
		} else {
			cx, cy := ebiten.CursorPosition()
			if cx != input.CursorX || cy != input.CursorY {
				input.LastInputMethod = components.InputPointer
			}
			input.CursorX, input.CursorY = cx, cy
		}
		input.PointerX, input.PointerY = NormalizePointer(input.CursorX, input.CursorY, cfg.C.Width, cfg.C.Height)
	}

	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// NormalizePointer maps screen pixels onto [-1, 1] per axis:
// x = px/width*2 - 1, y = py/height*2 - 1.
func NormalizePointer(px, py, width, height int) (float64, float64) {
	return gamemath.NormalizeCursor(float64(px), float64(width)),
		gamemath.NormalizeCursor(float64(py), float64(height))
}

// rightStick returns the first right stick outside the deadzone.
func rightStick(gamepads []ebiten.GamepadID) (x, y float64, ok bool) {
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickVertical)
		if math.Abs(h) > deadzone || math.Abs(v) > deadzone {
			return gamemath.ClampAxis(h), gamemath.ClampAxis(v), true
		}
	}
	return 0, 0, false
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
