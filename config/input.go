package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical presentation action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionStart
	ActionToggleFullscreen
	ActionRestart
	ActionQuit
	ActionVariant1
	ActionVariant2
	ActionVariant3
	ActionVariant4
	ActionVariant5
	ActionVariant6
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick pointer emulation (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

// VariantActions lists the shortcut actions in panel order.
var VariantActions = []ActionID{
	ActionVariant1, ActionVariant2, ActionVariant3,
	ActionVariant4, ActionVariant5, ActionVariant6,
}

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.2,
		Bindings: map[ActionID]InputBinding{
			ActionStart: {
				Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionToggleFullscreen: {
				Keys: []ebiten.Key{ebiten.KeyF, ebiten.KeyF11},
				// Select / Share button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft,
				},
			},
			ActionRestart: {
				Keys: []ebiten.Key{ebiten.KeyR},
			},
			ActionQuit: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionVariant1: {Keys: []ebiten.Key{ebiten.Key1, ebiten.KeyNumpad1}},
			ActionVariant2: {Keys: []ebiten.Key{ebiten.Key2, ebiten.KeyNumpad2}},
			ActionVariant3: {Keys: []ebiten.Key{ebiten.Key3, ebiten.KeyNumpad3}},
			ActionVariant4: {Keys: []ebiten.Key{ebiten.Key4, ebiten.KeyNumpad4}},
			ActionVariant5: {Keys: []ebiten.Key{ebiten.Key5, ebiten.KeyNumpad5}},
			ActionVariant6: {Keys: []ebiten.Key{ebiten.Key6, ebiten.KeyNumpad6}},
		},
	}
}
