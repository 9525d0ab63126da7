package systems

import (
	"github.com/automoto/soliman/components"
	cfg "github.com/automoto/soliman/config"
	"github.com/automoto/soliman/selection"
	"github.com/yohamta/donburi/ecs"
)

// NewActionSystem returns the system that handles keyboard and gamepad
// shortcuts. Variant shortcuts click the matching panel entry and only work
// once the panel is revealed. Must run after UpdateInput.
func NewActionSystem(aff selection.Affordances) func(e *ecs.ECS) {
	return func(e *ecs.ECS) {
		inputEntry, ok := components.Input.First(e.World)
		if !ok {
			return
		}
		input := components.Input.Get(inputEntry)

		if GetAction(input, cfg.ActionQuit).JustPressed {
			RequestQuit(e)
			return
		}
		if GetAction(input, cfg.ActionStart).JustPressed {
			StartPresentation(e)
		}
		if GetAction(input, cfg.ActionToggleFullscreen).JustPressed {
			ToggleFullscreen(e)
		}
		if GetAction(input, cfg.ActionRestart).JustPressed {
			RestartPresentation(e, aff)
			return
		}

		if !PanelRevealed(e) {
			return
		}
		for i, action := range cfg.VariantActions {
			if i >= len(selection.Variants) {
				break
			}
			if GetAction(input, action).JustPressed {
				ClickVariant(e, selection.Variants[i], aff)
			}
		}
	}
}
