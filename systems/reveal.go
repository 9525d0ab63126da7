package systems

import (
	"github.com/automoto/soliman/components"
	"github.com/yohamta/donburi/ecs"
)

// PanelRevealer shows the selection panel.
type PanelRevealer interface {
	RevealPanel()
}

// NewRevealSystem returns the system that opens the reveal gate once the
// zoom completes and reveals the panel on the firing tick. Must run after
// UpdateProgression. A nil revealer still latches the gate.
func NewRevealSystem(revealer PanelRevealer) func(e *ecs.ECS) {
	return func(e *ecs.ECS) {
		entry, ok := presentation(e)
		if !ok {
			return
		}
		engine := components.Progression.Get(entry).Engine
		gate := &components.Reveal.Get(entry).Gate

		if gate.Check(engine.Started(), engine.Progress()) && revealer != nil {
			revealer.RevealPanel()
		}
	}
}
