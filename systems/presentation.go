package systems

import (
	"github.com/automoto/soliman/components"
	"github.com/automoto/soliman/selection"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// presentation returns the entry holding the session singletons.
func presentation(e *ecs.ECS) (*donburi.Entry, bool) {
	return components.Progression.First(e.World)
}

// StartPresentation starts the zoom and dismisses the start overlay.
// Calling it again has no effect.
func StartPresentation(e *ecs.ECS) {
	entry, ok := presentation(e)
	if !ok {
		return
	}
	components.Progression.Get(entry).Engine.Start()

	overlay := components.Overlay.Get(entry)
	overlay.Dismissed = true
}

// Started reports whether the zoom has been started.
func Started(e *ecs.ECS) bool {
	entry, ok := presentation(e)
	if !ok {
		return false
	}
	return components.Progression.Get(entry).Engine.Started()
}

// PanelRevealed reports whether the reveal gate has fired.
func PanelRevealed(e *ecs.ECS) bool {
	entry, ok := presentation(e)
	if !ok {
		return false
	}
	return components.Reveal.Get(entry).Gate.Fired()
}

// RestartPresentation returns the session to its initial state: idle
// zoom, closed gate, no selection and the start overlay shown again.
func RestartPresentation(e *ecs.ECS, aff selection.Affordances) {
	entry, ok := presentation(e)
	if !ok {
		return
	}

	progressionData := components.Progression.Get(entry)
	progressionData.Engine.Reset()
	progressionData.Frame = progressionData.Engine.Update(0, 0, 0, 0)
	components.Reveal.Get(entry).Gate.Reset()

	cmds := components.Selection.Get(entry).Machine.Reset()
	selection.Apply(cmds, NewVariantRegistry(e.World), aff)

	components.Overlay.SetValue(entry, components.OverlayData{Alpha: 1})
}

// RequestQuit asks the game loop to exit after this update.
func RequestQuit(e *ecs.ECS) {
	if entry, ok := presentation(e); ok {
		components.Session.Get(entry).QuitRequested = true
	}
}

// QuitRequested reports whether RequestQuit was called.
func QuitRequested(e *ecs.ECS) bool {
	entry, ok := presentation(e)
	if !ok {
		return false
	}
	return components.Session.Get(entry).QuitRequested
}
