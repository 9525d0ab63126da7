package systems

import (
	"github.com/automoto/soliman/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProgression advances the zoom with this tick's time and the
// normalized pointer, then publishes the camera pose and scenery sway.
func UpdateProgression(e *ecs.ECS) {
	entry, ok := presentation(e)
	if !ok {
		return
	}
	ts, elapsed := frameTime(e)

	var px, py float64
	if inputEntry, ok := components.Input.First(e.World); ok {
		input := components.Input.Get(inputEntry)
		px, py = input.PointerX, input.PointerY
	}

	data := components.Progression.Get(entry)
	data.Frame = data.Engine.Update(ts, elapsed, px, py)

	sink := NewSceneSink(e.World)
	sink.SetCameraPose(data.Frame.Camera)
	sink.SetScenerySway(data.Frame.Sway)
}
