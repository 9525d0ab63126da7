package systems

import (
	"github.com/automoto/soliman/components"
	"github.com/automoto/soliman/progression"
	"github.com/yohamta/donburi"
)

// SceneSink receives the values the presentation publishes to the renderer
// each tick.
type SceneSink interface {
	SetCameraPose(pose progression.Pose)
	SetScenerySway(sway progression.Offset)
	SetTextureOffset(id donburi.Entity, u float64)
}

// ecsSceneSink writes published values into components read by the draw
// functions.
type ecsSceneSink struct {
	world donburi.World
}

// NewSceneSink returns a sink backed by the world's components.
func NewSceneSink(w donburi.World) SceneSink {
	return &ecsSceneSink{world: w}
}

func (s *ecsSceneSink) SetCameraPose(pose progression.Pose) {
	entry, ok := components.Camera.First(s.world)
	if !ok {
		return
	}
	components.Camera.Get(entry).Pose = pose
}

// SetScenerySway offsets every plane by sway scaled with its depth.
func (s *ecsSceneSink) SetScenerySway(sway progression.Offset) {
	components.Scenery.Each(s.world, func(entry *donburi.Entry) {
		depth := components.Scenery.Get(entry).SwayDepth
		placement := components.Placement.Get(entry)
		placement.Offset.X = sway.X * depth
		placement.Offset.Y = sway.Y * depth
	})
}

func (s *ecsSceneSink) SetTextureOffset(id donburi.Entity, u float64) {
	if !s.world.Valid(id) {
		return
	}
	entry := s.world.Entry(id)
	if !entry.HasComponent(components.SpriteStrip) {
		return
	}
	components.SpriteStrip.Get(entry).OffsetU = u
}
