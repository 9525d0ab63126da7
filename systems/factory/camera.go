package factory

import (
	"github.com/automoto/soliman/archetypes"
	"github.com/automoto/soliman/components"
	"github.com/automoto/soliman/progression"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS, pose progression.Pose) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{Pose: pose})
	return camera
}
