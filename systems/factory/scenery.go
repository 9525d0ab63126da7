package factory

import (
	"github.com/automoto/soliman/archetypes"
	"github.com/automoto/soliman/assets"
	"github.com/automoto/soliman/assets/animations"
	"github.com/automoto/soliman/components"
	"github.com/automoto/soliman/config"
	"github.com/automoto/soliman/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateScenery spawns a scenery plane and registers its bounds for culling.
// space may be nil.
func CreateScenery(ecs *ecs.ECS, space *resolv.Space, plane assets.ScenePlane, family string, pc config.PlaneConfig, img *ebiten.Image) *donburi.Entry {
	scenery := archetypes.Scenery.Spawn(ecs)

	components.Scenery.SetValue(scenery, components.SceneryData{
		Name:      plane.Name,
		Family:    family,
		SwayDepth: plane.Depth,
	})
	components.SpriteStrip.SetValue(scenery, components.SpriteStripData{
		Strip: animations.NewStrip(plane.Name, pc.Frames, pc.FPS),
		Image: img,
	})
	components.Placement.SetValue(scenery, components.PlacementData{
		X:       plane.Rect.X,
		Y:       plane.Rect.Y,
		Width:   plane.Rect.Width,
		Height:  plane.Rect.Height,
		Depth:   plane.Depth,
		Visible: true,
	})

	object := resolv.NewObject(plane.Rect.X, plane.Rect.Y, plane.Rect.Width, plane.Rect.Height, tags.ResolvScenery)
	object.Data = scenery
	if space != nil {
		space.Add(object)
	}
	components.Object.SetValue(scenery, components.ObjectData{Object: object})

	return scenery
}
