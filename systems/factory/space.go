package factory

import (
	"github.com/automoto/soliman/archetypes"
	"github.com/automoto/soliman/components"
	"github.com/automoto/soliman/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// CreateViewport adds the object that tracks the visible world rectangle.
func CreateViewport(ecs *ecs.ECS, space *resolv.Space, width, height float64) *donburi.Entry {
	viewport := archetypes.Viewport.Spawn(ecs)
	object := resolv.NewObject(0, 0, width, height, tags.ResolvViewport)
	object.Data = viewport
	space.Add(object)
	components.Object.SetValue(viewport, components.ObjectData{Object: object})
	return viewport
}
