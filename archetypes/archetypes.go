package archetypes

import (
	"github.com/automoto/soliman/components"
	cfg "github.com/automoto/soliman/config"
	"github.com/automoto/soliman/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Scenery = newArchetype(
		tags.Scenery,
		components.Scenery,
		components.SpriteStrip,
		components.Placement,
		components.Object,
	)
	Character = newArchetype(
		tags.Character,
		components.Character,
		components.SpriteStrip,
		components.Placement,
	)
	Remains = newArchetype(
		tags.Remains,
		components.SpriteStrip,
		components.Placement,
	)
	Bird = newArchetype(
		tags.Bird,
		components.BonesBird,
		components.SpriteStrip,
		components.Placement,
	)
	Viewport = newArchetype(
		tags.Viewport,
		components.Object,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
