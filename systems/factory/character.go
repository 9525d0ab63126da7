package factory

import (
	"github.com/automoto/soliman/archetypes"
	"github.com/automoto/soliman/assets"
	"github.com/automoto/soliman/assets/animations"
	"github.com/automoto/soliman/components"
	"github.com/automoto/soliman/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CharacterDepth draws the subject between the mid plants and the near foliage.
const CharacterDepth = 0.6

// CreateCharacter spawns one hidden variant of the subject.
func CreateCharacter(ecs *ecs.ECS, stand assets.CharacterStand, pc config.PlaneConfig, img *ebiten.Image) *donburi.Entry {
	character := archetypes.Character.Spawn(ecs)

	components.Character.SetValue(character, components.CharacterData{Variant: stand.Variant})
	components.SpriteStrip.SetValue(character, components.SpriteStripData{
		Strip: animations.NewStrip(stand.Variant.String(), pc.Frames, pc.FPS),
		Image: img,
	})
	components.Placement.SetValue(character, components.PlacementData{
		X:      stand.Rect.X,
		Y:      stand.Rect.Y,
		Width:  stand.Rect.Width,
		Height: stand.Rect.Height,
		Depth:  CharacterDepth,
	})

	return character
}
