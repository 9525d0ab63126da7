package factory

import (
	"github.com/automoto/soliman/archetypes"
	"github.com/automoto/soliman/assets"
	"github.com/automoto/soliman/assets/animations"
	"github.com/automoto/soliman/components"
	"github.com/automoto/soliman/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

const birdSize = 40

// CreateRemains spawns the hidden bones of the secondary scene.
func CreateRemains(ecs *ecs.ECS, rect assets.Rect, pc config.PlaneConfig, img *ebiten.Image) *donburi.Entry {
	remains := archetypes.Remains.Spawn(ecs)

	components.SpriteStrip.SetValue(remains, components.SpriteStripData{
		Strip: animations.NewStrip("bones", pc.Frames, pc.FPS),
		Image: img,
	})
	components.Placement.SetValue(remains, components.PlacementData{
		X:      rect.X,
		Y:      rect.Y,
		Width:  rect.Width,
		Height: rect.Height,
		Depth:  CharacterDepth,
	})

	return remains
}

// CreateBird spawns the hidden bird that circles the remains along path.
// Without a path it hovers above the remains.
func CreateBird(ecs *ecs.ECS, remains assets.Rect, path []math.Vec2, pc config.PlaneConfig, img *ebiten.Image) *donburi.Entry {
	bird := archetypes.Bird.Spawn(ecs)

	if len(path) < 2 {
		cx := remains.X + remains.Width/2
		top := remains.Y - config.BonesBird.HoverHeight
		w := config.BonesBird.SwoopWidth
		path = []math.Vec2{
			{X: cx, Y: top},
			{X: cx - w, Y: top + w/2},
			{X: cx, Y: top + w},
			{X: cx + w, Y: top + w/2},
			{X: cx, Y: top},
		}
	}

	base := path[0]
	relative := make([]math.Vec2, len(path))
	for i, p := range path {
		relative[i] = math.Vec2{X: p.X - base.X, Y: p.Y - base.Y}
	}

	components.BonesBird.SetValue(bird, components.BonesBirdData{
		Path:   relative,
		Flight: NewFlightSequence(len(path)-1, config.BonesBird.FlightDurationSec),
	})
	components.SpriteStrip.SetValue(bird, components.SpriteStripData{
		Strip: animations.NewStrip("bird", pc.Frames, pc.FPS),
		Image: img,
	})
	components.Placement.SetValue(bird, components.PlacementData{
		X:      base.X - birdSize/2,
		Y:      base.Y - birdSize/2,
		Width:  birdSize,
		Height: birdSize,
		Depth:  CharacterDepth + 0.01,
	})

	return bird
}

// NewFlightSequence tweens a path parameter from 0 to legs, one leg per
// tween, easing in and out of every waypoint.
func NewFlightSequence(legs int, legSec float32) *gween.Sequence {
	seq := gween.NewSequence()
	for i := 0; i < legs; i++ {
		seq.Add(gween.New(float32(i), float32(i+1), legSec, ease.InOutSine))
	}
	return seq
}
