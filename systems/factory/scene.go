package factory

import (
	"log"

	"github.com/automoto/soliman/assets"
	"github.com/automoto/soliman/components"
	"github.com/automoto/soliman/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

const placeholderMaxSide = 512

// StripRequests lists the sprite strips the scene needs, keyed by matched
// family, variant or "bones"/"bird".
func StripRequests(scene *assets.Scene) []assets.ImageRequest {
	var reqs []assets.ImageRequest
	seen := map[string]bool{}
	add := func(key string, pc config.PlaneConfig, rect assets.Rect) {
		if seen[key] {
			return
		}
		seen[key] = true
		w, h := placeholderSize(rect)
		reqs = append(reqs, assets.ImageRequest{
			Key:    key,
			Path:   pc.Sprite,
			Frames: pc.Frames,
			Width:  w,
			Height: h,
			Tint:   pc.RGBA(),
			Shape:  assets.ShapeFor(key),
		})
	}

	for _, plane := range scene.Planes {
		pc, key, ok := config.Planes.Match(plane.Name)
		if !ok {
			continue
		}
		add(key, pc, plane.Rect)
	}
	for _, stand := range scene.Characters {
		if pc, ok := config.Planes.Characters[stand.Variant.String()]; ok {
			add(stand.Variant.String(), pc, stand.Rect)
		}
	}
	add("bones", config.Planes.Bones, scene.Remains)
	add("bird", config.Planes.Bird, assets.Rect{Width: birdSize, Height: birdSize})

	return reqs
}

// CreateScene spawns every plane, character, the remains and the bird from
// the layout. Planes with no matching family are skipped.
func CreateScene(ecs *ecs.ECS, scene *assets.Scene, images map[string]*ebiten.Image) {
	space := CreateSpace(ecs, scene.Width, scene.Height, 64, 64)
	CreateViewport(ecs, components.Space.Get(space), float64(config.C.Width), float64(config.C.Height))
	CreateCamera(ecs, Pose(config.Camera.Idle))

	for _, plane := range scene.Planes {
		pc, key, ok := config.Planes.Match(plane.Name)
		if !ok {
			log.Printf("Warning: scenery plane %q has no sprite family", plane.Name)
			continue
		}
		CreateScenery(ecs, components.Space.Get(space), plane, key, pc, images[key])
	}

	for _, stand := range scene.Characters {
		key := stand.Variant.String()
		pc, ok := config.Planes.Characters[key]
		if !ok {
			log.Printf("Warning: character %q has no sprite strip", key)
			continue
		}
		CreateCharacter(ecs, stand, pc, images[key])
	}

	CreateRemains(ecs, scene.Remains, config.Planes.Bones, images["bones"])
	CreateBird(ecs, scene.Remains, scene.BirdPath, config.Planes.Bird, images["bird"])
}

func placeholderSize(rect assets.Rect) (int, int) {
	w, h := rect.Width, rect.Height
	if w <= 0 || h <= 0 {
		return 64, 64
	}
	if side := max(w, h); side > placeholderMaxSide {
		scale := placeholderMaxSide / side
		w, h = w*scale, h*scale
	}
	return max(int(w), 1), max(int(h), 1)
}
