package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"sort"

	"github.com/automoto/soliman/config"
	"github.com/automoto/soliman/selection"
	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi/features/math"
)

//go:embed all:scene
var sceneFS embed.FS

// DefaultScenePath is the embedded scene layout.
const DefaultScenePath = "scene/presentation.tmx"

// Rect is an axis-aligned box in world units
type Rect struct {
	X, Y, Width, Height float64
}

// ScenePlane is a scenery plane placed in the world. Depth 0 is the far
// backdrop; larger depths sit closer to the camera and sway further.
type ScenePlane struct {
	Name  string
	Rect  Rect
	Depth float64
}

// CharacterStand places one variant of the subject.
type CharacterStand struct {
	Variant selection.Variant
	Rect    Rect
}

// Scene is the parsed presentation layout.
type Scene struct {
	Name       string
	Width      int
	Height     int
	Planes     []ScenePlane // sorted back to front
	Characters []CharacterStand
	Remains    Rect
	BirdPath   []math.Vec2 // world coordinates
	Idle       *config.PoseConfig
	Target     *config.PoseConfig
}

// MustLoadDefaultScene loads the embedded scene layout.
func MustLoadDefaultScene() *Scene {
	scene, err := LoadScene(sceneFS, DefaultScenePath)
	if err != nil {
		panic(err)
	}
	return scene
}

// LoadScene parses a Tiled map from fsys. Object groups are read by name:
// Scenery, Characters, Remains, BirdPath and Camera. Unknown groups and
// objects are skipped.
func LoadScene(fsys fs.FS, path string) (*Scene, error) {
	sceneMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("failed to load scene %s: %w", path, err)
	}

	scene := &Scene{
		Name:   path,
		Width:  sceneMap.Width * sceneMap.TileWidth,
		Height: sceneMap.Height * sceneMap.TileHeight,
	}

	for _, og := range sceneMap.ObjectGroups {
		switch og.Name {
		case "Scenery":
			for _, o := range og.Objects {
				scene.Planes = append(scene.Planes, ScenePlane{
					Name:  o.Name,
					Rect:  objectRect(o),
					Depth: o.Properties.GetFloat("depth"),
				})
			}
			sort.SliceStable(scene.Planes, func(i, j int) bool {
				return scene.Planes[i].Depth < scene.Planes[j].Depth
			})
		case "Characters":
			for _, o := range og.Objects {
				v, ok := selection.Parse(o.Name)
				if !ok || !v.IsCharacter() {
					log.Printf("Warning: scene %s: unknown character stand %q", path, o.Name)
					continue
				}
				scene.Characters = append(scene.Characters, CharacterStand{
					Variant: v,
					Rect:    objectRect(o),
				})
			}
		case "Remains":
			for _, o := range og.Objects {
				scene.Remains = objectRect(o)
			}
		case "BirdPath":
			for _, o := range og.Objects {
				if len(o.PolyLines) == 0 {
					continue
				}
				polyline := o.PolyLines[0]
				if polyline.Points == nil || len(*polyline.Points) < 2 {
					continue
				}
				points := make([]math.Vec2, len(*polyline.Points))
				for i, point := range *polyline.Points {
					points[i] = math.Vec2{
						X: o.X + point.X,
						Y: o.Y + point.Y,
					}
				}
				scene.BirdPath = points
			}
		case "Camera":
			for _, o := range og.Objects {
				pose := &config.PoseConfig{
					X:    o.X,
					Y:    o.Y,
					Zoom: o.Properties.GetFloat("zoom"),
					Tilt: o.Properties.GetFloat("tilt"),
				}
				if pose.Zoom <= 0 {
					pose.Zoom = 1
				}
				switch o.Name {
				case "idle":
					scene.Idle = pose
				case "target":
					scene.Target = pose
				}
			}
		}
	}

	if len(scene.Planes) == 0 {
		return nil, fmt.Errorf("scene %s has no scenery planes", path)
	}

	return scene, nil
}

// Stand returns the stand for v.
func (s *Scene) Stand(v selection.Variant) (CharacterStand, bool) {
	for _, c := range s.Characters {
		if c.Variant == v {
			return c, true
		}
	}
	return CharacterStand{}, false
}

func objectRect(o *tiled.Object) Rect {
	return Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height}
}
