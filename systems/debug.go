package systems

import (
	"image/color"

	"github.com/automoto/soliman/components"
	cfg "github.com/automoto/soliman/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	debugVisible = color.RGBA{R: 80, G: 220, B: 120, A: 255}
	debugCulled  = color.RGBA{R: 220, G: 80, B: 80, A: 255}
)

// DrawDebug outlines scenery bounds when -show-culling is set: green for
// drawn planes, red for culled ones.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowCulling {
		return
	}
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	view := CameraGeoM(camera.Pose, float64(width), float64(height))

	components.Scenery.Each(ecs.World, func(e *donburi.Entry) {
		placement := components.Placement.Get(e)
		pos := placement.Position()

		x0, y0 := view.Apply(pos.X, pos.Y)
		x1, y1 := view.Apply(pos.X+placement.Width, pos.Y+placement.Height)

		clr := debugVisible
		if placement.Culled {
			clr = debugCulled
		}
		vector.StrokeRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), 1, clr, false)
	})
}
