package systems

import (
	"sort"

	"github.com/automoto/soliman/components"
	cfg "github.com/automoto/soliman/config"
	"github.com/automoto/soliman/progression"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp    = &ebiten.DrawImageOptions{}
	drawQueue []*donburi.Entry
)

// CameraGeoM maps world coordinates to the screen for pose: the pose
// position lands on the screen center, rotated by Tilt and scaled by Zoom.
func CameraGeoM(pose progression.Pose, screenW, screenH float64) ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-pose.X, -pose.Y)
	m.Rotate(pose.Tilt)
	m.Scale(pose.Zoom, pose.Zoom)
	m.Translate(screenW/2, screenH/2)
	return m
}

// DrawScene renders every visible, unculled sprite back to front through
// the camera.
func DrawScene(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Scenery.BackdropColor)

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	view := CameraGeoM(camera.Pose, float64(width), float64(height))

	drawQueue = drawQueue[:0]
	components.SpriteStrip.Each(ecs.World, func(e *donburi.Entry) {
		if components.Placement.Get(e).Drawn() {
			drawQueue = append(drawQueue, e)
		}
	})
	sort.SliceStable(drawQueue, func(i, j int) bool {
		return components.Placement.Get(drawQueue[i]).Depth < components.Placement.Get(drawQueue[j]).Depth
	})

	for _, e := range drawQueue {
		img := components.SpriteStrip.Get(e).Frame()
		if img == nil {
			continue
		}
		placement := components.Placement.Get(e)
		fw, fh := img.Bounds().Dx(), img.Bounds().Dy()
		if fw == 0 || fh == 0 {
			continue
		}
		pos := placement.Position()

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.Filter = ebiten.FilterLinear
		drawOp.GeoM.Scale(placement.Width/float64(fw), placement.Height/float64(fh))
		drawOp.GeoM.Translate(pos.X, pos.Y)
		drawOp.GeoM.Concat(view)
		screen.DrawImage(img, drawOp)
	}
}
