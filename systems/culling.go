package systems

import (
	"math"

	"github.com/automoto/soliman/components"
	cfg "github.com/automoto/soliman/config"
	"github.com/automoto/soliman/progression"
	"github.com/automoto/soliman/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCulling marks scenery planes outside the camera's view as culled.
// Must run after UpdateProgression so sway offsets are current.
func UpdateCulling(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	viewportEntry, ok := tags.Viewport.First(e.World)
	if !ok {
		return
	}
	pose := components.Camera.Get(cameraEntry).Pose
	view := components.Object.Get(viewportEntry)

	x, y, w, h := VisibleRect(pose, float64(cfg.C.Width), float64(cfg.C.Height), cfg.Scenery.CullPadding)
	view.X, view.Y, view.W, view.H = x, y, w, h
	view.Update()

	components.Scenery.Each(e.World, func(entry *donburi.Entry) {
		placement := components.Placement.Get(entry)
		obj := components.Object.Get(entry)
		pos := placement.Position()
		obj.X, obj.Y = pos.X, pos.Y
		obj.Update()
		placement.Culled = true
	})

	check := view.Check(0, 0, tags.ResolvScenery)
	if check == nil {
		return
	}
	for _, obj := range check.Objects {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !overlaps(view.Object, obj) {
			continue
		}
		components.Placement.Get(entry).Culled = false
	}
}

// VisibleRect returns the world rectangle shown by pose on a screen of the
// given size, grown by padding screen pixels. A tilted camera uses the
// rectangle's bounding circle.
func VisibleRect(pose progression.Pose, screenW, screenH, padding float64) (x, y, w, h float64) {
	zoom := pose.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	w = (screenW + 2*padding) / zoom
	h = (screenH + 2*padding) / zoom
	if pose.Tilt != 0 {
		d := math.Hypot(w, h)
		w, h = d, d
	}
	return pose.X - w/2, pose.Y - h/2, w, h
}

func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}
