package systems

import (
	"math"
	"testing"

	"github.com/automoto/soliman/assets"
	"github.com/automoto/soliman/components"
	cfg "github.com/automoto/soliman/config"
	"github.com/automoto/soliman/progression"
	"github.com/automoto/soliman/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestCameraGeoMCentersPose(t *testing.T) {
	pose := progression.Pose{X: 700, Y: 470, Zoom: 2, Tilt: 0.3}
	m := CameraGeoM(pose, 960, 540)

	x, y := m.Apply(700, 470)
	if math.Abs(x-480) > 1e-9 || math.Abs(y-270) > 1e-9 {
		t.Errorf("pose center maps to (%v,%v), want (480,270)", x, y)
	}

	flat := CameraGeoM(progression.Pose{X: 0, Y: 0, Zoom: 2}, 960, 540)
	x, y = flat.Apply(10, 5)
	if x != 500 || y != 280 {
		t.Errorf("(10,5) maps to (%v,%v), want (500,280)", x, y)
	}
}

func TestVisibleRect(t *testing.T) {
	x, y, w, h := VisibleRect(progression.Pose{X: 640, Y: 360, Zoom: 2}, 960, 540, 0)
	if x != 400 || y != 225 || w != 480 || h != 270 {
		t.Errorf("rect = (%v,%v,%v,%v), want (400,225,480,270)", x, y, w, h)
	}

	_, _, w, h = VisibleRect(progression.Pose{Zoom: 0}, 100, 50, 10)
	if w != 120 || h != 70 {
		t.Errorf("zero zoom rect = %vx%v, want 120x70", w, h)
	}

	_, _, w, h = VisibleRect(progression.Pose{Zoom: 1, Tilt: 0.1}, 30, 40, 0)
	if w != 50 || h != 50 {
		t.Errorf("tilted rect = %vx%v, want 50x50", w, h)
	}
}

func TestCullingHidesPlanesOutsideView(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	spaceEntry := factory.CreateSpace(e, 4000, 4000, 64, 64)
	space := components.Space.Get(spaceEntry)
	factory.CreateViewport(e, space, float64(cfg.C.Width), float64(cfg.C.Height))
	factory.CreateCamera(e, progression.Pose{X: 640, Y: 360, Zoom: 2})

	near := factory.CreateScenery(e, space,
		assets.ScenePlane{Name: "tree1", Rect: assets.Rect{X: 600, Y: 300, Width: 100, Height: 100}, Depth: 0.4},
		"tree", cfg.PlaneConfig{Frames: 1}, nil)
	far := factory.CreateScenery(e, space,
		assets.ScenePlane{Name: "tree2", Rect: assets.Rect{X: 3000, Y: 3000, Width: 100, Height: 100}, Depth: 0.4},
		"tree", cfg.PlaneConfig{Frames: 1}, nil)

	UpdateCulling(e)

	if components.Placement.Get(near).Culled {
		t.Error("plane inside the view was culled")
	}
	if !components.Placement.Get(far).Culled {
		t.Error("plane outside the view was not culled")
	}

	// Zooming out brings the far plane into view.
	cameraEntry, _ := components.Camera.First(e.World)
	components.Camera.Get(cameraEntry).Pose = progression.Pose{X: 2000, Y: 2000, Zoom: 0.25}
	UpdateCulling(e)
	if components.Placement.Get(far).Culled {
		t.Error("far plane still culled after zooming out")
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	saved, err := DecodeSettings([]byte(`{"fullscreen":true,"resolutionIndex":99}`))
	if err != nil {
		t.Fatal(err)
	}
	if !saved.Fullscreen {
		t.Error("fullscreen not decoded")
	}
	if saved.ResolutionIndex != cfg.Settings.DefaultResolutionIndex {
		t.Errorf("resolution index = %d, want default", saved.ResolutionIndex)
	}

	if _, err := DecodeSettings([]byte(`{`)); err == nil {
		t.Error("expected error for malformed settings")
	}

	if got := SettingsFrom(nil); got != DefaultSettings() {
		t.Errorf("SettingsFrom(nil) = %+v, want defaults", got)
	}
}

func TestPortraitDetection(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreatePresentation(e, DefaultSettings())

	SetOutsideSize(e, 540, 960)
	entry, _ := components.Settings.First(e.World)
	if !components.Settings.Get(entry).Portrait() {
		t.Error("540x960 should be portrait")
	}
	SetOutsideSize(e, 960, 540)
	if components.Settings.Get(entry).Portrait() {
		t.Error("960x540 should not be portrait")
	}
}
