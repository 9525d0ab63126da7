package factory

import (
	"log"

	"github.com/automoto/soliman/components"
	"github.com/automoto/soliman/config"
	"github.com/automoto/soliman/progression"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ProgressionSettings builds the zoom settings from the active config.
func ProgressionSettings() progression.Settings {
	easing, ok := config.EasingFunc(config.Progression.Easing)
	if !ok {
		log.Printf("Warning: unknown easing %q, using inOutCubic", config.Progression.Easing)
		easing = nil
	}
	return progression.Settings{
		DurationMs:    config.Progression.ZoomDurationMs,
		Easing:        easing,
		Idle:          Pose(config.Camera.Idle),
		Target:        Pose(config.Camera.Target),
		ParallaxX:     config.Camera.ParallaxX,
		ParallaxY:     config.Camera.ParallaxY,
		SwayX:         config.Scenery.SwayX,
		SwayY:         config.Scenery.SwayY,
		WindAmplitude: config.Scenery.WindAmplitude,
		WindPeriodMs:  config.Scenery.WindPeriodMs,
	}
}

// Pose converts a configured framing.
func Pose(p config.PoseConfig) progression.Pose {
	return progression.Pose{X: p.X, Y: p.Y, Zoom: p.Zoom, Tilt: p.Tilt}
}

// CreatePresentation spawns the session singletons: clock, progression,
// selection, reveal gate, start overlay, window settings and session flags.
func CreatePresentation(ecs *ecs.ECS, settings components.SettingsData) *donburi.Entry {
	w := ecs.World
	entry := w.Entry(w.Create(
		components.Clock,
		components.Progression,
		components.Selection,
		components.Reveal,
		components.Overlay,
		components.Settings,
		components.Session,
	))

	components.Progression.SetValue(entry, components.ProgressionData{
		Engine: progression.NewEngine(ProgressionSettings()),
	})
	components.Overlay.SetValue(entry, components.OverlayData{Alpha: 1})
	components.Settings.SetValue(entry, settings)

	return entry
}
