package systems

import (
	"github.com/automoto/soliman/components"
	cfg "github.com/automoto/soliman/config"
	"github.com/automoto/soliman/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateOverlay fades the start overlay out once it has been dismissed.
func UpdateOverlay(e *ecs.ECS) {
	entry, ok := presentation(e)
	if !ok {
		return
	}
	_, elapsed := frameTime(e)
	FadeOverlay(components.Overlay.Get(entry), elapsed, cfg.Overlay.FadeMs)
}

// FadeOverlay advances a dismissed overlay's fade by elapsedMs over a fade
// lasting fadeMs. A non-positive fadeMs hides it at once.
func FadeOverlay(o *components.OverlayData, elapsedMs, fadeMs float64) {
	if !o.Dismissed || o.Alpha <= 0 {
		return
	}
	if fadeMs <= 0 {
		o.Alpha = 0
		return
	}
	o.FadeMs += gamemath.SanitizeElapsed(elapsedMs)
	o.Alpha = 1 - gamemath.Clamp01(o.FadeMs/fadeMs)
}

// OverlayAlpha returns the start overlay's opacity.
func OverlayAlpha(e *ecs.ECS) float64 {
	entry, ok := presentation(e)
	if !ok {
		return 0
	}
	return components.Overlay.Get(entry).Alpha
}
