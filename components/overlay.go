package components

import "github.com/yohamta/donburi"

// OverlayData stores the start overlay state. Once dismissed it fades out
// over config.Overlay.FadeMs and then stops drawing.
type OverlayData struct {
	Dismissed bool
	FadeMs    float64
	Alpha     float64 // 1 fully opaque, 0 gone
}

// Gone reports whether the overlay has finished fading.
func (o *OverlayData) Gone() bool {
	return o.Dismissed && o.Alpha <= 0
}

var Overlay = donburi.NewComponentType[OverlayData]()
