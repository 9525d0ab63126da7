package components

import (
	"github.com/automoto/soliman/progression"
	"github.com/yohamta/donburi"
)

// CameraData is the framing applied when drawing the world.
type CameraData struct {
	Pose progression.Pose
}

var Camera = donburi.NewComponentType[CameraData]()
