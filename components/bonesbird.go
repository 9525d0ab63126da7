package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// BonesBirdData drives the bird circling the remains. The flight sequence
// tweens a path parameter: the integer part selects the leg, the fraction
// is the position along it.
type BonesBirdData struct {
	Running bool
	Path    []math.Vec2 // relative to the bird's base position
	Flight  *gween.Sequence
	Param   float32
}

var BonesBird = donburi.NewComponentType[BonesBirdData]()
