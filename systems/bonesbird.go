package systems

import (
	"math"

	"github.com/automoto/soliman/components"
	"github.com/automoto/soliman/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateBonesBird flies running birds along their path, looping back to the
// first leg after the last.
func UpdateBonesBird(e *ecs.ECS) {
	_, elapsed := frameTime(e)
	components.BonesBird.Each(e.World, func(entry *donburi.Entry) {
		bird := components.BonesBird.Get(entry)
		if !bird.Running || bird.Flight == nil {
			return
		}

		param, _, done := bird.Flight.Update(float32(elapsed / 1000))
		if done {
			bird.Flight.Reset()
			param = 0
		}
		bird.Param = param
		components.Placement.Get(entry).Offset = PathPoint(bird.Path, float64(param))
	})
}

// PathPoint returns the point at parameter t along path: leg floor(t),
// fraction t-floor(t). t is clamped to the path.
func PathPoint(path []dmath.Vec2, t float64) dmath.Vec2 {
	if len(path) == 0 {
		return dmath.Vec2{}
	}
	last := float64(len(path) - 1)
	t = gamemath.Clamp(gamemath.SanitizeElapsed(t), 0, last)

	leg := int(math.Floor(t))
	if leg >= len(path)-1 {
		return path[len(path)-1]
	}
	frac := t - float64(leg)
	a, b := path[leg], path[leg+1]
	return dmath.Vec2{
		X: gamemath.Lerp(a.X, b.X, frac),
		Y: gamemath.Lerp(a.Y, b.Y, frac),
	}
}
