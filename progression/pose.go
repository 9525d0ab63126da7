package progression

import "github.com/automoto/soliman/shared/gamemath"

// Pose is a 2D camera framing: the world point at the centre of the screen,
// the zoom factor and a tilt in radians.
type Pose struct {
	X, Y float64
	Zoom float64
	Tilt float64
}

// Blend interpolates between two poses.
func Blend(from, to Pose, t float64) Pose {
	return Pose{
		X:    gamemath.Lerp(from.X, to.X, t),
		Y:    gamemath.Lerp(from.Y, to.Y, t),
		Zoom: gamemath.Lerp(from.Zoom, to.Zoom, t),
		Tilt: gamemath.Lerp(from.Tilt, to.Tilt, t),
	}
}

// Offset is a 2D displacement in world units.
type Offset struct {
	X, Y float64
}
