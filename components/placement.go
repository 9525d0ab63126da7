package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PlacementData positions a drawn entity in world units. Offset is added on
// top of the base rectangle (sway, flight). Entities are drawn in ascending
// Depth order.
type PlacementData struct {
	X, Y, Width, Height float64
	Depth               float64
	Offset              math.Vec2
	Visible             bool
	Culled              bool
}

// Position returns the top-left corner with Offset applied.
func (p *PlacementData) Position() math.Vec2 {
	return math.Vec2{X: p.X + p.Offset.X, Y: p.Y + p.Offset.Y}
}

// Drawn reports whether the entity should be rendered this frame.
func (p *PlacementData) Drawn() bool {
	return p.Visible && !p.Culled
}

var Placement = donburi.NewComponentType[PlacementData]()
