package components

import "github.com/yohamta/donburi"

// SceneryData identifies a scenery plane. SwayDepth scales the shared sway
// offset for this plane.
type SceneryData struct {
	Name      string
	Family    string
	SwayDepth float64
}

var Scenery = donburi.NewComponentType[SceneryData]()
