package tags

import "github.com/yohamta/donburi"

var (
	Scenery   = donburi.NewTag().SetName("Scenery")
	Character = donburi.NewTag().SetName("Character")
	Remains   = donburi.NewTag().SetName("Remains")
	Bird      = donburi.NewTag().SetName("Bird")
	Viewport  = donburi.NewTag().SetName("Viewport")
)

// Resolv tags for viewport culling
const (
	ResolvScenery  = "scenery"
	ResolvViewport = "viewport"
)
