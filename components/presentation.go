package components

import (
	"github.com/automoto/soliman/clock"
	"github.com/automoto/soliman/progression"
	"github.com/automoto/soliman/selection"
	"github.com/yohamta/donburi"
)

// ClockData turns counted updates into per-tick elapsed time.
type ClockData struct {
	Clock     clock.Clock
	Source    clock.TickSource
	Timestamp float64 // ms
	ElapsedMs float64 // since the previous tick
}

var Clock = donburi.NewComponentType[ClockData]()

// ProgressionData holds the zoom engine and the frame it produced last tick.
type ProgressionData struct {
	Engine *progression.Engine
	Frame  progression.Frame
}

var Progression = donburi.NewComponentType[ProgressionData]()

type SelectionData struct {
	Machine selection.Machine
}

var Selection = donburi.NewComponentType[SelectionData]()

type RevealData struct {
	Gate progression.Gate
}

var Reveal = donburi.NewComponentType[RevealData]()

// SessionData carries requests the game loop acts on after the systems run.
type SessionData struct {
	QuitRequested bool
}

var Session = donburi.NewComponentType[SessionData]()
