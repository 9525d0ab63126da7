package systems

import (
	"github.com/automoto/soliman/components"
	cfg "github.com/automoto/soliman/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the tick-derived timestamp and records the elapsed
// milliseconds for every later system this tick. Must run first.
func UpdateClock(e *ecs.ECS) {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		return
	}
	data := components.Clock.Get(entry)
	data.Timestamp = data.Source.Advance(cfg.C.TPS)
	data.ElapsedMs = data.Clock.Tick(data.Timestamp)
}

// frameTime returns this tick's timestamp and elapsed milliseconds.
func frameTime(e *ecs.ECS) (ts, elapsedMs float64) {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		return 0, 0
	}
	data := components.Clock.Get(entry)
	return data.Timestamp, data.ElapsedMs
}
