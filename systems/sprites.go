package systems

import (
	"github.com/automoto/soliman/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSprites advances every sprite strip by this tick's elapsed time,
// including hidden characters, and publishes changed texture offsets.
func UpdateSprites(e *ecs.ECS) {
	_, elapsed := frameTime(e)
	AdvanceSprites(e.World, elapsed, NewSceneSink(e.World))
}

// AdvanceSprites steps each strip by elapsedMs. Static strips never publish.
func AdvanceSprites(w donburi.World, elapsedMs float64, sink SceneSink) {
	components.SpriteStrip.Each(w, func(entry *donburi.Entry) {
		sprite := components.SpriteStrip.Get(entry)
		if sprite.Strip == nil {
			return
		}
		if sprite.Strip.Advance(elapsedMs) {
			sink.SetTextureOffset(entry.Entity(), sprite.Strip.Offset())
		}
	})
}
