package tilerun

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// spawnPopDuration is the length of the scale-in tween on coin spawn.
const spawnPopDuration = 0.25

// coinUpdate drives the spawn pop tween. Coins are static collectibles with
// no independent motion; collision handling lives in the scene's inline
// resolution.
func coinUpdate(e *Entity, grid *TileGrid, zoom float64) {
	advanceTween(e)
}

// spawnPop starts the scale-in tween used when a collectible appears.
func spawnPop(e *Entity) {
	e.ScaleX, e.ScaleY = 0, 0
	e.tween = TweenEntityScale(e, 1, 1, spawnPopDuration, ease.OutBack)
}

// advanceTween steps the entity's active tween group by one tick and drops
// it once finished.
func advanceTween(e *Entity) {
	if e.tween == nil {
		return
	}
	dt := float32(1.0 / float64(ebiten.TPS()))
	e.tween.Update(dt)
	if e.tween.Done {
		e.tween = nil
	}
}
