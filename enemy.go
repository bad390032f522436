package tilerun

import (
	"math/rand"
)

// enemyFireChance is the denominator of the per-tick fire probability
// (roughly 1-in-10) whenever the enemy has no live projectile.
const enemyFireChance = 10

// enemyUpdate runs the deterministic left-right patrol, reversing direction
// on tile-wall contact, and independently fires a downward laser with a
// pseudo-random per-tick chance.
func enemyUpdate(e *Entity, grid *TileGrid, zoom float64) {
	if e.Speed == 0 {
		e.Speed = defaultEnemySpeed
	}
	if e.VelX == 0 {
		e.VelX = -e.Speed
		e.State = StateLeft
	}

	if grid != nil {
		if e.VelX < 0 && grid.Blocked(e.Bounds(), DirLeft, zoom) {
			e.VelX = e.Speed
			e.State = StateRight
		} else if e.VelX > 0 && grid.Blocked(e.Bounds(), DirRight, zoom) {
			e.VelX = -e.Speed
			e.State = StateLeft
		}
	}
	e.X += e.VelX

	if e.laser() == nil && e.fireRand().Intn(enemyFireChance) == 0 {
		enemyFire(e, grid, zoom)
	}
	tickLaser(e)
}

// fireRand returns the enemy's fire-chance source, seeding it on first use
// from the wall clock and the entity's own id so enemies created in the same
// tick do not fire in lockstep.
func (e *Entity) fireRand() *rand.Rand {
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(timeNow().UnixNano() + int64(e.ID)))
	}
	return e.rng
}

// enemyFire attaches a downward laser. Enemy lasers only check the vertical
// play-field span; they may drift horizontally off-screen with their owner.
func enemyFire(e *Entity, grid *TileGrid, zoom float64) {
	l := NewLaser(e.ID,
		e.X+e.Width/2-laserWidth/2,
		e.Y+e.Height,
		playfield(grid, zoom), false)
	l.SetDirection("down")
	e.AttachScript(ScriptLaser, l)
}
