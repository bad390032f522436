package tilerun

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// WorldBound is the fixed world boundary the player is clamped to, adjusted
// by the entity's half extents on each side.
const WorldBound = 620

// playerUpdate applies the input-mapping strategy's continuous forces, moves
// with tile-collision response, clamps to the world boundary, and handles
// projectile bookkeeping (fire requests and delayed reaping).
func playerUpdate(e *Entity, grid *TileGrid, zoom float64) {
	if ic := e.InputMapping(); ic != nil && ic.Strategy != nil {
		ic.Strategy.Integrate(e)
	}

	moveWithTileCollision(e, grid, zoom)
	clampToWorld(e)

	if e.fireQueued {
		e.fireQueued = false
		playerFire(e, grid, zoom)
	}
	tickLaser(e)
}

// moveWithTileCollision applies velocity per axis, committing motion only if
// the corresponding directional query reports not-blocked. A downward block
// zeroes the falling velocity (landing).
func moveWithTileCollision(e *Entity, grid *TileGrid, zoom float64) {
	if grid == nil {
		e.X += e.VelX
		e.Y += e.VelY
		return
	}
	if e.VelX < 0 && !grid.Blocked(e.Bounds(), DirLeft, zoom) {
		e.X += e.VelX
	} else if e.VelX > 0 && !grid.Blocked(e.Bounds(), DirRight, zoom) {
		e.X += e.VelX
	}
	if e.VelY < 0 && !grid.Blocked(e.Bounds(), DirUp, zoom) {
		e.Y += e.VelY
	} else if e.VelY > 0 {
		if grid.Blocked(e.Bounds(), DirDown, zoom) {
			e.VelY = 0
		} else {
			e.Y += e.VelY
		}
	}
}

// clampToWorld keeps the entity inside the fixed 0..WorldBound boundary.
func clampToWorld(e *Entity) {
	if e.X < 0 {
		e.X = 0
	}
	if max := WorldBound - e.Width; e.X > max {
		e.X = max
	}
	if e.Y < 0 {
		e.Y = 0
	}
	if max := WorldBound - e.Height; e.Y > max {
		e.Y = max
	}
}

// fireDirection maps the current animation state to the direction a fired
// laser travels. Neutral and vertical states fire upward.
func fireDirection(s AnimationState) (dx, dy float64) {
	switch s {
	case StateLeft, StateStopLeft:
		return -1, 0
	case StateRight, StateStopRight:
		return 1, 0
	case StateDown, StateStopDown:
		return 0, 1
	}
	return 0, -1
}

// playerFire attaches a new laser to the player's script slot unless one is
// already in flight (at most one per owner). Player lasers retire when they
// leave either the vertical or horizontal play-field span.
func playerFire(e *Entity, grid *TileGrid, zoom float64) {
	if e.laser() != nil {
		return
	}
	dx, dy := fireDirection(e.State)
	l := NewLaser(e.ID,
		e.X+e.Width/2-laserWidth/2,
		e.Y+e.Height/2-laserHeight/2,
		playfield(grid, zoom), true)
	l.SetDirectionVec(dx, dy)
	e.AttachScript(ScriptLaser, l)
}

// tickLaser performs the one-tick delayed reap: a laser observed in the
// pending-delete state is detached and disposed; otherwise it advances.
// Detection and disposal are distinct steps, so a laser that retires during
// its update survives until the owner's next update.
func tickLaser(e *Entity) {
	l := e.laser()
	if l == nil {
		return
	}
	if l.ShouldDelete() {
		e.DetachScript(ScriptLaser)
		l.Dispose()
		return
	}
	l.Update(e)
}

// playfield returns the play-field bounds implied by the tile grid, or a
// WorldBound square when no grid exists.
func playfield(grid *TileGrid, zoom float64) Rect {
	if grid == nil {
		return Rect{Width: WorldBound, Height: WorldBound}
	}
	return Rect{
		Width:  float64(grid.WidthTiles*grid.TileSize) * zoom,
		Height: float64(grid.HeightTiles*grid.TileSize) * zoom,
	}
}

// renderWithLaser renders the component slots, then the in-flight laser from
// the script slot (which is not part of the component map).
func renderWithLaser(e *Entity, screen *ebiten.Image) {
	e.renderComponents(screen)
	if l := e.laser(); l != nil {
		l.Render(e, screen)
	}
}
