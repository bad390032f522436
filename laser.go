package tilerun

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Default laser extents and speed, in world pixels.
const (
	laserWidth    = 4
	laserHeight   = 12
	laserVelocity = 5
)

// Laser is a short-lived projectile with independent motion and an owned
// collider carrying the firing entity's id (friendly-fire exclusion). It has
// two states: active, and pending-delete once fully outside its bounds.
// Pending-delete is sticky; the owning entity detaches and disposes the laser
// on its next update, never sooner.
type Laser struct {
	OwnerID uint32

	// Position (top-left) and extents in world pixels.
	X, Y          float64
	Width, Height float64

	// Direction is a unit-ish vector; motion per tick is direction*velocity.
	DirX, DirY float64
	Velocity   float64

	// bounds is the play-field region the laser lives in. checkHorizontal
	// selects whether leaving the horizontal span also retires the laser
	// (player variant) or only the vertical span does (enemy variant).
	bounds          Rect
	checkHorizontal bool

	collider     *CircleCollider
	shouldDelete bool
}

// NewLaser creates a laser owned by the firing entity's id, starting at the
// given position. The default direction is straight up; use SetDirection or
// SetDirectionVec to change it.
func NewLaser(ownerID uint32, x, y float64, bounds Rect, checkHorizontal bool) *Laser {
	l := &Laser{
		OwnerID:         ownerID,
		X:               x,
		Y:               y,
		Width:           laserWidth,
		Height:          laserHeight,
		DirX:            0,
		DirY:            -1,
		Velocity:        laserVelocity,
		bounds:          bounds,
		checkHorizontal: checkHorizontal,
	}
	l.collider = NewCircleCollider(ownerID, laserHeight/2)
	l.syncCollider()
	return l
}

// SetDirection configures the travel direction from a direction string.
// An unrecognized string is a no-op and the direction keeps its default.
func (l *Laser) SetDirection(dir string) {
	switch dir {
	case "up":
		l.DirX, l.DirY = 0, -1
	case "down":
		l.DirX, l.DirY = 0, 1
	case "left":
		l.DirX, l.DirY = -1, 0
	case "right":
		l.DirX, l.DirY = 1, 0
	}
}

// SetDirectionVec configures the travel direction from a vector.
func (l *Laser) SetDirectionVec(dx, dy float64) {
	l.DirX, l.DirY = dx, dy
}

// Collider returns the laser's owned collider.
func (l *Laser) Collider() *CircleCollider {
	return l.collider
}

// ShouldDelete reports whether the laser has left the play field. Once true
// it never reverts.
func (l *Laser) ShouldDelete() bool {
	return l.shouldDelete
}

// MarkForDelete forces the pending-delete state (e.g. after a confirmed hit).
func (l *Laser) MarkForDelete() {
	l.shouldDelete = true
}

// Update advances the laser by direction*velocity and retires it once fully
// outside the play-field bounds. e is the owning entity; the laser's motion
// is independent of it.
func (l *Laser) Update(e *Entity) {
	if l.shouldDelete {
		return
	}
	l.X += l.DirX * l.Velocity
	l.Y += l.DirY * l.Velocity
	l.syncCollider()

	if l.Y+l.Height < l.bounds.Y || l.Y > l.bounds.Y+l.bounds.Height {
		l.shouldDelete = true
	}
	if l.checkHorizontal &&
		(l.X+l.Width < l.bounds.X || l.X > l.bounds.X+l.bounds.Width) {
		l.shouldDelete = true
	}
}

func (l *Laser) syncCollider() {
	l.collider.X = l.X + l.Width/2
	l.collider.Y = l.Y + l.Height/2
}

// Render draws the laser body as a solid rectangle.
func (l *Laser) Render(e *Entity, screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(l.Width, l.Height)
	op.GeoM.Translate(l.X, l.Y)
	op.ColorScale.Scale(1, 0.2, 0.2, 1)
	screen.DrawImage(WhitePixel, op)
}

// Dispose is a no-op; lasers own no external resources.
func (l *Laser) Dispose() {}
