package tilerun

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// CircleCollider is a circular collision volume attached to an entity. The
// center follows the entity's bounding box each tick.
type CircleCollider struct {
	// OwnerID is the id of the entity (or firing entity, for a laser-owned
	// collider) this volume belongs to. Colliders with equal OwnerID never
	// report collision — the friendly-fire exclusion.
	OwnerID uint32

	// Center position in world pixels.
	X, Y float64

	Radius float64

	// Colliding is the last-computed result of IsColliding involving this
	// collider. Debug rendering only; gameplay re-derives the boolean.
	Colliding bool
}

// NewCircleCollider creates a collider owned by the given entity id.
func NewCircleCollider(ownerID uint32, radius float64) *CircleCollider {
	return &CircleCollider{OwnerID: ownerID, Radius: radius}
}

// Update recenters the collider on its entity's bounding box.
func (c *CircleCollider) Update(e *Entity) {
	c.X = e.X + e.Width/2
	c.Y = e.Y + e.Height/2
}

// Render draws nothing; collider visualization lives in the debug overlay.
func (c *CircleCollider) Render(e *Entity, screen *ebiten.Image) {}

// Dispose is a no-op; colliders own no resources.
func (c *CircleCollider) Dispose() {}

// IsColliding reports whether two colliders overlap: true iff the owner ids
// differ and the Euclidean distance between centers is strictly less than the
// sum of the radii. The result is cached on both colliders' Colliding flag
// for this tick.
func IsColliding(a, b *CircleCollider) bool {
	if a == nil || b == nil {
		return false
	}
	hit := false
	if a.OwnerID != b.OwnerID {
		dx := a.X - b.X
		dy := a.Y - b.Y
		hit = math.Sqrt(dx*dx+dy*dy) < a.Radius+b.Radius
	}
	a.Colliding = hit
	b.Colliding = hit
	return hit
}
