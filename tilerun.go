package tilerun

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Direction identifies one of the four cardinal movement directions used by
// tile-collision queries and projectile configuration.
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// ComponentSlot is a fixed category an entity may hold at most one component
// instance of. The enumeration is closed; slotCount sizes the per-entity
// component array.
type ComponentSlot uint8

const (
	SlotSprite     ComponentSlot = iota // sprite / animation state
	SlotCollider                        // circular collider
	SlotProjectile                      // permanently attached projectile
	SlotText                            // text label
	SlotInput                           // input-mapping strategy
	slotCount
)

// ScriptSlot identifies an ephemeral attachment point, independent of the
// fixed component slots. Used for dynamically attached projectiles.
type ScriptSlot uint8

const (
	// ScriptLaser holds an in-flight laser fired by the entity.
	ScriptLaser ScriptSlot = iota
)

// Component is the capability set shared by all component variants. Update
// runs once per tick during the owning entity's update; Render draws to the
// target surface; Dispose releases any owned resources (e.g. a cached glyph
// texture) and is called when the entity is torn down or the slot is
// overwritten.
type Component interface {
	Update(e *Entity)
	Render(e *Entity, screen *ebiten.Image)
	Dispose()
}

// AnimationState is the directional animation state machine. Exactly one
// state is active per entity with directional behavior: a movement state per
// direction, a matching "stopped-facing" state, and a neutral Stop.
type AnimationState uint8

const (
	StateStop AnimationState = iota
	StateLeft
	StateRight
	StateUp
	StateDown
	StateStopLeft
	StateStopRight
	StateStopUp
	StateStopDown
)

// sequenceForState is the fixed mapping from animation state to the named
// sprite sequence rendered for it.
var sequenceForState = [...]string{
	StateStop:      "Stop",
	StateLeft:      "walkLeft",
	StateRight:     "walkRight",
	StateUp:        "walkUp",
	StateDown:      "walkDown",
	StateStopLeft:  "StopLeft",
	StateStopRight: "StopRight",
	StateStopUp:    "StopUp",
	StateStopDown:  "StopDown",
}

// SequenceName returns the sprite sequence name rendered for this state.
func (s AnimationState) SequenceName() string {
	if int(s) >= len(sequenceForState) {
		return "Stop"
	}
	return sequenceForState[s]
}

// Moving reports whether the state is one of the four movement states.
func (s AnimationState) Moving() bool {
	switch s {
	case StateLeft, StateRight, StateUp, StateDown:
		return true
	}
	return false
}

// StoppedFacing returns the "stopped-facing" counterpart of a movement state.
// Non-movement states map to themselves.
func (s AnimationState) StoppedFacing() AnimationState {
	switch s {
	case StateLeft:
		return StateStopLeft
	case StateRight:
		return StateStopRight
	case StateUp:
		return StateStopUp
	case StateDown:
		return StateStopDown
	}
	return s
}

// WhitePixel is a 1x1 white image used for solid color rectangles (laser
// bodies and the static-sprite fallback).
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(color.White)
}
