package tilerun

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// EntityKind is the closed set of entity variants. Behavior is selected by
// kind tag through the behavior table below; there is no subclassing.
type EntityKind uint8

const (
	KindGeneric EntityKind = iota
	KindPlayer
	KindEnemy
	KindCoin
	KindScore
	kindCount
)

// String returns the kind name for diagnostics.
func (k EntityKind) String() string {
	switch k {
	case KindGeneric:
		return "generic"
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindCoin:
		return "coin"
	case KindScore:
		return "score"
	}
	return "unknown"
}

// behavior is the per-kind strategy table entry. A nil update or render falls
// back to the base entity contract (no-op update, component-slot render).
type behavior struct {
	update func(e *Entity, grid *TileGrid, zoom float64)
	render func(e *Entity, screen *ebiten.Image)
}

// kindBehaviors maps each kind tag to its behavior. KindGeneric keeps both
// entries nil: the base entity is a no-op.
var kindBehaviors = [kindCount]behavior{
	KindPlayer: {update: playerUpdate, render: renderWithLaser},
	KindEnemy:  {update: enemyUpdate, render: renderWithLaser},
	KindCoin:   {update: coinUpdate},
	KindScore:  {update: scoreUpdate},
}

// Default extents and speeds per kind, in world pixels.
const (
	playerSize        = 32
	enemySize         = 32
	coinSize          = 16
	defaultEnemySpeed = 2
)

// Build constructs an entity of the given kind and attaches the declared
// component slots, in order. Slots not listed stay empty; duplicate slot tags
// follow the last-write-wins rule of AddComponent.
//
// assets may be nil; when present, sprite slots resolve their texture by the
// entity name (a registered image or an on-disk path), degrading to a flat
// rectangle when the lookup fails.
func Build(kind EntityKind, name string, slots []ComponentSlot, assets *AssetCache) *Entity {
	e := NewEntity(kind, name)

	switch kind {
	case KindPlayer:
		e.Width, e.Height = playerSize, playerSize
		e.Speed = defaultMoveSpeed
	case KindEnemy:
		e.Width, e.Height = enemySize, enemySize
		e.Speed = defaultEnemySpeed
	case KindCoin:
		e.Width, e.Height = coinSize, coinSize
	case KindScore:
		// Text-only; extents come from the rendered label.
		e.lastShown = -1
	}

	for _, slot := range slots {
		switch slot {
		case SlotSprite:
			var tex *ebiten.Image
			if assets != nil {
				tex = assets.Texture(name)
			}
			e.AddComponent(SlotSprite, NewStaticSprite(tex))
		case SlotCollider:
			radius := e.Width / 2
			if e.Height > e.Width {
				radius = e.Height / 2
			}
			e.AddComponent(SlotCollider, NewCircleCollider(e.ID, radius))
		case SlotProjectile:
			e.AddComponent(SlotProjectile,
				NewLaser(e.ID, e.X, e.Y, Rect{Width: WorldBound, Height: WorldBound}, false))
		case SlotText:
			e.AddComponent(SlotText, NewTextComponent(nil, 16, ""))
		case SlotInput:
			e.AddComponent(SlotInput, NewInputComponent(nil))
		}
	}

	if kind == KindCoin {
		spawnPop(e)
	}
	return e
}
