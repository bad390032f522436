package tilerun

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
)

// entityIDCounter is a plain counter (no atomic — tilerun is single-threaded).
// Entity ids are process-wide monotonic and never reused.
var entityIDCounter uint32

func nextEntityID() uint32 {
	entityIDCounter++
	return entityIDCounter
}

// Entity is a named game object owning at most one component per slot, plus
// an independent script-slot set for ephemeral attachments. A single flat
// struct is used for all entity kinds to avoid interface dispatch on the hot
// path; kind-specific behavior lives in the behavior table (factory.go).
type Entity struct {
	// Identity
	ID   uint32
	Name string
	Kind EntityKind

	// Placement (top-left corner) and extents in world pixels.
	X, Y          float64
	Width, Height float64

	// Motion
	VelX, VelY float64
	Speed      float64 // per-tick movement magnitude used by behaviors

	// Render scale (animated by tweens; 1 = natural size).
	ScaleX, ScaleY float64

	// Animation state machine. Exactly one state is active.
	State AnimationState

	// Score entities only.
	Points    int
	lastShown int

	// Active field tween, if any (coin spawn pop, score pulse).
	tween *TweenGroup

	components [slotCount]Component
	scripts    map[ScriptSlot]Component

	fireQueued bool
	rng        *rand.Rand // lazily seeded from wall clock + id; enemy fire chance
	disposed   bool
}

// NewEntity creates a bare entity of the given kind. The name must be
// non-empty; this is the only constructor precondition in the engine that
// aborts instead of degrading.
func NewEntity(kind EntityKind, name string) *Entity {
	if name == "" {
		panic("tilerun: entity name must be non-empty")
	}
	return &Entity{
		ID:     nextEntityID(),
		Name:   name,
		Kind:   kind,
		ScaleX: 1,
		ScaleY: 1,
		State:  StateStop,
	}
}

// Bounds returns the entity's axis-aligned bounding rectangle.
func (e *Entity) Bounds() Rect {
	return Rect{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}
}

// --- Component slots ---

// AddComponent attaches c at the given slot. An existing component at that
// slot is disposed and overwritten — last write wins, no error.
func (e *Entity) AddComponent(slot ComponentSlot, c Component) {
	if prev := e.components[slot]; prev != nil {
		prev.Dispose()
	}
	e.components[slot] = c
}

// GetComponent returns the component at the given slot, or nil.
func (e *Entity) GetComponent(slot ComponentSlot) Component {
	return e.components[slot]
}

// RemoveComponent detaches and returns the component at the given slot
// without disposing it. Returns nil if the slot is empty.
func (e *Entity) RemoveComponent(slot ComponentSlot) Component {
	c := e.components[slot]
	e.components[slot] = nil
	return c
}

// Typed accessors. One slot holds one variant, so the assertion cannot
// observe a different concrete type unless the caller bypassed the factory.

// Sprite returns the sprite component, or nil.
func (e *Entity) Sprite() *SpriteComponent {
	c, _ := e.components[SlotSprite].(*SpriteComponent)
	return c
}

// Collider returns the circle collider component, or nil.
func (e *Entity) Collider() *CircleCollider {
	c, _ := e.components[SlotCollider].(*CircleCollider)
	return c
}

// Projectile returns the permanently attached laser component, or nil.
func (e *Entity) Projectile() *Laser {
	c, _ := e.components[SlotProjectile].(*Laser)
	return c
}

// Text returns the text component, or nil.
func (e *Entity) Text() *TextComponent {
	c, _ := e.components[SlotText].(*TextComponent)
	return c
}

// InputMapping returns the input-mapping component, or nil.
func (e *Entity) InputMapping() *InputComponent {
	c, _ := e.components[SlotInput].(*InputComponent)
	return c
}

// --- Script slots ---

// AttachScript attaches c at the given script slot. Same last-write-wins rule
// as AddComponent.
func (e *Entity) AttachScript(slot ScriptSlot, c Component) {
	if e.scripts == nil {
		e.scripts = make(map[ScriptSlot]Component, 1)
	}
	if prev := e.scripts[slot]; prev != nil {
		prev.Dispose()
	}
	e.scripts[slot] = c
}

// Script returns the component at the given script slot, or nil.
func (e *Entity) Script(slot ScriptSlot) Component {
	return e.scripts[slot]
}

// DetachScript removes and returns the component at the given script slot
// without disposing it.
func (e *Entity) DetachScript(slot ScriptSlot) Component {
	c := e.scripts[slot]
	delete(e.scripts, slot)
	return c
}

// laser returns the in-flight laser from the script slot, or nil.
func (e *Entity) laser() *Laser {
	l, _ := e.scripts[ScriptLaser].(*Laser)
	return l
}

// --- Per-tick contract ---

// Update runs the kind behavior (movement, tile-collision response,
// projectile bookkeeping), then every attached component in slot order. The
// generic kind has no behavior, so its update is component bookkeeping only.
func (e *Entity) Update(grid *TileGrid, zoom float64) {
	if e.disposed {
		return
	}
	if b := kindBehaviors[e.Kind].update; b != nil {
		b(e, grid, zoom)
	}
	for _, c := range e.components {
		if c != nil {
			c.Update(e)
		}
	}
}

// Render draws the entity. The default renders every attached component in
// slot order; kinds with extra composed state (e.g. an in-flight laser in the
// script slot) override via the behavior table.
func (e *Entity) Render(screen *ebiten.Image) {
	if e.disposed {
		return
	}
	if b := kindBehaviors[e.Kind].render; b != nil {
		b(e, screen)
		return
	}
	e.renderComponents(screen)
}

// renderComponents draws each attached component in slot order.
func (e *Entity) renderComponents(screen *ebiten.Image) {
	for _, c := range e.components {
		if c != nil {
			c.Render(e, screen)
		}
	}
}

// Input translates a raw key event into movement deltas and animation-state
// transitions via the input-mapping component. Entities without one ignore
// input.
func (e *Entity) Input(ev KeyEvent) {
	ic := e.InputMapping()
	if ic == nil || ic.Strategy == nil {
		return
	}
	ic.Strategy.Apply(e, ev)
}

// --- Teardown ---

// Dispose tears down every component and script attachment. Called when the
// entity's node is removed from the scene graph. Idempotent.
func (e *Entity) Dispose() {
	if e.disposed {
		return
	}
	e.disposed = true
	for i, c := range e.components {
		if c != nil {
			c.Dispose()
			e.components[i] = nil
		}
	}
	for slot, c := range e.scripts {
		if c != nil {
			c.Dispose()
		}
		delete(e.scripts, slot)
	}
	e.tween = nil
}

// IsDisposed returns true if this entity has been torn down.
func (e *Entity) IsDisposed() bool {
	return e.disposed
}
