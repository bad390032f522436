package tilerun

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Key is the engine's input surface: four arrow directions and a fire key.
type Key uint8

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeyFire
)

// KeyEvent is a single key transition delivered to entities with an
// input-mapping component.
type KeyEvent struct {
	Key     Key
	Pressed bool // true = key-down, false = key-up
}

// InputStrategy translates raw key events into movement deltas and animation
// state transitions for an entity. Apply runs once per event; Integrate runs
// once per tick before movement (used by strategies with continuous forces).
type InputStrategy interface {
	Apply(e *Entity, ev KeyEvent)
	Integrate(e *Entity)
}

// InputComponent attaches an input-mapping strategy to an entity. Entities
// without one ignore input entirely.
type InputComponent struct {
	Strategy InputStrategy
}

// NewInputComponent wraps a strategy; a nil strategy defaults to arrow keys.
func NewInputComponent(s InputStrategy) *InputComponent {
	if s == nil {
		s = &ArrowKeyStrategy{}
	}
	return &InputComponent{Strategy: s}
}

// Update is a no-op; per-tick strategy forces run via Integrate from the
// owning behavior so they precede movement within the same tick.
func (c *InputComponent) Update(e *Entity) {}

// Render draws nothing.
func (c *InputComponent) Render(e *Entity, screen *ebiten.Image) {}

// Dispose is a no-op.
func (c *InputComponent) Dispose() {}

// --- Arrow-key strategy ---

// defaultMoveSpeed is the per-tick movement magnitude when the entity does
// not set its own Speed.
const defaultMoveSpeed = 3

// ArrowKeyStrategy is the default input mapping: each arrow key-down sets
// velocity on its axis and the matching movement state; key-up zeroes the
// release axis and enters the corresponding stopped-facing state. The fire
// key queues a single fire request consumed by the entity's behavior.
type ArrowKeyStrategy struct{}

func (ArrowKeyStrategy) Apply(e *Entity, ev KeyEvent) {
	speed := e.Speed
	if speed == 0 {
		speed = defaultMoveSpeed
	}
	if ev.Pressed {
		switch ev.Key {
		case KeyLeft:
			e.VelX = -speed
			e.State = StateLeft
		case KeyRight:
			e.VelX = speed
			e.State = StateRight
		case KeyUp:
			e.VelY = -speed
			e.State = StateUp
		case KeyDown:
			e.VelY = speed
			e.State = StateDown
		case KeyFire:
			e.fireQueued = true
		}
		return
	}
	switch ev.Key {
	case KeyLeft:
		e.VelX = 0
		if e.State == StateLeft {
			e.State = StateStopLeft
		}
	case KeyRight:
		e.VelX = 0
		if e.State == StateRight {
			e.State = StateStopRight
		}
	case KeyUp:
		e.VelY = 0
		if e.State == StateUp {
			e.State = StateStopUp
		}
	case KeyDown:
		e.VelY = 0
		if e.State == StateDown {
			e.State = StateStopDown
		}
	}
}

// Integrate is a no-op; arrow movement carries no continuous forces.
func (ArrowKeyStrategy) Integrate(e *Entity) {}

// --- Jump strategy ---

// Jump strategy tuning.
const (
	defaultGravity      = 0.35
	defaultJumpVelocity = 7
	maxFallVelocity     = 8
)

// JumpStrategy maps the up key to an upward impulse and applies a constant
// downward acceleration every tick. The down key is ignored; gravity owns the
// downward axis. Horizontal keys behave like ArrowKeyStrategy.
type JumpStrategy struct {
	// Gravity is the per-tick downward acceleration; 0 uses the default.
	Gravity float64
	// JumpVelocity is the upward impulse on the up key; 0 uses the default.
	JumpVelocity float64
}

func (s *JumpStrategy) Apply(e *Entity, ev KeyEvent) {
	switch ev.Key {
	case KeyDown:
		return // gravity owns the downward axis
	case KeyUp:
		if ev.Pressed {
			jump := s.JumpVelocity
			if jump == 0 {
				jump = defaultJumpVelocity
			}
			e.VelY = -jump
			e.State = StateUp
		}
		return
	}
	ArrowKeyStrategy{}.Apply(e, ev)
}

// Integrate applies gravity, capped at terminal fall velocity.
func (s *JumpStrategy) Integrate(e *Entity) {
	g := s.Gravity
	if g == 0 {
		g = defaultGravity
	}
	e.VelY += g
	if e.VelY > maxFallVelocity {
		e.VelY = maxFallVelocity
	}
}

// --- Host-side key polling ---

// keyBindings maps engine keys to the physical keys polled each tick.
var keyBindings = [...]ebiten.Key{
	KeyLeft:  ebiten.KeyArrowLeft,
	KeyRight: ebiten.KeyArrowRight,
	KeyUp:    ebiten.KeyArrowUp,
	KeyDown:  ebiten.KeyArrowDown,
	KeyFire:  ebiten.KeySpace,
}

// ReadKeyEvents appends this tick's key transitions to buf and returns it.
// Only edges are reported; held keys produce no events.
func ReadKeyEvents(buf []KeyEvent) []KeyEvent {
	for k, physical := range keyBindings {
		if inpututil.IsKeyJustPressed(physical) {
			buf = append(buf, KeyEvent{Key: Key(k), Pressed: true})
		}
		if inpututil.IsKeyJustReleased(physical) {
			buf = append(buf, KeyEvent{Key: Key(k), Pressed: false})
		}
	}
	return buf
}
