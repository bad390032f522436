package tilerun

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on an Entity simultaneously.
// Create one via the convenience constructors (TweenEntityPosition,
// TweenEntityScale) and call Update(dt) each tick. If the target entity is
// disposed, the group stops immediately.
//
// There is no global animation manager — behaviors drive their own groups.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Entity
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. If the target entity has been disposed, Done is set to true and no
// writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenEntityPosition creates a TweenGroup that animates e.X and e.Y to the
// given target coordinates over the specified duration using the easing
// function.
func TweenEntityPosition(e *Entity, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: e}
	g.tweens[0] = gween.New(float32(e.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(e.Y), float32(toY), duration, fn)
	g.fields[0] = &e.X
	g.fields[1] = &e.Y
	return g
}

// TweenEntityScale creates a TweenGroup that animates e.ScaleX and e.ScaleY
// to the given target values over the specified duration using the easing
// function.
func TweenEntityScale(e *Entity, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: e}
	g.tweens[0] = gween.New(float32(e.ScaleX), float32(toSX), duration, fn)
	g.tweens[1] = gween.New(float32(e.ScaleY), float32(toSY), duration, fn)
	g.fields[0] = &e.ScaleX
	g.fields[1] = &e.ScaleY
	return g
}
