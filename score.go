package tilerun

import (
	"strconv"

	"github.com/tanema/gween/ease"
)

// scorePulseDuration is the length of the settle tween after the total
// changes.
const scorePulseDuration = 0.2

// scoreUpdate refreshes the label from the integer point total. The label
// (and therefore its glyph texture) is re-rendered only when the rendered
// value differs from the current total; a change also kicks a brief scale
// pulse.
func scoreUpdate(e *Entity, grid *TileGrid, zoom float64) {
	if t := e.Text(); t != nil && e.Points != e.lastShown {
		t.SetLabel("Score: " + strconv.Itoa(e.Points))
		e.lastShown = e.Points
		e.ScaleX, e.ScaleY = 1.3, 1.3
		e.tween = TweenEntityScale(e, 1, 1, scorePulseDuration, ease.OutQuad)
	}
	advanceTween(e)
}

// AddPoints increases a score entity's total. No-op for other kinds.
func (e *Entity) AddPoints(n int) {
	if e.Kind == KindScore {
		e.Points += n
	}
}
