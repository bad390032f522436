package tilerun

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// TextComponent renders a text label at its entity's position. The rendered
// glyphs are cached into a texture that is invalidated whenever the label
// changes, so a static label costs one draw per frame and no layout.
type TextComponent struct {
	// Face is the text face used for measurement and rendering. May be nil
	// if the font asset was unavailable; the component then renders nothing
	// and the entity remains logically alive.
	Face text.Face

	// FontSizePx is the nominal pixel size of the face, kept for bounding
	// box computation by hosts that need it.
	FontSizePx float64

	// Bounds is the measured bounding rectangle of the cached label,
	// positioned at the entity.
	Bounds Rect

	label string

	// Cached glyph texture (unexported). nil or dirty means re-render.
	cache      *ebiten.Image
	cacheDirty bool
	warnedFont bool
}

// NewTextComponent creates a text component with the given initial label.
func NewTextComponent(face text.Face, fontSizePx float64, label string) *TextComponent {
	return &TextComponent{
		Face:       face,
		FontSizePx: fontSizePx,
		label:      label,
		cacheDirty: true,
	}
}

// Label returns the current label text.
func (t *TextComponent) Label() string {
	return t.label
}

// SetLabel replaces the label. The glyph cache is invalidated only when the
// text actually changes, so callers may set the same value every tick without
// texture churn.
func (t *TextComponent) SetLabel(label string) {
	if label == t.label {
		return
	}
	t.label = label
	t.cacheDirty = true
}

// Update is a no-op; text has no per-tick state.
func (t *TextComponent) Update(e *Entity) {}

// Render draws the cached label texture at the entity's position,
// re-rendering the cache first if the label changed.
func (t *TextComponent) Render(e *Entity, screen *ebiten.Image) {
	if t.Face == nil {
		if !t.warnedFont {
			t.warnedFont = true
			logger.Warn("text component has no font face; label not rendered")
		}
		return
	}
	if t.cacheDirty || t.cache == nil {
		t.renderCache()
	}
	if t.cache == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	if e.ScaleX != 1 || e.ScaleY != 1 {
		op.GeoM.Scale(e.ScaleX, e.ScaleY)
	}
	op.GeoM.Translate(e.X, e.Y)
	screen.DrawImage(t.cache, op)
	t.Bounds = Rect{X: e.X, Y: e.Y,
		Width: float64(t.cache.Bounds().Dx()), Height: float64(t.cache.Bounds().Dy())}
}

// renderCache lays out and rasterizes the label into the cache texture.
func (t *TextComponent) renderCache() {
	t.cacheDirty = false
	if t.cache != nil {
		t.cache.Deallocate()
		t.cache = nil
	}
	if t.label == "" {
		return
	}
	w, h := text.Measure(t.label, t.Face, t.Face.Metrics().HLineGap)
	if w <= 0 || h <= 0 {
		return
	}
	t.cache = ebiten.NewImage(int(w)+1, int(h)+1)
	text.Draw(t.cache, t.label, t.Face, &text.DrawOptions{})
}

// Dispose releases the cached glyph texture.
func (t *TextComponent) Dispose() {
	if t.cache != nil {
		t.cache.Deallocate()
		t.cache = nil
	}
}
