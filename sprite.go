package tilerun

import (
	"encoding/json"
	"fmt"
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// timeNow is indirected for tests of wall-clock-dependent logic.
var timeNow = time.Now

// defaultFrameDurationMs is the per-frame display duration used when the
// sheet descriptor does not specify one.
const defaultFrameDurationMs = 100

// Frame is one animation frame: a source rectangle into the sheet texture and
// its display duration in milliseconds.
type Frame struct {
	Src        image.Rectangle
	DurationMs int
}

// SpriteComponent renders a texture for its entity. In animated mode it plays
// named, looping frame sequences selected by the entity's animation state;
// in static mode (or after a malformed descriptor) it renders a single
// rectangle.
//
// Frame advancement is measured against the wall clock, independent of the
// tick cadence, so animation speed is correct even if tick duration drifts.
type SpriteComponent struct {
	// Texture is the sheet image. May be nil if the asset was unavailable;
	// the entity stays logically alive and a flat rectangle is drawn instead.
	Texture *ebiten.Image

	Animated bool

	frames    []Frame
	sequences map[string][]int

	currentSequence string
	frameIndex      int
	frameStart      time.Time
}

// NewStaticSprite creates a non-animated sprite component for the given
// texture. A nil texture is allowed and degrades to a flat rectangle.
func NewStaticSprite(tex *ebiten.Image) *SpriteComponent {
	return &SpriteComponent{Texture: tex}
}

// --- Sheet descriptor ---

// sheetDescriptor is the JSON document describing how to slice a sheet into
// a row-major grid of frames and which named sequences exist.
type sheetDescriptor struct {
	Format struct {
		Width      int `json:"width"`
		Height     int `json:"height"`
		TileWidth  int `json:"tileWidth"`
		TileHeight int `json:"tileHeight"`
	} `json:"format"`
	FrameDurationMs int              `json:"frameDurationMs"`
	Frames          map[string][]int `json:"frames"`
}

// LoadSpriteSheet parses a sheet descriptor and returns an animated sprite
// component over the given texture. On a malformed descriptor the error is
// returned and the caller should fall back to NewStaticSprite — rendering
// then degrades to a single static rectangle rather than failing the entity.
func LoadSpriteSheet(descriptor []byte, tex *ebiten.Image) (*SpriteComponent, error) {
	var doc sheetDescriptor
	if err := json.Unmarshal(descriptor, &doc); err != nil {
		return nil, fmt.Errorf("tilerun: failed to parse sheet descriptor: %w", err)
	}
	f := doc.Format
	if f.TileWidth <= 0 || f.TileHeight <= 0 || f.Width < f.TileWidth || f.Height < f.TileHeight {
		return nil, fmt.Errorf("tilerun: sheet descriptor has invalid format %dx%d tiles %dx%d",
			f.Width, f.Height, f.TileWidth, f.TileHeight)
	}
	if len(doc.Frames) == 0 {
		return nil, fmt.Errorf("tilerun: sheet descriptor has no sequences")
	}

	cols := f.Width / f.TileWidth
	rows := f.Height / f.TileHeight
	duration := doc.FrameDurationMs
	if duration <= 0 {
		duration = defaultFrameDurationMs
	}

	// Slice the grid row-major.
	frames := make([]Frame, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			frames = append(frames, Frame{
				Src: image.Rect(
					col*f.TileWidth, row*f.TileHeight,
					(col+1)*f.TileWidth, (row+1)*f.TileHeight,
				),
				DurationMs: duration,
			})
		}
	}

	sequences := make(map[string][]int, len(doc.Frames))
	for name, indices := range doc.Frames {
		if len(indices) == 0 {
			logger.Warn("dropping empty sprite sequence", zap.String("sequence", name))
			continue
		}
		valid := true
		for _, idx := range indices {
			if idx < 0 || idx >= len(frames) {
				logger.Warn("dropping sprite sequence with out-of-range frame index",
					zap.String("sequence", name))
				valid = false
				break
			}
		}
		if valid {
			sequences[name] = indices
		}
	}
	if len(sequences) == 0 {
		return nil, fmt.Errorf("tilerun: sheet descriptor has no usable sequences")
	}

	s := &SpriteComponent{
		Texture:   tex,
		Animated:  true,
		frames:    frames,
		sequences: sequences,
	}
	// Start on any deterministic-ish default: prefer "Stop" if present.
	if _, ok := sequences["Stop"]; ok {
		s.SetSequence("Stop")
	} else {
		for name := range sequences {
			s.SetSequence(name)
			break
		}
	}
	return s, nil
}

// --- Sequence control ---

// SetSequence switches the active sequence. Switching resets the frame index
// to 0 and restarts the per-frame timer. Setting the already-active sequence
// is a no-op; an unknown name is ignored so that entities missing a
// stopped-facing sequence keep their last frame.
func (s *SpriteComponent) SetSequence(name string) {
	if !s.Animated || name == s.currentSequence {
		return
	}
	if _, ok := s.sequences[name]; !ok {
		return
	}
	s.currentSequence = name
	s.frameIndex = 0
	s.frameStart = timeNow()
}

// CurrentSequence returns the active sequence name ("" for static sprites).
func (s *SpriteComponent) CurrentSequence() string {
	return s.currentSequence
}

// FrameIndex returns the current index into the active sequence.
func (s *SpriteComponent) FrameIndex() int {
	return s.frameIndex
}

// Update advances the active sequence: once the wall-clock time since the
// current frame started exceeds that frame's display duration, the index
// advances by one and the timer resets, wrapping to 0 after the last index.
// Sequences loop forever; there are no one-shots.
func (s *SpriteComponent) Update(e *Entity) {
	if !s.Animated || s.currentSequence == "" {
		return
	}
	seq := s.sequences[s.currentSequence]
	frame := s.frames[seq[s.frameIndex]]
	if timeNow().Sub(s.frameStart) >= time.Duration(frame.DurationMs)*time.Millisecond {
		s.frameIndex = (s.frameIndex + 1) % len(seq)
		s.frameStart = timeNow()
	}
}

// Render draws the current frame at the entity's position, selecting the
// sequence named by the entity's animation state first. With no texture a
// flat rectangle the size of the entity is drawn instead.
func (s *SpriteComponent) Render(e *Entity, screen *ebiten.Image) {
	s.SetSequence(e.State.SequenceName())

	if s.Texture == nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(e.Width*e.ScaleX, e.Height*e.ScaleY)
		op.GeoM.Translate(e.X, e.Y)
		op.ColorScale.Scale(0.8, 0.8, 0.8, 1)
		screen.DrawImage(WhitePixel, op)
		return
	}

	src := s.Texture
	if s.Animated && s.currentSequence != "" {
		seq := s.sequences[s.currentSequence]
		src = s.Texture.SubImage(s.frames[seq[s.frameIndex]].Src).(*ebiten.Image)
	}

	op := &ebiten.DrawImageOptions{}
	b := src.Bounds()
	if b.Dx() > 0 && b.Dy() > 0 && e.Width > 0 && e.Height > 0 {
		op.GeoM.Scale(e.Width*e.ScaleX/float64(b.Dx()), e.Height*e.ScaleY/float64(b.Dy()))
	}
	op.GeoM.Translate(e.X, e.Y)
	screen.DrawImage(src, op)
}

// Dispose drops the texture reference. The image itself is owned by the
// asset cache, not the component.
func (s *SpriteComponent) Dispose() {
	s.Texture = nil
}
