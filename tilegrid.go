package tilerun

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Tile identifiers for the interior-default tileset convention. The border
// ring uses wall identifiers, the interior uses the walkable sentinel, and
// each corner is distinct.
const (
	TileTopLeft     = 32
	TileTopEdge     = 33
	TileTopRight    = 34
	TileLeftEdge    = 69
	TileRightEdge   = 71
	TileBottomLeft  = 106
	TileBottomEdge  = 107
	TileBottomRight = 108
	TileWalkable    = 966 // interior "no collision" sentinel
)

// TileOutOfBounds is returned by tile queries for any coordinate outside the
// grid. Callers treat it as "not blocked" or "invalid" depending on context.
const TileOutOfBounds = -1

// TileGrid is a 2D array of tile identifiers plus a reference to a shared
// texture atlas. It answers point and leading-edge queries and renders
// itself. Tile data is stored row-major, like the layer buffers it renders
// from.
type TileGrid struct {
	WidthTiles  int
	HeightTiles int
	TileSize    int // tile edge length in pixels, pre-zoom

	tiles []int // row-major, len = WidthTiles * HeightTiles

	// Shared texture atlas; tile identifiers index a row-major grid of
	// atlasCols tiles per row within it. nil atlas skips rendering.
	atlas     *ebiten.Image
	atlasCols int
}

// NewTileGrid creates a grid filled entirely with the walkable sentinel.
func NewTileGrid(widthTiles, heightTiles, tileSize int) *TileGrid {
	g := &TileGrid{
		WidthTiles:  widthTiles,
		HeightTiles: heightTiles,
		TileSize:    tileSize,
		tiles:       make([]int, widthTiles*heightTiles),
	}
	for i := range g.tiles {
		g.tiles[i] = TileWalkable
	}
	return g
}

// NewBorderedTileGrid creates a grid whose border ring is wall tiles (with
// distinct corner identifiers) and whose interior is walkable.
func NewBorderedTileGrid(widthTiles, heightTiles, tileSize int) *TileGrid {
	g := NewTileGrid(widthTiles, heightTiles, tileSize)
	for col := 0; col < widthTiles; col++ {
		g.SetTile(col, 0, TileTopEdge)
		g.SetTile(col, heightTiles-1, TileBottomEdge)
	}
	for row := 0; row < heightTiles; row++ {
		g.SetTile(0, row, TileLeftEdge)
		g.SetTile(widthTiles-1, row, TileRightEdge)
	}
	g.SetTile(0, 0, TileTopLeft)
	g.SetTile(widthTiles-1, 0, TileTopRight)
	g.SetTile(0, heightTiles-1, TileBottomLeft)
	g.SetTile(widthTiles-1, heightTiles-1, TileBottomRight)
	return g
}

// SetAtlas attaches the shared tile texture atlas. cols is the number of
// tiles per atlas row; tile identifiers index the atlas row-major.
func (g *TileGrid) SetAtlas(img *ebiten.Image, cols int) {
	g.atlas = img
	g.atlasCols = cols
}

// TileAt returns the tile identifier at the given column and row, or
// TileOutOfBounds for any coordinate outside the grid. Never faults.
func (g *TileGrid) TileAt(col, row int) int {
	if col < 0 || col >= g.WidthTiles || row < 0 || row >= g.HeightTiles {
		return TileOutOfBounds
	}
	return g.tiles[row*g.WidthTiles+col]
}

// SetTile writes a tile identifier; out-of-bounds coordinates are ignored.
func (g *TileGrid) SetTile(col, row, id int) {
	if col < 0 || col >= g.WidthTiles || row < 0 || row >= g.HeightTiles {
		return
	}
	g.tiles[row*g.WidthTiles+col] = id
}

// TileAtPixel returns the tile identifier under a world-pixel coordinate at
// the given zoom factor, or TileOutOfBounds.
func (g *TileGrid) TileAtPixel(x, y, zoom float64) int {
	ts := float64(g.TileSize) * zoom
	if ts <= 0 || x < 0 || y < 0 {
		return TileOutOfBounds
	}
	return g.TileAt(int(x/ts), int(y/ts))
}

// Blocked is the discrete "is the next step blocked" query, evaluated before
// committing motion on an axis. It samples grid cells one pixel beyond the
// leading edge of rect in the given direction, at one-tile-size stride along
// the edge. Sampling starts one stride in from the corner and the probe sits
// one pixel inside the far end of each stride, so corner tiles are not
// double-counted between the two axes.
//
// Any sampled in-grid cell that is not the walkable sentinel blocks. Samples
// outside the grid return TileOutOfBounds and do not block; the wall-tile
// border ring is the authoritative world boundary.
func (g *TileGrid) Blocked(rect Rect, dir Direction, zoom float64) bool {
	ts := float64(g.TileSize) * zoom
	if ts <= 0 {
		return false
	}

	var lead float64   // coordinate of the next step beyond the leading edge
	var origin float64 // start of the perpendicular span
	var span float64   // length of the perpendicular span

	switch dir {
	case DirLeft:
		lead = rect.X - 1
		origin, span = rect.Y, rect.Height
	case DirRight:
		lead = rect.X + rect.Width
		origin, span = rect.Y, rect.Height
	case DirUp:
		lead = rect.Y - 1
		origin, span = rect.X, rect.Width
	case DirDown:
		lead = rect.Y + rect.Height
		origin, span = rect.X, rect.Width
	default:
		return false
	}

	for off := ts; off <= span; off += ts {
		p := origin + off - 1
		var id int
		switch dir {
		case DirLeft, DirRight:
			id = g.TileAtPixel(lead, p, zoom)
		default:
			id = g.TileAtPixel(p, lead, zoom)
		}
		if id != TileWalkable && id != TileOutOfBounds {
			return true
		}
	}
	return false
}

// Render draws every tile through the shared atlas at the given zoom factor.
// With no atlas attached rendering is skipped entirely (graceful
// degradation; collision queries keep working).
func (g *TileGrid) Render(screen *ebiten.Image, zoom float64) {
	if g.atlas == nil || g.atlasCols <= 0 {
		return
	}
	ts := g.TileSize
	scaled := float64(ts) * zoom
	for row := 0; row < g.HeightTiles; row++ {
		for col := 0; col < g.WidthTiles; col++ {
			id := g.tiles[row*g.WidthTiles+col]
			src := g.atlasTile(id)
			if src == nil {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			if zoom != 1 {
				op.GeoM.Scale(zoom, zoom)
			}
			op.GeoM.Translate(float64(col)*scaled, float64(row)*scaled)
			screen.DrawImage(src, op)
		}
	}
}

// atlasTile returns the atlas sub-image for a tile identifier, or nil when
// the identifier falls outside the atlas.
func (g *TileGrid) atlasTile(id int) *ebiten.Image {
	if id < 0 {
		return nil
	}
	ts := g.TileSize
	sx := (id % g.atlasCols) * ts
	sy := (id / g.atlasCols) * ts
	b := g.atlas.Bounds()
	if sx+ts > b.Dx() || sy+ts > b.Dy() {
		return nil
	}
	r := b.Min
	return g.atlas.SubImage(image.Rect(r.X+sx, r.Y+sy, r.X+sx+ts, r.Y+sy+ts)).(*ebiten.Image)
}
