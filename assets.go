package tilerun

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"

	_ "image/png"

	_ "golang.org/x/image/bmp"
)

// AssetCache is an explicitly owned texture cache. It is passed by reference
// into whatever needs to load or query textures and its lifetime is scoped to
// the running scene — there is no process-wide singleton and no reference
// counting.
type AssetCache struct {
	textures map[string]*ebiten.Image
}

// NewAssetCache creates an empty cache.
func NewAssetCache() *AssetCache {
	return &AssetCache{textures: make(map[string]*ebiten.Image)}
}

// Register stores an already-loaded image under a name, typically an entity
// name used by the factory.
func (c *AssetCache) Register(name string, img *ebiten.Image) {
	c.textures[name] = img
}

// Texture returns the image registered or previously loaded under name,
// loading it from disk on first use. A missing or undecodable asset is
// logged and yields nil — the caller continues with a null visual handle and
// the entity remains logically alive. The nil result is cached so the miss
// is logged once, not per frame.
func (c *AssetCache) Texture(name string) *ebiten.Image {
	img, ok := c.textures[name]
	if ok {
		return img
	}
	img, _, err := ebitenutil.NewImageFromFile(name)
	if err != nil {
		logger.Warn("texture unavailable", zap.String("path", name), zap.Error(err))
		img = nil
	}
	c.textures[name] = img
	return img
}

// Dispose deallocates every cached texture and empties the cache.
func (c *AssetCache) Dispose() {
	for name, img := range c.textures {
		if img != nil {
			img.Deallocate()
		}
		delete(c.textures, name)
	}
}

// ReadBMPDimensions reads the pixel dimensions from a BMP file header
// without decoding the image: width and height sit at byte offset 18,
// little-endian. Used to size a tile-bitmap atlas grid before paying for a
// full decode. A negative stored height (top-down BMP) is normalized.
func ReadBMPDimensions(path string) (width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("tilerun: failed to open bmp: %w", err)
	}
	defer f.Close()

	header := make([]byte, 26)
	if _, err := io.ReadFull(f, header); err != nil {
		return 0, 0, fmt.Errorf("tilerun: failed to read bmp header: %w", err)
	}
	if header[0] != 'B' || header[1] != 'M' {
		return 0, 0, fmt.Errorf("tilerun: %s is not a bmp file", path)
	}

	width = int(int32(binary.LittleEndian.Uint32(header[18:22])))
	height = int(int32(binary.LittleEndian.Uint32(header[22:26])))
	if height < 0 {
		height = -height
	}
	return width, height, nil
}
