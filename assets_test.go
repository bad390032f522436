package tilerun

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// writeBMPHeader writes a minimal BMP file header with the given stored
// dimensions; no pixel data follows.
func writeBMPHeader(t *testing.T, width, height int32) string {
	t.Helper()
	header := make([]byte, 26)
	header[0], header[1] = 'B', 'M'
	binary.LittleEndian.PutUint32(header[18:22], uint32(width))
	binary.LittleEndian.PutUint32(header[22:26], uint32(height))

	path := filepath.Join(t.TempDir(), "atlas.bmp")
	if err := os.WriteFile(path, header, 0o644); err != nil {
		t.Fatalf("writing bmp: %v", err)
	}
	return path
}

func TestReadBMPDimensions(t *testing.T) {
	path := writeBMPHeader(t, 320, 224)
	w, h, err := ReadBMPDimensions(path)
	if err != nil {
		t.Fatalf("ReadBMPDimensions: %v", err)
	}
	if w != 320 || h != 224 {
		t.Errorf("dimensions = %dx%d, want 320x224", w, h)
	}
}

func TestReadBMPDimensionsTopDown(t *testing.T) {
	// Top-down BMPs store a negative height; callers always see it positive.
	path := writeBMPHeader(t, 64, -128)
	w, h, err := ReadBMPDimensions(path)
	if err != nil {
		t.Fatalf("ReadBMPDimensions: %v", err)
	}
	if w != 64 || h != 128 {
		t.Errorf("dimensions = %dx%d, want 64x128", w, h)
	}
}

func TestReadBMPDimensionsNotBMP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.bmp")
	if err := os.WriteFile(path, []byte("PNG............................"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := ReadBMPDimensions(path); err == nil {
		t.Error("non-BMP magic should be an error")
	}
}

func TestReadBMPDimensionsMissingFile(t *testing.T) {
	if _, _, err := ReadBMPDimensions(filepath.Join(t.TempDir(), "absent.bmp")); err == nil {
		t.Error("missing file should be an error")
	}
}

func TestReadBMPDimensionsTruncated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.bmp")
	if err := os.WriteFile(path, []byte{'B', 'M', 0, 0}, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := ReadBMPDimensions(path); err == nil {
		t.Error("truncated header should be an error")
	}
}

// --- Texture cache ---

func TestTextureMissCachedOnce(t *testing.T) {
	c := NewAssetCache()
	missing := filepath.Join(t.TempDir(), "nothing.png")

	if img := c.Texture(missing); img != nil {
		t.Error("unloadable asset should yield a nil handle")
	}
	if _, ok := c.textures[missing]; !ok {
		t.Error("the miss should be cached so it is logged once")
	}
	if img := c.Texture(missing); img != nil {
		t.Error("cached miss should stay nil")
	}
}

func TestTextureRegisteredLookup(t *testing.T) {
	c := NewAssetCache()
	c.Register("player", nil)
	if _, ok := c.textures["player"]; !ok {
		t.Error("registered names should be present in the cache")
	}
	// A registered entry short-circuits the disk load, even when nil.
	if img := c.Texture("player"); img != nil {
		t.Error("registered nil handle should be returned as-is")
	}
}

func TestAssetCacheDispose(t *testing.T) {
	c := NewAssetCache()
	c.Register("a", nil)
	c.Register("b", nil)
	c.Dispose()
	if len(c.textures) != 0 {
		t.Errorf("cache should be empty after dispose, has %d entries", len(c.textures))
	}
}
