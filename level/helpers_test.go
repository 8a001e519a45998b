package level

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
)

func pngFile(t *testing.T, w, h int) *fstest.MapFile {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 0x80, A: 0xff})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return &fstest.MapFile{Data: buf.Bytes()}
}

// testAssets returns the images the levels load, sized like the real ones.
func testAssets(t *testing.T) fstest.MapFS {
	t.Helper()
	return fstest.MapFS{
		"images/ground/tiles.png":      pngFile(t, 256, 32),
		"images/random/flag.png":       pngFile(t, 160, 64),
		"images/mage/mage_walking.png": pngFile(t, 576, 256),
		"images/mage/mage_casting.png": pngFile(t, 576, 256),
		"images/mage/mage_falling.png": pngFile(t, 384, 64),
		"images/screens/won.bmp":       pngFile(t, 64, 32),
	}
}
