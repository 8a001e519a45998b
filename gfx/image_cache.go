package gfx

import (
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/bmp"
)

// ImageCache loads images from a file system once per path. A cache belongs to
// one game session; create a new one per test or per run.
type ImageCache struct {
	fsys   fs.FS
	images map[string]*ebiten.Image
}

// NewImageCache creates a cache reading from fsys.
func NewImageCache(fsys fs.FS) *ImageCache {
	return &ImageCache{fsys: fsys, images: make(map[string]*ebiten.Image)}
}

// Load returns the image at p, decoding it on first use.
func (c *ImageCache) Load(p string) (*ebiten.Image, error) {
	key := cleanPath(p)
	if key == "" {
		return nil, fmt.Errorf("gfx: empty image path")
	}
	if img, ok := c.images[key]; ok {
		return img, nil
	}
	src, err := c.decode(key)
	if err != nil {
		return nil, err
	}
	img := ebiten.NewImageFromImage(src)
	c.images[key] = img
	return img, nil
}

// Register stores an already built image under p, e.g. a generated sheet.
func (c *ImageCache) Register(p string, img *ebiten.Image) {
	key := cleanPath(p)
	if key == "" || img == nil {
		return
	}
	c.images[key] = img
}

// Len returns the number of cached images.
func (c *ImageCache) Len() int {
	return len(c.images)
}

func (c *ImageCache) decode(key string) (image.Image, error) {
	if c.fsys == nil {
		return nil, fmt.Errorf("gfx: load %s: no file system", key)
	}
	f, err := c.fsys.Open(key)
	if err != nil {
		return nil, fmt.Errorf("gfx: load %s: %w", key, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("gfx: decode %s: %w", key, err)
	}
	return img, nil
}

func cleanPath(p string) string {
	if p == "" {
		return ""
	}
	s := path.Clean(strings.ReplaceAll(p, "\\", "/"))
	return strings.TrimPrefix(s, "/")
}
