// Package assets embeds the demo's images and sound effects.
package assets

import (
	"embed"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/ethics/gfx"
	"github.com/milk9111/ethics/sound"
)

//go:embed images sfx
var embedded embed.FS

// FS serves the embedded assets. Paths are relative to this directory; an
// "assets/" prefix or an absolute path into an assets directory is accepted
// too.
var FS fs.FS = assetFS{embedded}

type assetFS struct {
	fsys fs.FS
}

func (a assetFS) Open(name string) (fs.File, error) {
	return a.fsys.Open(cleanAssetPath(name))
}

// NewImageCache returns an image cache reading the embedded images.
func NewImageCache() *gfx.ImageCache {
	return gfx.NewImageCache(FS)
}

// NewSoundLibrary returns a sound library decoding the embedded effects
// into players of ctx.
func NewSoundLibrary(ctx *audio.Context) *sound.Library {
	return sound.NewLibrary(FS, ctx)
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if filepath.IsAbs(path) || strings.HasPrefix(s, "/") {
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return strings.TrimPrefix(s, "/")
	}
	return strings.TrimPrefix(s, "assets/")
}
