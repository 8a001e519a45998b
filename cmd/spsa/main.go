// Command spsa previews an animation from a sprite sheet, the way the game's
// AnimatedSprite plays it.
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/ethics/assets"
	"github.com/milk9111/ethics/engine"
	"github.com/milk9111/ethics/gfx"
	"golang.org/x/image/colornames"
)

const previewSize = 256

type preview struct {
	sprite *gfx.AnimatedSprite
	label  *gfx.TextDrawable
	names  []string
	index  int
}

func (p *preview) OnLoad() error { return nil }
func (p *preview) OnUpdate() error { return nil }
func (p *preview) OnMouse(engine.MouseEvent) {}

// OnKey cycles through the animations with the arrow keys.
func (p *preview) OnKey(ev engine.KeyEvent) {
	if !ev.Down || len(p.names) < 2 {
		return
	}
	switch ev.Key {
	case ebiten.KeyArrowRight:
		p.index = (p.index + 1) % len(p.names)
	case ebiten.KeyArrowLeft:
		p.index = (p.index + len(p.names) - 1) % len(p.names)
	default:
		return
	}
	p.show()
}

func (p *preview) show() {
	name := p.names[p.index]
	p.sprite.PlayFromStart(name)
	p.label.SetText(name)
	p.label.UpdateBuffer()
}

// parseFrames reads a frame list such as "0-8" or "5,6,7,-1".
func parseFrames(s string) ([]int, error) {
	var frames []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if lo, hi, ok := strings.Cut(part[1:], "-"); ok {
			from, err := strconv.Atoi(strings.TrimSpace(part[:1] + lo))
			if err != nil {
				return nil, fmt.Errorf("frame range %q: %w", part, err)
			}
			to, err := strconv.Atoi(strings.TrimSpace(hi))
			if err != nil {
				return nil, fmt.Errorf("frame range %q: %w", part, err)
			}
			if to < from {
				return nil, fmt.Errorf("frame range %q is backwards", part)
			}
			for i := from; i <= to; i++ {
				frames = append(frames, i)
			}
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("frame %q: %w", part, err)
		}
		frames = append(frames, v)
	}
	if len(frames) == 0 {
		return nil, fmt.Errorf("no frames in %q", s)
	}
	return frames, nil
}

// parseAnimations reads "name=frames" pairs separated by semicolons. A bare
// frame list is named "default".
func parseAnimations(s string) (map[string][]int, []string, error) {
	anims := make(map[string][]int)
	var names []string
	for _, def := range strings.Split(s, ";") {
		def = strings.TrimSpace(def)
		if def == "" {
			continue
		}
		name, list, ok := strings.Cut(def, "=")
		if !ok {
			name, list = "default", def
		}
		name = strings.TrimSpace(name)
		if _, dup := anims[name]; dup {
			return nil, nil, fmt.Errorf("animation %q defined twice", name)
		}
		frames, err := parseFrames(list)
		if err != nil {
			return nil, nil, fmt.Errorf("animation %q: %w", name, err)
		}
		anims[name] = frames
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil, nil, fmt.Errorf("no animations given")
	}
	return anims, names, nil
}

func newPreview(cache *gfx.ImageCache, sheet string, w, h, frameLength int, animations string) (*preview, error) {
	anims, names, err := parseAnimations(animations)
	if err != nil {
		return nil, err
	}
	sprite, err := gfx.LoadAnimatedSprite(cache, sheet, w, h)
	if err != nil {
		return nil, err
	}
	sprite.SetFrameLength(frameLength)
	for _, name := range names {
		if err := sprite.AddAnimation(name, anims[name]...); err != nil {
			return nil, err
		}
	}
	label := gfx.NewTextDrawable("")
	label.SetSize(12)
	p := &preview{sprite: sprite, label: label, names: names}
	p.show()
	return p, nil
}

func main() {
	sheet := flag.String("sheet", "images/mage/mage_walking.png", "sprite sheet path")
	dir := flag.String("dir", "", "read the sheet from this directory instead of the embedded assets")
	w := flag.Int("w", 64, "tile width")
	h := flag.Int("h", 64, "tile height")
	frameLength := flag.Int("length", 2, "ticks per frame")
	anims := flag.String("anims", "left=9-17;right=27-35", "animations as name=frames pairs separated by ';'")
	flag.Parse()

	var fsys fs.FS = assets.FS
	if *dir != "" {
		fsys = os.DirFS(*dir)
	}
	p, err := newPreview(gfx.NewImageCache(fsys), *sheet, *w, *h, *frameLength, *anims)
	if err != nil {
		log.Fatal(err)
	}

	scene := engine.NewScene()
	scene.SetBackgroundColor(colornames.Black)
	scene.AddEntity(engine.NewEntity(p.sprite, float64(previewSize-*w)/2, float64(previewSize-*h)/2, *w, *h))
	scene.AddEntity(engine.NewEntity(p.label, 4, 4, 0, 0))

	display := engine.NewDisplay("spsa "+*sheet, previewSize, previewSize, false)
	display.SetScene(scene)
	display.SetListener(p)
	if err := display.Run(); err != nil {
		log.Fatal(err)
	}
}
