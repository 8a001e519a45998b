package gfx

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// AnimatedSprite plays named sequences of tiles from a Tilesheet. A negative
// entry -k in a sequence jumps back k frames, so a trailing -1 holds the
// previous frame once the sequence has played through.
type AnimatedSprite struct {
	sheet       *Tilesheet
	frameLength int
	animations  map[string][]int
	current     string
	counter     int
}

// NewAnimatedSprite creates a sprite over sheet with one tick per frame.
func NewAnimatedSprite(sheet *Tilesheet) *AnimatedSprite {
	return &AnimatedSprite{
		sheet:       sheet,
		frameLength: 1,
		animations:  make(map[string][]int),
	}
}

// LoadAnimatedSprite slices the image at path into tiles of the given size.
func LoadAnimatedSprite(cache *ImageCache, path string, tileWidth, tileHeight int) (*AnimatedSprite, error) {
	sheet, err := LoadTilesheet(cache, path, tileWidth, tileHeight)
	if err != nil {
		return nil, err
	}
	return NewAnimatedSprite(sheet), nil
}

// AddAnimation registers frames under name. The first frame must be a tile
// and no jump may reach before the start of the sequence.
func (s *AnimatedSprite) AddAnimation(name string, frames ...int) error {
	if len(frames) == 0 {
		return fmt.Errorf("gfx: animation %q has no frames", name)
	}
	for i, f := range frames {
		if f < 0 && -f > i {
			return fmt.Errorf("gfx: animation %q: frame %d jumps back %d frames", name, i, -f)
		}
		if f >= 0 && s.sheet != nil && f >= s.sheet.Count() {
			return fmt.Errorf("gfx: animation %q: tile %d outside sheet of %d tiles", name, f, s.sheet.Count())
		}
	}
	s.animations[name] = append([]int(nil), frames...)
	return nil
}

// SetFrameLength sets how many ticks each frame is shown.
func (s *AnimatedSprite) SetFrameLength(ticks int) {
	if ticks < 1 {
		ticks = 1
	}
	s.frameLength = ticks
}

// Play switches to name and keeps the frame counter, so walk cycles stay in
// step when the direction changes. Playing an unknown animation panics.
func (s *AnimatedSprite) Play(name string) {
	if _, ok := s.animations[name]; !ok {
		panic(fmt.Sprintf("gfx: unknown animation %q", name))
	}
	s.current = name
}

// PlayFromStart switches to name and restarts it.
func (s *AnimatedSprite) PlayFromStart(name string) {
	s.Play(name)
	s.counter = 0
}

// Current returns the name of the playing animation.
func (s *AnimatedSprite) Current() string {
	return s.current
}

// NextTile advances the animation by one tick and returns the tile to show.
func (s *AnimatedSprite) NextTile() int {
	if s.current == "" {
		panic("gfx: no animation selected but there was an attempt to draw")
	}
	frames := s.animations[s.current]
	for {
		idx := s.counter / s.frameLength
		s.counter++
		tile := frames[idx%len(frames)]
		if tile >= 0 {
			return tile
		}
		s.counter += tile - 1
	}
}

// Image advances the animation and returns the current tile image.
func (s *AnimatedSprite) Image() *ebiten.Image {
	img, err := s.sheet.TileAt(s.NextTile())
	if err != nil {
		panic(err)
	}
	return img
}
