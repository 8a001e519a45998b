package actor

import (
	"fmt"

	"github.com/milk9111/ethics/engine"
	"github.com/milk9111/ethics/gfx"
)

// Animator is the sprite control the actors drive.
type Animator interface {
	engine.Drawable
	Play(name string)
	PlayFromStart(name string)
}

const (
	TileSize = 32

	groundTilesPath  = "images/ground/tiles.png"
	flagPath         = "images/random/flag.png"
	mageWalkingPath  = "images/mage/mage_walking.png"
	mageCastingPath  = "images/mage/mage_casting.png"
	mageFallingPath  = "images/mage/mage_falling.png"
	mageFrameSize    = 64
	flagWidth        = 32
	flagHeight       = 64
	spikeFrameLength = 3
	flagFrameLength  = 3
)

type animation struct {
	name   string
	frames []int
}

func buildSprite(sheet *gfx.Tilesheet, frameLength int, start string, anims ...animation) (*gfx.AnimatedSprite, error) {
	sprite := gfx.NewAnimatedSprite(sheet)
	sprite.SetFrameLength(frameLength)
	for _, a := range anims {
		if err := sprite.AddAnimation(a.name, a.frames...); err != nil {
			return nil, err
		}
	}
	sprite.Play(start)
	return sprite, nil
}

func loadTileSprite(cache *gfx.ImageCache, path string, w, h, frameLength int, start string, anims ...animation) (*gfx.AnimatedSprite, error) {
	sheet, err := gfx.LoadTilesheet(cache, path, w, h)
	if err != nil {
		return nil, err
	}
	return buildSprite(sheet, frameLength, start, anims...)
}

// LoadMageSprite assembles the mage's walking, casting and dying frames from
// three sheets into one strip.
func LoadMageSprite(cache *gfx.ImageCache) (*gfx.AnimatedSprite, error) {
	gen := gfx.NewTilesheetGenerator(mageFrameSize, mageFrameSize)
	ranges := []struct {
		path     string
		from, to int
	}{
		{mageWalkingPath, 9, 18},
		{mageWalkingPath, 27, 36},
		{mageCastingPath, 27, 36},
		{mageFallingPath, 0, 6},
	}
	for _, r := range ranges {
		if err := gen.AddRange(cache, r.path, r.from, r.to); err != nil {
			return nil, fmt.Errorf("actor: mage sprite: %w", err)
		}
	}
	strip, err := gen.Generate()
	if err != nil {
		return nil, fmt.Errorf("actor: mage sprite: %w", err)
	}
	sheet, err := gfx.NewTilesheet(strip, mageFrameSize, mageFrameSize)
	if err != nil {
		return nil, err
	}
	return buildSprite(sheet, 1, animFacingRight,
		animation{animWalkingLeft, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}},
		animation{animWalkingRight, []int{9, 10, 11, 12, 13, 14, 15, 16, 17}},
		animation{animFacingRight, []int{9}},
		animation{animFacingLeft, []int{0}},
		animation{animCasting, []int{18, 19, 20, 21, 22, 23, 24, 25, 26, -1}},
		animation{animDying, []int{27, 28, 29, 30, 31, 32, -1}},
	)
}
