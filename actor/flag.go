package actor

import (
	"github.com/milk9111/ethics/engine"
	"github.com/milk9111/ethics/gfx"
)

const (
	animStatic  = "static"
	animFalling = "falling"
)

// Flag marks the end of a level. It falls over once touched.
type Flag struct {
	*engine.Entity

	sprite Animator
	fallen bool
}

func NewFlag(sprite Animator, x, y float64) *Flag {
	sprite.Play(animStatic)
	return &Flag{
		Entity: engine.NewEntity(sprite, x, y, flagWidth, flagHeight),
		sprite: sprite,
	}
}

func LoadFlag(cache *gfx.ImageCache, x, y float64) (*Flag, error) {
	sprite, err := loadTileSprite(cache, flagPath, flagWidth, flagHeight, flagFrameLength, animStatic,
		animation{animStatic, []int{0}},
		animation{animFalling, []int{1, 2, 3, 4, -1}},
	)
	if err != nil {
		return nil, err
	}
	return NewFlag(sprite, x, y), nil
}

func (f *Flag) Fallen() bool { return f.fallen }

// Fall starts the falling animation the first time it is called.
func (f *Flag) Fall() {
	if f.fallen {
		return
	}
	f.fallen = true
	f.sprite.PlayFromStart(animFalling)
}
