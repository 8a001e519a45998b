package actor

import (
	"github.com/milk9111/ethics/engine"
	"github.com/milk9111/ethics/gfx"
)

const (
	animNoBlood = "no_blood"
	animBlood   = "blood"
)

// Spike kills the player on contact and shows blood afterwards.
type Spike struct {
	*engine.Entity

	sprite   Animator
	bloodied bool
}

func NewSpike(sprite Animator, x, y float64) *Spike {
	sprite.Play(animNoBlood)
	return &Spike{
		Entity: engine.NewEntity(sprite, x, y, TileSize, TileSize),
		sprite: sprite,
	}
}

func LoadSpike(cache *gfx.ImageCache, x, y float64) (*Spike, error) {
	sprite, err := loadTileSprite(cache, groundTilesPath, TileSize, TileSize, spikeFrameLength, animNoBlood,
		animation{animNoBlood, []int{4}},
		animation{animBlood, []int{5, 6, 7, -1}},
	)
	if err != nil {
		return nil, err
	}
	return NewSpike(sprite, x, y), nil
}

func (s *Spike) Bloodied() bool { return s.bloodied }

// SetBloodied switches between the clean and bloody looks. Setting the
// current state again does not restart the animation.
func (s *Spike) SetBloodied(bloodied bool) {
	if s.bloodied == bloodied {
		return
	}
	s.bloodied = bloodied
	if bloodied {
		s.sprite.PlayFromStart(animBlood)
	} else {
		s.sprite.Play(animNoBlood)
	}
}
