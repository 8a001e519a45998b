package actor

import (
	"github.com/milk9111/ethics/engine"
	"github.com/milk9111/ethics/gfx"
)

// GroundGenerator keeps a strip of grass tiles at a fixed height reaching the
// right edge of the view, for levels that scroll the world under the player.
type GroundGenerator struct {
	y       float64
	right   float64
	created int
	newTile func(x, y float64, weird bool) (*engine.Entity, error)
}

// NewGroundGenerator creates a generator placing tiles at height y until
// their x reaches right.
func NewGroundGenerator(cache *gfx.ImageCache, y, right float64) *GroundGenerator {
	return &GroundGenerator{
		y:     y,
		right: right,
		newTile: func(x, y float64, weird bool) (*engine.Entity, error) {
			return NewGrassTile(cache, x, y, weird)
		},
	}
}

// Generate appends tiles after the rightmost entity in ground and adds them
// to scene. Every third tile created uses the weird grass look.
func (g *GroundGenerator) Generate(ground []*engine.Entity, scene *engine.Scene) ([]*engine.Entity, error) {
	maxX := -float64(TileSize)
	for _, e := range ground {
		maxX = max(maxX, e.X())
	}
	for maxX < g.right {
		maxX += TileSize
		tile, err := g.newTile(maxX, g.y, g.created%3 == 0)
		if err != nil {
			return ground, err
		}
		g.created++
		ground = append(ground, tile)
		scene.AddEntity(tile)
	}
	return ground, nil
}
