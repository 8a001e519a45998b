package actor

import (
	"github.com/milk9111/ethics/engine"
	"github.com/milk9111/ethics/gfx"
)

const (
	blockTile      = 0
	grassTile      = 2
	weirdGrassTile = 3
)

// NewBlock returns a solid stone tile at (x, y).
func NewBlock(cache *gfx.ImageCache, x, y float64) (*engine.Entity, error) {
	return newGroundTile(cache, x, y, blockTile)
}

// NewGrassTile returns a solid grass tile at (x, y). Weird tiles use the
// alternate grass look.
func NewGrassTile(cache *gfx.ImageCache, x, y float64, weird bool) (*engine.Entity, error) {
	tile := grassTile
	if weird {
		tile = weirdGrassTile
	}
	return newGroundTile(cache, x, y, tile)
}

func newGroundTile(cache *gfx.ImageCache, x, y float64, tile int) (*engine.Entity, error) {
	sprite, err := loadTileSprite(cache, groundTilesPath, TileSize, TileSize, 1, "tile",
		animation{"tile", []int{tile}},
	)
	if err != nil {
		return nil, err
	}
	return engine.NewEntity(sprite, x, y, TileSize, TileSize), nil
}
