package gfx

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrTileSize is returned when a tile does not match the generator's size.
var ErrTileSize = errors.New("gfx: bad tile dimensions")

// TilesheetGenerator builds a one-row sheet out of tiles taken from other
// images, in the order they were added.
type TilesheetGenerator struct {
	tileWidth  int
	tileHeight int
	tiles      []*ebiten.Image
}

func NewTilesheetGenerator(tileWidth, tileHeight int) *TilesheetGenerator {
	return &TilesheetGenerator{tileWidth: tileWidth, tileHeight: tileHeight}
}

// Add appends img, which must be exactly one tile in size.
func (g *TilesheetGenerator) Add(img *ebiten.Image) error {
	if img == nil {
		return fmt.Errorf("gfx: generator: nil tile")
	}
	b := img.Bounds()
	if b.Dx() != g.tileWidth || b.Dy() != g.tileHeight {
		return fmt.Errorf("%w: got %dx%d, want %dx%d", ErrTileSize, b.Dx(), b.Dy(), g.tileWidth, g.tileHeight)
	}
	g.tiles = append(g.tiles, img)
	return nil
}

// AddFromSheet appends the tile with linear index i of sheet.
func (g *TilesheetGenerator) AddFromSheet(sheet *Tilesheet, i int) error {
	tile, err := sheet.TileAt(i)
	if err != nil {
		return err
	}
	return g.Add(tile)
}

// AddFromPath appends tile i of the image at path, sliced with the
// generator's tile size.
func (g *TilesheetGenerator) AddFromPath(cache *ImageCache, path string, i int) error {
	sheet, err := LoadTilesheet(cache, path, g.tileWidth, g.tileHeight)
	if err != nil {
		return err
	}
	if err := g.AddFromSheet(sheet, i); err != nil {
		return fmt.Errorf("gfx: generator: %s: %w", path, err)
	}
	return nil
}

// AddRange appends tiles [from, to) of the image at path.
func (g *TilesheetGenerator) AddRange(cache *ImageCache, path string, from, to int) error {
	for i := from; i < to; i++ {
		if err := g.AddFromPath(cache, path, i); err != nil {
			return err
		}
	}
	return nil
}

func (g *TilesheetGenerator) Len() int { return len(g.tiles) }

// Generate draws the tiles left to right into a new image of
// Len()*tileWidth x tileHeight pixels.
func (g *TilesheetGenerator) Generate() (*ebiten.Image, error) {
	if len(g.tiles) == 0 {
		return nil, fmt.Errorf("gfx: generator: no tiles added")
	}
	out := ebiten.NewImage(len(g.tiles)*g.tileWidth, g.tileHeight)
	for i, tile := range g.tiles {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(i*g.tileWidth), 0)
		out.DrawImage(tile, op)
	}
	return out, nil
}
