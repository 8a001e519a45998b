package gfx

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Tilesheet slices a source image into equally sized tiles. Tiles are indexed
// left to right, then top to bottom.
type Tilesheet struct {
	source     *ebiten.Image
	tileWidth  int
	tileHeight int
	cols       int
	rows       int
	tiles      map[int]*ebiten.Image
}

// NewTilesheet wraps source. Partial tiles at the right or bottom edge are
// not addressable.
func NewTilesheet(source *ebiten.Image, tileWidth, tileHeight int) (*Tilesheet, error) {
	if source == nil {
		return nil, fmt.Errorf("gfx: tilesheet: nil source")
	}
	if tileWidth <= 0 || tileHeight <= 0 {
		return nil, fmt.Errorf("gfx: tilesheet: invalid tile size %dx%d", tileWidth, tileHeight)
	}
	b := source.Bounds()
	return &Tilesheet{
		source:     source,
		tileWidth:  tileWidth,
		tileHeight: tileHeight,
		cols:       b.Dx() / tileWidth,
		rows:       b.Dy() / tileHeight,
		tiles:      make(map[int]*ebiten.Image),
	}, nil
}

// LoadTilesheet loads the source through cache.
func LoadTilesheet(cache *ImageCache, path string, tileWidth, tileHeight int) (*Tilesheet, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}
	return NewTilesheet(img, tileWidth, tileHeight)
}

func (t *Tilesheet) TileSize() (int, int) { return t.tileWidth, t.tileHeight }

// Count returns the number of whole tiles in the sheet.
func (t *Tilesheet) Count() int { return t.cols * t.rows }

// TileRect returns the pixel rectangle of the tile at column col and row row.
func (t *Tilesheet) TileRect(col, row int) image.Rectangle {
	x := col * t.tileWidth
	y := row * t.tileHeight
	return image.Rect(x, y, x+t.tileWidth, y+t.tileHeight).Add(t.source.Bounds().Min)
}

// IndexRect returns the pixel rectangle of the tile with linear index i.
func (t *Tilesheet) IndexRect(i int) (image.Rectangle, error) {
	if i < 0 || i >= t.Count() {
		return image.Rectangle{}, fmt.Errorf("gfx: tile index %d out of range [0,%d)", i, t.Count())
	}
	return t.TileRect(i%t.cols, i/t.cols), nil
}

// Tile returns the tile at column col and row row.
func (t *Tilesheet) Tile(col, row int) (*ebiten.Image, error) {
	if col < 0 || row < 0 || col >= t.cols || row >= t.rows {
		return nil, fmt.Errorf("gfx: tile (%d,%d) outside %dx%d sheet", col, row, t.cols, t.rows)
	}
	return t.TileAt(row*t.cols + col)
}

// TileAt returns the tile with linear index i.
func (t *Tilesheet) TileAt(i int) (*ebiten.Image, error) {
	if img, ok := t.tiles[i]; ok {
		return img, nil
	}
	r, err := t.IndexRect(i)
	if err != nil {
		return nil, err
	}
	img := t.source.SubImage(r).(*ebiten.Image)
	t.tiles[i] = img
	return img, nil
}
