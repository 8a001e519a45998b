package engine

import "github.com/hajimehoshi/ebiten/v2"

// Drawable is anything that can hand the scene an image to blit. Image is
// called once per draw, so animated drawables advance their frame there.
type Drawable interface {
	Image() *ebiten.Image
}

// Tinted is implemented by drawables that want their image scaled by a color
// when blitted, for fades and flashes.
type Tinted interface {
	ColorScale() ebiten.ColorScale
}
