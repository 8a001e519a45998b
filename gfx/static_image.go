package gfx

import "github.com/hajimehoshi/ebiten/v2"

// StaticImage always shows the same image.
type StaticImage struct {
	img *ebiten.Image
}

func NewStaticImage(img *ebiten.Image) *StaticImage {
	return &StaticImage{img: img}
}

// LoadStaticImage loads the image at path through cache.
func LoadStaticImage(cache *ImageCache, path string) (*StaticImage, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}
	return NewStaticImage(img), nil
}

func (s *StaticImage) Image() *ebiten.Image { return s.img }

// NullDrawing draws nothing. It is used for entities that only take part in
// collisions.
type NullDrawing struct {
	img *ebiten.Image
}

func NewNullDrawing() *NullDrawing {
	return &NullDrawing{}
}

func (n *NullDrawing) Image() *ebiten.Image {
	if n.img == nil {
		n.img = ebiten.NewImage(1, 1)
	}
	return n.img
}
