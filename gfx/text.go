package gfx

import (
	"bytes"
	"image/color"
	"log"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const DefaultFontSize = 16

var (
	fontOnce    sync.Once
	regularFont *text.GoTextFaceSource
	boldFont    *text.GoTextFaceSource
)

func faceSource(bold bool) *text.GoTextFaceSource {
	fontOnce.Do(func() {
		var err error
		regularFont, err = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			log.Fatalf("gfx: load regular font: %v", err)
		}
		boldFont, err = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
		if err != nil {
			log.Fatalf("gfx: load bold font: %v", err)
		}
	})
	if bold {
		return boldFont
	}
	return regularFont
}

// TextDrawable renders a line of text into an image the first time it is
// drawn. Call UpdateBuffer after changing a property to re-render it.
type TextDrawable struct {
	text        string
	size        float64
	bold        bool
	color       color.Color
	shadow      bool
	shadowColor color.Color
	alpha       float32

	buffer *ebiten.Image
}

// NewTextDrawable creates white regular text at the default size.
func NewTextDrawable(s string) *TextDrawable {
	return &TextDrawable{
		text:        s,
		size:        DefaultFontSize,
		color:       color.White,
		shadowColor: color.Black,
		alpha:       1,
	}
}

func (t *TextDrawable) SetText(s string) { t.text = s }
func (t *TextDrawable) SetSize(size float64) { t.size = size }
func (t *TextDrawable) SetBold(bold bool) { t.bold = bold }
func (t *TextDrawable) SetColor(c color.Color) { t.color = c }
func (t *TextDrawable) SetShadow(shadow bool) { t.shadow = shadow }
func (t *TextDrawable) SetShadowColor(c color.Color) { t.shadowColor = c }
func (t *TextDrawable) Text() string { return t.text }

// SetAlpha fades the text without re-rendering it.
func (t *TextDrawable) SetAlpha(a float32) {
	t.alpha = float32(math.Max(0, math.Min(1, float64(a))))
}

func (t *TextDrawable) ColorScale() ebiten.ColorScale {
	var cs ebiten.ColorScale
	cs.ScaleAlpha(t.alpha)
	return cs
}

func (t *TextDrawable) Image() *ebiten.Image {
	if t.buffer == nil {
		t.UpdateBuffer()
	}
	return t.buffer
}

// UpdateBuffer re-renders the text with the current properties. A shadow adds
// one pixel to each dimension.
func (t *TextDrawable) UpdateBuffer() {
	face := &text.GoTextFace{Source: faceSource(t.bold), Size: t.size}
	w, h := text.Measure(t.text, face, face.Size*1.2)
	width := max(1, int(math.Ceil(w)))
	height := max(1, int(math.Ceil(h)))
	if t.shadow {
		width++
		height++
	}

	t.buffer = ebiten.NewImage(width, height)
	if t.shadow {
		op := &text.DrawOptions{}
		op.GeoM.Translate(1, 1)
		op.ColorScale.ScaleWithColor(t.shadowColor)
		text.Draw(t.buffer, t.text, face, op)
	}
	op := &text.DrawOptions{}
	op.ColorScale.ScaleWithColor(t.color)
	text.Draw(t.buffer, t.text, face, op)
}
