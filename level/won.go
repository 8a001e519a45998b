package level

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/ethics/engine"
	"github.com/milk9111/ethics/gfx"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	wonImagePath  = "images/screens/won.bmp"
	restartText   = "Click anywhere to restart"
	pulseSeconds  = 0.8
	pulseMinAlpha = 0.35
)

var (
	restartColor       = color.RGBA{R: 255, G: 100, B: 100, A: 255}
	restartShadowColor = color.RGBA{R: 150, G: 50, B: 50, A: 255}
)

// WonScreen congratulates the player. Any mouse press ends the game, which
// starts it over.
type WonScreen struct {
	scene  *engine.Scene
	images *gfx.ImageCache

	label *gfx.TextDrawable
	pulse *gween.Tween
	// fading is true while the pulse runs from opaque to faint.
	fading bool
	over   bool
}

func NewWonScreen(scene *engine.Scene, images *gfx.ImageCache) *WonScreen {
	return &WonScreen{scene: scene, images: images}
}

func (w *WonScreen) Load() error {
	img, err := gfx.LoadStaticImage(w.images, wonImagePath)
	if err != nil {
		return fmt.Errorf("level: won screen: %w", err)
	}

	label := gfx.NewTextDrawable(restartText)
	label.SetSize(24)
	label.SetBold(true)
	label.SetColor(restartColor)
	label.SetShadowColor(restartShadowColor)
	label.SetShadow(true)

	w.scene.SetBackgroundColor(color.Black)
	w.scene.AddEntity(engine.NewEntity(img, 0, 50, 0, 0))
	w.scene.AddEntity(engine.NewEntity(label, 100, 200, 0, 0))

	w.label = label
	w.fading = true
	w.pulse = gween.New(1, pulseMinAlpha, pulseSeconds, ease.InOutSine)
	w.over = false
	return nil
}

// Update pulses the restart label.
func (w *WonScreen) Update() error {
	if w.pulse == nil {
		return nil
	}
	alpha, done := w.pulse.Update(1 / float32(ebiten.TPS()))
	w.label.SetAlpha(alpha)
	if done {
		w.fading = !w.fading
		if w.fading {
			w.pulse = gween.New(1, pulseMinAlpha, pulseSeconds, ease.InOutSine)
		} else {
			w.pulse = gween.New(pulseMinAlpha, 1, pulseSeconds, ease.InOutSine)
		}
	}
	return nil
}

// Alpha returns the current opacity of the restart label.
func (w *WonScreen) Alpha() float32 {
	if w.label == nil {
		return 0
	}
	cs := w.label.ColorScale()
	return cs.A()
}

func (w *WonScreen) HandleKey(engine.KeyEvent) {}

func (w *WonScreen) HandleMouse(ev engine.MouseEvent) {
	if ev.Type == engine.MouseDown {
		w.over = true
	}
}

func (w *WonScreen) LevelOver() bool { return false }
func (w *WonScreen) GameOver() bool { return w.over }
