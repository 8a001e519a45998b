package level

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/ethics/engine"
	"github.com/milk9111/ethics/gfx"
)

func TestWonScreen(t *testing.T) {
	scene := engine.NewScene()
	w := NewWonScreen(scene, gfx.NewImageCache(testAssets(t)))
	if err := w.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	if scene.BackgroundColor() != color.Black {
		t.Fatalf("expected black background, got %v", scene.BackgroundColor())
	}
	if scene.Len() != 2 {
		t.Fatalf("expected image and label, got %d entities", scene.Len())
	}

	for i := 0; i < 10; i++ {
		if err := w.Update(); err != nil {
			t.Fatalf("update: %v", err)
		}
	}
	if a := w.Alpha(); a >= 1 || a < pulseMinAlpha {
		t.Fatalf("expected label to fade, got alpha %v", a)
	}

	events := []struct {
		ev   engine.MouseEvent
		over bool
	}{
		{engine.MouseEvent{Type: engine.MouseMotion, X: 10, Y: 10}, false},
		{engine.MouseEvent{Type: engine.MouseUp, Button: ebiten.MouseButtonLeft}, false},
		{engine.MouseEvent{Type: engine.MouseDown, Button: ebiten.MouseButtonRight}, true},
	}
	for i, e := range events {
		w.HandleMouse(e.ev)
		if w.GameOver() != e.over {
			t.Fatalf("event %d: expected game over %v", i, e.over)
		}
	}
	if w.LevelOver() {
		t.Fatalf("won screen never finishes as a level")
	}

	if err := w.Load(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if w.GameOver() {
		t.Fatalf("expected reload to reset the screen")
	}
}

func TestWonScreenMissingImage(t *testing.T) {
	scene := engine.NewScene()
	w := NewWonScreen(scene, gfx.NewImageCache(nil))
	if err := w.Load(); err == nil {
		t.Fatalf("expected missing image to fail")
	}
	if scene.Len() != 0 {
		t.Fatalf("expected nothing added on failure")
	}
}

func TestWonScreenAlpha(t *testing.T) {
	w := NewWonScreen(engine.NewScene(), gfx.NewImageCache(testAssets(t)))
	if a := w.Alpha(); a != 0 {
		t.Fatalf("expected no label before load, got alpha %v", a)
	}
	if err := w.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	if a := w.Alpha(); a != 1 {
		t.Fatalf("expected opaque label after load, got alpha %v", a)
	}

	minAlpha := float32(1)
	for i := 0; i < 3*ebiten.TPS(); i++ {
		if err := w.Update(); err != nil {
			t.Fatalf("update: %v", err)
		}
		if a := w.Alpha(); a < minAlpha {
			minAlpha = a
		}
	}
	if minAlpha > pulseMinAlpha+0.05 {
		t.Fatalf("expected pulse to reach %v, lowest alpha %v", pulseMinAlpha, minAlpha)
	}
}
