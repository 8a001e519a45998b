package engine

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
)

func TestSceneAddRemove(t *testing.T) {
	s := NewScene()
	a := NewEntity(nil, 0, 0, 1, 1)
	b := NewEntity(nil, 0, 0, 1, 1)

	s.AddEntity(a)
	s.AddEntity(b)
	s.AddEntity(a)
	s.AddEntity(nil)
	if s.Len() != 3 {
		t.Fatalf("expected 3 entities, got %d", s.Len())
	}

	if !s.RemoveEntity(a) {
		t.Fatalf("RemoveEntity should report removal")
	}
	got := s.Entities()
	if len(got) != 2 || got[0] != b || got[1] != a {
		t.Fatalf("unexpected order after removal: %v", got)
	}

	c := NewEntity(nil, 0, 0, 1, 1)
	if s.RemoveEntity(c) {
		t.Fatalf("RemoveEntity of unknown entity should report false")
	}

	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("expected empty scene after Clear, got %d", s.Len())
	}
}

func TestSceneSettings(t *testing.T) {
	s := NewScene()
	if s.BackgroundColor() != colornames.Lightgray {
		t.Fatalf("default background = %v", s.BackgroundColor())
	}
	s.SetBackgroundColor(colornames.Black)
	if s.BackgroundColor() != colornames.Black {
		t.Fatalf("background = %v, want black", s.BackgroundColor())
	}

	if s.ShowingBoundingBoxes() {
		t.Fatalf("bounding boxes should start hidden")
	}
	s.ToggleShowingBoundingBoxes()
	if !s.ShowingBoundingBoxes() {
		t.Fatalf("toggle should show bounding boxes")
	}
	s.ToggleShowingBoundingBoxes()
	if s.ShowingBoundingBoxes() {
		t.Fatalf("second toggle should hide bounding boxes")
	}
}

func TestSceneDrawReportsMissingDrawable(t *testing.T) {
	s := NewScene()
	s.AddEntity(NewEntity(nil, 0, 0, 0, 0))
	if err := s.Draw(ebiten.NewImage(8, 8)); !errors.Is(err, ErrNoDrawable) {
		t.Fatalf("Draw error = %v, want ErrNoDrawable", err)
	}
}
