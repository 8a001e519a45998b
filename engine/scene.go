package engine

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

var boundingBoxColor = color.RGBA{R: 0xff, A: 0xff}

// Scene is the ordered set of entities a Display draws. Entities are drawn in
// insertion order, so later entities appear on top. Duplicates are allowed.
type Scene struct {
	entities             []*Entity
	background           color.Color
	showingBoundingBoxes bool
}

// NewScene creates an empty scene with a light gray background.
func NewScene() *Scene {
	return &Scene{background: colornames.Lightgray}
}

// AddEntity appends e to the scene.
func (s *Scene) AddEntity(e *Entity) {
	if e == nil {
		return
	}
	s.entities = append(s.entities, e)
}

// RemoveEntity removes the first occurrence of e. It reports whether e was found.
func (s *Scene) RemoveEntity(e *Entity) bool {
	for i, other := range s.entities {
		if other == e {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes every entity.
func (s *Scene) Clear() {
	clear(s.entities)
	s.entities = s.entities[:0]
}

// Entities returns the scene's entities in draw order. The slice is owned by
// the scene and is only valid until the next mutation.
func (s *Scene) Entities() []*Entity {
	return s.entities
}

func (s *Scene) Len() int {
	return len(s.entities)
}

func (s *Scene) SetBackgroundColor(c color.Color) {
	s.background = c
}

func (s *Scene) BackgroundColor() color.Color {
	return s.background
}

func (s *Scene) SetShowingBoundingBoxes(show bool) {
	s.showingBoundingBoxes = show
}

func (s *Scene) ShowingBoundingBoxes() bool {
	return s.showingBoundingBoxes
}

func (s *Scene) ToggleShowingBoundingBoxes() {
	s.SetShowingBoundingBoxes(!s.showingBoundingBoxes)
}

// Draw paints the background and every entity, then the bounding box overlay
// when it is enabled. Entities with a zero dimension are markers and get no
// outline.
func (s *Scene) Draw(screen *ebiten.Image) error {
	if s.background != nil {
		screen.Fill(s.background)
	}
	for i, e := range s.entities {
		if err := e.Draw(screen); err != nil {
			return fmt.Errorf("engine: draw entity %d: %w", i, err)
		}
	}
	if !s.showingBoundingBoxes {
		return nil
	}
	for _, e := range s.entities {
		if e.width == 0 || e.height == 0 {
			continue
		}
		vector.StrokeRect(screen, float32(int(e.x)), float32(int(e.y)), float32(e.width), float32(e.height), 1, boundingBoxColor, false)
	}
	return nil
}
