// Package level holds the demo's levels and the sequence that moves the
// player through them.
package level

import (
	"errors"
	"fmt"
	"log"

	"github.com/milk9111/ethics/engine"
	"golang.org/x/image/colornames"
)

var ErrInvalidLevel = errors.New("level: invalid level")

// Level is one screen of the game. Load fills the shared scene, Update runs
// once per tick, and the two predicates are polled after each Update.
type Level interface {
	Load() error
	Update() error
	HandleKey(engine.KeyEvent)
	HandleMouse(engine.MouseEvent)
	LevelOver() bool
	GameOver() bool
}

// Sourced levels report the files they were built from so that edits can
// be reloaded. Check validates the files without touching the scene.
type Sourced interface {
	Sources() []string
	Check() error
}

// Sequence runs levels in order. Game over restarts at the first level and
// finishing a level enters the next one.
type Sequence struct {
	scene   *engine.Scene
	levels  []Level
	current Level
	index   int
}

func NewSequence(scene *engine.Scene, levels ...Level) *Sequence {
	return &Sequence{scene: scene, levels: levels, index: -1}
}

func (s *Sequence) Current() Level { return s.current }

// Index returns the index of the current level, -1 before the first Enter.
func (s *Sequence) Index() int { return s.index }

func (s *Sequence) Len() int { return len(s.levels) }

// Enter clears the scene and loads level index. If the load fails the scene
// is restored and the current level keeps running.
func (s *Sequence) Enter(index int) error {
	if index < 0 || index >= len(s.levels) || s.levels[index] == nil {
		return fmt.Errorf("%w: %d", ErrInvalidLevel, index)
	}
	lvl := s.levels[index]
	prev := append([]*engine.Entity(nil), s.scene.Entities()...)
	prevBackground := s.scene.BackgroundColor()
	s.scene.SetBackgroundColor(colornames.Lightgray)
	s.scene.Clear()
	if err := lvl.Load(); err != nil {
		s.scene.Clear()
		s.scene.SetBackgroundColor(prevBackground)
		for _, e := range prev {
			s.scene.AddEntity(e)
		}
		return fmt.Errorf("level: load %d: %w", index, err)
	}
	s.current = lvl
	s.index = index
	return nil
}

// Update advances the current level and switches levels when it ends.
func (s *Sequence) Update() error {
	if s.current == nil {
		return s.Enter(0)
	}
	if err := s.current.Update(); err != nil {
		return err
	}
	switch {
	case s.current.GameOver():
		return s.Enter(0)
	case s.current.LevelOver():
		return s.Enter(s.index + 1)
	}
	return nil
}

func (s *Sequence) HandleKey(ev engine.KeyEvent) {
	if s.current != nil {
		s.current.HandleKey(ev)
	}
}

func (s *Sequence) HandleMouse(ev engine.MouseEvent) {
	if s.current != nil {
		s.current.HandleMouse(ev)
	}
}

// Reload re-enters the current level if it was built from any of the named
// files. Files that fail Check or Load leave the running level untouched.
func (s *Sequence) Reload(names []string) error {
	src, ok := s.current.(Sourced)
	if !ok || len(names) == 0 {
		return nil
	}
	for _, name := range names {
		for _, have := range src.Sources() {
			if name == have {
				if err := src.Check(); err != nil {
					return fmt.Errorf("level: reload %s: %w", name, err)
				}
				log.Printf("level: reloading %s", name)
				return s.Enter(s.index)
			}
		}
	}
	return nil
}
