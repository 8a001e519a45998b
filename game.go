package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/ethics/engine"
	"github.com/milk9111/ethics/level"
	"github.com/milk9111/ethics/sound"
)

const (
	baseWidth  = 16 * 32
	baseHeight = 9 * 32
	title      = "Interesting platformer"
)

// Game drives the level sequence from the display's events and owns the
// pause menu.
type Game struct {
	scene   *engine.Scene
	seq     *level.Sequence
	sounds  *sound.Library
	watcher *level.Watcher
	start   int
	debug   bool

	paused  bool
	quit    bool
	pauseUI *ebitenui.UI
}

type GameOptions struct {
	Start   int
	Debug   bool
	Sounds  *sound.Library
	Watcher *level.Watcher
}

func NewGame(scene *engine.Scene, seq *level.Sequence, opts GameOptions) *Game {
	g := &Game{
		scene:   scene,
		seq:     seq,
		sounds:  opts.Sounds,
		watcher: opts.Watcher,
		start:   opts.Start,
		debug:   opts.Debug,
	}
	g.pauseUI = NewPauseUI(g)
	return g
}

func (g *Game) Paused() bool { return g.paused }

func (g *Game) SetPaused(paused bool) {
	g.paused = paused
	if paused && g.sounds != nil {
		g.sounds.StopAll()
	}
}

// Quit ends the game at the next update.
func (g *Game) Quit() { g.quit = true }

func (g *Game) OnLoad() error {
	if g.debug {
		g.scene.SetShowingBoundingBoxes(true)
	}
	return g.seq.Enter(g.start)
}

func (g *Game) OnUpdate() error {
	if g.quit {
		return ebiten.Termination
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}
	g.reload()
	if err := g.seq.Update(); err != nil {
		return err
	}
	if g.sounds != nil {
		g.sounds.Update()
	}
	return nil
}

func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("game: watch levels: %v", err)
		}
	default:
	}
	if err := g.seq.Reload(g.watcher.Changed()); err != nil {
		log.Printf("game: %v", err)
	}
}

// OnKey toggles the pause menu on Escape. While paused only key releases
// reach the level so held keys do not stick.
func (g *Game) OnKey(ev engine.KeyEvent) {
	if ev.Key == ebiten.KeyEscape {
		if ev.Down {
			g.SetPaused(!g.paused)
		}
		return
	}
	if g.paused && ev.Down {
		return
	}
	g.seq.HandleKey(ev)
}

func (g *Game) OnMouse(ev engine.MouseEvent) {
	if g.paused {
		return
	}
	g.seq.HandleMouse(ev)
}

// DrawOverlay draws the pause menu and, in debug mode, the frame rates.
func (g *Game) DrawOverlay(screen *ebiten.Image) {
	if g.paused {
		g.pauseUI.Draw(screen)
	}
	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %.1f  FPS: %.1f  level: %d", ebiten.ActualTPS(), ebiten.ActualFPS(), g.seq.Index()), 4, baseHeight-16)
	}
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
