package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/ethics/actor"
	"github.com/milk9111/ethics/assets"
	"github.com/milk9111/ethics/engine"
	"github.com/milk9111/ethics/gfx"
	"github.com/milk9111/ethics/level"
	"github.com/milk9111/ethics/levels"
	"github.com/milk9111/ethics/sound"
)

func main() {
	debug := flag.Bool("debug", false, "show bounding boxes and frame rates; reload edited levels when -levels is set")
	start := flag.Int("level", 0, "index of the level to start at")
	levelsDir := flag.String("levels", "", "read level files from this directory instead of the embedded ones")
	fullscreen := flag.Bool("fullscreen", false, "run fullscreen")
	tps := flag.Int("tps", engine.DefaultTPS, "game ticks per second")
	configPath := flag.String("config", "", "player tuning YAML (defaults to player.yaml among the level files)")
	flag.Parse()

	levelFS := levels.FS(*levelsDir)
	playerCfg, err := loadPlayerConfig(levelFS, *configPath)
	if err != nil {
		log.Fatal(err)
	}

	display := engine.NewDisplay(title, baseWidth, baseHeight, *fullscreen)
	display.SetTPS(*tps)
	scene := engine.NewScene()
	display.SetScene(scene)

	images := assets.NewImageCache()
	sounds := assets.NewSoundLibrary(audio.NewContext(sound.SampleRate))
	seq := level.NewSequence(scene, buildLevels(scene, levelFS, level.Resources{
		Images: images,
		Sounds: sounds,
		Player: playerCfg,
	})...)

	var watcher *level.Watcher
	if *debug && *levelsDir != "" {
		watcher, err = level.NewWatcher(*levelsDir)
		if err != nil {
			log.Printf("main: watch %s: %v", *levelsDir, err)
		}
	}

	game := NewGame(scene, seq, GameOptions{
		Start:   *start,
		Debug:   *debug,
		Sounds:  sounds,
		Watcher: watcher,
	})
	defer game.Close()

	display.SetListener(game)
	display.SetOverlay(game.DrawOverlay)
	if err := display.Run(); err != nil {
		log.Fatal(err)
	}
}

// buildLevels returns the platform levels in play order followed by the
// won screen.
func buildLevels(scene *engine.Scene, fsys fs.FS, res level.Resources) []level.Level {
	lvls := make([]level.Level, 0, len(levels.Order)+1)
	for _, name := range levels.Order {
		lvls = append(lvls, level.NewPlatformLevel(scene, fsys, name, res))
	}
	return append(lvls, level.NewWonScreen(scene, res.Images))
}

func loadPlayerConfig(levelFS fs.FS, path string) (actor.PlayerConfig, error) {
	if path != "" {
		return actor.LoadPlayerConfig(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	}
	cfg, err := actor.LoadPlayerConfig(levelFS, levels.PlayerConfig)
	if err != nil {
		return actor.PlayerConfig{}, fmt.Errorf("main: %w", err)
	}
	return cfg, nil
}

var (
	_ engine.Drawable = (*gfx.AnimatedSprite)(nil)
	_ engine.Drawable = (*gfx.TextDrawable)(nil)
	_ engine.Tinted   = (*gfx.TextDrawable)(nil)
	_ engine.Listener = (*Game)(nil)
)
