package level

import (
	"fmt"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/ethics/actor"
	"github.com/milk9111/ethics/engine"
	"github.com/milk9111/ethics/gfx"
	"github.com/milk9111/ethics/sound"
)

const labelFontSize = 12

// Resources are shared by every level of a game.
type Resources struct {
	Images *gfx.ImageCache
	// Sounds is optional; without it the player is silent.
	Sounds *sound.Library
	Player actor.PlayerConfig
}

// PlatformLevel is a level built from a Spec: the player runs and jumps over
// blocks and grass towards a flag while avoiding spikes.
type PlatformLevel struct {
	scene *engine.Scene
	fsys  fs.FS
	name  string
	res   Resources

	spec      *Spec
	script    *Script
	player    *actor.Player
	ground    []*engine.Entity
	spikes    []*actor.Spike
	flag      *actor.Flag
	groundGen *actor.GroundGenerator
	direction int
	tick      int
}

// NewPlatformLevel creates a level reading its spec name from fsys. Nothing
// is loaded until Load.
func NewPlatformLevel(scene *engine.Scene, fsys fs.FS, name string, res Resources) *PlatformLevel {
	return &PlatformLevel{scene: scene, fsys: fsys, name: name, res: res}
}

func (l *PlatformLevel) Name() string { return l.name }
func (l *PlatformLevel) Player() *actor.Player { return l.player }
func (l *PlatformLevel) Flag() *actor.Flag { return l.flag }
func (l *PlatformLevel) Spikes() []*actor.Spike { return l.spikes }
func (l *PlatformLevel) Ground() []*engine.Entity { return l.ground }

func (l *PlatformLevel) Sources() []string {
	names := []string{l.name}
	if l.spec != nil && l.spec.Script != "" {
		names = append(names, l.spec.Script)
	}
	return names
}

func (l *PlatformLevel) Check() error {
	_, _, err := l.readSpec()
	return err
}

func (l *PlatformLevel) readSpec() (*Spec, *Script, error) {
	spec, err := LoadSpec(l.fsys, l.name)
	if err != nil {
		return nil, nil, err
	}
	if spec.Script == "" {
		return spec, nil, nil
	}
	src, err := fs.ReadFile(l.fsys, spec.Script)
	if err != nil {
		return nil, nil, fmt.Errorf("level: read script %s: %w", spec.Script, err)
	}
	script, err := CompileScript(spec.Script, src)
	if err != nil {
		return nil, nil, err
	}
	return spec, script, nil
}

// Load builds the level and adds it to the scene. On error the scene is
// left as it was.
func (l *PlatformLevel) Load() error {
	spec, script, err := l.readSpec()
	if err != nil {
		return err
	}
	images := l.res.Images

	var (
		blocks []*engine.Entity
		spikes []*actor.Spike
		flag   *actor.Flag
		labels []*engine.Entity
		ground []*engine.Entity
	)
	for _, b := range spec.Blocks {
		block, err := actor.NewBlock(images, b.X, b.Y)
		if err != nil {
			return fmt.Errorf("level: %s: block: %w", l.name, err)
		}
		blocks = append(blocks, block)
	}
	for _, p := range spec.Spikes {
		spike, err := actor.LoadSpike(images, p.X, p.Y)
		if err != nil {
			return fmt.Errorf("level: %s: spike: %w", l.name, err)
		}
		spikes = append(spikes, spike)
	}
	if spec.Flag != nil {
		flag, err = actor.LoadFlag(images, spec.Flag.X, spec.Flag.Y)
		if err != nil {
			return fmt.Errorf("level: %s: flag: %w", l.name, err)
		}
	}
	for _, lb := range spec.Labels {
		e, err := newLabel(lb)
		if err != nil {
			return fmt.Errorf("level: %s: %w", l.name, err)
		}
		labels = append(labels, e)
		if lb.Scrolls {
			ground = append(ground, e)
		}
	}
	player, err := actor.LoadPlayer(images, spec.Player.X, spec.Player.Y, l.res.Player)
	if err != nil {
		return fmt.Errorf("level: %s: player: %w", l.name, err)
	}
	if err := l.attachSounds(player); err != nil {
		return fmt.Errorf("level: %s: %w", l.name, err)
	}

	var groundGen *actor.GroundGenerator
	if spec.Ground != nil {
		groundGen = actor.NewGroundGenerator(images, spec.Ground.Y, spec.Ground.Right)
	}

	bg, _ := spec.BackgroundColor()
	l.scene.SetBackgroundColor(bg)
	for _, e := range blocks {
		l.scene.AddEntity(e)
	}
	for _, s := range spikes {
		l.scene.AddEntity(s.Entity)
	}
	if flag != nil {
		l.scene.AddEntity(flag.Entity)
	}
	for _, e := range labels {
		l.scene.AddEntity(e)
	}
	l.scene.AddEntity(player.Entity)

	l.spec = spec
	l.script = script
	l.player = player
	l.ground = append(ground, blocks...)
	l.spikes = spikes
	l.flag = flag
	l.groundGen = groundGen
	l.direction = 0
	l.tick = 0
	return nil
}

func (l *PlatformLevel) attachSounds(p *actor.Player) error {
	lib := l.res.Sounds
	if lib == nil {
		return nil
	}
	cfg := p.Config()
	var jump, death sound.Sound
	var err error
	if cfg.JumpSound != "" {
		if jump, err = lib.Load(cfg.JumpSound); err != nil {
			return err
		}
	}
	if cfg.DeathSound != "" {
		if death, err = lib.Load(cfg.DeathSound); err != nil {
			return err
		}
	}
	p.SetSounds(jump, death)
	return nil
}

func newLabel(lb Label) (*engine.Entity, error) {
	c, err := parseColor(lb.Color, nil)
	if err != nil {
		return nil, fmt.Errorf("label %q: %w", lb.Text, err)
	}
	td := gfx.NewTextDrawable(lb.Text)
	td.SetBold(lb.Bold)
	td.SetShadow(lb.Shadow)
	if lb.Size > 0 {
		td.SetSize(lb.Size)
	} else {
		td.SetSize(labelFontSize)
	}
	if c != nil {
		td.SetColor(c)
	}
	return engine.NewEntity(td, lb.X, lb.Y, 0, 0), nil
}

func (l *PlatformLevel) Update() error {
	if l.player == nil {
		return nil
	}
	l.tick++
	if l.groundGen != nil {
		ground, err := l.groundGen.Generate(l.ground, l.scene)
		l.ground = ground
		if err != nil {
			return fmt.Errorf("level: %s: ground: %w", l.name, err)
		}
	}
	l.player.Move(l.direction, l.ground, l.spikes, l.flag, l.spec.Scroll)
	l.runScript()
	return nil
}

func (l *PlatformLevel) runScript() {
	if l.script == nil {
		return
	}
	out, err := l.script.Run(ScriptInput{
		Tick:    l.tick,
		PlayerX: l.player.X(),
		PlayerY: l.player.Y(),
		Dead:    l.player.Dead(),
		Won:     l.player.Won(),
	})
	if err != nil {
		log.Printf("level: %s: %v; script disabled", l.name, err)
		l.script = nil
		return
	}
	if out.Background != nil {
		l.scene.SetBackgroundColor(out.Background)
	}
	if out.ShowBoxes != nil {
		l.scene.SetShowingBoundingBoxes(*out.ShowBoxes)
	}
}

func (l *PlatformLevel) HandleKey(ev engine.KeyEvent) {
	if l.player == nil {
		return
	}
	switch ev.Key {
	case ebiten.KeyArrowRight:
		l.direction = 0
		if ev.Down {
			l.direction = 1
		}
	case ebiten.KeyArrowLeft:
		l.direction = 0
		if ev.Down {
			l.direction = -1
		}
	case ebiten.KeyArrowUp:
		if ev.Down {
			l.player.Jump()
		}
	case ebiten.KeyC:
		if ev.Down {
			l.player.Cast()
		}
	case ebiten.KeyBackquote:
		if ev.Down {
			l.scene.ToggleShowingBoundingBoxes()
		}
	}
}

func (l *PlatformLevel) HandleMouse(engine.MouseEvent) {}

func (l *PlatformLevel) LevelOver() bool {
	return l.player != nil && l.player.HasReachedFlag()
}

func (l *PlatformLevel) GameOver() bool {
	if l.player == nil {
		return false
	}
	return l.player.IsDead() || l.player.Y() > l.spec.FallLine
}
