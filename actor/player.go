package actor

import (
	"github.com/milk9111/ethics/engine"
	"github.com/milk9111/ethics/gfx"
	"github.com/milk9111/ethics/sound"
)

const (
	animWalkingLeft  = "walking_left"
	animWalkingRight = "walking_right"
	animFacingLeft   = "facing_left"
	animFacingRight  = "facing_right"
	animCasting      = "casting"
	animDying        = "dieing"

	castLength = 9
)

// Player is the mage. Each tick the level calls Move with the ground, spikes
// and flag of the level; the player resolves gravity and walking against the
// ground and watches for spikes and the flag. Dying and winning cannot be
// undone within a level.
type Player struct {
	*engine.Entity

	sprite Animator
	cfg    PlayerConfig

	dead       bool
	deadFrames int
	won        bool
	wonFrames  int

	jumpPower   float64
	doneJumping bool
	// lastDirection is the input of the previous tick, facing the last
	// nonzero one.
	lastDirection int
	facing        int
	// castTicks counts down while the casting animation owns the sprite.
	castTicks int

	jumpSound  sound.Sound
	deathSound sound.Sound
}

// NewPlayer creates a player at (x, y) drawn with sprite.
func NewPlayer(sprite Animator, x, y float64, cfg PlayerConfig) *Player {
	cfg = cfg.withDefaults()
	return &Player{
		Entity:      engine.NewEntity(sprite, x, y, cfg.Width, cfg.Height),
		sprite:      sprite,
		cfg:         cfg,
		doneJumping: true,
		facing:      1,
	}
}

// LoadPlayer builds the mage sprite from cache and places the player.
func LoadPlayer(cache *gfx.ImageCache, x, y float64, cfg PlayerConfig) (*Player, error) {
	sprite, err := LoadMageSprite(cache)
	if err != nil {
		return nil, err
	}
	return NewPlayer(sprite, x, y, cfg), nil
}

// SetSounds attaches the jump and death effects. Either may be nil.
func (p *Player) SetSounds(jump, death sound.Sound) {
	p.jumpSound = jump
	p.deathSound = death
}

func (p *Player) Config() PlayerConfig { return p.cfg }
func (p *Player) Dead() bool { return p.dead }
func (p *Player) Won() bool { return p.won }
func (p *Player) DoneJumping() bool { return p.doneJumping }
func (p *Player) JumpPower() float64 { return p.jumpPower }
func (p *Player) Facing() int { return p.facing }

// IsDead reports whether the player died long enough ago for the death
// animation to have played.
func (p *Player) IsDead() bool {
	return p.dead && p.deadFrames > p.cfg.DeadFrames
}

// HasReachedFlag reports whether the player touched the flag long enough ago
// for the level to end.
func (p *Player) HasReachedFlag() bool {
	return p.won && p.wonFrames > p.cfg.WonFrames
}

// Jump starts a jump if the player has landed since the last one. It reports
// whether a jump started.
func (p *Player) Jump() bool {
	if !p.doneJumping || p.dead {
		return false
	}
	p.jumpPower = p.cfg.JumpPower
	p.doneJumping = false
	if p.jumpSound != nil {
		p.jumpSound.Restart()
		p.jumpSound.Play()
	}
	return true
}

// Cast plays the casting animation once. It reports whether the cast
// started; the dead and the already casting cannot cast.
func (p *Player) Cast() bool {
	if p.dead || p.castTicks > 0 {
		return false
	}
	p.castTicks = castLength
	p.sprite.PlayFromStart(animCasting)
	return true
}

func (p *Player) Casting() bool { return p.castTicks > 0 }

// Move advances the player one tick. direction is -1, 0 or 1. With
// scrollWorld set the player stays in place horizontally and the ground,
// spikes and flag move the other way instead. Move reports whether the
// horizontal step was applied in full.
//
// Movement keeps running after the flag is reached so the win pose plays
// out while the level finishes. The tick that hits a spike still completes
// its move; the player freezes from the next tick on.
func (p *Player) Move(direction int, ground []*engine.Entity, spikes []*Spike, flag *Flag, scrollWorld bool) bool {
	direction = sign(direction)
	if p.dead {
		p.deadFrames++
		return false
	}
	if p.won {
		p.wonFrames++
	}
	p.checkSpikes(spikes)
	p.checkFlag(flag, scrollWorld, direction)
	p.applyGravity(ground)
	casting := p.castTicks > 0
	moved := p.moveHorizontal(direction, ground, spikes, scrollWorld)
	p.lastDirection = direction
	if casting {
		p.lastDirection = 0
	}
	return moved
}

func (p *Player) checkSpikes(spikes []*Spike) {
	for _, s := range spikes {
		if s == nil || !p.CollidesWith(s.Entity) {
			continue
		}
		p.dead = true
		p.sprite.PlayFromStart(animDying)
		s.SetBloodied(true)
		if p.deathSound != nil {
			p.deathSound.Restart()
			p.deathSound.Play()
		}
		return
	}
}

func (p *Player) checkFlag(flag *Flag, scrollWorld bool, direction int) {
	if flag == nil {
		return
	}
	if scrollWorld {
		flag.SetPosition(flag.X()-float64(direction)*p.cfg.MoveSpeed, flag.Y())
	}
	if flag.CollidesWith(p.Entity) {
		p.won = true
		flag.Fall()
	}
}

func (p *Player) applyGravity(ground []*engine.Entity) {
	if !p.MoveToUntilCollision(ground, 0, p.cfg.Gravity-p.jumpPower) {
		p.doneJumping = true
	}
	if p.jumpPower > 0.1 {
		p.jumpPower--
	}
}

func (p *Player) moveHorizontal(direction int, ground []*engine.Entity, spikes []*Spike, scrollWorld bool) bool {
	if p.castTicks > 0 {
		p.castTicks--
		return p.shift(direction, ground, spikes, scrollWorld)
	}
	if p.dead {
		// Keep the dying animation on the tick the spike was hit.
		if direction != 0 {
			p.facing = direction
		}
		return p.shift(direction, ground, spikes, scrollWorld)
	}
	if direction == 0 {
		if p.facing < 0 {
			p.sprite.Play(animFacingLeft)
		} else {
			p.sprite.Play(animFacingRight)
		}
		return true
	}

	if direction != p.lastDirection {
		if direction > 0 {
			p.sprite.Play(animWalkingRight)
		} else {
			p.sprite.Play(animWalkingLeft)
		}
	}
	p.facing = direction
	return p.shift(direction, ground, spikes, scrollWorld)
}

func (p *Player) shift(direction int, ground []*engine.Entity, spikes []*Spike, scrollWorld bool) bool {
	if direction == 0 {
		return true
	}
	offset := float64(direction) * p.cfg.MoveSpeed
	if !scrollWorld {
		return p.MoveToUntilCollision(ground, offset, 0)
	}
	for _, e := range ground {
		e.SetPosition(e.X()-offset, e.Y())
	}
	for _, s := range spikes {
		s.SetPosition(s.X()-offset, s.Y())
	}
	return true
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
