package actor

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// PlayerConfig tunes the mage. Zero fields fall back to the defaults.
type PlayerConfig struct {
	MoveSpeed  float64 `yaml:"move_speed"`
	Gravity    float64 `yaml:"gravity"`
	JumpPower  float64 `yaml:"jump_power"`
	DeadFrames int     `yaml:"dead_frames"`
	WonFrames  int     `yaml:"won_frames"`
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	JumpSound  string  `yaml:"jump_sound"`
	DeathSound string  `yaml:"death_sound"`
}

func DefaultPlayerConfig() PlayerConfig {
	return PlayerConfig{
		MoveSpeed:  8,
		Gravity:    10,
		JumpPower:  21,
		DeadFrames: 20,
		WonFrames:  40,
		Width:      64,
		Height:     64,
	}
}

// withDefaults fills unset fields from DefaultPlayerConfig.
func (c PlayerConfig) withDefaults() PlayerConfig {
	d := DefaultPlayerConfig()
	if c.MoveSpeed <= 0 {
		c.MoveSpeed = d.MoveSpeed
	}
	if c.Gravity <= 0 {
		c.Gravity = d.Gravity
	}
	if c.JumpPower <= 0 {
		c.JumpPower = d.JumpPower
	}
	if c.DeadFrames <= 0 {
		c.DeadFrames = d.DeadFrames
	}
	if c.WonFrames <= 0 {
		c.WonFrames = d.WonFrames
	}
	if c.Width <= 0 {
		c.Width = d.Width
	}
	if c.Height <= 0 {
		c.Height = d.Height
	}
	return c
}

// LoadPlayerConfig reads a YAML player config from fsys.
func LoadPlayerConfig(fsys fs.FS, name string) (PlayerConfig, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return PlayerConfig{}, fmt.Errorf("actor: load %s: %w", name, err)
	}
	return ParsePlayerConfig(data)
}

func ParsePlayerConfig(data []byte) (PlayerConfig, error) {
	var cfg PlayerConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PlayerConfig{}, fmt.Errorf("actor: unmarshal player config: %w", err)
	}
	return cfg.withDefaults(), nil
}
