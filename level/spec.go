package level

import (
	"fmt"
	"image/color"
	"io/fs"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// DefaultFallLine is the height below which the player counts as fallen out
// of the view.
const DefaultFallLine = 9 * 32

// Spec describes a platform level.
type Spec struct {
	Name       string  `yaml:"name"`
	Background string  `yaml:"background,omitempty"`
	Scroll     bool    `yaml:"scroll"`
	FallLine   float64 `yaml:"fall_line,omitempty"`
	Player     Point   `yaml:"player"`
	Flag       *Point  `yaml:"flag,omitempty"`
	Spikes     []Point `yaml:"spikes,omitempty"`
	Blocks     []Point `yaml:"blocks,omitempty"`
	Ground     *Row    `yaml:"ground,omitempty"`
	Labels     []Label `yaml:"labels,omitempty"`
	Script     string  `yaml:"script,omitempty"`
}

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Row is an endless strip of grass at height Y, refilled up to Right.
type Row struct {
	Y     float64 `yaml:"y"`
	Right float64 `yaml:"right"`
}

// Label is a line of text placed in the level. Scrolling labels move with
// the ground.
type Label struct {
	Text    string  `yaml:"text"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Size    float64 `yaml:"size,omitempty"`
	Bold    bool    `yaml:"bold,omitempty"`
	Color   string  `yaml:"color,omitempty"`
	Shadow  bool    `yaml:"shadow,omitempty"`
	Scrolls bool    `yaml:"scrolls,omitempty"`
}

// LoadSpec reads and decodes the level spec name from fsys.
func LoadSpec(fsys fs.FS, name string) (*Spec, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("level: read %s: %w", name, err)
	}
	spec, err := ParseSpec(data)
	if err != nil {
		return nil, fmt.Errorf("level: %s: %w", name, err)
	}
	return spec, nil
}

func ParseSpec(data []byte) (*Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("unmarshal spec: %w", err)
	}
	if spec.FallLine == 0 {
		spec.FallLine = DefaultFallLine
	}
	if _, err := spec.BackgroundColor(); err != nil {
		return nil, err
	}
	for _, l := range spec.Labels {
		if _, err := parseColor(l.Color, color.White); err != nil {
			return nil, fmt.Errorf("label %q: %w", l.Text, err)
		}
	}
	return &spec, nil
}

// BackgroundColor returns the spec's background, light gray when unset.
func (s *Spec) BackgroundColor() (color.Color, error) {
	return parseColor(s.Background, colornames.Lightgray)
}

// parseColor accepts "#rrggbb", "#rrggbbaa" or a CSS color name.
func parseColor(s string, fallback color.Color) (color.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback, nil
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return nil, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
