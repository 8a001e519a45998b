package level

import (
	"fmt"
	"image/color"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// ScriptInput is what a level script sees each tick.
type ScriptInput struct {
	Tick    int
	PlayerX float64
	PlayerY float64
	Dead    bool
	Won     bool
}

// ScriptOutput holds the changes a script asked for during one run. Nil
// fields were left alone.
type ScriptOutput struct {
	Background color.Color
	ShowBoxes  *bool
}

// Script is a compiled tengo level script. Scripts read the globals tick,
// player_x, player_y, dead and won, keep their own data in the map state,
// and talk back through level.set_background(color) and
// level.show_boxes(bool).
type Script struct {
	name     string
	compiled *tengo.Compiled
	state    *tengo.Map
	out      ScriptOutput
	err      error
}

func CompileScript(name string, src []byte) (*Script, error) {
	s := &Script{
		name:  name,
		state: &tengo.Map{Value: map[string]tengo.Object{}},
	}

	script := tengo.NewScript(src)
	_ = script.Add("tick", 0)
	_ = script.Add("player_x", 0.0)
	_ = script.Add("player_y", 0.0)
	_ = script.Add("dead", false)
	_ = script.Add("won", false)
	_ = script.Add("state", s.state)
	_ = script.Add("level", s.api())
	script.SetImports(stdlib.GetModuleMap("math", "text", "times", "rand"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("level: compile script %s: %w", name, err)
	}
	s.compiled = compiled
	return s, nil
}

func (s *Script) Name() string { return s.name }

// Run executes the script once with in.
func (s *Script) Run(in ScriptInput) (ScriptOutput, error) {
	s.out = ScriptOutput{}
	s.err = nil

	vars := map[string]any{
		"tick":     in.Tick,
		"player_x": in.PlayerX,
		"player_y": in.PlayerY,
		"dead":     in.Dead,
		"won":      in.Won,
	}
	for k, v := range vars {
		if err := s.compiled.Set(k, v); err != nil {
			return ScriptOutput{}, fmt.Errorf("level: script %s: set %s: %w", s.name, k, err)
		}
	}
	if err := s.compiled.Set("state", s.state); err != nil {
		return ScriptOutput{}, fmt.Errorf("level: script %s: set state: %w", s.name, err)
	}
	if err := s.compiled.Run(); err != nil {
		return ScriptOutput{}, fmt.Errorf("level: run script %s: %w", s.name, err)
	}
	if s.err != nil {
		return ScriptOutput{}, fmt.Errorf("level: script %s: %w", s.name, s.err)
	}
	return s.out, nil
}

func (s *Script) api() *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["set_background"] = &tengo.UserFunction{Name: "set_background", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		name, ok := tengo.ToString(args[0])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "color", Expected: "string", Found: args[0].TypeName()}
		}
		c, err := parseColor(name, nil)
		if err != nil {
			s.err = err
			return tengo.FalseValue, nil
		}
		s.out.Background = c
		return tengo.TrueValue, nil
	}}

	values["show_boxes"] = &tengo.UserFunction{Name: "show_boxes", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		show := !args[0].IsFalsy()
		s.out.ShowBoxes = &show
		return tengo.TrueValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}
