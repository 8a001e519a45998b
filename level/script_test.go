package level

import (
	"image/color"
	"testing"
)

func TestScriptOutputs(t *testing.T) {
	src := `
if dead {
	level.set_background("#102030")
}
if tick > 2 {
	level.show_boxes(true)
}
`
	s, err := CompileScript("outputs.tengo", []byte(src))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	cases := []struct {
		name      string
		in        ScriptInput
		wantBg    color.Color
		wantBoxes *bool
	}{
		{name: "idle", in: ScriptInput{Tick: 1}},
		{name: "dead", in: ScriptInput{Tick: 1, Dead: true}, wantBg: color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}},
		{name: "late", in: ScriptInput{Tick: 3}, wantBoxes: new(bool)},
	}
	*cases[2].wantBoxes = true

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := s.Run(tc.in)
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			if out.Background != tc.wantBg {
				t.Fatalf("expected background %v, got %v", tc.wantBg, out.Background)
			}
			if (out.ShowBoxes == nil) != (tc.wantBoxes == nil) {
				t.Fatalf("expected show_boxes %v, got %v", tc.wantBoxes, out.ShowBoxes)
			}
			if tc.wantBoxes != nil && *out.ShowBoxes != *tc.wantBoxes {
				t.Fatalf("expected show_boxes %v, got %v", *tc.wantBoxes, *out.ShowBoxes)
			}
		})
	}
}

func TestScriptStatePersists(t *testing.T) {
	src := `
if is_undefined(state.count) {
	state.count = 0
}
state.count += 1
if state.count == 3 {
	level.set_background("black")
}
`
	s, err := CompileScript("state.tengo", []byte(src))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	for i := 1; i <= 3; i++ {
		out, err := s.Run(ScriptInput{Tick: i})
		if err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		if (out.Background != nil) != (i == 3) {
			t.Fatalf("run %d: unexpected background %v", i, out.Background)
		}
	}
}

func TestScriptErrors(t *testing.T) {
	if _, err := CompileScript("bad.tengo", []byte("if {")); err == nil {
		t.Fatalf("expected compile error")
	}

	cases := []struct {
		name string
		src  string
	}{
		{name: "runtime", src: `x := tick + "a"`},
		{name: "bad_color", src: `level.set_background("#nope")`},
		{name: "arity", src: `level.show_boxes()`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := CompileScript(tc.name, []byte(tc.src))
			if err != nil {
				t.Fatalf("compile: %v", err)
			}
			if _, err := s.Run(ScriptInput{Tick: 1}); err == nil {
				t.Fatalf("expected run error")
			}
		})
	}
}
