package gfx

import "testing"

func playTiles(s *AnimatedSprite, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = s.NextTile()
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestAnimatedSpriteFrames(t *testing.T) {
	cases := []struct {
		name        string
		frames      []int
		frameLength int
		ticks       int
		want        []int
	}{
		{"loop", []int{0, 1, 2}, 1, 7, []int{0, 1, 2, 0, 1, 2, 0}},
		{"frame_length", []int{4, 5}, 2, 6, []int{4, 4, 5, 5, 4, 4}},
		{"hold_last", []int{1, 2, 3, -1}, 1, 7, []int{1, 2, 3, 3, 3, 3, 3}},
		{"hold_last_slow", []int{5, 6, 7, -1}, 3, 12, []int{5, 5, 5, 6, 6, 6, 7, 7, 7, 7, 7, 7}},
		{"single", []int{9}, 1, 3, []int{9, 9, 9}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewAnimatedSprite(nil)
			if err := s.AddAnimation("a", c.frames...); err != nil {
				t.Fatalf("AddAnimation: %v", err)
			}
			s.SetFrameLength(c.frameLength)
			s.Play("a")
			if got := playTiles(s, c.ticks); !equalInts(got, c.want) {
				t.Fatalf("tiles = %v, want %v", got, c.want)
			}
		})
	}
}

func TestAnimatedSpritePlayKeepsCounter(t *testing.T) {
	s := NewAnimatedSprite(nil)
	_ = s.AddAnimation("left", 0, 1, 2)
	_ = s.AddAnimation("right", 10, 11, 12)
	s.Play("left")
	playTiles(s, 2)

	s.Play("right")
	if got := s.NextTile(); got != 12 {
		t.Fatalf("Play should keep the counter, got tile %d", got)
	}

	s.PlayFromStart("left")
	if got := s.NextTile(); got != 0 {
		t.Fatalf("PlayFromStart should restart, got tile %d", got)
	}
	if s.Current() != "left" {
		t.Fatalf("Current = %q", s.Current())
	}
}

func TestAnimatedSpriteRejectsBadAnimations(t *testing.T) {
	cases := []struct {
		name   string
		frames []int
	}{
		{"empty", nil},
		{"leading_jump", []int{-1}},
		{"jump_before_start", []int{0, -3}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewAnimatedSprite(nil)
			if err := s.AddAnimation("bad", c.frames...); err == nil {
				t.Fatalf("expected error for %v", c.frames)
			}
		})
	}
}

func TestAnimatedSpriteUnknownAnimationPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for unknown animation")
		}
	}()
	NewAnimatedSprite(nil).Play("missing")
}

func TestAnimatedSpriteNoAnimationPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic when drawing without an animation")
		}
	}()
	NewAnimatedSprite(nil).NextTile()
}
