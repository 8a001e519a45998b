package engine

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestEntitySetPositionSyncsBoundingBox(t *testing.T) {
	cases := []struct {
		name  string
		x, y  float64
		wantX int
		wantY int
	}{
		{"integral", 10, 20, 10, 20},
		{"fractional", 10.75, 20.25, 10, 20},
		{"negative_truncates_toward_zero", -3.5, -0.5, -3, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := NewEntity(nil, 0, 0, 8, 8)
			e.SetPosition(c.x, c.y)
			b := e.BoundingBox()
			if b.X != c.wantX || b.Y != c.wantY {
				t.Fatalf("box origin = (%d,%d), want (%d,%d)", b.X, b.Y, c.wantX, c.wantY)
			}
			if x, y := e.Position(); x != c.x || y != c.y {
				t.Fatalf("position = (%v,%v), want (%v,%v)", x, y, c.x, c.y)
			}
		})
	}
}

func TestEntityCollidesWith(t *testing.T) {
	a := NewEntity(nil, 0, 0, 10, 10)
	b := NewEntity(nil, 5, 5, 10, 10)

	if a.CollidesWith(a) {
		t.Fatalf("entity must not collide with itself")
	}
	if !a.CollidesWith(b) || !b.CollidesWith(a) {
		t.Fatalf("overlapping entities should collide")
	}
	if a.CollidesWith(nil) {
		t.Fatalf("nil entity should not collide")
	}

	b.SetCollidable(false)
	if a.CollidesWith(b) || b.CollidesWith(a) {
		t.Fatalf("non-collidable entity should not collide")
	}
	if !a.CollidesWithBox(b.BoundingBox()) {
		t.Fatalf("CollidesWithBox should ignore collidability")
	}
}

func TestEntityCollidesWithAny(t *testing.T) {
	e := NewEntity(nil, 0, 0, 10, 10)
	far := NewEntity(nil, 100, 100, 10, 10)
	near := NewEntity(nil, 9, 9, 10, 10)

	if e.CollidesWithAny(nil) {
		t.Fatalf("empty list should not collide")
	}
	if e.CollidesWithAny([]*Entity{e, far}) {
		t.Fatalf("self and far entity should not collide")
	}
	if !e.CollidesWithAny([]*Entity{far, near}) {
		t.Fatalf("expected collision with near entity")
	}
}

func TestSetPositionUnlessCollides(t *testing.T) {
	wall := NewEntity(nil, 20, 0, 10, 10)
	e := NewEntity(nil, 0.25, 0.5, 10, 10)

	if e.SetPositionUnlessCollides([]*Entity{wall}, 15, 0) {
		t.Fatalf("move into wall should be rejected")
	}
	if x, y := e.Position(); x != 0.25 || y != 0.5 {
		t.Fatalf("rejected move changed position to (%v,%v)", x, y)
	}
	if b := e.BoundingBox(); b.X != 0 || b.Y != 0 {
		t.Fatalf("rejected move changed box to %+v", b)
	}

	if !e.SetPositionUnlessCollides([]*Entity{wall}, 10, 0.5) {
		t.Fatalf("move next to wall should commit")
	}
	if x, y := e.Position(); x != 10 || y != 0.5 {
		t.Fatalf("position = (%v,%v), want (10,0.5)", x, y)
	}
}

func TestMoveToUntilCollisionZeroDisplacement(t *testing.T) {
	e := NewEntity(nil, 3.5, 4.5, 10, 10)
	if !e.MoveToUntilCollision(nil, 0, 0) {
		t.Fatalf("zero move should succeed")
	}
	if x, y := e.Position(); x != 3.5 || y != 4.5 {
		t.Fatalf("zero move changed position to (%v,%v)", x, y)
	}
}

func TestMoveToUntilCollision(t *testing.T) {
	cases := []struct {
		name     string
		dX, dY   float64
		obstacle *Entity
		want     bool
		wantX    float64
		wantY    float64
	}{
		{"free_move", 12, -7, nil, true, 12, -7},
		{"fractional_move", 2.5, 0, nil, true, 2.5, 0},
		{"blocked_right", 20, 0, NewEntity(nil, 15, 0, 10, 10), false, 5, 0},
		{"blocked_down", 0, 10, NewEntity(nil, 0, 16, 10, 10), false, 0, 6},
		{"thin_wall_no_tunneling", 40, 0, NewEntity(nil, 20, 0, 1, 10), false, 10, 0},
		{"non_collidable_ignored", 20, 0, func() *Entity {
			o := NewEntity(nil, 15, 0, 10, 10)
			o.SetCollidable(false)
			return o
		}(), true, 20, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := NewEntity(nil, 0, 0, 10, 10)
			var obstacles []*Entity
			if c.obstacle != nil {
				obstacles = append(obstacles, c.obstacle)
			}
			if got := e.MoveToUntilCollision(obstacles, c.dX, c.dY); got != c.want {
				t.Fatalf("MoveToUntilCollision = %v, want %v", got, c.want)
			}
			if x, y := e.Position(); x != c.wantX || y != c.wantY {
				t.Fatalf("position = (%v,%v), want (%v,%v)", x, y, c.wantX, c.wantY)
			}
		})
	}
}

func TestMoveToUntilCollisionNeverEndsInsideObstacle(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		e := NewEntity(nil, 0, 0, 1+rng.Intn(16), 1+rng.Intn(16))
		var obstacles []*Entity
		for n := rng.Intn(6); n > 0; n-- {
			o := NewEntity(nil, float64(rng.Intn(120)-60), float64(rng.Intn(120)-60), 1+rng.Intn(20), 1+rng.Intn(20))
			if o.CollidesWith(e) {
				continue
			}
			obstacles = append(obstacles, o)
		}
		dX := float64(rng.Intn(160)-80) + rng.Float64()
		dY := float64(rng.Intn(160)-80) + rng.Float64()

		ok := e.MoveToUntilCollision(obstacles, dX, dY)
		if e.CollidesWithAny(obstacles) {
			t.Fatalf("case %d: entity ended inside an obstacle (ok=%v, d=(%v,%v))", i, ok, dX, dY)
		}
		if ok {
			if x, y := e.Position(); x != dX || y != dY {
				t.Fatalf("case %d: full move ended at (%v,%v), want (%v,%v)", i, x, y, dX, dY)
			}
		}
	}
}

func TestEntityDrawWithoutDrawable(t *testing.T) {
	e := NewEntity(nil, 0, 0, 4, 4)
	screen := ebiten.NewImage(8, 8)
	if err := e.Draw(screen); !errors.Is(err, ErrNoDrawable) {
		t.Fatalf("Draw error = %v, want ErrNoDrawable", err)
	}
}
