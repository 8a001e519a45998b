package engine

import (
	"math/rand"
	"testing"
)

func TestBoundingBoxCollidesWith(t *testing.T) {
	cases := []struct {
		name string
		a, b BoundingBox
		want bool
	}{
		{"overlap", BoundingBox{0, 0, 10, 10}, BoundingBox{5, 5, 10, 10}, true},
		{"contained", BoundingBox{0, 0, 10, 10}, BoundingBox{2, 2, 2, 2}, true},
		{"touching_right_edge", BoundingBox{0, 0, 10, 10}, BoundingBox{10, 0, 10, 10}, false},
		{"touching_bottom_edge", BoundingBox{0, 0, 10, 10}, BoundingBox{0, 10, 10, 10}, false},
		{"apart", BoundingBox{0, 0, 10, 10}, BoundingBox{30, 30, 10, 10}, false},
		{"overlap_x_only", BoundingBox{0, 0, 10, 10}, BoundingBox{5, 20, 10, 10}, false},
		{"zero_width", BoundingBox{0, 0, 0, 10}, BoundingBox{-5, -5, 20, 20}, false},
		{"zero_height", BoundingBox{0, 0, 10, 0}, BoundingBox{-5, -5, 20, 20}, false},
		{"negative_origin", BoundingBox{-10, -10, 15, 15}, BoundingBox{0, 0, 10, 10}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.CollidesWith(c.b); got != c.want {
				t.Fatalf("a.CollidesWith(b) = %v, want %v", got, c.want)
			}
			if got := c.b.CollidesWith(c.a); got != c.want {
				t.Fatalf("b.CollidesWith(a) = %v, want %v", got, c.want)
			}
		})
	}
}

func TestBoundingBoxZeroSizeNeverCollidesWithItself(t *testing.T) {
	for _, b := range []BoundingBox{{3, 3, 0, 0}, {3, 3, 0, 5}, {3, 3, 5, 0}} {
		if b.CollidesWith(b) {
			t.Fatalf("%+v collides with itself", b)
		}
		if !b.Empty() {
			t.Fatalf("%+v should be empty", b)
		}
	}
}

func TestBoundingBoxSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	randBox := func() BoundingBox {
		return BoundingBox{
			X:      rng.Intn(40) - 20,
			Y:      rng.Intn(40) - 20,
			Width:  rng.Intn(12),
			Height: rng.Intn(12),
		}
	}
	for i := 0; i < 2000; i++ {
		a, b := randBox(), randBox()
		if a.CollidesWith(b) != b.CollidesWith(a) {
			t.Fatalf("asymmetric result for %+v and %+v", a, b)
		}
	}
}
