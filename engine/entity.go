package engine

import (
	"errors"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrNoDrawable is returned when an entity without a drawable is drawn.
var ErrNoDrawable = errors.New("engine: entity has no drawable")

// Entity is a positioned object in a scene. Its position is kept with sub-pixel
// precision while the bounding box follows the truncated integer position.
type Entity struct {
	x, y          float64
	width, height int
	drawable      Drawable
	box           BoundingBox
	collidable    bool
}

// NewEntity creates a collidable entity. Use a zero width or height for
// entities that should never collide, such as labels.
func NewEntity(d Drawable, x, y float64, width, height int) *Entity {
	return &Entity{
		x:          x,
		y:          y,
		width:      width,
		height:     height,
		drawable:   d,
		box:        BoundingBox{X: int(x), Y: int(y), Width: width, Height: height},
		collidable: true,
	}
}

func (e *Entity) X() float64 { return e.x }
func (e *Entity) Y() float64 { return e.y }
func (e *Entity) Width() int { return e.width }
func (e *Entity) Height() int { return e.height }
func (e *Entity) Position() (float64, float64) { return e.x, e.y }
func (e *Entity) BoundingBox() BoundingBox { return e.box }
func (e *Entity) Drawable() Drawable { return e.drawable }
func (e *Entity) SetDrawable(d Drawable) { e.drawable = d }
func (e *Entity) Collidable() bool { return e.collidable }

// SetCollidable turns collision on or off. A collision only registers when
// both entities of a pair are collidable.
func (e *Entity) SetCollidable(collidable bool) {
	e.collidable = collidable
}

// SetPosition moves the entity without any collision check.
func (e *Entity) SetPosition(x, y float64) {
	e.x = x
	e.y = y
	e.box.X = int(x)
	e.box.Y = int(y)
}

// SetDimensions resizes the entity and its bounding box.
func (e *Entity) SetDimensions(width, height int) {
	e.width = width
	e.height = height
	e.box.Width = width
	e.box.Height = height
}

// CollidesWithBox tests the entity's box against b, ignoring collidability.
func (e *Entity) CollidesWithBox(b BoundingBox) bool {
	return e.box.CollidesWith(b)
}

// CollidesWith reports whether e and other overlap and are both collidable.
// An entity never collides with itself.
func (e *Entity) CollidesWith(other *Entity) bool {
	if other == nil || other == e {
		return false
	}
	return e.collidable && other.collidable && other.CollidesWithBox(e.box)
}

// CollidesWithAny reports whether e collides with any of entities.
func (e *Entity) CollidesWithAny(entities []*Entity) bool {
	for _, other := range entities {
		if e.CollidesWith(other) {
			return true
		}
	}
	return false
}

// SetPositionUnlessCollides moves the entity to (x, y) unless the new position
// collides with one of entities, in which case the entity is left untouched.
func (e *Entity) SetPositionUnlessCollides(entities []*Entity, x, y float64) bool {
	startX, startY := e.x, e.y
	e.SetPosition(x, y)
	if e.CollidesWithAny(entities) {
		e.SetPosition(startX, startY)
		return false
	}
	return true
}

// MoveToUntilCollision walks the entity toward (x+dX, y+dY) one unit at a time
// and stops at the last position that did not collide. It returns true when the
// whole displacement was applied. The cost is proportional to the distance.
func (e *Entity) MoveToUntilCollision(entities []*Entity, dX, dY float64) bool {
	steps := int(math.Ceil(math.Max(math.Abs(dX), math.Abs(dY))))
	if steps == 0 {
		return true
	}
	startX, startY := e.x, e.y
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		if !e.SetPositionUnlessCollides(entities, startX+dX*t, startY+dY*t) {
			return false
		}
	}
	return true
}

// Draw blits the entity's current image at its truncated position.
func (e *Entity) Draw(screen *ebiten.Image) error {
	if e.drawable == nil {
		return ErrNoDrawable
	}
	img := e.drawable.Image()
	if img == nil {
		return nil
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(int(e.x)), float64(int(e.y)))
	op.Filter = ebiten.FilterNearest
	if t, ok := e.drawable.(Tinted); ok {
		op.ColorScale = t.ColorScale()
	}
	screen.DrawImage(img, op)
	return nil
}
