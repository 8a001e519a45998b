package engine

// BoundingBox is an integer axis-aligned rectangle with its origin at the
// top-left corner. A box with zero width or height never collides.
type BoundingBox struct {
	X, Y          int
	Width, Height int
}

// CollidesWith reports whether the two boxes overlap. Boxes that only share an
// edge do not collide.
func (b BoundingBox) CollidesWith(other BoundingBox) bool {
	return b.X < other.X+other.Width &&
		other.X < b.X+b.Width &&
		b.Y < other.Y+other.Height &&
		other.Y < b.Y+b.Height
}

// Empty reports whether the box has no area.
func (b BoundingBox) Empty() bool {
	return b.Width <= 0 || b.Height <= 0
}
