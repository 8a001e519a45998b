package engine

import "github.com/hajimehoshi/ebiten/v2"

// KeyEvent is a key going down or up.
type KeyEvent struct {
	Key  ebiten.Key
	Down bool
}

// MouseEventType distinguishes button presses from pointer motion.
type MouseEventType int

const (
	MouseMotion MouseEventType = iota
	MouseDown
	MouseUp
)

func (t MouseEventType) String() string {
	switch t {
	case MouseDown:
		return "down"
	case MouseUp:
		return "up"
	default:
		return "motion"
	}
}

// MouseEvent carries the cursor position in logical screen pixels. Button is
// only meaningful for MouseDown and MouseUp.
type MouseEvent struct {
	Type   MouseEventType
	Button ebiten.MouseButton
	X, Y   int
}

// Listener receives the lifecycle and input callbacks of a Display. OnLoad is
// called once before the first tick. Input events of a tick are delivered
// before its OnUpdate.
type Listener interface {
	OnLoad() error
	OnUpdate() error
	OnKey(KeyEvent)
	OnMouse(MouseEvent)
}
