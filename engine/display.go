package engine

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DefaultTPS matches a 40ms refresh timer.
const DefaultTPS = 25

var mouseButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// Display owns the window and drives a Listener at a fixed tick rate, drawing
// its Scene after every tick. It implements ebiten.Game.
type Display struct {
	title         string
	width, height int
	fullscreen    bool
	tps           int

	scene    *Scene
	listener Listener
	overlay  func(screen *ebiten.Image)

	loaded       bool
	drawErr      error
	lastX, lastY int
	keys         []ebiten.Key
}

// NewDisplay creates a display with a logical resolution of width x height.
func NewDisplay(title string, width, height int, fullscreen bool) *Display {
	return &Display{
		title:      title,
		width:      width,
		height:     height,
		fullscreen: fullscreen,
		tps:        DefaultTPS,
	}
}

func (d *Display) Scene() *Scene { return d.scene }
func (d *Display) SetScene(s *Scene) { d.scene = s }
func (d *Display) SetListener(l Listener) { d.listener = l }
func (d *Display) Size() (width, height int) { return d.width, d.height }

// SetOverlay registers a function that draws on top of the scene, such as a
// pause menu.
func (d *Display) SetOverlay(f func(screen *ebiten.Image)) {
	d.overlay = f
}

// SetTPS changes the number of ticks per second.
func (d *Display) SetTPS(tps int) {
	if tps <= 0 {
		return
	}
	d.tps = tps
	ebiten.SetTPS(tps)
}

// Run opens the window and blocks until the listener fails or the window is
// closed.
func (d *Display) Run() error {
	ebiten.SetWindowTitle(d.title)
	ebiten.SetWindowSize(d.width*2, d.height*2)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(d.fullscreen)
	ebiten.SetTPS(d.tps)
	return ebiten.RunGame(d)
}

func (d *Display) Update() error {
	if d.drawErr != nil {
		return d.drawErr
	}
	if d.listener == nil {
		return nil
	}
	if !d.loaded {
		d.loaded = true
		if err := d.listener.OnLoad(); err != nil {
			return err
		}
	}
	d.dispatchKeys()
	d.dispatchMouse()
	return d.listener.OnUpdate()
}

func (d *Display) dispatchKeys() {
	d.keys = inpututil.AppendJustPressedKeys(d.keys[:0])
	for _, k := range d.keys {
		d.listener.OnKey(KeyEvent{Key: k, Down: true})
	}
	d.keys = inpututil.AppendJustReleasedKeys(d.keys[:0])
	for _, k := range d.keys {
		d.listener.OnKey(KeyEvent{Key: k, Down: false})
	}
}

func (d *Display) dispatchMouse() {
	x, y := ebiten.CursorPosition()
	if x != d.lastX || y != d.lastY {
		d.lastX, d.lastY = x, y
		d.listener.OnMouse(MouseEvent{Type: MouseMotion, X: x, Y: y})
	}
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			d.listener.OnMouse(MouseEvent{Type: MouseDown, Button: b, X: x, Y: y})
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			d.listener.OnMouse(MouseEvent{Type: MouseUp, Button: b, X: x, Y: y})
		}
	}
}

func (d *Display) Draw(screen *ebiten.Image) {
	if d.scene != nil && d.drawErr == nil {
		// Surfaced from the next Update, which stops the loop.
		d.drawErr = d.scene.Draw(screen)
	}
	if d.overlay != nil {
		d.overlay(screen)
	}
}

func (d *Display) Layout(outsideWidth, outsideHeight int) (int, int) {
	return d.width, d.height
}
