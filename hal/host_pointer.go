//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// degreesPerWheelStep matches one notch of a typical mouse wheel.
const degreesPerWheelStep = 15

type hostPointer struct {
	ch     chan PointerEvent
	width  int
	height int

	x, y   int
	inside bool
}

func newHostPointer(width, height int) *hostPointer {
	return &hostPointer{ch: make(chan PointerEvent, 256), width: width, height: height}
}

func (p *hostPointer) Events() <-chan PointerEvent { return p.ch }

var hostButtons = []struct {
	button ebiten.MouseButton
	id     PointerButton
}{
	{ebiten.MouseButtonLeft, ButtonLeft},
	{ebiten.MouseButtonRight, ButtonRight},
	{ebiten.MouseButtonMiddle, ButtonMiddle},
}

func (p *hostPointer) poll() {
	emit := func(ev PointerEvent) {
		select {
		case p.ch <- ev:
		default:
		}
	}

	x, y := ebiten.CursorPosition()
	inside := x >= 0 && y >= 0 && x < p.width && y < p.height
	switch {
	case inside && (!p.inside || x != p.x || y != p.y):
		emit(PointerEvent{Kind: PointerMove, X: x, Y: y})
	case !inside && p.inside:
		emit(PointerEvent{Kind: PointerLeave, X: x, Y: y})
	}
	p.x, p.y, p.inside = x, y, inside

	for _, b := range hostButtons {
		if inpututil.IsMouseButtonJustPressed(b.button) && inside {
			emit(PointerEvent{Kind: PointerPress, X: x, Y: y, Button: b.id})
		}
		if inpututil.IsMouseButtonJustReleased(b.button) {
			emit(PointerEvent{Kind: PointerRelease, X: x, Y: y, Button: b.id})
		}
	}

	if _, dy := ebiten.Wheel(); dy != 0 && inside {
		emit(PointerEvent{Kind: PointerWheel, X: x, Y: y, WheelDegrees: dy * degreesPerWheelStep})
	}
}
