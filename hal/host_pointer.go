//go:build !tinygo

package hal

import "github.com/hajimehoshi/ebiten/v2"

// hostPointer reports the mouse as a single-point pointer. Cursor
// coordinates arrive already in logical space because the game layout pins
// the logical resolution.
type hostPointer struct{}

func (hostPointer) Read() PointerState {
	x, y := ebiten.CursorPosition()
	return PointerState{
		X:       int16(x),
		Y:       int16(y),
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
}
