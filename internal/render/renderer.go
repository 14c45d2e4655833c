package render

import (
	"image/color"
)

// Surface is the 2D drawing target the game renders onto each frame.
// It abstracts the underlying graphics backend so the simulation never
// depends on a particular rendering technology.
type Surface interface {
	// Size returns the drawable width and height in surface units.
	Size() (width, height int)

	// Clear wipes the whole surface.
	Clear()

	// FillCircle paints a filled disc centred at (x, y).
	FillCircle(x, y, radius float32, clr color.Color)

	// FillRect paints the rectangle with top-left (x, y) using the given paint.
	FillRect(x, y, width, height float32, paint Paint)
}

// Game represents the game interface that the engine will call.
type Game interface {
	// Update advances the simulation by one tick.
	Update() error

	// Draw renders the current state onto the surface.
	Draw(surface Surface)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine owns the frame loop and the host window or terminal.
// It calls Update then Draw once per frame until the host shuts down.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}

// Key identifies a keyboard key the game cares about.
type Key int

// Key constants for the tracked keys
const (
	KeyUnknown Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyEscape
)

// String returns the DOM-style key name.
func (k Key) String() string {
	switch k {
	case KeyArrowUp:
		return "ArrowUp"
	case KeyArrowDown:
		return "ArrowDown"
	case KeyEscape:
		return "Escape"
	default:
		return "Unknown"
	}
}

// KeyHandler receives a key identifier from the keyboard collaborator.
type KeyHandler func(key Key)

// Keyboard delivers key press and release events to subscribed handlers.
// Handlers run on the same goroutine as Game.Update.
type Keyboard interface {
	OnPress(handler KeyHandler)
	OnRelease(handler KeyHandler)
}
