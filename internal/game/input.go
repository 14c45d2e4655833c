package game

import (
	"chosenoffset.com/multiball/internal/render"
)

// BindInput subscribes the game's key state to the keyboard.
func (g *Game) BindInput(keyboard render.Keyboard) {
	keyboard.OnPress(g.KeyDown)
	keyboard.OnRelease(g.KeyUp)
}

// KeyDown marks a key as held.
func (g *Game) KeyDown(key render.Key) {
	if key == render.KeyUnknown {
		return
	}
	g.Keys[key] = true
}

// KeyUp marks a key as released.
func (g *Game) KeyUp(key render.Key) {
	if key == render.KeyUnknown {
		return
	}
	g.Keys[key] = false
}
