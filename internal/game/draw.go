package game

import (
	"chosenoffset.com/multiball/internal/render"
)

// Draw renders the game to the screen. Later draws layer over earlier
// ones, so paddles cover any ball they overlap.
func (g *Game) Draw(screen render.Surface) {
	screen.Clear()

	for _, ball := range g.Balls {
		ball.Draw(screen)
	}

	g.Paddle1.Draw(screen)
	g.Paddle2.Draw(screen)
}
