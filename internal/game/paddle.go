package game

import (
	"image/color"

	"chosenoffset.com/multiball/internal/render"
)

// Paddle is a vertical bar that moves in fixed steps.
type Paddle struct {
	X, Y             float64 // Top-left corner
	Width, Height    float64
	TopColor         color.Color
	BottomColor      color.Color
	PlayerControlled bool
	Speed            float64
}

// NewPaddle creates a paddle with its top-left corner at (x, y).
func NewPaddle(x, y, width, height float64, top, bottom color.Color, playerControlled bool, speed float64) *Paddle {
	return &Paddle{
		X:                x,
		Y:                y,
		Width:            width,
		Height:           height,
		TopColor:         top,
		BottomColor:      bottom,
		PlayerControlled: playerControlled,
		Speed:            speed,
	}
}

// Draw paints the paddle with a vertical gradient from TopColor to BottomColor.
func (p *Paddle) Draw(surface render.Surface) {
	gradient := render.NewLinearGradient(p.X, p.Y, p.X, p.Y+p.Height)
	gradient.AddColorStop(0, p.TopColor)
	gradient.AddColorStop(1, p.BottomColor)
	surface.FillRect(float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), gradient)
}

// Move steps the paddle by Speed in the given direction. The step is taken
// whole or not at all: if it would leave [0, f.Height-Height] the paddle
// stays put, even when there is some headroom left.
func (p *Paddle) Move(dir Direction, f Field) {
	switch dir {
	case Up:
		if p.Y-p.Speed >= 0 {
			p.Y -= p.Speed
		}
	case Down:
		if p.Y+p.Height+p.Speed <= f.Height {
			p.Y += p.Speed
		}
	}
}

// AutoMove steps the paddle towards the ball's y coordinate.
// It is bounded the same way as Move.
func (p *Paddle) AutoMove(ball *Ball, f Field) {
	center := p.Center()
	if ball.Y < center {
		p.Move(Up, f)
	} else if ball.Y > center {
		p.Move(Down, f)
	}
}

// Center returns the y coordinate of the paddle's vertical centre.
func (p *Paddle) Center() float64 {
	return p.Y + p.Height/2
}

// Right returns the x coordinate of the paddle's right edge.
func (p *Paddle) Right() float64 {
	return p.X + p.Width
}

// SpansY reports whether y lies within the paddle's vertical extent.
func (p *Paddle) SpansY(y float64) bool {
	return y >= p.Y && y <= p.Y+p.Height
}
