package game

import (
	"image/color"

	"chosenoffset.com/multiball/internal/render"
)

// Ball is a disc moving at a constant velocity.
type Ball struct {
	X, Y           float64
	Radius         float64
	Color          color.Color
	SpeedX, SpeedY float64
}

// NewBall creates a ball at (x, y).
func NewBall(x, y, radius float64, clr color.Color, speedX, speedY float64) *Ball {
	return &Ball{
		X:      x,
		Y:      y,
		Radius: radius,
		Color:  clr,
		SpeedX: speedX,
		SpeedY: speedY,
	}
}

// Draw paints the ball as a filled disc.
func (b *Ball) Draw(surface render.Surface) {
	surface.FillCircle(float32(b.X), float32(b.Y), float32(b.Radius), b.Color)
}

// Move advances the ball one step and reflects SpeedY when the ball ends up
// touching or past the top or bottom edge. The position is not corrected,
// so a fast ball may overshoot the edge for a frame. It reports whether
// SpeedY was reflected.
func (b *Ball) Move(f Field) bool {
	b.X += b.SpeedX
	b.Y += b.SpeedY

	if b.Y-b.Radius <= 0 || b.Y+b.Radius >= f.Height {
		b.SpeedY = -b.SpeedY
		return true
	}
	return false
}

// Reset re-serves the ball from the field centre in the opposite horizontal direction.
func (b *Ball) Reset(f Field) {
	b.X = f.Width / 2
	b.Y = f.Height / 2
	b.SpeedX = -b.SpeedX
}

// Left returns the x coordinate of the ball's left edge.
func (b *Ball) Left() float64 {
	return b.X - b.Radius
}

// Right returns the x coordinate of the ball's right edge.
func (b *Ball) Right() float64 {
	return b.X + b.Radius
}
