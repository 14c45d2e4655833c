package game

import (
	"log"

	"chosenoffset.com/multiball/internal/config"
	"chosenoffset.com/multiball/internal/render"
)

// Game holds all game state and logic.
type Game struct {
	Field   Field
	Balls   []*Ball
	Paddle1 *Paddle // Player, left side
	Paddle2 *Paddle // AI, right side

	// Keys is the live held state of the tracked keys.
	Keys map[render.Key]bool

	// Listener receives events raised during Update. May be nil.
	Listener Listener
}

// New builds a game from a validated config. Every ball starts at the
// field centre; both paddles start at the same height.
func New(cfg *config.Config) *Game {
	f := Field{Width: float64(cfg.Window.Width), Height: float64(cfg.Window.Height)}

	balls := make([]*Ball, 0, len(cfg.Balls))
	for _, bc := range cfg.Balls {
		balls = append(balls, NewBall(f.Width/2, f.Height/2, bc.Radius, config.MustParseColor(bc.Color), bc.SpeedX, bc.SpeedY))
	}

	pc := cfg.Paddles
	top := config.MustParseColor(pc.TopColor)
	bottom := config.MustParseColor(pc.BottomColor)
	startY := f.Height/2 - pc.StartOffset

	return &Game{
		Field:   f,
		Balls:   balls,
		Paddle1: NewPaddle(pc.Margin, startY, pc.Width, pc.Height, top, bottom, true, pc.Speed),
		Paddle2: NewPaddle(f.Width-pc.Margin-pc.Width, startY, pc.Width, pc.Height, top, bottom, false, pc.Speed),
		Keys:    make(map[render.Key]bool),
	}
}

// Update advances the simulation by one frame.
//
// Balls are processed in list order. Each ball moves, reflects off at most
// one paddle, and is re-served if it has reached the left or right edge;
// a reflection and a re-serve can both happen in the same frame. The player
// paddle then follows the held arrow keys (up first, then down) and the AI
// paddle tracks the first ball.
func (g *Game) Update() error {
	for i, ball := range g.Balls {
		if ball.Move(g.Field) {
			g.emit(EventWallBounce, i)
		}

		p1, p2 := g.Paddle1, g.Paddle2
		if ball.Left() <= p1.Right() && p1.SpansY(ball.Y) {
			ball.SpeedX = -ball.SpeedX
			g.emit(EventPaddleHit, i)
		} else if ball.Right() >= p2.X && p2.SpansY(ball.Y) {
			ball.SpeedX = -ball.SpeedX
			g.emit(EventPaddleHit, i)
		}

		if ball.Left() <= 0 || ball.Right() >= g.Field.Width {
			ball.Reset(g.Field)
			g.emit(EventServe, i)
		}
	}

	if g.Keys[render.KeyArrowUp] {
		g.Paddle1.Move(Up, g.Field)
	}
	if g.Keys[render.KeyArrowDown] {
		g.Paddle1.Move(Down, g.Field)
	}

	if len(g.Balls) > 0 {
		g.Paddle2.AutoMove(g.Balls[0], g.Field)
	}
	return nil
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.Field.Width), int(g.Field.Height)
}

// Run subscribes to the keyboard and hands the game to the engine's frame
// loop. It blocks until the engine stops.
func (g *Game) Run(engine render.Engine, keyboard render.Keyboard) error {
	g.BindInput(keyboard)
	log.Printf("Starting game: %d balls on a %vx%v field", len(g.Balls), g.Field.Width, g.Field.Height)
	return engine.RunGame(g)
}

func (g *Game) emit(kind EventKind, ball int) {
	if g.Listener != nil {
		g.Listener.OnEvent(Event{Kind: kind, Ball: ball})
	}
}
