package game

// Field is the rectangle the simulation is bounded by, in surface units.
type Field struct {
	Width, Height float64
}

// Direction is a vertical paddle movement.
type Direction int

const (
	Up Direction = iota
	Down
)

// EventKind classifies something that happened during an update.
type EventKind int

const (
	// EventWallBounce fires when a ball reflects off the top or bottom edge.
	EventWallBounce EventKind = iota
	// EventPaddleHit fires when a ball reflects off a paddle.
	EventPaddleHit
	// EventServe fires when a ball leaves the field and is re-served from the centre.
	EventServe
)

// Event is reported to the Listener during Update. Ball is the index of
// the ball in the game's list.
type Event struct {
	Kind EventKind
	Ball int
}

// Listener observes game events. It must not mutate the game.
type Listener interface {
	OnEvent(Event)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(Event)

// OnEvent calls f(e).
func (f ListenerFunc) OnEvent(e Event) {
	f(e)
}
