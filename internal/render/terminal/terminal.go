// Package terminal runs the game in a terminal using tcell.
package terminal

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/multiball/internal/render"
)

// trackedKeys lists the keys in the order releases are delivered.
var trackedKeys = []render.Key{render.KeyArrowUp, render.KeyArrowDown}

// Keyboard implements render.Keyboard for terminals. Terminals report key
// presses and auto-repeats but never releases, so a key counts as released
// once no repeat has arrived for the hold duration.
type Keyboard struct {
	onPress   []render.KeyHandler
	onRelease []render.KeyHandler
	hold      time.Duration
	lastSeen  map[render.Key]time.Time
}

// NewKeyboard creates a terminal keyboard with the given release delay.
func NewKeyboard(hold time.Duration) *Keyboard {
	return &Keyboard{
		hold:     hold,
		lastSeen: make(map[render.Key]time.Time),
	}
}

// OnPress subscribes a handler to key presses.
func (k *Keyboard) OnPress(handler render.KeyHandler) {
	k.onPress = append(k.onPress, handler)
}

// OnRelease subscribes a handler to key releases.
func (k *Keyboard) OnRelease(handler render.KeyHandler) {
	k.onRelease = append(k.onRelease, handler)
}

// HandleKey records a key event seen at now. The first event of a hold
// fires the press handlers; repeats only extend the hold.
func (k *Keyboard) HandleKey(ev *tcell.EventKey, now time.Time) {
	k.Press(tcellKeyToKey(ev), now)
}

// Press records that key was seen at now.
func (k *Keyboard) Press(key render.Key, now time.Time) {
	if key == render.KeyUnknown {
		return
	}
	if _, held := k.lastSeen[key]; !held {
		for _, h := range k.onPress {
			h(key)
		}
	}
	k.lastSeen[key] = now
}

// Expire releases keys that have not repeated within the hold duration.
func (k *Keyboard) Expire(now time.Time) {
	for _, key := range trackedKeys {
		seen, held := k.lastSeen[key]
		if !held || now.Sub(seen) < k.hold {
			continue
		}
		delete(k.lastSeen, key)
		for _, h := range k.onRelease {
			h(key)
		}
	}
}

// tcellKeyToKey converts a tcell key event to a render.Key. Escape never
// reaches it; isQuit handles it first.
func tcellKeyToKey(ev *tcell.EventKey) render.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return render.KeyArrowUp
	case tcell.KeyDown:
		return render.KeyArrowDown
	default:
		return render.KeyUnknown
	}
}

// isQuit reports whether the event should end the game loop.
func isQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
		(ev.Key() == tcell.KeyRune && ev.Rune() == 'q')
}

// Engine implements render.Engine on an initialised tcell screen. The
// bottom row of the terminal is a status line; the rest is the surface.
type Engine struct {
	screen   tcell.Screen
	keyboard *Keyboard
	fps      int
	title    string
	debug    bool

	done     chan struct{}
	stopOnce sync.Once
}

// NewEngine creates a terminal engine. The caller owns the screen and
// must call Fini on it after RunGame returns.
func NewEngine(screen tcell.Screen, keyboard *Keyboard, fps int, debug bool) *Engine {
	return &Engine{
		screen:   screen,
		keyboard: keyboard,
		fps:      fps,
		debug:    debug,
		done:     make(chan struct{}),
	}
}

// Stop ends the frame loop after the current frame.
func (e *Engine) Stop() {
	e.stopOnce.Do(func() { close(e.done) })
}

// SetWindowSize is a no-op: the terminal's size is the window size.
func (e *Engine) SetWindowSize(width, height int) {}

// SetWindowTitle sets the text shown in the status line.
func (e *Engine) SetWindowTitle(title string) {
	e.title = title
}

// RunGame runs the frame loop until a quit key is pressed.
func (e *Engine) RunGame(game render.Game) error {
	if e.fps <= 0 {
		return fmt.Errorf("invalid frame rate %d", e.fps)
	}

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := e.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	cols, rows := e.screen.Size()
	w, h := game.Layout(cols, rows)
	surface := NewSurface(w, h, cols, rows-1)

	ticker := time.NewTicker(time.Second / time.Duration(e.fps))
	defer ticker.Stop()

	frames := 0
	measured := 0.0
	windowStart := time.Now()

	for {
		select {
		case <-e.done:
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					return nil
				}
				if e.keyboard != nil {
					e.keyboard.HandleKey(ev, time.Now())
				}
			case *tcell.EventResize:
				e.screen.Sync()
				cols, rows = e.screen.Size()
				surface.Resize(cols, rows-1)
			}

		case now := <-ticker.C:
			if e.keyboard != nil {
				e.keyboard.Expire(now)
			}
			if err := game.Update(); err != nil {
				return err
			}
			game.Draw(surface)
			surface.Flush(e.screen)

			frames++
			if elapsed := now.Sub(windowStart); elapsed >= time.Second {
				measured = float64(frames) / elapsed.Seconds()
				frames = 0
				windowStart = now
			}
			e.drawStatus(rows-1, cols, measured)
			e.screen.Show()
		}
	}
}

func (e *Engine) drawStatus(row, cols int, fps float64) {
	if row < 0 {
		return
	}
	text := e.title + "  arrows: move  q/esc: quit"
	if e.debug {
		text += fmt.Sprintf("  FPS: %0.2f", fps)
	}
	style := tcell.StyleDefault.Reverse(true)
	runes := []rune(text)
	for col := 0; col < cols; col++ {
		r := ' '
		if col < len(runes) {
			r = runes[col]
		}
		e.screen.SetContent(col, row, r, nil, style)
	}
}
