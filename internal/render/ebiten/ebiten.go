package ebiten

import (
	"fmt"
	"image"
	"image/color"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/multiball/internal/render"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// EbitenSurface wraps an ebiten.Image to implement the render.Surface interface.
type EbitenSurface struct {
	img *ebiten.Image
}

// WrapEbitenImage wraps an existing ebiten.Image as a render.Surface.
func WrapEbitenImage(img *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{img: img}
}

// Size returns the width and height of the surface.
func (s *EbitenSurface) Size() (width, height int) {
	return s.img.Bounds().Dx(), s.img.Bounds().Dy()
}

// Clear clears the surface to transparent.
func (s *EbitenSurface) Clear() {
	s.img.Clear()
}

// FillCircle draws a filled, anti-aliased circle.
func (s *EbitenSurface) FillCircle(x, y, radius float32, clr color.Color) {
	vector.DrawFilledCircle(s.img, x, y, radius, clr, true)
}

// FillRect draws a rectangle. Solid paints go through the vector package;
// anything else is drawn as vertex-coloured strips so gradients stay smooth.
func (s *EbitenSurface) FillRect(x, y, width, height float32, paint render.Paint) {
	if solid, ok := paint.(render.Solid); ok {
		vector.DrawFilledRect(s.img, x, y, width, height, solid.Color, false)
		return
	}
	vertices, indices := paintVertices(x, y, width, height, paint)
	s.img.DrawTriangles(vertices, indices, whiteSubImage, &ebiten.DrawTrianglesOptions{})
}

// paintVertices splits the rectangle into horizontal strips at the paint's
// band breaks and colours each corner from the paint.
func paintVertices(x, y, width, height float32, paint render.Paint) ([]ebiten.Vertex, []uint16) {
	bands := render.Bands(paint, float64(y), float64(y+height))
	vertices := make([]ebiten.Vertex, 0, len(bands)*2)
	indices := make([]uint16, 0, (len(bands)-1)*6)

	left, right := float64(x), float64(x+width)
	for i, by := range bands {
		vertices = append(vertices,
			vertex(left, by, paint.At(left, by)),
			vertex(right, by, paint.At(right, by)),
		)
		if i == 0 {
			continue
		}
		base := uint16((i - 1) * 2)
		indices = append(indices, base, base+1, base+2, base+1, base+3, base+2)
	}
	return vertices, indices
}

func vertex(x, y float64, clr color.Color) ebiten.Vertex {
	r, g, b, a := clr.RGBA()
	return ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(r) / 0xffff,
		ColorG: float32(g) / 0xffff,
		ColorB: float32(b) / 0xffff,
		ColorA: float32(a) / 0xffff,
	}
}

// EbitenKeyboard implements render.Keyboard on top of ebiten's polled key state.
// Press and release edges are turned into handler calls by Dispatch, which the
// engine runs at the start of every tick.
type EbitenKeyboard struct {
	onPress   []render.KeyHandler
	onRelease []render.KeyHandler
	keys      []ebiten.Key
	quit      bool
}

// NewKeyboard creates a new Ebiten-based keyboard.
func NewKeyboard() *EbitenKeyboard {
	return &EbitenKeyboard{}
}

// OnPress subscribes a handler to key presses.
func (k *EbitenKeyboard) OnPress(handler render.KeyHandler) {
	k.onPress = append(k.onPress, handler)
}

// OnRelease subscribes a handler to key releases.
func (k *EbitenKeyboard) OnRelease(handler render.KeyHandler) {
	k.onRelease = append(k.onRelease, handler)
}

// Dispatch delivers this tick's press and release edges to the handlers.
func (k *EbitenKeyboard) Dispatch() {
	k.keys = inpututil.AppendJustPressedKeys(k.keys[:0])
	k.press()
	k.keys = inpututil.AppendJustReleasedKeys(k.keys[:0])
	k.fire(k.onRelease)
}

// QuitRequested reports whether Escape was pressed this tick.
func (k *EbitenKeyboard) QuitRequested() bool {
	return k.quit
}

func (k *EbitenKeyboard) press() {
	k.quit = slices.Contains(k.keys, ebiten.KeyEscape)
	k.fire(k.onPress)
}

func (k *EbitenKeyboard) fire(handlers []render.KeyHandler) {
	for _, ek := range k.keys {
		key := ebitenKeyToKey(ek)
		if key == render.KeyUnknown {
			continue
		}
		for _, h := range handlers {
			h(key)
		}
	}
}

// ebitenKeyToKey converts an ebiten.Key to a render.Key.
func ebitenKeyToKey(key ebiten.Key) render.Key {
	switch key {
	case ebiten.KeyArrowUp:
		return render.KeyArrowUp
	case ebiten.KeyArrowDown:
		return render.KeyArrowDown
	case ebiten.KeyEscape:
		return render.KeyEscape
	default:
		return render.KeyUnknown
	}
}

// EbitenEngine implements the Engine interface using Ebiten.
type EbitenEngine struct {
	keyboard *EbitenKeyboard
	debug    bool
}

// NewEngine creates a new Ebiten-based game engine. The keyboard is
// dispatched before every game update.
func NewEngine(keyboard *EbitenKeyboard, debug bool) *EbitenEngine {
	return &EbitenEngine{keyboard: keyboard, debug: debug}
}

// SetWindowSize sets the window size in pixels.
func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// RunGame runs the game loop with the provided game.
func (e *EbitenEngine) RunGame(game render.Game) error {
	return ebiten.RunGame(&gameAdapter{game: game, keyboard: e.keyboard, debug: e.debug})
}

// gameAdapter adapts a render.Game to ebiten.Game interface.
type gameAdapter struct {
	game     render.Game
	keyboard *EbitenKeyboard
	debug    bool
}

// Update implements ebiten.Game.
func (a *gameAdapter) Update() error {
	if a.keyboard != nil {
		a.keyboard.Dispatch()
	}
	return a.step()
}

// step runs one game tick, or ends the loop once Escape is pressed.
func (a *gameAdapter) step() error {
	if a.keyboard != nil && a.keyboard.QuitRequested() {
		return ebiten.Termination
	}
	return a.game.Update()
}

// Draw implements ebiten.Game.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(WrapEbitenImage(screen))
	if a.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f\nFPS: %0.2f", ebiten.ActualTPS(), ebiten.ActualFPS()))
	}
}

// Layout implements ebiten.Game.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
