package game

import (
	"image/color"
	"testing"

	"chosenoffset.com/multiball/internal/config"
	"chosenoffset.com/multiball/internal/render"
)

type drawOp struct {
	kind  string
	x, y  float32
	paint render.Paint
	clr   color.Color
}

// recordingSurface records draw calls in order.
type recordingSurface struct {
	ops []drawOp
}

func (s *recordingSurface) Size() (int, int) { return 800, 600 }
func (s *recordingSurface) Clear()           { s.ops = append(s.ops, drawOp{kind: "clear"}) }

func (s *recordingSurface) FillCircle(x, y, radius float32, clr color.Color) {
	s.ops = append(s.ops, drawOp{kind: "circle", x: x, y: y, clr: clr})
}

func (s *recordingSurface) FillRect(x, y, width, height float32, paint render.Paint) {
	s.ops = append(s.ops, drawOp{kind: "rect", x: x, y: y, paint: paint})
}

func TestDrawOrder(t *testing.T) {
	g := New(config.DefaultConfig())
	s := &recordingSurface{}
	g.Draw(s)

	want := []string{"clear", "circle", "circle", "circle", "circle", "circle", "rect", "rect"}
	if len(s.ops) != len(want) {
		t.Fatalf("Expected %d draw calls, got %d", len(want), len(s.ops))
	}
	for i, kind := range want {
		if s.ops[i].kind != kind {
			t.Errorf("Call %d: expected %s, got %s", i, kind, s.ops[i].kind)
		}
	}

	for i, b := range g.Balls {
		op := s.ops[i+1]
		if op.clr != b.Color {
			t.Errorf("Ball %d drawn with %v, want %v", i, op.clr, b.Color)
		}
	}

	if s.ops[6].x != float32(g.Paddle1.X) || s.ops[7].x != float32(g.Paddle2.X) {
		t.Errorf("Expected paddle1 then paddle2, got x=%v then x=%v", s.ops[6].x, s.ops[7].x)
	}
}

func TestPaddleDrawGradient(t *testing.T) {
	top := color.NRGBA{R: 0x10, G: 0xc2, B: 0x0a, A: 0xff}
	bottom := color.NRGBA{R: 0xe0, G: 0x02, B: 0x02, A: 0xff}
	p := NewPaddle(10, 100, 10, 250, top, bottom, true, 5)

	s := &recordingSurface{}
	p.Draw(s)

	if len(s.ops) != 1 {
		t.Fatalf("Expected one rect, got %d calls", len(s.ops))
	}
	g, ok := s.ops[0].paint.(*render.LinearGradient)
	if !ok {
		t.Fatalf("Expected a linear gradient, got %T", s.ops[0].paint)
	}
	if g.X0 != 10 || g.Y0 != 100 || g.X1 != 10 || g.Y1 != 350 {
		t.Errorf("Expected a vertical axis over the paddle, got (%v,%v)-(%v,%v)", g.X0, g.Y0, g.X1, g.Y1)
	}
	if len(g.Stops) != 2 || g.Stops[0].Color != top || g.Stops[1].Color != bottom {
		t.Errorf("Expected stops top->bottom, got %+v", g.Stops)
	}
}
