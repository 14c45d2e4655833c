package render

import (
	"image/color"
	"sort"
)

// Paint yields the fill colour at a surface position.
type Paint interface {
	At(x, y float64) color.Color
}

// Solid paints every position with one colour.
type Solid struct {
	Color color.Color
}

// At returns the solid colour.
func (s Solid) At(x, y float64) color.Color {
	return s.Color
}

// ColorStop is a colour at an offset in [0, 1] along a gradient axis.
type ColorStop struct {
	Offset float64
	Color  color.Color
}

// LinearGradient interpolates colour stops along the line (X0,Y0)-(X1,Y1).
// Positions are projected onto that line; before the first stop and after
// the last one the end colours extend.
type LinearGradient struct {
	X0, Y0 float64
	X1, Y1 float64
	Stops  []ColorStop
}

// NewLinearGradient creates a gradient with no stops.
func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return &LinearGradient{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// AddColorStop inserts a stop. Offsets are clamped to [0, 1]; a stop at an
// existing offset is placed after the stops already there.
func (g *LinearGradient) AddColorStop(offset float64, clr color.Color) {
	offset = clamp01(offset)
	i := sort.Search(len(g.Stops), func(i int) bool {
		return g.Stops[i].Offset > offset
	})
	g.Stops = append(g.Stops, ColorStop{})
	copy(g.Stops[i+1:], g.Stops[i:])
	g.Stops[i] = ColorStop{Offset: offset, Color: clr}
}

// At returns the interpolated colour at (x, y). A gradient without stops,
// or with a zero-length axis, paints nothing.
func (g *LinearGradient) At(x, y float64) color.Color {
	dx, dy := g.X1-g.X0, g.Y1-g.Y0
	lenSq := dx*dx + dy*dy
	if len(g.Stops) == 0 || lenSq == 0 {
		return color.Transparent
	}
	t := clamp01(((x-g.X0)*dx + (y-g.Y0)*dy) / lenSq)

	first, last := g.Stops[0], g.Stops[len(g.Stops)-1]
	if t <= first.Offset {
		return first.Color
	}
	if t >= last.Offset {
		return last.Color
	}
	for i := 1; i < len(g.Stops); i++ {
		next := g.Stops[i]
		if t > next.Offset {
			continue
		}
		prev := g.Stops[i-1]
		span := next.Offset - prev.Offset
		if span <= 0 {
			return next.Color
		}
		return Lerp(prev.Color, next.Color, (t-prev.Offset)/span)
	}
	return last.Color
}

// Bands returns the sorted y coordinates that split [top, bottom] into
// strips over which the paint varies linearly. Only vertical gradients
// produce interior breaks; any other paint yields just the two ends.
func Bands(p Paint, top, bottom float64) []float64 {
	bands := []float64{top}
	if g, ok := p.(*LinearGradient); ok && g.X0 == g.X1 && g.Y0 != g.Y1 {
		for _, s := range g.Stops {
			y := g.Y0 + s.Offset*(g.Y1-g.Y0)
			if y > top && y < bottom {
				bands = append(bands, y)
			}
		}
		sort.Float64s(bands)
	}
	return append(bands, bottom)
}

// Lerp blends two colours in non-premultiplied space.
func Lerp(a, b color.Color, t float64) color.NRGBA {
	ca := color.NRGBAModel.Convert(a).(color.NRGBA)
	cb := color.NRGBAModel.Convert(b).(color.NRGBA)
	t = clamp01(t)
	mix := func(u, v uint8) uint8 {
		return uint8(float64(u) + (float64(v)-float64(u))*t + 0.5)
	}
	return color.NRGBA{
		R: mix(ca.R, cb.R),
		G: mix(ca.G, cb.G),
		B: mix(ca.B, cb.B),
		A: mix(ca.A, cb.A),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
