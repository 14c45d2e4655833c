package terminal

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/multiball/internal/render"
)

// Surface rasterises draw calls onto a terminal. Each cell holds two
// vertically stacked pixels drawn with half-block runes, so a grid of
// cols x rows cells is cols x rows*2 pixels. Draw coordinates are in the
// logical field size and scaled onto the pixel grid.
type Surface struct {
	width, height int // Logical size
	cols, rows    int // Cell grid
	pixels        []color.NRGBA
}

// NewSurface creates a surface of the given logical size on a cols x rows cell grid.
func NewSurface(width, height, cols, rows int) *Surface {
	s := &Surface{width: width, height: height}
	s.Resize(cols, rows)
	return s
}

// Resize changes the cell grid and clears the surface.
func (s *Surface) Resize(cols, rows int) {
	s.cols, s.rows = max(cols, 0), max(rows, 0)
	s.pixels = make([]color.NRGBA, s.cols*s.rows*2)
}

// Size returns the logical width and height.
func (s *Surface) Size() (width, height int) {
	return s.width, s.height
}

// Clear empties every pixel.
func (s *Surface) Clear() {
	clear(s.pixels)
}

// FillCircle sets every pixel whose centre lies inside the disc, plus the
// pixel under the disc's centre so tiny discs stay visible.
func (s *Surface) FillCircle(x, y, radius float32, clr color.Color) {
	c := color.NRGBAModel.Convert(clr).(color.NRGBA)
	cx, cy, r := float64(x), float64(y), float64(radius)

	px0, py0 := s.toPixel(cx-r, cy-r)
	px1, py1 := s.toPixel(cx+r, cy+r)
	for py := py0; py <= py1; py++ {
		for px := px0; px <= px1; px++ {
			lx, ly := s.pixelCenter(px, py)
			if (lx-cx)*(lx-cx)+(ly-cy)*(ly-cy) <= r*r {
				s.set(px, py, c)
			}
		}
	}
	px, py := s.toPixel(cx, cy)
	s.set(px, py, c)
}

// FillRect sets every pixel overlapping the rectangle, coloured by the
// paint at the pixel's centre.
func (s *Surface) FillRect(x, y, width, height float32, paint render.Paint) {
	if width <= 0 || height <= 0 {
		return
	}
	left, top := float64(x), float64(y)
	right, bottom := left+float64(width), top+float64(height)

	px0, py0 := s.toPixel(left, top)
	px1, py1 := s.toPixel(math.Nextafter(right, left), math.Nextafter(bottom, top))
	for py := py0; py <= py1; py++ {
		for px := px0; px <= px1; px++ {
			lx, ly := s.pixelCenter(px, py)
			// Sample inside the rectangle when the pixel only partly overlaps it
			lx = math.Min(math.Max(lx, left), right)
			ly = math.Min(math.Max(ly, top), bottom)
			s.set(px, py, color.NRGBAModel.Convert(paint.At(lx, ly)).(color.NRGBA))
		}
	}
}

// Pixel returns the colour at pixel (px, py); ok is false for empty or out-of-range pixels.
func (s *Surface) Pixel(px, py int) (color.NRGBA, bool) {
	if px < 0 || py < 0 || px >= s.cols || py >= s.rows*2 {
		return color.NRGBA{}, false
	}
	c := s.pixels[py*s.cols+px]
	return c, c.A != 0
}

// Flush writes the pixels to the screen's cells. It does not call Show.
func (s *Surface) Flush(screen tcell.Screen) {
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			top, hasTop := s.Pixel(col, row*2)
			bottom, hasBottom := s.Pixel(col, row*2+1)

			switch {
			case hasTop && hasBottom:
				screen.SetContent(col, row, '▀', nil, tcell.StyleDefault.Foreground(toTcell(top)).Background(toTcell(bottom)))
			case hasTop:
				screen.SetContent(col, row, '▀', nil, tcell.StyleDefault.Foreground(toTcell(top)))
			case hasBottom:
				screen.SetContent(col, row, '▄', nil, tcell.StyleDefault.Foreground(toTcell(bottom)))
			default:
				screen.SetContent(col, row, ' ', nil, tcell.StyleDefault)
			}
		}
	}
}

func toTcell(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// toPixel maps a logical position to the pixel containing it.
func (s *Surface) toPixel(x, y float64) (int, int) {
	if s.width == 0 || s.height == 0 {
		return -1, -1
	}
	px := int(math.Floor(x * float64(s.cols) / float64(s.width)))
	py := int(math.Floor(y * float64(s.rows*2) / float64(s.height)))
	return px, py
}

// pixelCenter maps a pixel to the logical position of its centre.
func (s *Surface) pixelCenter(px, py int) (float64, float64) {
	lx := (float64(px) + 0.5) * float64(s.width) / float64(s.cols)
	ly := (float64(py) + 0.5) * float64(s.height) / float64(s.rows*2)
	return lx, ly
}

func (s *Surface) set(px, py int, c color.NRGBA) {
	if px < 0 || py < 0 || px >= s.cols || py >= s.rows*2 || c.A == 0 {
		return
	}
	s.pixels[py*s.cols+px] = c
}
