package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/camadj/internal/raster"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a grid of braille cells, each carrying the brightest colour of
// the dots set in it.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]raster.Color
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Colors: make([][]raster.Color, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]raster.Color, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
		}
	}
	return c
}

// Set sets the dot at sub-pixel (x, y). The canvas size in sub-pixels is
// (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int, col raster.Color) {
	if x < 0 || y < 0 {
		return
	}

	cell, row := x/2, y/4
	if cell >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][cell] |= rune(pixelMap[y%4][x%2])
	if brightness(col) > brightness(c.Colors[row][cell]) {
		c.Colors[row][cell] = col
	}
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Colors[i][j] = raster.Color{}
		}
	}
}

// FromBuffer maps every pixel of buf to one braille dot, in display order
// (storage row 0 at the top). A dot is set when the pixel's alpha reaches
// threshold.
func FromBuffer(buf *raster.PixelBuffer, threshold uint8) *Canvas {
	c := NewCanvas((buf.Width+1)/2, (buf.Height+3)/4)
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			o := 4 * (y*buf.Width + x)
			if buf.Pix[o+3] == 0 || buf.Pix[o+3] < threshold {
				continue
			}
			c.Set(x, y, raster.Color{R: buf.Pix[o], G: buf.Pix[o+1], B: buf.Pix[o+2], A: buf.Pix[o+3]})
		}
	}
	return c
}

// Render draws the canvas with each cell tinted by its colour.
func (c *Canvas) Render() string {
	var b strings.Builder
	for row := range c.Grid {
		for cell, r := range c.Grid[row] {
			if r == blank {
				b.WriteRune(r)
				continue
			}
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(c.Colors[row][cell])))
			b.WriteString(style.Render(string(r)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func brightness(c raster.Color) int {
	return int(c.R) + int(c.G) + int(c.B)
}
