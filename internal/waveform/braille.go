package waveform

import "math"

// Braille cells pack a 2x4 dot matrix into one terminal character, which
// gives the curve four times the vertical resolution of plain text.
const (
	brailleBase = 0x2800
	dotsX       = 2
	dotsY       = 4
)

var brailleBits = [dotsX][dotsY]rune{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// canvas is a dot grid addressed in sub-cell pixels.
type canvas struct {
	cols, rows int
	cells      []rune // braille bit masks, row-major
}

func newCanvas(cols, rows int) *canvas {
	return &canvas{cols: cols, rows: rows, cells: make([]rune, cols*rows)}
}

// pixelWidth and pixelHeight give the dot resolution of the canvas.
func (c *canvas) pixelWidth() int  { return c.cols * dotsX }
func (c *canvas) pixelHeight() int { return c.rows * dotsY }

// set lights a dot; out of range dots are clipped.
func (c *canvas) set(px, py int) {
	if px < 0 || py < 0 || px >= c.pixelWidth() || py >= c.pixelHeight() {
		return
	}
	idx := (py/dotsY)*c.cols + px/dotsX
	c.cells[idx] |= brailleBits[px%dotsX][py%dotsY]
}

// vline lights every dot between y0 and y1 in column px, inclusive.
func (c *canvas) vline(px, y0, y1 int) {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		c.set(px, y)
	}
}

// plot draws points as a connected trace.
func (c *canvas) plot(points []Point) {
	for i, p := range points {
		y := int(math.Round(p.Y))
		if i == 0 {
			c.set(p.X, y)
			continue
		}
		c.vline(p.X, int(math.Round(points[i-1].Y)), y)
	}
}

// mask returns the raw bit mask of a cell.
func (c *canvas) mask(col, row int) rune {
	return c.cells[row*c.cols+col]
}

func brailleRune(mask rune) rune {
	return brailleBase + mask
}
