package layer

import "image/color"

// Box-drawing runes used by NewBorder.
const (
	BorderHorizontal  = '━'
	BorderVertical    = '┃'
	BorderTopLeft     = '┏'
	BorderTopRight    = '┓'
	BorderBottomLeft  = '┗'
	BorderBottomRight = '┛'
)

var borderColor = color.RGBA{R: 170, G: 170, B: 180, A: 255}

// NewBorder frames a rows x cols field with heavy box-drawing lines. The
// interior is left empty.
func NewBorder(rows, cols int) *Grid {
	g := NewGrid(rows, cols)
	h := Colored(BorderHorizontal, borderColor)
	v := Colored(BorderVertical, borderColor)
	for j := 0; j < cols; j++ {
		g.cells[0][j] = h
		g.cells[rows-1][j] = h
	}
	for i := 0; i < rows; i++ {
		g.cells[i][0] = v
		g.cells[i][cols-1] = v
	}
	g.cells[0][0] = Colored(BorderTopLeft, borderColor)
	g.cells[0][cols-1] = Colored(BorderTopRight, borderColor)
	g.cells[rows-1][0] = Colored(BorderBottomLeft, borderColor)
	g.cells[rows-1][cols-1] = Colored(BorderBottomRight, borderColor)
	return g
}
