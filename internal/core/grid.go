package core

import "fmt"

// Grid describes a rows x cols cell field stored in row-major order.
type Grid struct {
	Rows, Cols int
}

// NewGrid returns a Grid for the given dimensions. Non-positive dimensions are
// a caller bug and panic.
func NewGrid(rows, cols int) Grid {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("core: invalid grid dimensions %dx%d", rows, cols))
	}
	return Grid{Rows: rows, Cols: cols}
}

// Len returns the number of cells in the grid.
func (g Grid) Len() int { return g.Rows * g.Cols }

// Index returns the linear slice index for (row, col).
func (g Grid) Index(row, col int) int { return row*g.Cols + col }

// Coords converts a linear index back into (row, col).
func (g Grid) Coords(idx int) (int, int) { return idx / g.Cols, idx % g.Cols }

// Contains reports whether (row, col) lies inside the grid.
func (g Grid) Contains(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Size converts the grid dimensions into a Size.
func (g Grid) Size() Size { return Size{Rows: g.Rows, Cols: g.Cols} }
