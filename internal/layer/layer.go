// Package layer holds the glyph grids that make up a frame and the compositor
// that flattens them.
//
// A frame is built from an ordered list of layers, lowest precedence first.
// Each layer answers Get(row, col) with an optional glyph; the compositor
// takes the first present glyph scanning from the top of the stack down.
package layer

import (
	"fmt"
	"image/color"
)

// Glyph is one renderable terminal cell. A zero Rune is the empty glyph and a
// zero-alpha Fg means the renderer's default foreground.
type Glyph struct {
	Rune rune
	Fg   color.RGBA
}

// Blank is what a composite shows where no layer has a glyph.
var Blank = Glyph{Rune: ' '}

// Plain returns a glyph without colour decoration.
func Plain(r rune) Glyph { return Glyph{Rune: r} }

// Colored returns a glyph drawn in c.
func Colored(r rune, c color.RGBA) Glyph { return Glyph{Rune: r, Fg: c} }

// Empty reports whether g is the empty glyph.
func (g Glyph) Empty() bool { return g.Rune == 0 }

// HasColor reports whether g carries its own foreground colour.
func (g Glyph) HasColor() bool { return g.Fg.A != 0 }

// Layer is a rows x cols field of optional glyphs.
type Layer interface {
	Rows() int
	Cols() int
	// Get returns the glyph at (row, col) and whether one is present. Indices
	// outside Rows/Cols are a programming error and panic.
	Get(row, col int) (Glyph, bool)
}

// Grid is the stored Layer implementation. Its cells may be ragged or shorter
// than the declared bounds; missing cells read as empty.
type Grid struct {
	rows, cols int
	cells      [][]Glyph
}

// NewGrid allocates a fully-populated empty grid.
func NewGrid(rows, cols int) *Grid {
	cells := make([][]Glyph, rows)
	for i := range cells {
		cells[i] = make([]Glyph, cols)
	}
	return &Grid{rows: rows, cols: cols, cells: cells}
}

// FromCells wraps cells with declared bounds rows x cols. cells may be sparser
// than the bounds but must not be larger.
func FromCells(rows, cols int, cells [][]Glyph) *Grid {
	if len(cells) > rows {
		panic(fmt.Sprintf("layer: %d stored rows exceed declared %d", len(cells), rows))
	}
	for i, row := range cells {
		if len(row) > cols {
			panic(fmt.Sprintf("layer: row %d has %d cells, declared %d", i, len(row), cols))
		}
	}
	return &Grid{rows: rows, cols: cols, cells: cells}
}

// Rows returns the declared row count.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the declared column count.
func (g *Grid) Cols() int { return g.cols }

// Get implements Layer.
func (g *Grid) Get(row, col int) (Glyph, bool) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		panic(fmt.Sprintf("layer: get (%d,%d) outside %dx%d", row, col, g.rows, g.cols))
	}
	if row >= len(g.cells) {
		return Glyph{}, false
	}
	line := g.cells[row]
	if col >= len(line) {
		return Glyph{}, false
	}
	cell := line[col]
	return cell, !cell.Empty()
}

// Set stores glyph at (row, col). It is meant for producers filling a grid
// before handing it out; finished layers are treated as read-only.
func (g *Grid) Set(row, col int, glyph Glyph) {
	g.cells[row][col] = glyph
}
