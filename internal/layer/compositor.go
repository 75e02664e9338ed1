package layer

// Compositor merges layers of identical declared size.
type Compositor struct {
	Rows int
	Cols int
}

// Composite flattens layers into a rows x cols field. Layers are ordered by
// ascending precedence; cells without any glyph render as Blank.
func (c Compositor) Composite(layers ...Layer) [][]Glyph {
	field := make([][]Glyph, c.Rows)
	for i := range field {
		row := make([]Glyph, c.Cols)
		for j := range row {
			if g, ok := top(layers, i, j); ok {
				row[j] = g
			} else {
				row[j] = Blank
			}
		}
		field[i] = row
	}
	return field
}

// IntermediateComposite performs the same scan as Composite but keeps empty
// cells empty, so the result can be stacked again as a single layer.
func (c Compositor) IntermediateComposite(layers ...Layer) *Grid {
	out := NewGrid(c.Rows, c.Cols)
	for i := 0; i < c.Rows; i++ {
		for j := 0; j < c.Cols; j++ {
			if g, ok := top(layers, i, j); ok {
				out.cells[i][j] = g
			}
		}
	}
	return out
}

// top returns the highest-precedence glyph present at (row, col).
func top(layers []Layer, row, col int) (Glyph, bool) {
	for k := len(layers) - 1; k >= 0; k-- {
		if g, ok := layers[k].Get(row, col); ok {
			return g, true
		}
	}
	return Glyph{}, false
}
