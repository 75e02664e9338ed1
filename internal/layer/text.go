package layer

import (
	"unicode"

	"github.com/mattn/go-runewidth"
)

const tabWidth = 8

// NewText lays lines out from (inset, inset) inside a rows x cols field.
// Text past the field (less the inset margin) is clipped, tabs advance to the
// next tab stop, and other control characters stay empty. Wide runes take two
// columns with an empty continuation cell and are dropped rather than split
// at the clip edge; zero-width runes are dropped. Rows are stored only as
// long as their text, so the result is sparse.
func NewText(rows, cols int, lines []string, inset int) *Grid {
	if inset < 0 {
		inset = 0
	}
	lastRow := rows - inset
	lastCol := cols - inset
	if lastRow <= inset || lastCol <= inset {
		return FromCells(rows, cols, nil)
	}
	cells := make([][]Glyph, 0, rows)
	for i := 0; i < inset; i++ {
		cells = append(cells, nil)
	}
	for _, line := range lines {
		if len(cells) >= lastRow {
			break
		}
		row := make([]Glyph, inset, cols)
		col := inset
		for _, r := range line {
			if col >= lastCol {
				break
			}
			switch {
			case r == '\t':
				next := col + tabWidth - (col-inset)%tabWidth
				for col < next && col < lastCol {
					row = append(row, Plain(' '))
					col++
				}
				continue
			case unicode.IsControl(r):
				row = append(row, Glyph{})
				col++
				continue
			}
			w := runewidth.RuneWidth(r)
			if w == 0 {
				continue
			}
			if col+w > lastCol {
				break
			}
			row = append(row, Plain(r))
			for i := 1; i < w; i++ {
				row = append(row, Glyph{})
			}
			col += w
		}
		cells = append(cells, row)
	}
	return FromCells(rows, cols, cells)
}
