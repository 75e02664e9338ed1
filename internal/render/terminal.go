package render

import (
	"github.com/gdamore/tcell/v2"

	"burn/internal/layer"
)

// Terminal writes composited frames to a tcell screen.
type Terminal struct {
	screen tcell.Screen
	color  bool
	base   tcell.Style
}

// NewTerminal wraps screen. With color false every glyph uses the screen's
// default style.
func NewTerminal(screen tcell.Screen, color bool) *Terminal {
	return &Terminal{screen: screen, color: color, base: tcell.StyleDefault}
}

// Style maps a glyph's decoration to a tcell style.
func (t *Terminal) Style(g layer.Glyph) tcell.Style {
	if !t.color || !g.HasColor() {
		return t.base
	}
	return t.base.Foreground(tcell.NewRGBColor(int32(g.Fg.R), int32(g.Fg.G), int32(g.Fg.B)))
}

// Draw copies field onto the screen and shows it. Cells beyond the screen
// are clipped by tcell.
func (t *Terminal) Draw(field [][]layer.Glyph) {
	for row, line := range field {
		for col, g := range line {
			r := g.Rune
			if r == 0 {
				r = ' '
			}
			t.screen.SetContent(col, row, r, nil, t.Style(g))
		}
	}
	t.screen.Show()
}
