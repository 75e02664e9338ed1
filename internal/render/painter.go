//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"burn/internal/layer"
)

// PixelPainter draws a frame as one pixel per cell on a single image.
type PixelPainter struct {
	rows, cols int
	img        *ebiten.Image
	buf        []byte
}

// NewPixelPainter allocates a painter for a rows x cols frame.
func NewPixelPainter(rows, cols int) *PixelPainter {
	return &PixelPainter{
		rows: rows,
		cols: cols,
		img:  ebiten.NewImage(cols, rows),
		buf:  make([]byte, 4*rows*cols),
	}
}

// Blit uploads field and draws it scaled onto dst.
func (p *PixelPainter) Blit(dst *ebiten.Image, field [][]layer.Glyph, scale int) {
	if len(field) != p.rows {
		return
	}
	FillGlyphRGBA(p.buf, field, p.cols, Background, Ink)
	p.img.WritePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(p.img, op)
}

// GlyphPainter draws a frame as text, one basicfont glyph per cell.
type GlyphPainter struct {
	rows, cols int
}

// NewGlyphPainter returns a painter for a rows x cols frame.
func NewGlyphPainter(rows, cols int) *GlyphPainter {
	return &GlyphPainter{rows: rows, cols: cols}
}

// Size returns the frame size in pixels.
func (p *GlyphPainter) Size() (int, int) {
	return p.cols * CellWidth, p.rows * CellHeight
}

// Blit draws field onto dst.
func (p *GlyphPainter) Blit(dst *ebiten.Image, field [][]layer.Glyph) {
	dst.Fill(Background)
	face := basicfont.Face7x13
	ascent := face.Metrics().Ascent.Ceil()
	for row, line := range field {
		y := row*CellHeight + ascent
		for col, g := range line {
			if g.Rune == 0 || g.Rune == ' ' {
				continue
			}
			var c color.Color = Ink
			if g.HasColor() {
				c = g.Fg
			}
			text.Draw(dst, string(ASCII(g.Rune)), face, col*CellWidth, y, c)
		}
	}
}
