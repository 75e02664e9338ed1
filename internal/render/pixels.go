package render

import (
	"image/color"
	"math"

	"burn/internal/layer"
)

// Glyph cell size in pixels when drawing with basicfont.Face7x13.
const (
	CellWidth  = 7
	CellHeight = 13
)

// Ink is the colour used for glyphs without their own foreground.
var Ink = color.RGBA{R: 220, G: 220, B: 220, A: 255}

// Background is the frame clear colour.
var Background = color.RGBA{R: 8, G: 8, B: 10, A: 255}

// FillGlyphRGBA writes one pixel per cell of field into buf: blanks take bg,
// coloured glyphs their own colour and the rest ink.
func FillGlyphRGBA(buf []byte, field [][]layer.Glyph, cols int, bg, ink color.RGBA) {
	for row, line := range field {
		for col, g := range line {
			if col >= cols {
				break
			}
			c := bg
			switch {
			case g.Rune == 0 || g.Rune == ' ':
			case g.HasColor():
				c = g.Fg
			default:
				c = ink
			}
			base := (row*cols + col) * 4
			buf[base+0] = c.R
			buf[base+1] = c.G
			buf[base+2] = c.B
			buf[base+3] = c.A
		}
	}
}

// StripColor drops the foreground decoration of every glyph in place.
func StripColor(field [][]layer.Glyph) {
	for _, line := range field {
		for i := range line {
			line[i].Fg = color.RGBA{}
		}
	}
}

// FillMaskRGBA converts intensities in [0,1] into translucent pixels tinted
// by tint. Zero cells are fully transparent.
func FillMaskRGBA(buf []byte, mask []float32, tint color.RGBA) {
	const (
		maxAlpha      = 140.0
		glowBase      = 0.35
		glowRange     = 0.65
		intensityBias = 0.75
	)
	for i, m := range mask {
		base := i * 4
		intensity := clamp01(float64(m))
		if intensity == 0 {
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
			continue
		}
		glow := glowBase + glowRange*math.Sqrt(intensity)
		buf[base+0] = scaleComponent(tint.R, glow)
		buf[base+1] = scaleComponent(tint.G, glow)
		buf[base+2] = scaleComponent(tint.B, glow)
		buf[base+3] = uint8(math.Round(maxAlpha * math.Pow(intensity, intensityBias)))
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func scaleComponent(value uint8, factor float64) uint8 {
	scaled := math.Round(float64(value) * factor)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
