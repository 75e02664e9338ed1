package burn

import (
	"image/color"
	"slices"

	"burn/internal/core"
	"burn/internal/layer"
)

var fireGlyphs = []rune{'%', '*', ',', 'W', 'Y', '^'}

// Mostly blank so burnt text reads as cleared paper with a few flecks.
var ashGlyphs = []rune{'.', ' ', ' ', ' ', ' ', ' ', ' '}

var smokeGlyphs = []rune{'"', '&', '@', '?'}

var fireColors = []color.RGBA{
	{R: 232, G: 81, B: 44, A: 255},
	{R: 198, G: 46, B: 7, A: 255},
	{R: 247, G: 39, B: 67, A: 255},
	{R: 255, G: 134, B: 5, A: 255},
	{R: 255, G: 72, B: 48, A: 255},
}

var ashColor = color.RGBA{R: 100, G: 100, B: 100, A: 255}

var smokeColors = []color.RGBA{
	{R: 79, G: 79, B: 79, A: 255},
	{R: 140, G: 133, B: 133, A: 255},
	{R: 178, G: 173, B: 173, A: 255},
	{R: 140, G: 120, B: 120, A: 255},
}

// flameGlyph picks a fresh flame appearance; lit cells flicker because this
// runs on every projection.
func flameGlyph(rng *core.RNG) layer.Glyph {
	return layer.Colored(core.Pick(rng, fireGlyphs), core.Pick(rng, fireColors))
}

func ashGlyph(ash rune) layer.Glyph {
	return layer.Colored(ash, ashColor)
}

func smokeGlyph(rng *core.RNG) layer.Glyph {
	return layer.Colored(core.Pick(rng, smokeGlyphs), core.Pick(rng, smokeColors))
}

// IsFireGlyph reports whether r belongs to the flame alphabet.
func IsFireGlyph(r rune) bool { return slices.Contains(fireGlyphs, r) }

// IsAshGlyph reports whether r belongs to the ash alphabet.
func IsAshGlyph(r rune) bool { return slices.Contains(ashGlyphs, r) }

// IsSmokeGlyph reports whether r belongs to the smoke alphabet.
func IsSmokeGlyph(r rune) bool { return slices.Contains(smokeGlyphs, r) }
