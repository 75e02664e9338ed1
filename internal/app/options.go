package app

import (
	"burn/internal/core"
	"burn/internal/layer"
	"burn/internal/render"
)

// HUDWidth is the width in pixels of the GUI parameter panel.
const HUDWidth = 240

// GameOptions configures the GUI Game.
type GameOptions struct {
	Text   layer.Layer
	Border bool
	Color  bool
	TPS    float64
	Scale  int
	// Pixels draws one pixel per cell instead of glyphs.
	Pixels bool
	Sound  Igniter
}

// CellSize returns the on-screen pixel size of one cell.
func (o GameOptions) CellSize() (w, h int) {
	scale := max(o.Scale, 1)
	if o.Pixels {
		return scale, scale
	}
	return render.CellWidth * scale, render.CellHeight * scale
}

// ViewSize returns the pixel size of the burn view for a grid of size.
func (o GameOptions) ViewSize(size core.Size) (w, h int) {
	cw, ch := o.CellSize()
	return size.Cols * cw, size.Rows * ch
}

// GridForWindow returns the largest grid whose view fits in a w x h window
// next to the panel, never smaller than 3x3.
func (o GameOptions) GridForWindow(w, h int) core.Size {
	cw, ch := o.CellSize()
	return core.Size{
		Rows: max((h)/ch, 3),
		Cols: max((w-HUDWidth)/cw, 3),
	}
}

// scene returns the static layers drawn beneath the simulation.
func scene(size core.Size, text layer.Layer, border bool) []layer.Layer {
	var out []layer.Layer
	if text != nil {
		out = append(out, text)
	}
	if border {
		out = append(out, layer.NewBorder(size.Rows, size.Cols))
	}
	return out
}

// replaySeed returns the seed that restarts the current burn. Sims that
// resolve a zero seed report the resolved one.
func replaySeed(sim core.Sim, seed int64) int64 {
	if s, ok := sim.(interface{ Seed() int64 }); ok {
		return s.Seed()
	}
	return seed
}
