package burn

import (
	"burn/internal/core"
	"burn/internal/layer"
)

// SmokeState is an immutable snapshot of the smoke field. Each cell holds the
// number of smoke units stacked on it; zero means clear.
type SmokeState struct {
	grid    core.Grid
	volume  []int
	params  Params
	rng     *core.RNG
	lost    int
	spawned int
}

// NewSmokeState returns a clear field.
func NewSmokeState(rows, cols int, params Params, rng *core.RNG) *SmokeState {
	g := core.NewGrid(rows, cols)
	return &SmokeState{
		grid:   g,
		volume: make([]int, g.Len()),
		params: params,
		rng:    rng,
	}
}

// Rows returns the field height.
func (s *SmokeState) Rows() int { return s.grid.Rows }

// Cols returns the field width.
func (s *SmokeState) Cols() int { return s.grid.Cols }

// Volume returns the smoke units at (row, col).
func (s *SmokeState) Volume(row, col int) int {
	return s.volume[s.grid.Index(row, col)]
}

// Total returns the smoke units across the field.
func (s *SmokeState) Total() int {
	n := 0
	for _, v := range s.volume {
		n += v
	}
	return n
}

// Lost reports how many units drifted off the grid in the tick that produced
// this state.
func (s *SmokeState) Lost() int { return s.lost }

// Spawned reports how many units fires emitted in the tick that produced this
// state.
func (s *SmokeState) Spawned() int { return s.spawned }

// Next moves every existing unit, then spawns new units from the lit cells of
// fire, which should already be advanced to the same tick.
func (s *SmokeState) Next(fire *FireState) *SmokeState {
	next := &SmokeState{
		grid:   s.grid,
		volume: make([]int, len(s.volume)),
		params: s.params,
		rng:    s.rng,
	}
	for idx, v := range s.volume {
		if v == 0 {
			continue
		}
		row, col := s.grid.Coords(idx)
		for ; v > 0; v-- {
			r, c := s.drift(row, col)
			if !s.grid.Contains(r, c) {
				next.lost++
				continue
			}
			next.volume[s.grid.Index(r, c)]++
		}
	}
	for idx, cell := range fire.cells {
		if cell.IsLit() && s.rng.Chance(s.params.SmokeChance) {
			next.volume[idx]++
			next.spawned++
		}
	}
	return next
}

// drift picks the destination of one unit: always upwards, jittered sideways.
func (s *SmokeState) drift(row, col int) (int, int) {
	rise := s.rng.IntRange(s.params.RiseMin, s.params.RiseMax)
	side := s.rng.IntRange(-s.params.Drift, s.params.Drift)
	return row - rise, col + side
}

// Layer projects the field into glyphs. Any smoky cell shows a smoke glyph
// drawn from glyphs regardless of its volume.
func (s *SmokeState) Layer(glyphs *core.RNG) *layer.Grid {
	out := layer.NewGrid(s.grid.Rows, s.grid.Cols)
	for idx, v := range s.volume {
		if v == 0 {
			continue
		}
		row, col := s.grid.Coords(idx)
		out.Set(row, col, smokeGlyph(glyphs))
	}
	return out
}

// Density returns each cell's volume relative to the densest cell.
func (s *SmokeState) Density() []float32 {
	mask := make([]float32, len(s.volume))
	peak := 0
	for _, v := range s.volume {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		return mask
	}
	for i, v := range s.volume {
		mask[i] = float32(v) / float32(peak)
	}
	return mask
}

func (s *SmokeState) withParams(p Params) *SmokeState {
	cp := *s
	cp.params = p
	return &cp
}
