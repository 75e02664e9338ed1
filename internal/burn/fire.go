package burn

import (
	"burn/internal/core"
	"burn/internal/layer"
)

// FireKind enumerates the combustion states of a cell.
type FireKind uint8

const (
	KindUnlit FireKind = iota
	KindLit
	KindExtinguished
)

// FireCell is one cell of the fire grid. TTL is meaningful only for lit
// cells, Ash only for extinguished ones.
type FireCell struct {
	Kind FireKind
	TTL  int
	Ash  rune
}

// Unlit returns a cell that has never burned.
func Unlit() FireCell { return FireCell{Kind: KindUnlit} }

// Lit returns a burning cell with ttl ticks left.
func Lit(ttl int) FireCell { return FireCell{Kind: KindLit, TTL: ttl} }

// Extinguished returns a burnt-out cell showing ash.
func Extinguished(ash rune) FireCell { return FireCell{Kind: KindExtinguished, Ash: ash} }

// IsLit reports whether the cell is currently burning.
func (c FireCell) IsLit() bool { return c.Kind == KindLit }

// FireState is an immutable snapshot of the fire grid. Next builds a new
// snapshot rather than changing this one.
type FireState struct {
	grid   core.Grid
	cells  []FireCell
	fires  int
	params Params
	rng    *core.RNG
}

// NewFireState returns an all-unlit grid.
func NewFireState(rows, cols int, params Params, rng *core.RNG) *FireState {
	g := core.NewGrid(rows, cols)
	return &FireState{
		grid:   g,
		cells:  make([]FireCell, g.Len()),
		params: params,
		rng:    rng,
	}
}

// Rows returns the grid height.
func (f *FireState) Rows() int { return f.grid.Rows }

// Cols returns the grid width.
func (f *FireState) Cols() int { return f.grid.Cols }

// Cell returns the cell at (row, col).
func (f *FireState) Cell(row, col int) FireCell {
	return f.cells[f.grid.Index(row, col)]
}

// Fires counts cells that have ever ignited. Cells never return to unlit, so
// this is also the number of lit plus extinguished cells.
func (f *FireState) Fires() int { return f.fires }

// Burning counts the cells currently lit.
func (f *FireState) Burning() int {
	n := 0
	for _, c := range f.cells {
		if c.IsLit() {
			n++
		}
	}
	return n
}

// BurntFraction returns Fires over the cell count.
func (f *FireState) BurntFraction() float64 {
	return float64(f.fires) / float64(f.grid.Len())
}

// Saturated reports whether the ignited fraction exceeds the threshold.
func (f *FireState) Saturated() bool {
	return f.BurntFraction() > f.params.Threshold
}

// Exhausted reports that the fire started and has nothing left burning, so
// it can never spread again.
func (f *FireState) Exhausted() bool {
	return f.fires > 0 && f.Burning() == 0
}

// Ignite force-lights one unlit cell of the bottom row, chosen uniformly. It
// returns false when the bottom row has no unlit cell left. Unlike Next it
// modifies the receiver, so it belongs before the first tick.
func (f *FireState) Ignite() bool {
	row := f.grid.Rows - 1
	candidates := make([]int, 0, f.grid.Cols)
	for col := 0; col < f.grid.Cols; col++ {
		if f.Cell(row, col).Kind == KindUnlit {
			candidates = append(candidates, col)
		}
	}
	if len(candidates) == 0 {
		return false
	}
	col := core.Pick(f.rng, candidates)
	f.cells[f.grid.Index(row, col)] = f.newFlame()
	f.fires++
	return true
}

// Next computes the following tick. Every rule reads only f; the result is
// written to a fresh grid.
func (f *FireState) Next() *FireState {
	next := &FireState{
		grid:   f.grid,
		cells:  make([]FireCell, len(f.cells)),
		fires:  f.fires,
		params: f.params,
		rng:    f.rng,
	}
	for idx, cell := range f.cells {
		switch cell.Kind {
		case KindUnlit:
			row, col := f.grid.Coords(idx)
			if f.catches(f.litNeighbors(row, col)) {
				next.cells[idx] = f.newFlame()
				next.fires++
			} else {
				next.cells[idx] = cell
			}
		case KindLit:
			if cell.TTL == 0 {
				next.cells[idx] = Extinguished(core.Pick(f.rng, ashGlyphs))
			} else {
				next.cells[idx] = Lit(cell.TTL - 1)
			}
		default:
			next.cells[idx] = cell
		}
	}
	return next
}

// catches runs one ignition flip per lit neighbour, stopping at the first
// success.
func (f *FireState) catches(lit int) bool {
	for ; lit > 0; lit-- {
		if f.rng.Chance(f.params.SpreadChance) {
			return true
		}
	}
	return false
}

func (f *FireState) newFlame() FireCell {
	return Lit(f.rng.IntRange(f.params.TTLMin, f.params.TTLMax))
}

var orthogonal = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// litNeighbors counts burning cells among the four orthogonal neighbours.
// Positions off the grid count as not burning.
func (f *FireState) litNeighbors(row, col int) int {
	n := 0
	for _, d := range orthogonal {
		r, c := row+d[0], col+d[1]
		if !f.grid.Contains(r, c) {
			continue
		}
		if f.cells[f.grid.Index(r, c)].IsLit() {
			n++
		}
	}
	return n
}

// Layer projects the fire grid into glyphs: lit cells get a flame drawn from
// glyphs, extinguished cells their ash, unlit cells nothing. glyphs should not
// be the generator driving Next, or drawing would change the burn.
func (f *FireState) Layer(glyphs *core.RNG) *layer.Grid {
	out := layer.NewGrid(f.grid.Rows, f.grid.Cols)
	for idx, cell := range f.cells {
		row, col := f.grid.Coords(idx)
		switch cell.Kind {
		case KindLit:
			out.Set(row, col, flameGlyph(glyphs))
		case KindExtinguished:
			out.Set(row, col, ashGlyph(cell.Ash))
		}
	}
	return out
}

// HeatMask returns each lit cell's remaining burn time scaled to [0, 1].
func (f *FireState) HeatMask() []float32 {
	mask := make([]float32, len(f.cells))
	top := f.params.TTLMax
	if top <= 0 {
		top = 1
	}
	for i, c := range f.cells {
		if !c.IsLit() {
			continue
		}
		v := float32(c.TTL+1) / float32(top+1)
		if v > 1 {
			v = 1
		}
		mask[i] = v
	}
	return mask
}

// withParams returns a copy advancing under p. The cell slice is shared;
// neither state ever writes to it.
func (f *FireState) withParams(p Params) *FireState {
	cp := *f
	cp.params = p
	return &cp
}
