package burn

import (
	"fmt"

	"burn/internal/core"
	"burn/internal/layer"
)

// CombustionState pairs a fire grid with the smoke it produces. Both always
// share dimensions and advance together.
type CombustionState struct {
	rows, cols int
	tick       int

	fire  *FireState
	smoke *SmokeState
}

// NewCombustionState builds an unlit, smokeless state. Non-positive
// dimensions or invalid params panic; validate configuration first.
func NewCombustionState(rows, cols int, params Params, rng *core.RNG) *CombustionState {
	if err := params.Validate(); err != nil {
		panic(fmt.Sprintf("burn: %v", err))
	}
	return &CombustionState{
		rows:  rows,
		cols:  cols,
		fire:  NewFireState(rows, cols, params, rng),
		smoke: NewSmokeState(rows, cols, params, rng),
	}
}

// StartFire seeds the bottom row with one burning cell.
func (c *CombustionState) StartFire() bool {
	return c.fire.Ignite()
}

// Next advances fire first and then smoke, feeding smoke the new fire grid.
func (c *CombustionState) Next() *CombustionState {
	fire := c.fire.Next()
	smoke := c.smoke.Next(fire)
	return &CombustionState{
		rows:  c.rows,
		cols:  c.cols,
		tick:  c.tick + 1,
		fire:  fire,
		smoke: smoke,
	}
}

// Layer composites fire beneath smoke into one layer, drawing flicker from
// glyphs.
func (c *CombustionState) Layer(glyphs *core.RNG) *layer.Grid {
	comp := layer.Compositor{Rows: c.rows, Cols: c.cols}
	return comp.IntermediateComposite(c.fire.Layer(glyphs), c.smoke.Layer(glyphs))
}

// Saturated forwards to the fire grid.
func (c *CombustionState) Saturated() bool { return c.fire.Saturated() }

// Exhausted forwards to the fire grid.
func (c *CombustionState) Exhausted() bool { return c.fire.Exhausted() }

// Fire exposes the fire grid.
func (c *CombustionState) Fire() *FireState { return c.fire }

// Smoke exposes the smoke field.
func (c *CombustionState) Smoke() *SmokeState { return c.smoke }

// Tick returns how many times Next has been applied since construction.
func (c *CombustionState) Tick() int { return c.tick }

// Rows returns the grid height.
func (c *CombustionState) Rows() int { return c.rows }

// Cols returns the grid width.
func (c *CombustionState) Cols() int { return c.cols }

// Retune returns a state with the same grids that advances under p from now
// on.
func (c *CombustionState) Retune(p Params) *CombustionState {
	cp := *c
	cp.fire = c.fire.withParams(p)
	cp.smoke = c.smoke.withParams(p)
	return &cp
}
