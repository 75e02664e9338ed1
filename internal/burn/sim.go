package burn

import (
	"burn/internal/core"
	"burn/internal/layer"
)

// Sim adapts CombustionState to core.Sim so drivers can run it alongside
// registry lookups, parameter panels and overlays.
type Sim struct {
	cfg    Config
	rng    *core.RNG
	glyphs *core.RNG
	state  *CombustionState
}

// New returns an ignited simulation configured by cfg. cfg must validate.
func New(cfg Config) *Sim {
	s := &Sim{cfg: cfg}
	s.Reset(cfg.Seed)
	return s
}

// Name returns the simulation identifier.
func (s *Sim) Name() string {
	if s.cfg.Preset == "" {
		return "burn"
	}
	return "burn/" + s.cfg.Preset
}

// Size reports the grid dimensions.
func (s *Sim) Size() core.Size { return core.Size{Rows: s.cfg.Rows, Cols: s.cfg.Cols} }

// Config returns the active configuration, including runtime tuning.
func (s *Sim) Config() Config { return s.cfg }

// Reset discards the current burn and lights a new one. A zero seed picks a
// time-based seed.
func (s *Sim) Reset(seed int64) {
	s.rng = core.NewRNG(seed)
	s.glyphs = core.NewRNGStream(s.rng.Seed(), 1)
	s.state = NewCombustionState(s.cfg.Rows, s.cfg.Cols, s.cfg.Params, s.rng)
	s.state.StartFire()
}

// Step advances one tick unless the burn is already over.
func (s *Sim) Step() {
	if s.Done() {
		return
	}
	s.state = s.state.Next()
}

// Layer implements core.Sim. Flicker comes from its own stream, so drawing
// never shifts the burn.
func (s *Sim) Layer() layer.Layer { return s.state.Layer(s.glyphs) }

// Seed returns the seed of the current burn, with a zero seed resolved.
func (s *Sim) Seed() int64 { return s.rng.Seed() }

// Done reports saturation, or a fire that went out before saturating.
func (s *Sim) Done() bool {
	return s.state.Saturated() || s.state.Exhausted()
}

// Saturated reports whether enough of the grid has burnt.
func (s *Sim) Saturated() bool { return s.state.Saturated() }

// Exhausted reports whether the fire went out before saturating.
func (s *Sim) Exhausted() bool { return s.state.Exhausted() }

// State exposes the current combustion snapshot.
func (s *Sim) State() *CombustionState { return s.state }

// Tick returns the ticks since the last reset.
func (s *Sim) Tick() int { return s.state.Tick() }

// Fires returns the number of cells ignited so far.
func (s *Sim) Fires() int { return s.state.Fire().Fires() }

// BurntFraction returns the ignited share of the grid.
func (s *Sim) BurntFraction() float64 { return s.state.Fire().BurntFraction() }

// SmokeMask exposes relative smoke density for overlays.
func (s *Sim) SmokeMask() []float32 { return s.state.Smoke().Density() }

// HeatMask exposes remaining burn time of lit cells for overlays.
func (s *Sim) HeatMask() []float32 { return s.state.Fire().HeatMask() }

func (s *Sim) retune(p Params) bool {
	if p.Validate() != nil {
		return false
	}
	s.cfg.Params = p
	s.state = s.state.Retune(p)
	return true
}

func init() {
	for name := range presets {
		preset := name
		core.Register(preset, func(cfg map[string]string) core.Sim {
			merged := map[string]string{}
			for k, v := range cfg {
				merged[k] = v
			}
			merged["preset"] = preset
			return New(FromMap(merged))
		})
	}
}
