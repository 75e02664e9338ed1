package burn

import (
	"fmt"
	"strconv"
)

// Params holds the tunable probabilities and ranges of the burn simulation.
type Params struct {
	// SpreadChance is the ignition probability of one coin flip; an unlit
	// cell flips once per lit orthogonal neighbour.
	SpreadChance float64
	// TTLMin and TTLMax bound the ticks a freshly lit cell burns for.
	TTLMin int
	TTLMax int

	// SmokeChance is the per-tick probability a lit cell emits one smoke unit.
	SmokeChance float64
	// RiseMin and RiseMax bound how many rows a smoke unit climbs per tick.
	RiseMin int
	RiseMax int
	// Drift is the largest sideways step of a smoke unit per tick.
	Drift int

	// Threshold is the fraction of ignited cells past which the grid is
	// saturated.
	Threshold float64
}

// Config controls the burn simulation dimensions and tuning.
type Config struct {
	Rows int
	Cols int

	Seed int64

	Preset string
	Params Params
}

// Preset names.
const (
	PresetClassic  = "classic"
	PresetBrisk    = "brisk"
	PresetSmoulder = "smoulder"
)

var presets = map[string]Params{
	PresetClassic: {
		SpreadChance: 1.0 / 7,
		TTLMin:       3,
		TTLMax:       25,
		SmokeChance:  1.0 / 3,
		RiseMin:      4,
		RiseMax:      7,
		Drift:        2,
		Threshold:    0.99,
	},
	PresetBrisk: {
		SpreadChance: 1.0 / 3,
		TTLMin:       3,
		TTLMax:       12,
		SmokeChance:  1.0 / 5,
		RiseMin:      1,
		RiseMax:      3,
		Drift:        2,
		Threshold:    0.9,
	},
	PresetSmoulder: {
		SpreadChance: 1.0 / 5,
		TTLMin:       8,
		TTLMax:       25,
		SmokeChance:  1.0 / 10,
		RiseMin:      1,
		RiseMax:      2,
		Drift:        1,
		Threshold:    0.8,
	},
}

// PresetParams returns the tuning registered under name.
func PresetParams(name string) (Params, bool) {
	p, ok := presets[name]
	return p, ok
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Rows:   24,
		Cols:   80,
		Preset: PresetClassic,
		Params: presets[PresetClassic],
	}
}

// Validate reports the first setting that would make the simulation
// misbehave.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("grid must be at least 1x1, got %dx%d", c.Rows, c.Cols)
	}
	return c.Params.Validate()
}

// Validate checks the parameter ranges.
func (p Params) Validate() error {
	switch {
	case p.SpreadChance < 0 || p.SpreadChance > 1:
		return fmt.Errorf("spread chance %v outside [0,1]", p.SpreadChance)
	case p.SmokeChance < 0 || p.SmokeChance > 1:
		return fmt.Errorf("smoke chance %v outside [0,1]", p.SmokeChance)
	case p.TTLMin < 0 || p.TTLMax < p.TTLMin:
		return fmt.Errorf("ttl range [%d,%d] invalid", p.TTLMin, p.TTLMax)
	case p.RiseMin < 1 || p.RiseMax < p.RiseMin:
		return fmt.Errorf("rise range [%d,%d] invalid", p.RiseMin, p.RiseMax)
	case p.Drift < 0:
		return fmt.Errorf("drift %d is negative", p.Drift)
	case p.Threshold <= 0 || p.Threshold > 1:
		return fmt.Errorf("threshold %v outside (0,1]", p.Threshold)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unknown keys are ignored and unparsable or out-of-range values keep the
// previous setting.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["preset"]; ok {
		if p, ok := presets[v]; ok {
			c.Preset = v
			c.Params = p
		}
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["spread_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.SpreadChance = parsed
		}
	}
	if v, ok := cfg["smoke_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.SmokeChance = parsed
		}
	}
	if v, ok := cfg["ttl_min"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.TTLMin = parsed
		}
	}
	if v, ok := cfg["ttl_max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.TTLMax = parsed
		}
	}
	if c.Params.TTLMax < c.Params.TTLMin {
		c.Params.TTLMax = c.Params.TTLMin
	}
	if v, ok := cfg["rise_min"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			c.Params.RiseMin = parsed
		}
	}
	if v, ok := cfg["rise_max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			c.Params.RiseMax = parsed
		}
	}
	if c.Params.RiseMax < c.Params.RiseMin {
		c.Params.RiseMax = c.Params.RiseMin
	}
	if v, ok := cfg["drift"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.Drift = parsed
		}
	}
	if v, ok := cfg["threshold"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 && parsed <= 1 {
			c.Params.Threshold = parsed
		}
	}
	return c
}
