package burn

import (
	"strconv"

	"burn/internal/core"
)

// Parameters implements core.ParameterProvider.
func (s *Sim) Parameters() core.ParameterSnapshot {
	params := s.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("rows", "Rows", s.cfg.Rows),
				intParam("cols", "Cols", s.cfg.Cols),
				int64Param("seed", "Seed", s.cfg.Seed),
			},
		},
		{
			Name: "Fire",
			Params: []core.Parameter{
				floatParam("spread_chance", "Spread chance", params.SpreadChance),
				intParam("ttl_min", "Burn TTL min", params.TTLMin),
				intParam("ttl_max", "Burn TTL max", params.TTLMax),
				floatParam("threshold", "Saturation threshold", params.Threshold),
			},
		},
		{
			Name: "Smoke",
			Params: []core.Parameter{
				floatParam("smoke_chance", "Smoke chance", params.SmokeChance),
				intParam("rise_min", "Rise min", params.RiseMin),
				intParam("rise_max", "Rise max", params.RiseMax),
				intParam("drift", "Drift", params.Drift),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls implements core.ParameterControlsProvider.
func (s *Sim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "spread_chance", Label: "Spread chance", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "ttl_max", Label: "Burn TTL max", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true},
		{Key: "threshold", Label: "Saturation", Type: core.ParamTypeFloat, Step: 0.01, Min: 0.01, Max: 1, HasMin: true, HasMax: true},
		{Key: "smoke_chance", Label: "Smoke chance", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "rise_max", Label: "Rise max", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 12, HasMin: true, HasMax: true},
		{Key: "drift", Label: "Drift", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 6, HasMin: true, HasMax: true},
	}
}

// SetIntParameter implements core.IntParameterSetter. Values that would leave
// a range inverted are rejected.
func (s *Sim) SetIntParameter(key string, value int) bool {
	p := s.cfg.Params
	switch key {
	case "ttl_min":
		p.TTLMin = value
	case "ttl_max":
		p.TTLMax = value
	case "rise_min":
		p.RiseMin = value
	case "rise_max":
		p.RiseMax = value
	case "drift":
		p.Drift = value
	default:
		return false
	}
	return s.retune(p)
}

// SetFloatParameter implements core.FloatParameterSetter. Probabilities are
// clamped to [0, 1].
func (s *Sim) SetFloatParameter(key string, value float64) bool {
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	p := s.cfg.Params
	switch key {
	case "spread_chance":
		p.SpreadChance = value
	case "smoke_chance":
		p.SmokeChance = value
	case "threshold":
		p.Threshold = value
	default:
		return false
	}
	return s.retune(p)
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
