package ui

import (
	"fmt"
	"image"
	"math"
	"strconv"
	"strings"

	"burn/internal/core"
)

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	statusSpacing  = 16
	statusLines    = 4
	controlsTop    = panelPadding + headerBaseline + 14 + statusLines*statusSpacing
)

type burnStats interface {
	Tick() int
	Fires() int
	BurntFraction() float64
}

type exhaustible interface {
	Saturated() bool
	Exhausted() bool
}

// panel holds the HUD state that does not depend on a graphics backend.
type panel struct {
	sim      core.Sim
	width    int
	title    string
	snapshot core.ParameterSnapshot

	controls    []controlState
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
}

type controlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

func newPanel(sim core.Sim, width int) *panel {
	p := &panel{sim: sim, width: width, title: buildTitle(sim)}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		p.controls = make([]controlState, len(controls))
		for i, ctrl := range controls {
			p.controls[i] = controlState{control: ctrl, value: "--"}
		}
		p.layout()
	}
	p.intSetter, _ = sim.(core.IntParameterSetter)
	p.floatSetter, _ = sim.(core.FloatParameterSetter)
	return p
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	return sim.Name() + " controls"
}

func (p *panel) refresh() {
	provider, ok := p.sim.(core.ParameterProvider)
	if !ok {
		p.snapshot = core.ParameterSnapshot{}
	} else {
		p.snapshot = provider.Parameters()
	}
	for i := range p.controls {
		p.controls[i].refresh(p.snapshot)
	}
}

func (s *controlState) refresh(snap core.ParameterSnapshot) {
	s.hasValue = false
	s.value = "--"
	param, ok := snap.Lookup(s.control.Key)
	if !ok {
		return
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			return
		}
		s.intValue = parsed
		s.floatValue = float64(parsed)
		s.value = strconv.Itoa(parsed)
		s.hasValue = true
	case core.ParamTypeFloat:
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			return
		}
		s.floatValue = parsed
		s.value = formatFloat(s.control, parsed)
		s.hasValue = true
	}
}

// intTarget returns the clamped value one step in direction and whether it
// differs from the current value.
func (s *controlState) intTarget(direction int) (int, bool) {
	step := int(math.Round(s.control.Step))
	if step <= 0 {
		step = 1
	}
	target := s.intValue + direction*step
	if s.control.HasMin {
		target = max(target, int(math.Round(s.control.Min)))
	}
	if s.control.HasMax {
		target = min(target, int(math.Round(s.control.Max)))
	}
	return target, target != s.intValue
}

func (s *controlState) floatTarget(direction int) (float64, bool) {
	step := s.control.Step
	if step <= 0 {
		step = 0.05
	}
	target := s.floatValue + float64(direction)*step
	if s.control.HasMin && target < s.control.Min {
		target = s.control.Min
	}
	if s.control.HasMax && target > s.control.Max {
		target = s.control.Max
	}
	return target, math.Abs(target-s.floatValue) >= 1e-9
}

func (p *panel) canAdjust(i, direction int) bool {
	s := &p.controls[i]
	if !s.hasValue || direction == 0 {
		return false
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		_, changed := s.intTarget(direction)
		return p.intSetter != nil && changed
	case core.ParamTypeFloat:
		_, changed := s.floatTarget(direction)
		return p.floatSetter != nil && changed
	}
	return false
}

// adjust moves control i one step and reports whether the sim accepted it.
func (p *panel) adjust(i, direction int) bool {
	if !p.canAdjust(i, direction) {
		return false
	}
	s := &p.controls[i]
	switch s.control.Type {
	case core.ParamTypeInt:
		target, _ := s.intTarget(direction)
		if !p.intSetter.SetIntParameter(s.control.Key, target) {
			return false
		}
		s.intValue = target
		s.floatValue = float64(target)
		s.value = strconv.Itoa(target)
	case core.ParamTypeFloat:
		target, _ := s.floatTarget(direction)
		if !p.floatSetter.SetFloatParameter(s.control.Key, target) {
			return false
		}
		s.floatValue = target
		s.value = formatFloat(s.control, target)
	}
	return true
}

// click handles a press at panel-local coordinates.
func (p *panel) click(x, y int) bool {
	for i := range p.controls {
		if pointInRect(x, y, p.controls[i].minusRect) {
			return p.adjust(i, -1)
		}
		if pointInRect(x, y, p.controls[i].plusRect) {
			return p.adjust(i, 1)
		}
	}
	return false
}

func (p *panel) layout() {
	if p.width <= 0 {
		return
	}
	for i := range p.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(p.width-panelPadding-buttonSize, buttonY, p.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		p.controls[i].top = top
		p.controls[i].minusRect = minusRect
		p.controls[i].plusRect = plusRect
	}
}

// status describes the run for the lines under the title.
func (p *panel) status(paused bool) []string {
	stats, ok := p.sim.(burnStats)
	if !ok {
		return nil
	}
	state := "burning"
	if ex, ok := p.sim.(exhaustible); ok {
		switch {
		case ex.Saturated():
			state = "saturated"
		case ex.Exhausted():
			state = "burnt out"
		}
	}
	if paused && state == "burning" {
		state = "paused"
	}
	return []string{
		fmt.Sprintf("tick   %d", stats.Tick()),
		fmt.Sprintf("fires  %d", stats.Fires()),
		fmt.Sprintf("burnt  %.1f%%", 100*stats.BurntFraction()),
		"state  " + state,
	}
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

// keyHelp is shown at the bottom of the panel.
var keyHelp = strings.Join([]string{
	"space pause  n step",
	"r restart  s reseed",
	"1 smoke  2 heat  q quit",
}, "\n")
