package ui

import (
	"slices"
	"strings"
	"testing"

	"burn/internal/burn"
	"burn/internal/core"
	"burn/internal/layer"
)

func newBurn(t *testing.T) *burn.Sim {
	t.Helper()
	cfg := burn.DefaultConfig()
	cfg.Rows, cfg.Cols, cfg.Seed = 6, 10, 3
	return burn.New(cfg)
}

func controlIndex(t *testing.T, p *panel, key string) int {
	t.Helper()
	i := slices.IndexFunc(p.controls, func(s controlState) bool { return s.control.Key == key })
	if i < 0 {
		t.Fatalf("no control %q", key)
	}
	return i
}

func TestPanelRefreshReadsSnapshot(t *testing.T) {
	p := newPanel(newBurn(t), 240)
	p.refresh()
	i := controlIndex(t, p, "threshold")
	if !p.controls[i].hasValue || p.controls[i].value != "0.99" {
		t.Fatalf("threshold control = %+v", p.controls[i])
	}
	if p.title != "burn/classic controls" {
		t.Fatalf("title = %q", p.title)
	}
}

func TestPanelAdjustAppliesToSim(t *testing.T) {
	sim := newBurn(t)
	p := newPanel(sim, 240)
	p.refresh()

	i := controlIndex(t, p, "drift")
	if !p.adjust(i, -1) {
		t.Fatal("drift decrement rejected")
	}
	if sim.Config().Params.Drift != 1 {
		t.Fatalf("drift = %d, want 1", sim.Config().Params.Drift)
	}

	i = controlIndex(t, p, "spread_chance")
	before := sim.Config().Params.SpreadChance
	if !p.adjust(i, 1) {
		t.Fatal("spread increment rejected")
	}
	if got := sim.Config().Params.SpreadChance; got <= before {
		t.Fatalf("spread %v did not grow from %v", got, before)
	}
}

func TestPanelClampsAtBounds(t *testing.T) {
	sim := newBurn(t)
	p := newPanel(sim, 240)
	p.refresh()
	i := controlIndex(t, p, "drift")
	for p.adjust(i, -1) {
	}
	if sim.Config().Params.Drift != 0 {
		t.Fatalf("drift = %d, want clamp at 0", sim.Config().Params.Drift)
	}
	if p.canAdjust(i, -1) {
		t.Fatal("minus should be disabled at the minimum")
	}
	if !p.canAdjust(i, 1) {
		t.Fatal("plus should stay enabled")
	}
}

func TestPanelClickHitsButtons(t *testing.T) {
	sim := newBurn(t)
	p := newPanel(sim, 240)
	p.refresh()
	i := controlIndex(t, p, "drift")
	r := p.controls[i].plusRect
	if !p.click(r.Min.X+1, r.Min.Y+1) {
		t.Fatal("click on plus ignored")
	}
	if sim.Config().Params.Drift != 3 {
		t.Fatalf("drift = %d, want 3", sim.Config().Params.Drift)
	}
	if p.click(0, 0) {
		t.Fatal("click outside buttons should do nothing")
	}
}

func TestPanelStatus(t *testing.T) {
	sim := newBurn(t)
	p := newPanel(sim, 240)
	lines := p.status(true)
	if len(lines) != statusLines {
		t.Fatalf("status = %v", lines)
	}
	if !strings.HasSuffix(lines[3], "paused") || !strings.HasSuffix(lines[1], " 1") {
		t.Fatalf("status = %v", lines)
	}
}

type bareSim struct{}

func (bareSim) Name() string       { return "" }
func (bareSim) Size() core.Size    { return core.Size{Rows: 1, Cols: 1} }
func (bareSim) Reset(int64)        {}
func (bareSim) Step()              {}
func (bareSim) Done() bool         { return false }
func (bareSim) Layer() layer.Layer { return layer.NewGrid(1, 1) }

func TestPanelWithoutProviders(t *testing.T) {
	p := newPanel(bareSim{}, 100)
	p.refresh()
	if len(p.controls) != 0 || p.status(false) != nil || p.title != "Controls" {
		t.Fatalf("panel = %+v", p)
	}
}
