package burn

import (
	"slices"
	"testing"

	"burn/internal/core"
)

func TestPresetsRegistered(t *testing.T) {
	names := core.Names()
	for _, want := range []string{PresetClassic, PresetBrisk, PresetSmoulder} {
		if !slices.Contains(names, want) {
			t.Fatalf("preset %q missing from registry %v", want, names)
		}
	}
	sim := core.Sims()[PresetSmoulder](map[string]string{"rows": "6", "cols": "9", "seed": "3"})
	if sim.Name() != "burn/smoulder" {
		t.Fatalf("name = %q", sim.Name())
	}
	if sz := sim.Size(); sz.Rows != 6 || sz.Cols != 9 {
		t.Fatalf("size = %+v", sz)
	}
}

func TestSimRunsToCompletion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols, cfg.Seed = 10, 10, 8
	cfg.Preset = PresetBrisk
	cfg.Params, _ = PresetParams(PresetBrisk)
	s := New(cfg)

	limit := cfg.Rows * cfg.Cols * (cfg.Params.TTLMax + 2)
	for i := 0; i < limit && !s.Done(); i++ {
		s.Step()
	}
	if !s.Done() {
		t.Fatalf("burn did not finish within %d ticks", limit)
	}
	tick := s.Tick()
	s.Step()
	if s.Tick() != tick {
		t.Fatal("step after done should be a no-op")
	}
	if s.Fires() == 0 || s.BurntFraction() <= 0 {
		t.Fatalf("fires=%d burnt=%v", s.Fires(), s.BurntFraction())
	}
}

func TestSimSeedIsDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols, cfg.Seed = 8, 12, 99
	a, b := New(cfg), New(cfg)
	for i := 0; i < 30; i++ {
		a.Step()
		b.Step()
	}
	if a.Fires() != b.Fires() || a.State().Smoke().Total() != b.State().Smoke().Total() {
		t.Fatal("equal seeds diverged")
	}
}

func TestSimReset(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols, cfg.Seed = 6, 6, 1
	s := New(cfg)
	for i := 0; i < 5; i++ {
		s.Step()
	}
	s.Reset(2)
	if s.Tick() != 0 || s.Fires() != 1 {
		t.Fatalf("after reset tick=%d fires=%d", s.Tick(), s.Fires())
	}
	if got := s.Layer().Rows(); got != 6 {
		t.Fatalf("layer rows = %d", got)
	}
}

func TestSimParameterSetters(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols, cfg.Seed = 5, 5, 1
	s := New(cfg)

	if !s.SetFloatParameter("spread_chance", 3) {
		t.Fatal("spread_chance rejected")
	}
	if s.Config().Params.SpreadChance != 1 {
		t.Fatalf("spread not clamped: %v", s.Config().Params.SpreadChance)
	}
	if s.SetFloatParameter("threshold", -1) {
		t.Fatal("zero threshold should be rejected")
	}
	if s.SetIntParameter("ttl_max", 1) {
		t.Fatal("ttl_max below ttl_min should be rejected")
	}
	if !s.SetIntParameter("drift", 0) || s.Config().Params.Drift != 0 {
		t.Fatal("drift update failed")
	}
	if s.SetIntParameter("unknown", 1) || s.SetFloatParameter("unknown", 0.5) {
		t.Fatal("unknown keys should be rejected")
	}
	if s.Fires() != 1 {
		t.Fatal("retune should keep the burning grid")
	}
}

func TestSimParametersSnapshot(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols = 4, 7
	s := New(cfg)
	snap := s.Parameters()
	p, ok := snap.Lookup("cols")
	if !ok || p.Value != "7" {
		t.Fatalf("cols = %+v, %v", p, ok)
	}
	if p, ok := snap.Lookup("threshold"); !ok || p.Value != "0.99" {
		t.Fatalf("threshold = %+v, %v", p, ok)
	}
	for _, ctrl := range s.ParameterControls() {
		if _, ok := snap.Lookup(ctrl.Key); !ok {
			t.Fatalf("control %q has no snapshot entry", ctrl.Key)
		}
	}
}

func TestSimDrawingKeepsSeededRun(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols, cfg.Seed = 12, 20, 99
	drawn, plain := New(cfg), New(cfg)

	for i := 0; i < 60; i++ {
		drawn.Layer()
		drawn.Layer()
		drawn.Step()
		plain.Step()
	}
	if drawn.Fires() != plain.Fires() || drawn.State().Smoke().Total() != plain.State().Smoke().Total() {
		t.Fatalf("drawing changed the burn: fires %d vs %d, smoke %d vs %d",
			drawn.Fires(), plain.Fires(), drawn.State().Smoke().Total(), plain.State().Smoke().Total())
	}
	for row := 0; row < cfg.Rows; row++ {
		for col := 0; col < cfg.Cols; col++ {
			if drawn.State().Fire().Cell(row, col) != plain.State().Fire().Cell(row, col) {
				t.Fatalf("cell (%d,%d) diverged", row, col)
			}
		}
	}
}

func TestSimResetReplaysClockSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols, cfg.Seed = 8, 10, 0
	s := New(cfg)
	seed := s.Seed()
	if seed == 0 {
		t.Fatal("clock seed was not resolved")
	}

	var first []FireCell
	for i := 0; i < 15; i++ {
		s.Step()
	}
	for row := 0; row < cfg.Rows; row++ {
		for col := 0; col < cfg.Cols; col++ {
			first = append(first, s.State().Fire().Cell(row, col))
		}
	}

	s.Reset(seed)
	for i := 0; i < 15; i++ {
		s.Layer()
		s.Step()
	}
	i := 0
	for row := 0; row < cfg.Rows; row++ {
		for col := 0; col < cfg.Cols; col++ {
			if got := s.State().Fire().Cell(row, col); got != first[i] {
				t.Fatalf("replay diverged at (%d,%d): %+v vs %+v", row, col, got, first[i])
			}
			i++
		}
	}
}
