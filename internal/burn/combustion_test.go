package burn

import (
	"testing"

	"burn/internal/core"
)

func TestCombustionSmokeReadsAdvancedFire(t *testing.T) {
	p := testParams()
	p.SpreadChance = 0
	p.SmokeChance = 1
	rng := core.NewRNG(6)
	c := &CombustionState{
		rows:  3,
		cols:  3,
		fire:  fireWith(3, 3, p, 6, map[[2]int]FireCell{{2, 1}: Lit(0)}),
		smoke: NewSmokeState(3, 3, p, rng),
	}

	next := c.Next()
	if next.Fire().Cell(2, 1).Kind != KindExtinguished {
		t.Fatal("flame should have gone out")
	}
	if next.Smoke().Total() != 0 {
		t.Fatalf("smoke spawned from a flame that already went out: %d", next.Smoke().Total())
	}
	if next.Tick() != 1 || c.Tick() != 0 {
		t.Fatalf("ticks: next=%d prev=%d", next.Tick(), c.Tick())
	}
}

func TestCombustionLayerSmokeOverFire(t *testing.T) {
	p := straightUp()
	c := &CombustionState{
		rows:  2,
		cols:  2,
		fire:  fireWith(2, 2, p, 1, map[[2]int]FireCell{{0, 0}: Lit(5), {1, 1}: Lit(5)}),
		smoke: smokeWith(2, 2, p, 1, map[[2]int]int{{0, 0}: 1}),
	}
	l := c.Layer(core.NewRNG(7))
	if g, _ := l.Get(0, 0); !IsSmokeGlyph(g.Rune) {
		t.Fatalf("smoke should cover fire, got %q", g.Rune)
	}
	if g, _ := l.Get(1, 1); !IsFireGlyph(g.Rune) {
		t.Fatalf("uncovered fire should show, got %q", g.Rune)
	}
	if _, ok := l.Get(0, 1); ok {
		t.Fatal("unlit clear cell should stay empty")
	}
}

func TestCombustionStartFire(t *testing.T) {
	c := NewCombustionState(4, 6, testParams(), core.NewRNG(2))
	if !c.StartFire() {
		t.Fatal("start fire failed")
	}
	if c.Fire().Fires() != 1 || c.Smoke().Total() != 0 {
		t.Fatalf("fires=%d smoke=%d", c.Fire().Fires(), c.Smoke().Total())
	}
	if c.Saturated() || c.Exhausted() {
		t.Fatal("a fresh fire is neither saturated nor exhausted")
	}
}

func TestCombustionRetuneKeepsGrids(t *testing.T) {
	c := NewCombustionState(4, 4, testParams(), core.NewRNG(2))
	c.StartFire()
	p := testParams()
	p.SpreadChance = 1

	tuned := c.Retune(p)
	if tuned.Fire().Fires() != 1 {
		t.Fatal("retune lost the burning cell")
	}
	if c.Fire().params.SpreadChance == 1 {
		t.Fatal("retune changed the original state")
	}
	if tuned.Fire().params.SpreadChance != 1 || tuned.Smoke().params.SpreadChance != 1 {
		t.Fatal("retune did not reach both grids")
	}
}

func TestCombustionRejectsInvalidParams(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on invalid params")
		}
	}()
	p := testParams()
	p.RiseMin = 0
	NewCombustionState(2, 2, p, core.NewRNG(1))
}
