package core

import (
	"testing"
	"time"
)

func TestRNGRanges(t *testing.T) {
	r := NewRNG(5)
	for i := 0; i < 500; i++ {
		if v := r.IntRange(-2, 2); v < -2 || v > 2 {
			t.Fatalf("IntRange out of bounds: %d", v)
		}
		if v := r.IntN(3); v < 0 || v >= 3 {
			t.Fatalf("IntN out of bounds: %d", v)
		}
	}
	if r.IntRange(4, 4) != 4 || r.IntRange(7, 1) != 7 {
		t.Fatal("degenerate range should return lo")
	}
	if r.IntN(0) != 0 {
		t.Fatal("IntN(0) should be 0")
	}
	if r.Chance(0) || !r.Chance(1) || r.Chance(-3) || !r.Chance(2) {
		t.Fatal("Chance should saturate")
	}
}

func TestRNGSeeded(t *testing.T) {
	a, b := NewRNG(42), NewRNG(42)
	for i := 0; i < 20; i++ {
		if a.IntN(1000) != b.IntN(1000) {
			t.Fatal("equal seeds diverged")
		}
	}
}

func TestRNGResolvesClockSeed(t *testing.T) {
	if got := NewRNG(42).Seed(); got != 42 {
		t.Fatalf("Seed = %d, want 42", got)
	}
	a := NewRNG(0)
	if a.Seed() == 0 {
		t.Fatal("zero seed was not resolved")
	}
	b := NewRNG(a.Seed())
	for i := 0; i < 20; i++ {
		if a.IntN(1000) != b.IntN(1000) {
			t.Fatal("replaying the resolved seed diverged")
		}
	}
}

func TestRNGStreamsIndependent(t *testing.T) {
	a, b := NewRNGStream(42, 0), NewRNGStream(42, 1)
	if b.Seed() != 42 {
		t.Fatalf("stream Seed = %d, want 42", b.Seed())
	}
	same := 0
	for i := 0; i < 50; i++ {
		if a.IntN(1<<20) == b.IntN(1<<20) {
			same++
		}
	}
	if same == 50 {
		t.Fatal("streams produced the same sequence")
	}
}

func TestPickCoversAlphabet(t *testing.T) {
	r := NewRNG(9)
	xs := []rune{'a', 'b', 'c'}
	seen := map[rune]bool{}
	for i := 0; i < 200; i++ {
		seen[Pick(r, xs)] = true
	}
	if len(seen) != len(xs) {
		t.Fatalf("picked %v", seen)
	}
}

func TestGridIndexing(t *testing.T) {
	g := NewGrid(3, 4)
	if g.Len() != 12 {
		t.Fatalf("len = %d", g.Len())
	}
	row, col := g.Coords(g.Index(2, 3))
	if row != 2 || col != 3 {
		t.Fatalf("round trip gave (%d,%d)", row, col)
	}
	if g.Contains(-1, 0) || g.Contains(3, 0) || g.Contains(0, 4) || !g.Contains(2, 3) {
		t.Fatal("Contains disagrees with bounds")
	}
}

func TestGridRejectsEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewGrid(0, 3)
}

func TestFixedStep(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first frame should step")
	}
	clock = clock.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("half a tick should not step")
	}
	clock = clock.Add(60 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("accumulated tick should step")
	}
	if fs.Step() != 100*time.Millisecond {
		t.Fatalf("step = %v", fs.Step())
	}
}

func TestTickIntervalDefault(t *testing.T) {
	if got := TickInterval(0); got != 80*time.Millisecond {
		t.Fatalf("default interval = %v, want 80ms", got)
	}
}

func TestSnapshotLookup(t *testing.T) {
	s := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{{Key: "x", Value: "1"}}},
		{Name: "B", Params: []Parameter{{Key: "y", Value: "2"}}},
	}}
	if p, ok := s.Lookup("y"); !ok || p.Value != "2" {
		t.Fatalf("lookup y = %+v %v", p, ok)
	}
	if _, ok := s.Lookup("z"); ok {
		t.Fatal("missing key found")
	}
}
