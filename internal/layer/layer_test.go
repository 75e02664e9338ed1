package layer

import (
	"image/color"
	"strings"
	"testing"
)

func fieldLines(field [][]Glyph) []string {
	lines := make([]string, len(field))
	for i, row := range field {
		runes := make([]rune, len(row))
		for j, g := range row {
			runes[j] = g.Rune
		}
		lines[i] = string(runes)
	}
	return lines
}

func glyphCount(g *Grid) int {
	n := 0
	for _, row := range g.cells {
		for _, cell := range row {
			if !cell.Empty() {
				n++
			}
		}
	}
	return n
}

func gridFromStrings(rows, cols int, lines ...string) *Grid {
	cells := make([][]Glyph, len(lines))
	for i, line := range lines {
		for _, r := range line {
			if r == '.' {
				cells[i] = append(cells[i], Glyph{})
				continue
			}
			cells[i] = append(cells[i], Plain(r))
		}
	}
	return FromCells(rows, cols, cells)
}

func TestGetSparseRows(t *testing.T) {
	l := gridFromStrings(3, 7, "bonjour", "allo")

	if g, ok := l.Get(0, 2); !ok || g.Rune != 'n' {
		t.Fatalf("Get(0,2) = %q,%v, want 'n'", g.Rune, ok)
	}
	if g, ok := l.Get(1, 0); !ok || g.Rune != 'a' {
		t.Fatalf("Get(1,0) = %q,%v, want 'a'", g.Rune, ok)
	}
	if _, ok := l.Get(2, 0); ok {
		t.Fatal("row beyond stored extent should be empty")
	}
	if _, ok := l.Get(1, 5); ok {
		t.Fatal("column beyond stored extent should be empty")
	}
}

func TestGetOutsideDeclaredBoundsPanics(t *testing.T) {
	l := NewGrid(2, 2)
	for _, pt := range [][2]int{{2, 0}, {0, 2}, {-1, 0}, {0, -1}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Get(%d,%d) on 2x2 layer did not panic", pt[0], pt[1])
				}
			}()
			l.Get(pt[0], pt[1])
		}()
	}
}

func TestFromCellsRejectsOversizedStorage(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for row wider than declared bounds")
		}
	}()
	FromCells(1, 2, [][]Glyph{{Plain('a'), Plain('b'), Plain('c')}})
}

func TestCompositePrecedence(t *testing.T) {
	a := gridFromStrings(1, 3, "xz")
	b := gridFromStrings(1, 3, "y")
	c := Compositor{Rows: 1, Cols: 3}

	field := c.Composite(a, b)
	if got := field[0][0].Rune; got != 'y' {
		t.Fatalf("composite(0,0) = %q, want 'y'", got)
	}
	if got := field[0][1].Rune; got != 'z' {
		t.Fatalf("composite(0,1) = %q, want 'z'", got)
	}
	if got := field[0][2]; got != Blank {
		t.Fatalf("composite(0,2) = %+v, want blank", got)
	}
}

func TestCompositeTopOnly(t *testing.T) {
	bottom := NewGrid(2, 2)
	middle := NewGrid(2, 2)
	topLayer := NewGrid(2, 2)
	topLayer.Set(1, 1, Plain('#'))

	field := Compositor{Rows: 2, Cols: 2}.Composite(bottom, middle, topLayer)
	if got := strings.Join(fieldLines(field), "|"); got != "  | #" {
		t.Fatalf("composite = %q", got)
	}
}

func TestCompositeLastLayerWinsRegardlessOfType(t *testing.T) {
	border := NewBorder(3, 3)
	text := NewText(3, 3, []string{"abc"}, 0)
	c := Compositor{Rows: 3, Cols: 3}

	if got := c.Composite(border, text)[0][1].Rune; got != 'b' {
		t.Fatalf("text above border: got %q", got)
	}
	if got := c.Composite(text, border)[0][1].Rune; got != BorderHorizontal {
		t.Fatalf("border above text: got %q", got)
	}
}

func TestIntermediateCompositeKeepsEmpty(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	fire := NewGrid(2, 2)
	fire.Set(0, 0, Colored('^', red))
	fire.Set(1, 1, Colored('W', red))
	smoke := NewGrid(2, 2)
	smoke.Set(0, 0, Plain('@'))

	out := Compositor{Rows: 2, Cols: 2}.IntermediateComposite(fire, smoke)

	if g, _ := out.Get(0, 0); g.Rune != '@' {
		t.Fatalf("smoke should win (0,0), got %q", g.Rune)
	}
	if g, _ := out.Get(1, 1); g != Colored('W', red) {
		t.Fatalf("fire glyph lost at (1,1): %+v", g)
	}
	if _, ok := out.Get(0, 1); ok {
		t.Fatal("empty cell should stay empty in an intermediate composite")
	}
	if glyphCount(out) != 2 {
		t.Fatalf("Count = %d, want 2", glyphCount(out))
	}
}

func TestBorder5x5(t *testing.T) {
	b := NewBorder(5, 5)
	want := []string{
		"┏━━━┓",
		"┃   ┃",
		"┃   ┃",
		"┃   ┃",
		"┗━━━┛",
	}
	got := fieldLines(Compositor{Rows: 5, Cols: 5}.Composite(b))
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d = %q, want %q", i, got[i], want[i])
		}
	}
	for i := 1; i < 4; i++ {
		for j := 1; j < 4; j++ {
			if _, ok := b.Get(i, j); ok {
				t.Fatalf("interior (%d,%d) should be empty", i, j)
			}
		}
	}
	corners := map[rune]bool{}
	for _, pt := range [][2]int{{0, 0}, {0, 4}, {4, 0}, {4, 4}} {
		g, _ := b.Get(pt[0], pt[1])
		corners[g.Rune] = true
	}
	if len(corners) != 4 {
		t.Fatalf("expected four distinct corner glyphs, got %d", len(corners))
	}
}

func TestTextInsetClipAndTabs(t *testing.T) {
	l := NewText(4, 8, []string{"hello world", "\tx", "third", "dropped"}, 1)
	got := fieldLines(Compositor{Rows: 4, Cols: 8}.Composite(l))
	if got[0] != "        " {
		t.Fatalf("inset row should be blank, got %q", got[0])
	}
	if got[1] != " hello  " {
		t.Fatalf("row 1 = %q", got[1])
	}
	// The tab fills to the clip edge so the x never fits.
	if got[2] != "        " {
		t.Fatalf("row 2 = %q", got[2])
	}
	if _, ok := l.Get(2, 3); !ok {
		t.Fatal("tab expansion should produce space glyphs")
	}
	if got[3] != "        " {
		t.Fatalf("row 3 should be inset margin, got %q", got[3])
	}
}

func TestTextControlRunesStayEmpty(t *testing.T) {
	l := NewText(1, 4, []string{"a\x1bb"}, 0)
	if _, ok := l.Get(0, 1); ok {
		t.Fatal("escape byte must not become a glyph")
	}
	if g, _ := l.Get(0, 2); g.Rune != 'b' {
		t.Fatalf("got %q after control rune", g.Rune)
	}
}

func TestTextWideRunes(t *testing.T) {
	l := NewText(1, 6, []string{"a世b界"}, 0)
	want := map[int]rune{0: 'a', 1: '世', 3: 'b', 4: '界'}
	for col, r := range want {
		if g, ok := l.Get(0, col); !ok || g.Rune != r {
			t.Fatalf("col %d = %q, want %q", col, g.Rune, r)
		}
	}
	for _, col := range []int{2, 5} {
		if _, ok := l.Get(0, col); ok {
			t.Fatalf("continuation col %d should be empty", col)
		}
	}

	clipped := NewText(1, 3, []string{"ab世x"}, 0)
	if _, ok := clipped.Get(0, 2); ok {
		t.Fatal("a wide rune must not be split at the clip edge")
	}

	combined := NewText(1, 3, []string{"e\u0301x"}, 0)
	if g, _ := combined.Get(0, 1); g.Rune != 'x' {
		t.Fatalf("zero-width rune took a column, col 1 = %q", g.Rune)
	}
}
