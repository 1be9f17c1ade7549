package widgets

import (
	"strings"
	"testing"

	"github.com/tteejj/supertui/core/layout"
)

type fillWidget struct{ ch string }

func (w fillWidget) Render(width, height int) string {
	row := strings.Repeat(w.ch, width)
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

func TestGridPlacesSideBySide(t *testing.T) {
	g := Grid{
		Items: []GridItem{
			{Cell: layout.Cell{Row: 0, Col: 0, RowSpan: 1, ColSpan: 1}, Widget: fillWidget{"A"}},
			{Cell: layout.Cell{Row: 0, Col: 1, RowSpan: 1, ColSpan: 1}, Widget: fillWidget{"B"}},
		},
	}
	out := g.Render(20, 4)
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("line count = %d, want 4", len(lines))
	}
	if !strings.HasPrefix(lines[0], "AAAAAAAAAA") {
		t.Fatalf("left half = %q, want As", lines[0][:10])
	}
	if !strings.HasSuffix(lines[0], "BBBBBBBBBB") {
		t.Fatalf("right half = %q, want Bs", lines[0][10:])
	}
}

func TestGridRowSpanFillsBothRows(t *testing.T) {
	// Master column spans two rows, stack column splits them.
	g := Grid{
		Items: []GridItem{
			{Cell: layout.Cell{Row: 0, Col: 0, RowSpan: 2, ColSpan: 1}, Widget: fillWidget{"M"}},
			{Cell: layout.Cell{Row: 0, Col: 1, RowSpan: 1, ColSpan: 1}, Widget: fillWidget{"T"}},
			{Cell: layout.Cell{Row: 1, Col: 1, RowSpan: 1, ColSpan: 1}, Widget: fillWidget{"B"}},
		},
		ColRatios: []float64{0.66, 0.34},
	}
	out := g.Render(30, 6)
	lines := strings.Split(out, "\n")
	if !strings.HasPrefix(lines[0], "M") || !strings.HasPrefix(lines[5], "M") {
		t.Fatalf("master should cover full height")
	}
	if !strings.HasSuffix(lines[0], "T") {
		t.Fatalf("top of stack should be T, got %q", lines[0])
	}
	if !strings.HasSuffix(lines[5], "B") {
		t.Fatalf("bottom of stack should be B, got %q", lines[5])
	}
}

func TestGridWiderRatioGetsMoreColumns(t *testing.T) {
	g := Grid{
		Items: []GridItem{
			{Cell: layout.Cell{Row: 0, Col: 0, RowSpan: 1, ColSpan: 1}, Widget: fillWidget{"A"}},
			{Cell: layout.Cell{Row: 0, Col: 1, RowSpan: 1, ColSpan: 1}, Widget: fillWidget{"B"}},
		},
		ColRatios: []float64{0.75, 0.25},
	}
	out := strings.Split(g.Render(40, 2), "\n")[0]
	as := strings.Count(out, "A")
	bs := strings.Count(out, "B")
	if as <= bs {
		t.Fatalf("A width %d should exceed B width %d", as, bs)
	}
	if as+bs != 40 {
		t.Fatalf("total width = %d, want 40", as+bs)
	}
}

func TestGridEmpty(t *testing.T) {
	if out := (Grid{}).Render(20, 5); out != "" {
		t.Fatalf("empty grid should render nothing, got %q", out)
	}
}
