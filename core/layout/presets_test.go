package layout

import "testing"

func allModes() []Mode {
	return []Mode{ModeAuto, ModeStacking, ModeWide, ModeTall, ModeGrid}
}

func TestSelectPresetCellCountMatchesPaneCount(t *testing.T) {
	for _, mode := range allModes() {
		for count := 0; count <= 12; count++ {
			p := SelectPreset(count, mode)
			if len(p.Cells) != count {
				t.Fatalf("%s/%d: %d cells, want %d", mode, count, len(p.Cells), count)
			}
		}
	}
}

func TestSelectPresetCellsDoNotOverlap(t *testing.T) {
	for _, mode := range allModes() {
		for count := 1; count <= 12; count++ {
			p := SelectPreset(count, mode)
			seen := map[[2]int]int{}
			for i, c := range p.Cells {
				if c.RowSpan < 1 || c.ColSpan < 1 {
					t.Fatalf("%s/%d cell %d: zero span %+v", mode, count, i, c)
				}
				for r := c.Row; r < c.Row+c.RowSpan; r++ {
					for col := c.Col; col < c.Col+c.ColSpan; col++ {
						if prev, taken := seen[[2]int{r, col}]; taken {
							t.Fatalf("%s/%d: cells %d and %d both cover (%d,%d)", mode, count, prev, i, r, col)
						}
						seen[[2]int{r, col}] = i
					}
				}
			}
		}
	}
}

func TestSelectPresetCellsFitTracks(t *testing.T) {
	for _, mode := range allModes() {
		for count := 1; count <= 12; count++ {
			p := SelectPreset(count, mode)
			for i, c := range p.Cells {
				if c.Col+c.ColSpan > len(p.ColRatios) {
					t.Fatalf("%s/%d cell %d exceeds %d columns: %+v", mode, count, i, len(p.ColRatios), c)
				}
				if c.Row+c.RowSpan > len(p.RowRatios) {
					t.Fatalf("%s/%d cell %d exceeds %d rows: %+v", mode, count, i, len(p.RowRatios), c)
				}
			}
		}
	}
}

func TestAutoPresetSelection(t *testing.T) {
	want := map[int]string{
		1: "single",
		2: "vertical-split",
		3: "horizontal-main",
		4: "grid-2x2",
		5: "three-column",
		6: "master-stack",
		9: "master-stack",
	}
	for count, name := range want {
		if got := SelectPreset(count, ModeAuto).Name; got != name {
			t.Fatalf("count %d: preset %q, want %q", count, got, name)
		}
	}
}

func TestHorizontalMainShape(t *testing.T) {
	p := SelectPreset(3, ModeAuto)
	main := p.Cells[0]
	if main.RowSpan != 2 || main.Col != 0 {
		t.Fatalf("main cell = %+v, want full-height left column", main)
	}
	if p.ColRatios[0] != 0.66 || p.ColRatios[1] != 0.34 {
		t.Fatalf("col ratios = %v, want 66/34", p.ColRatios)
	}
	if p.Cells[1].Row != 0 || p.Cells[2].Row != 1 {
		t.Fatalf("stack cells %+v %+v, want stacked top to bottom", p.Cells[1], p.Cells[2])
	}
}

func TestThreeColumnShape(t *testing.T) {
	p := SelectPreset(5, ModeAuto)
	if len(p.ColRatios) != 3 || p.ColRatios[1] != 0.6 {
		t.Fatalf("col ratios = %v, want 20/60/20", p.ColRatios)
	}
	if p.Cells[0].RowSpan != 2 || p.Cells[0].Col != 0 {
		t.Fatalf("first pane = %+v, want full-height left column", p.Cells[0])
	}
	if p.Cells[1].Col != 1 || p.Cells[3].Col != 2 {
		t.Fatalf("middle/right columns misassigned: %+v %+v", p.Cells[1], p.Cells[3])
	}
}

func TestMasterStackShape(t *testing.T) {
	p := SelectPreset(6, ModeAuto)
	if p.Cells[0].RowSpan != 5 {
		t.Fatalf("master spans %d rows, want 5", p.Cells[0].RowSpan)
	}
	for i := 1; i < 6; i++ {
		if p.Cells[i].Col != 1 || p.Cells[i].Row != i-1 {
			t.Fatalf("stack cell %d = %+v", i, p.Cells[i])
		}
	}
}

func TestNegativeCountClamped(t *testing.T) {
	p := SelectPreset(-3, ModeAuto)
	if len(p.Cells) != 0 {
		t.Fatalf("negative count should produce empty preset, got %d cells", len(p.Cells))
	}
}

func TestModeRoundTrip(t *testing.T) {
	for _, m := range allModes() {
		if got := ModeFromString(m.String()); got != m {
			t.Fatalf("%s round-tripped to %s", m, got)
		}
	}
	if ModeFromString("bogus") != ModeAuto {
		t.Fatalf("unknown mode name should fall back to auto")
	}
}
