package layout

import "math"

// Mode selects how open panes are arranged. Auto picks a preset from the pane
// count; the manual modes force a structural family regardless of count.
type Mode int

const (
	ModeAuto Mode = iota
	ModeStacking
	ModeWide
	ModeTall
	ModeGrid
)

func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeStacking:
		return "stacking"
	case ModeWide:
		return "wide"
	case ModeTall:
		return "tall"
	case ModeGrid:
		return "grid"
	default:
		return "unknown"
	}
}

// ModeFromString maps a config/palette name to a Mode. Unknown names fall back
// to Auto.
func ModeFromString(s string) Mode {
	switch s {
	case "stacking":
		return ModeStacking
	case "wide":
		return ModeWide
	case "tall":
		return ModeTall
	case "grid":
		return ModeGrid
	default:
		return ModeAuto
	}
}

// Cell is one grid slot: origin plus spans, all in track units.
type Cell struct {
	Row     int
	Col     int
	RowSpan int
	ColSpan int
}

// Preset is a named geometric template. Cells are in priority order: the pane
// list maps onto them index for index, so the first pane always lands in the
// preset's primary cell. ColRatios/RowRatios are relative track sizes.
type Preset struct {
	Name      string
	Cells     []Cell
	ColRatios []float64
	RowRatios []float64
}

// SelectPreset derives the template for count panes. Count is clamped to 0;
// callers that pass a negative count have a bug upstream, and the engine logs
// it before calling here. The returned preset always has exactly count cells.
func SelectPreset(count int, mode Mode) Preset {
	if count < 0 {
		count = 0
	}
	if count == 0 {
		return Preset{Name: "empty"}
	}
	switch mode {
	case ModeStacking:
		return stackingPreset(count)
	case ModeWide:
		return widePreset(count)
	case ModeTall:
		return masterStackPreset("tall", count)
	case ModeGrid:
		return gridPreset(count)
	}
	switch count {
	case 1:
		return singlePreset()
	case 2:
		return verticalSplitPreset()
	case 3:
		return horizontalMainPreset()
	case 4:
		return grid2x2Preset()
	case 5:
		return threeColumnPreset()
	default:
		return masterStackPreset("master-stack", count)
	}
}

func singlePreset() Preset {
	return Preset{
		Name:      "single",
		Cells:     []Cell{{Row: 0, Col: 0, RowSpan: 1, ColSpan: 1}},
		ColRatios: []float64{1},
		RowRatios: []float64{1},
	}
}

func verticalSplitPreset() Preset {
	return Preset{
		Name: "vertical-split",
		Cells: []Cell{
			{Row: 0, Col: 0, RowSpan: 1, ColSpan: 1},
			{Row: 0, Col: 1, RowSpan: 1, ColSpan: 1},
		},
		ColRatios: []float64{0.5, 0.5},
		RowRatios: []float64{1},
	}
}

// horizontalMainPreset: main pane at 66% width spanning both rows, the other
// two stacked in the 34% column.
func horizontalMainPreset() Preset {
	return Preset{
		Name: "horizontal-main",
		Cells: []Cell{
			{Row: 0, Col: 0, RowSpan: 2, ColSpan: 1},
			{Row: 0, Col: 1, RowSpan: 1, ColSpan: 1},
			{Row: 1, Col: 1, RowSpan: 1, ColSpan: 1},
		},
		ColRatios: []float64{0.66, 0.34},
		RowRatios: []float64{0.5, 0.5},
	}
}

func grid2x2Preset() Preset {
	return Preset{
		Name: "grid-2x2",
		Cells: []Cell{
			{Row: 0, Col: 0, RowSpan: 1, ColSpan: 1},
			{Row: 0, Col: 1, RowSpan: 1, ColSpan: 1},
			{Row: 1, Col: 0, RowSpan: 1, ColSpan: 1},
			{Row: 1, Col: 1, RowSpan: 1, ColSpan: 1},
		},
		ColRatios: []float64{0.5, 0.5},
		RowRatios: []float64{0.5, 0.5},
	}
}

// threeColumnPreset: 20/60/20 tracks. Pane 1 takes the left column full
// height, panes 2-3 stack in the middle, panes 4-5 stack on the right.
func threeColumnPreset() Preset {
	return Preset{
		Name: "three-column",
		Cells: []Cell{
			{Row: 0, Col: 0, RowSpan: 2, ColSpan: 1},
			{Row: 0, Col: 1, RowSpan: 1, ColSpan: 1},
			{Row: 1, Col: 1, RowSpan: 1, ColSpan: 1},
			{Row: 0, Col: 2, RowSpan: 1, ColSpan: 1},
			{Row: 1, Col: 2, RowSpan: 1, ColSpan: 1},
		},
		ColRatios: []float64{0.2, 0.6, 0.2},
		RowRatios: []float64{0.5, 0.5},
	}
}

// masterStackPreset: 60% master column, the remaining count-1 panes stacked
// in the 40% column with equal heights. The master spans every stack row.
func masterStackPreset(name string, count int) Preset {
	if count == 1 {
		p := singlePreset()
		p.Name = name
		return p
	}
	stack := count - 1
	cells := make([]Cell, 0, count)
	cells = append(cells, Cell{Row: 0, Col: 0, RowSpan: stack, ColSpan: 1})
	rows := make([]float64, stack)
	for i := 0; i < stack; i++ {
		cells = append(cells, Cell{Row: i, Col: 1, RowSpan: 1, ColSpan: 1})
		rows[i] = 1
	}
	return Preset{
		Name:      name,
		Cells:     cells,
		ColRatios: []float64{0.6, 0.4},
		RowRatios: rows,
	}
}

func stackingPreset(count int) Preset {
	cells := make([]Cell, count)
	rows := make([]float64, count)
	for i := 0; i < count; i++ {
		cells[i] = Cell{Row: i, Col: 0, RowSpan: 1, ColSpan: 1}
		rows[i] = 1
	}
	return Preset{
		Name:      "stacking",
		Cells:     cells,
		ColRatios: []float64{1},
		RowRatios: rows,
	}
}

// widePreset: full-width master row on top, the rest side by side below.
func widePreset(count int) Preset {
	if count == 1 {
		p := singlePreset()
		p.Name = "wide"
		return p
	}
	bottom := count - 1
	cells := make([]Cell, 0, count)
	cells = append(cells, Cell{Row: 0, Col: 0, RowSpan: 1, ColSpan: bottom})
	cols := make([]float64, bottom)
	for i := 0; i < bottom; i++ {
		cells = append(cells, Cell{Row: 1, Col: i, RowSpan: 1, ColSpan: 1})
		cols[i] = 1
	}
	return Preset{
		Name:      "wide",
		Cells:     cells,
		ColRatios: cols,
		RowRatios: []float64{0.66, 0.34},
	}
}

// gridPreset: row-major near-square grid. The last row may be partially
// filled; unfilled slots stay empty rather than stretching neighbours.
func gridPreset(count int) Preset {
	cols := int(math.Ceil(math.Sqrt(float64(count))))
	if cols < 1 {
		cols = 1
	}
	rows := (count + cols - 1) / cols
	cells := make([]Cell, count)
	for i := 0; i < count; i++ {
		cells[i] = Cell{Row: i / cols, Col: i % cols, RowSpan: 1, ColSpan: 1}
	}
	colRatios := make([]float64, cols)
	for i := range colRatios {
		colRatios[i] = 1
	}
	rowRatios := make([]float64, rows)
	for i := range rowRatios {
		rowRatios[i] = 1
	}
	return Preset{Name: "grid", Cells: cells, ColRatios: colRatios, RowRatios: rowRatios}
}
