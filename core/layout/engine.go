package layout

import (
	"errors"

	"github.com/rs/zerolog"
)

// ErrUnknownPane is returned when an operation references a pane id that is
// not in the open set.
var ErrUnknownPane = errors.New("layout: unknown pane")

// Geometry is a pane's assigned grid slot plus the track ratios of the preset
// it was assigned under, so renderers can translate it to screen coordinates.
type Geometry struct {
	Cell      Cell
	ColRatios []float64
	RowRatios []float64
}

// Engine maintains the ordered open-pane list and its derived geometry, and
// answers directional adjacency queries. All mutation happens on the UI
// goroutine, so the engine carries no locking.
type Engine struct {
	log    zerolog.Logger
	mode   Mode
	order  []string
	cells  map[string]Cell
	preset Preset

	// OnRecompute fires after every total geometry reassignment.
	OnRecompute func()
}

// NewEngine returns an empty engine in Auto mode.
func NewEngine(log zerolog.Logger) *Engine {
	return &Engine{
		log:   log.With().Str("component", "layout").Logger(),
		cells: make(map[string]Cell),
	}
}

// Len returns the number of open panes.
func (e *Engine) Len() int { return len(e.order) }

// Mode returns the current mode override (ModeAuto when none).
func (e *Engine) Mode() Mode { return e.mode }

// PaneIDs returns the open panes in insertion order.
func (e *Engine) PaneIDs() []string {
	return append([]string(nil), e.order...)
}

// Contains reports whether id is in the open set.
func (e *Engine) Contains(id string) bool {
	_, ok := e.cells[id]
	return ok
}

// AddPane appends a pane and reassigns geometry for the whole set. Adding an
// id that is already open is a no-op; duplicate-open races are tolerated.
func (e *Engine) AddPane(id string) {
	if _, ok := e.cells[id]; ok {
		e.log.Warn().Str("pane", id).Msg("duplicate pane add ignored")
		return
	}
	e.order = append(e.order, id)
	e.recompute()
}

// RemovePane drops a pane and recomputes the rest. It reports whether the id
// was actually open; unknown ids log a warning and leave the set untouched.
func (e *Engine) RemovePane(id string) bool {
	if _, ok := e.cells[id]; !ok {
		e.log.Warn().Str("pane", id).Msg("remove of unknown pane ignored")
		return false
	}
	for i, existing := range e.order {
		if existing == id {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
	delete(e.cells, id)
	e.recompute()
	return true
}

// SetMode stores the explicit mode override (ModeAuto clears it) and
// recomputes geometry immediately.
func (e *Engine) SetMode(mode Mode) {
	e.mode = mode
	e.recompute()
}

// Geometry returns the pane's current grid assignment.
func (e *Engine) Geometry(id string) (Geometry, error) {
	cell, ok := e.cells[id]
	if !ok {
		return Geometry{}, ErrUnknownPane
	}
	return Geometry{Cell: cell, ColRatios: e.preset.ColRatios, RowRatios: e.preset.RowRatios}, nil
}

// Preset returns the template currently applied.
func (e *Engine) Preset() Preset { return e.preset }

// recompute is total: every open pane gets a fresh cell from the selected
// preset, in insertion order. Incremental updates would be cheaper but drift;
// pane counts are small enough that it does not matter.
func (e *Engine) recompute() {
	e.preset = SelectPreset(len(e.order), e.mode)
	for k := range e.cells {
		delete(e.cells, k)
	}
	for i, id := range e.order {
		e.cells[id] = e.preset.Cells[i]
	}
	e.log.Debug().Int("panes", len(e.order)).Str("preset", e.preset.Name).Msg("layout recomputed")
	if e.OnRecompute != nil {
		e.OnRecompute()
	}
}

// FindInDirection resolves the nearest open pane whose cell lies strictly in
// the given direction from the named pane. Candidates are ranked by largest
// perpendicular span overlap, then smallest Manhattan distance between cell
// centers, then smallest (row, col) so the top of a stack wins final ties.
// There is no wraparound: edges are dead ends and return ok=false.
func (e *Engine) FindInDirection(fromID string, dir Direction) (string, bool) {
	from, ok := e.cells[fromID]
	if !ok {
		e.log.Warn().Str("pane", fromID).Msg("directional query for unknown pane")
		return "", false
	}
	best := ""
	var bestCell Cell
	bestOverlap := -1
	bestDist := 0.0
	for _, id := range e.order {
		if id == fromID {
			continue
		}
		cell := e.cells[id]
		if !inHalfPlane(from, cell, dir) {
			continue
		}
		overlap := spanOverlap(from, cell, dir)
		dist := centerDistance(from, cell)
		if best == "" || betterCandidate(overlap, dist, cell, bestOverlap, bestDist, bestCell) {
			best, bestCell, bestOverlap, bestDist = id, cell, overlap, dist
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}

func inHalfPlane(from, c Cell, dir Direction) bool {
	switch dir {
	case DirLeft:
		return c.Col < from.Col
	case DirRight:
		return c.Col > from.Col
	case DirUp:
		return c.Row < from.Row
	case DirDown:
		return c.Row > from.Row
	default:
		return false
	}
}

// spanOverlap measures how much the candidate's perpendicular range overlaps
// the origin's: row ranges for horizontal moves, column ranges for vertical.
func spanOverlap(from, c Cell, dir Direction) int {
	if dir == DirLeft || dir == DirRight {
		return rangeOverlap(from.Row, from.Row+from.RowSpan, c.Row, c.Row+c.RowSpan)
	}
	return rangeOverlap(from.Col, from.Col+from.ColSpan, c.Col, c.Col+c.ColSpan)
}

func rangeOverlap(aLo, aHi, bLo, bHi int) int {
	lo, hi := aLo, aHi
	if bLo > lo {
		lo = bLo
	}
	if bHi < hi {
		hi = bHi
	}
	if hi <= lo {
		return 0
	}
	return hi - lo
}

func centerDistance(a, b Cell) float64 {
	ar := float64(a.Row) + float64(a.RowSpan)/2
	ac := float64(a.Col) + float64(a.ColSpan)/2
	br := float64(b.Row) + float64(b.RowSpan)/2
	bc := float64(b.Col) + float64(b.ColSpan)/2
	return absf(ar-br) + absf(ac-bc)
}

func betterCandidate(overlap int, dist float64, cell Cell, bestOverlap int, bestDist float64, bestCell Cell) bool {
	if overlap != bestOverlap {
		return overlap > bestOverlap
	}
	if dist != bestDist {
		return dist < bestDist
	}
	if cell.Row != bestCell.Row {
		return cell.Row < bestCell.Row
	}
	return cell.Col < bestCell.Col
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
