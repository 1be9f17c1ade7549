package widgets

import (
	"math"
	"strings"

	"github.com/tteejj/supertui/core/layout"
)

// GridItem places one widget at a cell of the tiling grid. Spans greater
// than one consume the gap between the tracks they cover.
type GridItem struct {
	Cell   layout.Cell
	Widget Widget
}

// Grid composes widgets onto a blank canvas according to their cells.
// Track sizes come from the ratio slices; a ratio slice whose length does
// not match the track count falls back to equal division.
type Grid struct {
	Items     []GridItem
	ColRatios []float64
	RowRatios []float64
	Gap       int
}

func (g Grid) Render(width, height int) string {
	if len(g.Items) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	cols, rows := 0, 0
	for _, it := range g.Items {
		if c := it.Cell.Col + it.Cell.ColSpan; c > cols {
			cols = c
		}
		if r := it.Cell.Row + it.Cell.RowSpan; r > rows {
			rows = r
		}
	}
	if cols == 0 || rows == 0 {
		return ""
	}
	gap := max(0, g.Gap)
	colW := splitTracks(max(1, width-gap*(cols-1)), cols, g.ColRatios)
	rowH := splitTracks(max(1, height-gap*(rows-1)), rows, g.RowRatios)

	canvas := blankCanvas(width, height)
	for _, it := range g.Items {
		if it.Widget == nil {
			continue
		}
		x := trackOffset(colW, it.Cell.Col, gap)
		y := trackOffset(rowH, it.Cell.Row, gap)
		w := trackSpan(colW, it.Cell.Col, it.Cell.ColSpan, gap)
		h := trackSpan(rowH, it.Cell.Row, it.Cell.RowSpan, gap)
		if w <= 0 || h <= 0 {
			continue
		}
		canvas = overlayAt(canvas, it.Widget.Render(w, h), x, y, width, height)
	}
	return canvas
}

func blankCanvas(width, height int) string {
	row := strings.Repeat(" ", width)
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

func trackOffset(tracks []int, index, gap int) int {
	off := 0
	for i := 0; i < index && i < len(tracks); i++ {
		off += tracks[i] + gap
	}
	return off
}

func trackSpan(tracks []int, index, span, gap int) int {
	if span < 1 {
		span = 1
	}
	total := 0
	for i := index; i < index+span && i < len(tracks); i++ {
		total += tracks[i]
	}
	covered := span
	if index+span > len(tracks) {
		covered = len(tracks) - index
	}
	if covered > 1 {
		total += gap * (covered - 1)
	}
	return total
}

func splitTracks(total, n int, ratios []float64) []int {
	if n <= 0 {
		return nil
	}
	if len(ratios) != n {
		width := total / n
		out := make([]int, n)
		for i := range out {
			out[i] = width
		}
		for i := 0; i < total%n; i++ {
			out[i]++
		}
		return out
	}
	sum := 0.0
	for _, r := range ratios {
		if r <= 0 {
			r = 1
		}
		sum += r
	}
	out := make([]int, n)
	used := 0
	for i := range out {
		w := int(math.Floor((ratios[i] / sum) * float64(total)))
		out[i] = w
		used += w
	}
	for i := 0; used < total; i = (i + 1) % n {
		out[i]++
		used++
	}
	return out
}
