package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Widget is anything that can draw itself into a width x height box.
type Widget interface {
	Render(width, height int) string
}

// RenderFunc adapts a plain render function to the Widget interface.
type RenderFunc func(width, height int) string

func (f RenderFunc) Render(width, height int) string { return f(width, height) }

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
