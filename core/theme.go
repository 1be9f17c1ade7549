package core

import (
	"regexp"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorText     lipgloss.Color = "#cdd6f4"
	colorMuted    lipgloss.Color = "#a6adc8"
	colorBorder   lipgloss.Color = "#585b70"
	colorMantle   lipgloss.Color = "#181825"
	colorAccent   lipgloss.Color = "#89b4fa"
	colorSuccess  lipgloss.Color = "#a6e3a1"
	colorError    lipgloss.Color = "#f38ba8"
	colorTabOff   lipgloss.Color = "#7f849c"
	colorSurface0 lipgloss.Color = "#313244"
)

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ApplyAccent overrides the accent color from configuration. Call before the
// model starts rendering; invalid values are ignored.
func ApplyAccent(hex string) {
	if !hexColorRe.MatchString(hex) {
		return
	}
	colorAccent = lipgloss.Color(hex)
	rebuildStyles()
}
