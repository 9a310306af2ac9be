// Package style provides shared colors and icons for terminal output.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/digest/internal/core/domain"
)

// Palette.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Circle  = "○"
)

// StatusIcon returns the icon for a run outcome.
func StatusIcon(o domain.Outcome) string {
	switch {
	case o.Skipped:
		return Circle
	case o.Status == domain.StatusSuccess:
		return Check
	case o.Status == domain.StatusPartialSuccess:
		return Tilde
	default:
		return Cross
	}
}

// StatusColor returns the color for a run outcome.
func StatusColor(o domain.Outcome) lipgloss.Color {
	switch {
	case o.Skipped:
		return Slate
	case o.Status == domain.StatusSuccess:
		return Green
	case o.Status == domain.StatusPartialSuccess:
		return Yellow
	default:
		return Red
	}
}
