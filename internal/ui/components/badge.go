package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/pathprep/pathprep/internal/ui/theme"
)

// Badge renders a short inline label with a colored background.
func Badge(text string, bg color.Color) string {
	return lipgloss.NewStyle().
		Background(bg).
		Foreground(theme.Text).
		Bold(true).
		Padding(0, 1).
		Render(text)
}

// PriorityBadge renders a recommendation priority marker.
func PriorityBadge(priority string) string {
	switch priority {
	case "high":
		return Badge("HIGH", theme.Error)
	case "medium":
		return Badge("MED", theme.Accent)
	default:
		return Badge("NORM", theme.Secondary)
	}
}

// TagBadge renders a practice item tag (weak or review).
func TagBadge(tag string) string {
	switch tag {
	case "weak":
		return Badge("WEAK", theme.Error)
	case "review":
		return Badge("REVIEW", theme.Primary)
	default:
		return Badge(tag, theme.Border)
	}
}
