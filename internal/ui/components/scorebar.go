package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/pathprep/pathprep/internal/ui/theme"
)

// ScoreBar displays a labeled horizontal mastery bar, colored by band.
type ScoreBar struct {
	Label string
	Score int // 0-100
	Width int
}

// NewScoreBar creates a score bar.
func NewScoreBar(label string, score, width int) ScoreBar {
	return ScoreBar{Label: label, Score: score, Width: width}
}

// View renders the bar.
func (s ScoreBar) View() string {
	var result string

	if s.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(s.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 6 // "  100%"

	barWidth := s.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := barWidth * s.Score / 100
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	result += lipgloss.NewStyle().
		Background(theme.ScoreColor(s.Score)).
		Render(strings.Repeat(" ", filled))
	result += lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	result += lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %d%%", s.Score))

	return result
}
