package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var radarCmd = &cobra.Command{
	Use:   "radar",
	Short: "Show per-category skill scores",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		radar, err := a.Readiness.SkillRadar(cmd.Context(), a.LearnerID)
		if err != nil {
			return err
		}

		for _, cs := range radar {
			bar := renderBar(cs.Score, 30)
			fmt.Printf("  %-14s %s %3d%%\n", cs.Category, bar, cs.Score)
		}
		return nil
	},
}

// renderBar draws a fixed-width unicode bar for a 0-100 score.
func renderBar(score, width int) string {
	filled := width * score / 100
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
