package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var gapsCmd = &cobra.Command{
	Use:   "gaps",
	Short: "Show skill categories that need attention",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		result, err := a.Readiness.Gaps(cmd.Context(), a.LearnerID)
		if err != nil {
			return err
		}

		for _, g := range result.Gaps {
			fmt.Printf("  %-14s %3d%%\n", g.Category, g.Score)
		}
		if len(result.Gaps) > 0 {
			fmt.Println()
		}
		fmt.Println(result.Recommendation)
		return nil
	},
}
