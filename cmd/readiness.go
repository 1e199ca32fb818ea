package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var readinessCmd = &cobra.Command{
	Use:   "readiness",
	Short: "Evaluate job readiness for a target role",
	RunE: func(cmd *cobra.Command, args []string) error {
		role, _ := cmd.Flags().GetString("role")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		result, err := a.Readiness.Readiness(cmd.Context(), a.LearnerID, role)
		if err != nil {
			return err
		}

		fmt.Printf("Readiness for %s: %d%% — %s\n\n", result.Role, result.Overall, result.Level)
		fmt.Printf("  Mastery      %3d%%  (40%% of score)\n", result.Breakdown.Mastery)
		fmt.Printf("  Coverage     %3d%%  (30%% of score)\n", result.Breakdown.Coverage)
		fmt.Printf("  Consistency  %3d%%  (30%% of score)\n", result.Breakdown.Consistency)
		return nil
	},
}

func init() {
	readinessCmd.Flags().String("role", "frontend", "Target role: frontend, backend, or fullstack")
}
