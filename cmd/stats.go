package cmd

import (
	"fmt"
	"sort"

	"github.com/pathprep/pathprep/internal/content"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		stats, err := a.Readiness.Stats(ctx, a.LearnerID, a.Now())
		if err != nil {
			return err
		}

		fmt.Printf("Concepts practiced:  %d\n", stats.TotalPracticed)
		fmt.Printf("Average mastery:     %d%%\n", stats.AverageMastery)
		fmt.Printf("Success rate:        %d%% (%d/%d)\n",
			stats.SuccessRate, stats.TotalSuccesses, stats.TotalExposures)
		fmt.Printf("Due for review:      %d\n\n", stats.DueForReview)

		fmt.Printf("  Mastered (80+):    %d\n", stats.MasteredCount)
		fmt.Printf("  Proficient (60+):  %d\n", stats.ProficientCount)
		fmt.Printf("  Learning (40+):    %d\n", stats.LearningCount)
		fmt.Printf("  Struggling (<40):  %d\n", stats.StrugglingCount)

		difficulty, err := a.Readiness.DifficultyLevel(ctx, a.LearnerID)
		if err != nil {
			return err
		}
		fmt.Printf("\nSuggested difficulty: %s\n", difficulty)

		// Content API spend is best effort; stats still succeed
		// without it.
		usage, err := a.Store.Events().ContentUsageByModel(ctx)
		if err == nil && len(usage) > 0 {
			models := make([]string, 0, len(usage))
			for m := range usage {
				models = append(models, m)
			}
			sort.Strings(models)

			fmt.Println("\nContent generation:")
			for _, model := range models {
				u := usage[model]
				line := fmt.Sprintf("  %-28s %d request(s), %d in / %d out tokens",
					model, u.Requests, u.InputTokens, u.OutputTokens)
				if c := content.LookupCost(model); c != nil {
					line += fmt.Sprintf("  (~$%.4f)", c.Cost(u.InputTokens, u.OutputTokens))
				}
				fmt.Println(line)
			}
		}
		return nil
	},
}
