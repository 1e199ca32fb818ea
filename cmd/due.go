package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "List concepts due for spaced repetition review",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		due, err := a.Mastery.DueForReview(cmd.Context(), a.LearnerID)
		if err != nil {
			return err
		}

		if len(due) == 0 {
			fmt.Println("Nothing due for review. Nice.")
			return nil
		}

		now := a.Now()
		fmt.Printf("%d concept(s) due, most overdue first:\n\n", len(due))
		for _, r := range due {
			title := r.ConceptID
			if c, ok := a.Graph.Get(r.ConceptID); ok {
				title = c.Title
			}
			overdue := int(r.OverdueDays(now))
			when := "due today"
			if overdue == 1 {
				when = "1 day overdue"
			} else if overdue > 1 {
				when = fmt.Sprintf("%d days overdue", overdue)
			}
			fmt.Printf("  %-28s %3d%%  %s\n", title, r.Score, when)
		}
		return nil
	},
}
