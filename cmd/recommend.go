package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Show what to work on next",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		recs, err := a.Ranker.Recommend(cmd.Context(), a.LearnerID)
		if err != nil {
			return err
		}

		for i, r := range recs {
			marker := "·"
			switch r.Priority {
			case "high":
				marker = "!"
			case "medium":
				marker = "*"
			}
			fmt.Printf("%s %d. %s\n", marker, i+1, r.Title)
			fmt.Printf("     %s\n", r.Reason)
		}
		return nil
	},
}
