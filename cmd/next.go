package cmd

import (
	"fmt"

	"github.com/pathprep/pathprep/internal/skillgraph"
	"github.com/spf13/cobra"
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Show concepts unlocked by current mastery",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		concepts, err := a.NextConcepts(cmd.Context())
		if err != nil {
			return err
		}

		if len(concepts) == 0 {
			fmt.Println("No new concepts unlocked. Master what you have in progress first.")
			return nil
		}

		fmt.Println("Ready to start:")
		for _, c := range concepts {
			fmt.Printf("  %-24s %-12s ~%dh  %s\n",
				c.ID, skillgraph.PhaseDisplayName(c.Phase), c.EstimatedHours, c.Title)
		}
		return nil
	},
}
