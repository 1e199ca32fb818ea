package cmd

import (
	"fmt"

	"github.com/pathprep/pathprep/internal/tui"
	"github.com/spf13/cobra"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Generate a mixed practice session",
	Long: "Assembles a practice session of weak and due-for-review " +
		"concepts. With --interactive, walks through the session in the " +
		"terminal and records each outcome.",
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		interactive, _ := cmd.Flags().GetBool("interactive")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		sess, err := a.Sessions.MixedPractice(cmd.Context(), a.LearnerID, count)
		if err != nil {
			return err
		}

		if interactive {
			pct, err := a.ProgressPercentage(cmd.Context())
			if err != nil {
				return err
			}
			return tui.RunPractice(a.Mastery, a.Graph, sess, pct)
		}

		if sess.Empty() {
			fmt.Println("Nothing to practice yet. Start with `pathprep next`.")
			return nil
		}

		fmt.Printf("Practice session (%d concepts):\n\n", len(sess.Items))
		for i, item := range sess.Items {
			title := item.ConceptID
			if c, ok := a.Graph.Get(item.ConceptID); ok {
				title = c.Title
			}
			fmt.Printf("  %d. %-28s %3d%%  [%s]\n", i+1, title, item.Score, item.Tag)
		}
		fmt.Println("\nRun with --interactive to work through it and record results.")
		return nil
	},
}

func init() {
	practiceCmd.Flags().IntP("count", "n", 5, "Number of concepts in the session")
	practiceCmd.Flags().BoolP("interactive", "i", false, "Run the session interactively")
}
