package cmd

import (
	"fmt"

	"github.com/pathprep/pathprep/internal/content"
	"github.com/pathprep/pathprep/internal/session"
	"github.com/spf13/cobra"
)

var explainCmd = &cobra.Command{
	Use:   "explain <concept-id>",
	Short: "Generate an explanation of a concept",
	Long: "Asks the configured content provider for a structured " +
		"explanation of a concept, and lists older weak or due concepts " +
		"worth folding into the same study block.",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		concept, ok := a.Graph.Get(args[0])
		if !ok {
			return fmt.Errorf("unknown concept %q", args[0])
		}

		ctx := cmd.Context()
		provider, err := a.ContentProvider(ctx)
		if err != nil {
			return fmt.Errorf("content provider not configured: %w", err)
		}

		ex, err := content.Explain(ctx, provider, concept)
		if err != nil {
			return err
		}

		fmt.Printf("%s\n\n%s\n\n", concept.Title, ex.Summary)
		for _, p := range ex.KeyPoints {
			fmt.Printf("  • %s\n", p)
		}
		fmt.Printf("\nExample:\n%s\n", ex.Example)
		fmt.Printf("\nTry this: %s\n", ex.PracticeTip)

		printReinforcements(cmd, a.Sessions, a.LearnerID, concept.ID)
		return nil
	},
}

// printReinforcements suggests older concepts to revisit alongside the
// one being studied. Best effort.
func printReinforcements(cmd *cobra.Command, gen *session.Generator, learnerID, conceptID string) {
	reinforcements, err := gen.Reinforcements(cmd.Context(), learnerID, conceptID)
	if err != nil || len(reinforcements) == 0 {
		return
	}

	fmt.Println("\nWhile you're at it, also revisit:")
	for _, r := range reinforcements {
		fmt.Printf("  %-24s %3d%%  (%s)\n", r.ConceptID, r.Score, r.Reason)
	}
}
