package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var recordCmd = &cobra.Command{
	Use:   "record <concept-id>",
	Short: "Record one practice attempt at a concept",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failed, _ := cmd.Flags().GetBool("fail")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		rec, err := a.Mastery.RecordExposure(cmd.Context(), a.LearnerID, args[0], !failed)
		if err != nil {
			return err
		}

		title := rec.ConceptID
		if c, ok := a.Graph.Get(rec.ConceptID); ok {
			title = c.Title
		}

		fmt.Printf("%s: mastery %d%% (%s), %d/%d correct\n",
			title, rec.Score, rec.Status, rec.Successes, rec.Exposures)
		if rec.NextReviewAt != nil {
			fmt.Printf("Next review: %s\n", rec.NextReviewAt.Local().Format("2006-01-02"))
		}
		return nil
	},
}

func init() {
	recordCmd.Flags().Bool("fail", false, "Mark the attempt as unsuccessful")
}
