package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all progress for the current learner",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if !force {
			fmt.Printf("This deletes all progress for learner %q. Type yes to continue: ", a.LearnerID)
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.TrimSpace(answer) != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := a.Store.ResetLearner(cmd.Context(), a.LearnerID); err != nil {
			return err
		}
		fmt.Printf("Progress for %q deleted.\n", a.LearnerID)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip the confirmation prompt")
}
