package cmd

import (
	"os"

	"github.com/pathprep/pathprep/internal/app"
	"github.com/pathprep/pathprep/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pathprep",
	Short: "Learning progress tracker for aspiring web developers",
	Long: "PathPrep tracks concept mastery across an HTML/CSS/JavaScript " +
		"curriculum, schedules spaced reviews, assembles practice sessions, " +
		"and reports job readiness.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PATHPREP_DB env var)")
	rootCmd.PersistentFlags().String("learner", "", "Learner ID (overrides PATHPREP_LEARNER env var)")
	rootCmd.PersistentFlags().String("registry", "", "Path to a concept registry JSON file (default: embedded curriculum)")

	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(readinessCmd)
	rootCmd.AddCommand(radarCmd)
	rootCmd.AddCommand(gapsCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then PATHPREP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveLearnerID returns the learner using --learner, then
// PATHPREP_LEARNER, then the single-user default.
func resolveLearnerID(cmd *cobra.Command) string {
	if l, _ := cmd.Flags().GetString("learner"); l != "" {
		return l
	}
	if l := os.Getenv("PATHPREP_LEARNER"); l != "" {
		return l
	}
	return app.DefaultLearnerID
}

// openApp assembles the application from command flags.
func openApp(cmd *cobra.Command) (*app.App, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	registry, _ := cmd.Flags().GetString("registry")

	return app.New(app.Options{
		DBPath:       dbPath,
		LearnerID:    resolveLearnerID(cmd),
		RegistryPath: registry,
	})
}
