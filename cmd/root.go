package cmd

import (
	"github.com/abhisek/preflight/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "preflight",
	Short: "Dry-run an assessment against a synthetic learner population",
	Long: "Preflight simulates how a population of learners would perform on an " +
		"assessment before any real student sees it, and ranks the structural " +
		"weaknesses it finds.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite run-history file (overrides PREFLIGHT_DB env var)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(chartsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(overlaysCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the run-history path using --db flag (highest
// priority), then PREFLIGHT_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
