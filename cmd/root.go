package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/mathmentor/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "mathmentor",
	Short: "Math misconception diagnosis service",
	Long:  "MathMentor — backend service that diagnoses why a student's math answer is wrong and evaluates answers, with structured-output guarantees over an unreliable LLM.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MENTOR_DB env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MENTOR_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
