package cmd

import (
	"github.com/spf13/cobra"

	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "mindmaker",
	Short: "AI leadership assessment",
	Long:  "Mindmaker for Leaders — self-assessment quiz with scored dimensions, narrative insights, and an HTTP API.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd, args)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MINDMAKER_DB env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(insightPreviewCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MINDMAKER_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
