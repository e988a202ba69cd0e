package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dmruiz/frdojo/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "frdojo [track]",
	Short: "French vocabulary dojo for the terminal",
	Long:  "frdojo — flashcards, quizzes and sentence anatomy for French survival vocabulary, with spoken prompts.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		trackID := ""
		if len(args) > 0 {
			trackID = args[0]
		}
		return runApp(cmd, trackID)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// A local .env may carry FRDOJO_DB; absence is fine.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides FRDOJO_DB env var)")

	rootCmd.AddCommand(tracksCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then FRDOJO_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
