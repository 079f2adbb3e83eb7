package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yuchen/hanzideck/internal/config"
	"github.com/yuchen/hanzideck/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "hanzideck",
	Short: "Chinese vocabulary flashcards in the terminal",
	Long:  "Hanzideck — terminal flashcards for Chinese vocabulary, with graded levels, pinyin or English quizzing, and a personal review deck.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides HANZIDECK_DB env var)")

	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(cardsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using the --db flag (highest
// priority), then the config file / HANZIDECK_DB env var, then the
// default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg != nil && cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
