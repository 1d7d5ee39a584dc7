package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/kotoba/internal/app"
	"github.com/abhisek/kotoba/internal/catalog"
	"github.com/abhisek/kotoba/internal/session"
	"github.com/abhisek/kotoba/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "kotoba",
	Short: "Spaced-repetition Japanese study scheduler",
	Long:  "Kotoba — a spaced-repetition scheduler that sequences kana, kanji, vocabulary, and grammar study.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	// A missing .env file is fine; env vars still apply.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides KOTOBA_DB env var)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to a JSON catalog file (overrides KOTOBA_CATALOG env var)")

	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(answerCmd)
	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(graduateCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then KOTOBA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if p := os.Getenv("KOTOBA_DB"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func resolveCatalogPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("catalog"); p != "" {
		return p
	}
	return os.Getenv("KOTOBA_CATALOG")
}

// settingsFromEnv layers env var overrides onto the defaults.
func settingsFromEnv() session.Settings {
	s := session.DefaultSettings()
	if v, err := strconv.Atoi(os.Getenv("KOTOBA_NEW_QUOTA")); err == nil {
		s.DailyNewItemQuota = v
	}
	if v, err := strconv.Atoi(os.Getenv("KOTOBA_MAX_REVIEWS")); err == nil {
		s.MaxDailyReviews = v
	}
	if v, err := strconv.Atoi(os.Getenv("KOTOBA_GRADUATION_THRESHOLD")); err == nil {
		s.GraduationThreshold = v
	}
	if v := os.Getenv("KOTOBA_STRICT_DEPS"); v == "1" || v == "true" {
		s.SoftDependencies = false
	}
	return s.Clamped()
}

func openApp(cmd *cobra.Command) (*app.App, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return app.Open(dbPath, resolveCatalogPath(cmd), settingsFromEnv())
}

// parseKey turns "type id" arguments into an item key.
func parseKey(args []string) (catalog.Key, error) {
	t := catalog.ItemType(args[0])
	if !t.Valid() {
		return catalog.Key{}, fmt.Errorf("unknown item type %q", args[0])
	}
	return catalog.Key{Type: t, ID: args[1]}, nil
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
