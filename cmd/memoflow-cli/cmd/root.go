package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"memoflow/internal/adapters/sqlite"
	"memoflow/internal/config"
	"memoflow/internal/logger"
	"memoflow/internal/ports"
)

var (
	configPath string
	dbPath     string
	store      *sqlite.Store
)

var rootCmd = &cobra.Command{
	Use:   "memoflow-cli",
	Short: "CLI for managing memoflow sticky notes",
	Long: `memoflow-cli manages the sticky notes shown on the memoflow board.

It provides commands to list, create, edit, delete and import notes,
and to inspect the labels in use.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help and config scaffolding
		switch cmd.Name() {
		case "help", "completion", "init-config":
			return nil
		}

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if dbPath != "" {
			cfg.Store.Path = dbPath
		}
		if _, err := logger.Init(cfg.Log.Level, cfg.Log.File); err != nil {
			return err
		}

		store, err = sqlite.Open(cfg.Store.Path)
		if err != nil {
			return err
		}
		logger.New("cli").WithField("db", store.Path()).Debug("store opened")
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store == nil {
			return nil
		}
		return store.Close()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to memoflow.toml")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the notes database (overrides config)")
}

// GetRepo returns the initialized repository
func GetRepo() ports.NoteRepository {
	return store
}
