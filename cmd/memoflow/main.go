package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"memoflow/internal/adapters/clipboard"
	"memoflow/internal/adapters/editor"
	"memoflow/internal/adapters/sqlite"
	"memoflow/internal/adapters/tui"
	"memoflow/internal/config"
	"memoflow/internal/logger"
)

func main() {
	configFlag := flag.String("config", "", "path to memoflow.toml")
	dbFlag := flag.String("db", "", "path to the notes database (overrides config)")
	flag.Parse()

	if err := run(*configFlag, *dbFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, dbPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if dbPath != "" {
		cfg.Store.Path = dbPath
	}

	// The TUI owns the terminal, so logs always go to a file
	logFile := cfg.Log.File
	if logFile == "" {
		logFile = config.DefaultLogFile()
	}
	closer, err := logger.Init(cfg.Log.Level, logFile)
	if err != nil {
		return err
	}
	defer closer.Close()
	log := logger.New("tui")

	store, err := sqlite.Open(cfg.Store.Path)
	if err != nil {
		return err
	}
	defer store.Close()
	log.WithField("db", store.Path()).Info("memoflow starting")

	app := tui.NewApp(store, clipboard.New(), editor.NewOpener(), cfg.Marquee, log)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
