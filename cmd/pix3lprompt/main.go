package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sant0-9/pix3lprompt/internal/config"
	"github.com/sant0-9/pix3lprompt/internal/history"
	"github.com/sant0-9/pix3lprompt/internal/logging"
	"github.com/sant0-9/pix3lprompt/internal/tui"
)

var version = "dev"

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("pix3lprompt", version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	cfg.ApplyEnv()

	dir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	path, err := config.ConfigPath()
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.Open(dir, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()

	store, err := history.Open(filepath.Join(dir, "history.json"))
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}

	logger.Info("starting", "version", version, "provider", cfg.AI.Provider)

	app := tui.NewApp(tui.Options{
		Config:     cfg,
		ConfigPath: path,
		History:    store,
		Logger:     logger,
	})
	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
