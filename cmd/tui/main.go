package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kspsusmitha/fitness-app/internal/app"
	"github.com/kspsusmitha/fitness-app/internal/config"
	"github.com/kspsusmitha/fitness-app/internal/tui"
	"github.com/kspsusmitha/fitness-app/pkg/utils"
	log "github.com/sirupsen/logrus"
)

func main() {
	if err := run(); err != nil {
		// лог уже в файле, ошибку показываем в терминале
		fmt.Fprintln(os.Stderr, "fitness-tui:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.Path())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	utils.Setup(cfg.Logging.Level, cfg.Logging.Format)

	// Лог в файл, иначе он ломает экран
	f, err := os.OpenFile("fitness-tui.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()
	log.SetOutput(f)
	utils.Log.SetOutput(f)

	ctx := context.Background()
	a, err := app.Build(ctx, cfg)
	if err != nil {
		return fmt.Errorf("build services: %w", err)
	}
	defer a.Close()

	if _, err := tea.NewProgram(tui.New(ctx, a.Services), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
