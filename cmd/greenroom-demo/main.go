package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"greenroom/controller"
	"greenroom/host"
	"greenroom/internal/config"
	"greenroom/internal/database"
	"greenroom/internal/database/repository"
	"greenroom/internal/screens"
	"greenroom/internal/service"
)

func main() {
	ctx := context.Background()

	if os.Getenv("GREENROOM_DEBUG") != "" {
		f, err := tea.LogToFile("greenroom.log", "debug")
		if err != nil {
			log.Fatalf("debug log: %v", err)
		}
		defer f.Close()
		logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
		slog.SetDefault(logger)
		controller.SetLogger(logger)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db, "internal/database/migrations"); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := database.SeedDefaults(ctx, db); err != nil {
		log.Fatalf("seed defaults: %v", err)
	}

	repo := repository.NewNoteRepo(db)
	search := &service.NoteSearch{Notes: repo}

	list := screens.NewList(ctx, repo, search, cfg)
	nav := controller.NewNavigationController(list)

	p := tea.NewProgram(host.New(nav), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
