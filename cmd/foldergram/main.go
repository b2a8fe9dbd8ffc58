package main

import (
	"context"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"foldergram/internal/app"
	"foldergram/internal/chatapi"
	"foldergram/internal/config"
	"foldergram/internal/storage"
	"foldergram/internal/tui"
	"foldergram/internal/tui/theme"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	repo, err := storage.NewRepository(cfg.DBPath)
	if err != nil {
		log.Fatalf("storage init error: %v", err)
	}
	defer repo.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := repo.Init(ctx); err != nil {
		log.Fatalf("storage schema error: %v", err)
	}
	if err := repo.CheckWritable(ctx); err != nil {
		log.Fatalf("storage write check failed (%v). Verify FOLDERGRAM_DB_PATH is writable: %s", err, cfg.DBPath)
	}

	httpClient, err := chatapi.NewHTTPClient(cfg.SOCKSProxy)
	if err != nil {
		log.Fatalf("proxy error: %v", err)
	}
	client := chatapi.NewClient(cfg.APIBaseURL, cfg.APIToken, httpClient)
	service := app.NewService(client, repo)

	folders, err := service.ListCachedFolders(ctx)
	if err != nil {
		log.Fatalf("cannot load cached folders: %v", err)
	}

	themes := theme.NewNotifier(theme.ByName(cfg.Theme))
	model := tui.NewModel(service, folders, themes, cfg.Theme)

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Fatalf("tui error: %v", err)
	}
}
