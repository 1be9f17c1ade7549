package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tteejj/supertui/app"
	"github.com/tteejj/supertui/core"
	"github.com/tteejj/supertui/internal/config"
	"github.com/tteejj/supertui/internal/logging"
	"github.com/tteejj/supertui/internal/store"
	"github.com/tteejj/supertui/widgets"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(cfg.Logging.Level)
	logCfg.Format = cfg.Logging.Format
	logCfg.Path = cfg.Logging.Path
	logger := logging.New(logCfg)

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	db, err := store.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := store.RunMigrationsWithDB(db, "internal/store/migrations"); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if cfg.UI.Accent != "" {
		core.ApplyAccent(cfg.UI.Accent)
	}

	provider := widgets.NewProvider(ctx, store.NewNoteRepo(db), store.NewTodoRepo(db))

	rt := app.Runtime{
		Ctx:        ctx,
		Cfg:        cfg,
		Log:        logger,
		Provider:   provider,
		Workspaces: store.NewWorkspaceRepo(db),
	}

	appTabs, err := app.BuildTabs(rt)
	if err != nil {
		log.Fatalf("restore workspaces: %v", err)
	}

	keys := core.NewKeyRegistry(core.ApplyActionKeybindings(core.DefaultKeyBindings(), cfg.Keys))
	commands := core.NewCommandRegistry(nil)
	m := core.NewModel(appTabs, keys, commands, logger)
	app.ConfigureModel(&m, rt, appTabs)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
