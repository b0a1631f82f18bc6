package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/linku/linku/internal/api"
	"github.com/linku/linku/internal/app"
	"github.com/linku/linku/internal/catalog"
	"github.com/linku/linku/internal/config"
	"github.com/linku/linku/internal/logging"
	"github.com/linku/linku/internal/report"
	"github.com/linku/linku/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	log, err := logging.New(config.JSONLog(), config.Debug())
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer log.Sync()

	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("load question catalog: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	repo := st.SessionRepo()
	client := api.New(config.APIURL(), config.Timeout(), log)
	exporter := report.New(repo, client, config.OutDir(), log)

	return app.Run(app.Options{
		Catalog:  cat,
		Repo:     repo,
		Client:   client,
		Exporter: exporter,
	})
}
