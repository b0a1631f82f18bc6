package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/linku/linku/internal/api"
	"github.com/linku/linku/internal/config"
	"github.com/linku/linku/internal/logging"
	"github.com/linku/linku/internal/report"
	"github.com/linku/linku/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full match report as a PDF",
	Long: `Regenerate the complete match report from the stored quiz answers
and write it to the output directory as a dated PDF.`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	log, err := logging.New(config.JSONLog(), config.Debug())
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer log.Sync()

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

	path, err := exporter.Export(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Println("Report saved to", path)
	return nil
}
