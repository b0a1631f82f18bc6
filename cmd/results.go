package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/linku/linku/internal/match"
	"github.com/linku/linku/internal/store"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Print the stored match results as a table",
	RunE:  runResults,
}

func runResults(cmd *cobra.Command, args []string) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	matches, err := st.SessionRepo().LoadMatches(cmd.Context())
	if err != nil {
		return fmt.Errorf("load matches: %w", err)
	}
	if len(matches) == 0 {
		fmt.Println("No matches stored. Run the quiz first: linku")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Rank", "School", "Program", "Overall", "Academic", "Campus", "Social"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, m := range matches {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			m.School,
			m.Program,
			match.Percent(m.Overall),
			match.Percent(m.Academic),
			match.Percent(m.Campus),
			match.Percent(m.Social),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
