package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/linku/linku/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the stored session (answers, matches, preferences)",
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")
}

func runReset(cmd *cobra.Command, args []string) error {
	if yes, _ := cmd.Flags().GetBool("yes"); !yes {
		fmt.Print("This deletes your stored answers and matches. Continue? [y/N] ")
		reader := bufio.NewReader(os.Stdin)
		line, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(line)) != "y" {
			fmt.Println("Aborted.")
			return nil
		}
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

	if err := st.SessionRepo().Clear(cmd.Context()); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	fmt.Println("Session cleared.")
	return nil
}
