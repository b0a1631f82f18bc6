package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/linku/linku/internal/api"
	"github.com/linku/linku/internal/config"
	"github.com/linku/linku/internal/logging"
)

var mentorsCmd = &cobra.Command{
	Use:   "mentors",
	Short: "Look up student mentors for a program (no database)",
	Long: `Query the mentor directory for one school and program.

This is a stateless lookup — no quiz, no stored session required.`,
	RunE: runMentors,
}

func init() {
	mentorsCmd.Flags().String("school", "", "School name (required)")
	mentorsCmd.Flags().String("program", "", "Program name (required)")
	_ = mentorsCmd.MarkFlagRequired("school")
	_ = mentorsCmd.MarkFlagRequired("program")
}

func runMentors(cmd *cobra.Command, args []string) error {
	school, _ := cmd.Flags().GetString("school")
	program, _ := cmd.Flags().GetString("program")

	log, err := logging.New(config.JSONLog(), config.Debug())
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer log.Sync()

	client := api.New(config.APIURL(), config.Timeout(), log)

	mentors, err := client.ProgramMentors(cmd.Context(), school, program)
	if err != nil {
		return fmt.Errorf("mentor lookup: %w", err)
	}
	if len(mentors) == 0 {
		fmt.Printf("No mentors yet for %s — %s\n", school, program)
		return nil
	}

	fmt.Printf("Mentors for %s — %s:\n\n", school, program)
	for _, m := range mentors {
		fmt.Printf("  %s\n", m.Name)
		if m.Details != "" {
			fmt.Printf("    %s\n", m.Details)
		}
		if m.ContactLink != "" {
			fmt.Printf("    %s\n", m.ContactLink)
		}
		fmt.Println()
	}
	return nil
}
