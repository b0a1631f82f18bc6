package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/linku/linku/internal/api"
	"github.com/linku/linku/internal/config"
	"github.com/linku/linku/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "linku",
	Short: "University match finder in your terminal",
	Long:  "LinkU — terminal client that quizzes you on what matters, scores university programs against your answers, and connects you with student mentors.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	config.SetDefaults()
	viper.SetEnvPrefix("LINKU")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LINKU_DB env var)")
	rootCmd.PersistentFlags().String("api-url", api.DefaultBaseURL, "Base URL of the backend")
	rootCmd.PersistentFlags().Duration("timeout", api.DefaultTimeout, "Per-request timeout for backend calls")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json-log", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("out-dir", ".", "Directory exported reports are written to")

	viper.BindPFlag(config.KeyAPIURL, rootCmd.PersistentFlags().Lookup("api-url"))
	viper.BindPFlag(config.KeyTimeout, rootCmd.PersistentFlags().Lookup("timeout"))
	viper.BindPFlag(config.KeyDebug, rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag(config.KeyJSONLog, rootCmd.PersistentFlags().Lookup("json-log"))
	viper.BindPFlag(config.KeyOutDir, rootCmd.PersistentFlags().Lookup("out-dir"))

	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(mentorsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LINKU_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
