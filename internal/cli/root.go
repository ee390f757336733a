package cli

import (
	"github.com/spf13/cobra"
)

var version = "dev"

func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "lintgate",
	Short: "lintgate — normalize lint tool output into per-file violations",
	Long: `lintgate runs configured lint tools and normalizes their heterogeneous
output (unix-style lines, indented blocks, JSON reports) into one uniform
shape: a mapping from repository-relative file path to violations.

Raw output and parsed results are archived under ~/.lintgate/runs; run
history can optionally be recorded in Postgres (database_url in the config
or LINTGATE_DATABASE_URL).`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(formatsCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(dbCmd)
}
