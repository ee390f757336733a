package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasnoah/lintgate/internal/db"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent lint runs recorded in the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		tool, _ := cmd.Flags().GetString("tool")
		limit, _ := cmd.Flags().GetInt("limit")

		d, err := openDB(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		runs, err := d.RecentRuns(cmd.Context(), tool, limit)
		if err != nil {
			return fmt.Errorf("get run history: %w", err)
		}
		if len(runs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded.")
			return nil
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%-6s %-15s %-12s %-5s %-6s %-8s %s\n",
			"ID", "TOOL", "FORMAT", "EXIT", "FILES", "ISSUES", "WHEN")
		fmt.Fprintf(w, "%s\n", strings.Repeat("-", 70))
		for _, r := range runs {
			fmt.Fprintf(w, "%-6d %-15s %-12s %-5d %-6d %-8d %s\n",
				r.ID, r.Tool, r.Format, r.ExitCode, r.Files, r.Total,
				r.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show [run-id]",
	Short: "Show the violations recorded for one run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		runID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid run id %q: %w", args[0], err)
		}

		d, err := openDB(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		vs, err := d.RunViolations(cmd.Context(), runID)
		if err != nil {
			return fmt.Errorf("get violations: %w", err)
		}
		if len(vs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No violations recorded for this run.")
			return nil
		}

		w := cmd.OutOrStdout()
		current := ""
		for _, v := range vs {
			if v.Path != current {
				current = v.Path
				fmt.Fprintf(w, "%s\n", current)
			}
			fmt.Fprintf(w, "  %d:%d  %s  %s\n", v.Line, v.Column, v.Code, v.Message)
		}
		return nil
	},
}

// openDB connects to the configured database, preferring the config file's
// database_url and falling back to LINTGATE_DATABASE_URL.
func openDB(cmd *cobra.Command) (*db.DB, error) {
	configured := ""
	if cfg, err := loadConfig(); err == nil {
		configured = cfg.Lint.DatabaseURL
	}
	url := db.ResolveURL(configured)
	if url == "" {
		return nil, fmt.Errorf("no database configured (set lint.database_url or LINTGATE_DATABASE_URL)")
	}
	return db.Connect(cmd.Context(), url)
}

func init() {
	historyCmd.Flags().String("tool", "", "Filter by tool name")
	historyCmd.Flags().Int("limit", 20, "Maximum number of runs to show")
}
