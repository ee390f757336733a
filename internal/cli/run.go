package cli

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/lucasnoah/lintgate/internal/config"
	"github.com/lucasnoah/lintgate/internal/db"
	"github.com/lucasnoah/lintgate/internal/runner"
	"github.com/lucasnoah/lintgate/internal/store"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [tool...]",
	Short: "Run configured lint tools and normalize their output",
	Long: `Run executes the named tools from the config (all of them when none are
named) in the working root, normalizes each tool's output, archives raw
output and parsed results, and prints a summary. The command exits non-zero
when any tool reported violations.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if errs := config.Validate(cfg); len(errs) > 0 {
			return fmt.Errorf("config has %d validation error(s); run \"lintgate config validate\"", len(errs))
		}

		names := args
		if len(names) == 0 {
			for name := range cfg.Lint.Tools {
				names = append(names, name)
			}
			sort.Strings(names)
		}

		var tools []runner.ToolConfig
		for _, name := range names {
			tool, ok := cfg.Lint.Tools[name]
			if !ok {
				return fmt.Errorf("tool %q not defined in config", name)
			}
			tools = append(tools, runner.ToolConfig{
				Name:    name,
				Command: tool.Command,
				Format:  tool.Format,
				Timeout: parseDuration(tool.Timeout, 2*time.Minute),
			})
		}

		ctx := cmd.Context()
		r := runner.NewRunner(&runner.ExecRunner{})
		results, err := r.RunAll(ctx, cfg.Lint.WorkingRoot, tools)
		if err != nil {
			return err
		}

		noDB, _ := cmd.Flags().GetBool("no-db")
		var d *db.DB
		if url := db.ResolveURL(cfg.Lint.DatabaseURL); url != "" && !noDB {
			d, err = db.Connect(ctx, url)
			if err != nil {
				return fmt.Errorf("connect database: %w", err)
			}
			defer d.Close()
		}

		s, err := store.DefaultStore()
		if err != nil {
			return err
		}

		total := 0
		w := cmd.OutOrStdout()
		for _, res := range results {
			runID, err := persistRun(ctx, d, s, res)
			if err != nil {
				return err
			}

			status := "CLEAN"
			if res.Violations.Total() > 0 {
				status = "ISSUES"
			}
			idNote := ""
			if runID > 0 {
				idNote = fmt.Sprintf(" (run %d)", runID)
			}
			fmt.Fprintf(w, "[%s] %s — %d violations in %d files, %dms%s\n",
				status, res.Tool, res.Violations.Total(), res.Violations.Len(), res.DurationMs, idNote)
			total += res.Violations.Total()
		}

		if total > 0 {
			cmd.SilenceUsage = true
			return fmt.Errorf("%d violations found", total)
		}
		return nil
	},
}

// persistRun records a result in the database when one is connected (d may
// be nil) and always archives the artifacts on disk. Returns the database
// run id, or 0 when no database is in use.
func persistRun(ctx context.Context, d *db.DB, s *store.Store, res *runner.Result) (int64, error) {
	var runID int64

	if d != nil {
		var err error
		runID, err = d.RecordRun(ctx, res.Tool, res.Format, res.ExitCode, res.DurationMs, res.Violations)
		if err != nil {
			return 0, fmt.Errorf("record run: %w", err)
		}
	}

	artifactID := runID
	if artifactID == 0 {
		// No database id to key by; use a timestamp so artifacts still land
		// in a unique directory.
		artifactID = time.Now().UnixMilli()
	}
	if err := s.SaveRun(artifactID, res); err != nil {
		return 0, fmt.Errorf("archive run: %w", err)
	}
	return runID, nil
}

// parseDuration parses a duration string, falling back to a default.
func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

func init() {
	runCmd.Flags().Bool("no-db", false, "Skip recording results in the database")
}
