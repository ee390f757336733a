package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/lucasnoah/lintgate/internal/violations"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [format] [file]",
	Short: "Normalize raw lint output from a file (or stdin) into violations",
	Long: `Parse reads raw lint tool output and prints the normalized per-file
violations. With no file argument (or "-"), input is read from stdin.

The format key selects the parser; see "lintgate formats" for the list.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		// Resolve the format before touching any input: a bad key is a
		// configuration error, not a parse error.
		parser, err := violations.Lookup(format)
		if err != nil {
			return err
		}

		var raw []byte
		if len(args) == 2 && args[1] != "-" {
			raw, err = os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
		} else {
			raw, err = io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}
		}

		root, _ := cmd.Flags().GetString("root")
		if root == "" {
			root, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}
		}

		vmap, err := parser.Parse(string(raw), root)
		if err != nil {
			return err
		}

		output, _ := cmd.Flags().GetString("output")
		w := cmd.OutOrStdout()
		switch output {
		case "json":
			data, err := json.MarshalIndent(vmap, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal violations: %w", err)
			}
			fmt.Fprintln(w, string(data))
		case "text":
			for _, path := range vmap.Paths() {
				vs := vmap.Get(path)
				fmt.Fprintf(w, "%s (%d)\n", path, len(vs))
				for _, v := range vs {
					fmt.Fprintf(w, "  %d:%d  %s  %s\n", v.Line, v.Column, v.Code, v.Message)
				}
			}
			fmt.Fprintf(w, "\n%d violations in %d files\n", vmap.Total(), vmap.Len())
		default:
			return fmt.Errorf("unknown output format %q (want text or json)", output)
		}
		return nil
	},
}

func init() {
	parseCmd.Flags().String("root", "", "Working root for path normalization (default: current directory)")
	parseCmd.Flags().String("output", "text", "Output format: text or json")
}
