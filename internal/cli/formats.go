package cli

import (
	"fmt"

	"github.com/lucasnoah/lintgate/internal/violations"
	"github.com/spf13/cobra"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the supported lint output formats",
	Run: func(cmd *cobra.Command, args []string) {
		for _, f := range violations.Formats() {
			fmt.Fprintln(cmd.OutOrStdout(), f)
		}
	},
}
