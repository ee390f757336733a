package cli

import (
	"github.com/spf13/cobra"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Database management",
}

var dbMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDB(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		if err := d.Migrate(cmd.Context()); err != nil {
			return err
		}
		cmd.Println("Schema is up to date.")
		return nil
	},
}

func init() {
	dbCmd.AddCommand(dbMigrateCmd)
}
