package main

import (
	"github.com/spf13/cobra"

	"github.com/GustavoFelipe17/projeto-livros-unisagrado/internal/db"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the livros table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := db.ConnectWithRetry(cfg)
			if err != nil {
				return err
			}
			if err := db.Migrate(database); err != nil {
				return err
			}
			ok("table livros is up to date (%s)", cfg.DBDriver)
			return nil
		},
	}
}
