package main

import (
	"context"
	"errors"
	"fmt"

	pg "maternal-care-api/internal/adapters/storage/postgres"
	"maternal-care-api/internal/config"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	var printOnly bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the Postgres schema (idempotent)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if printOnly {
				for _, stmt := range pg.SchemaStatements() {
					fmt.Fprintf(cmd.OutOrStdout(), "%s;\n\n", stmt)
				}
				return nil
			}

			path, _ := cmd.Flags().GetString("config")
			cfg, err := config.LoadFile(path)
			if err != nil {
				return err
			}
			if cfg.DBDSN == "" {
				return errors.New("DB_DSN is required")
			}

			db, err := pg.Open(cfg.DBDSN)
			if err != nil {
				return err
			}
			defer db.Close()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if err := pg.Migrate(ctx, db); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Schema applied successfully.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&printOnly, "print", false, "Solo imprimir el SQL, sin conectarse")
	return cmd
}
