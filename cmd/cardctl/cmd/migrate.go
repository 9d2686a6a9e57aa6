package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/templui/lenscard/internal/config"
	"github.com/templui/lenscard/internal/db"
)

func MigrateCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the snapshot registry schema",
	}

	c.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			conn, err := db.Init(cfg.DBDriver, cfg.DBConnection)
			if err != nil {
				return err
			}
			defer db.Close(conn)
			return db.RunMigrations(cmd.Context(), conn.DB, cfg.DBDriver)
		},
	})

	c.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the latest migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			conn, err := db.Init(cfg.DBDriver, cfg.DBConnection)
			if err != nil {
				return err
			}
			defer db.Close(conn)
			return db.MigrateDown(cmd.Context(), conn.DB, cfg.DBDriver)
		},
	})

	c.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "List registry migrations and whether they are applied",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			conn, err := db.Init(cfg.DBDriver, cfg.DBConnection)
			if err != nil {
				return err
			}
			defer db.Close(conn)

			statuses, err := db.Status(cmd.Context(), conn.DB, cfg.DBDriver)
			if err != nil {
				return err
			}
			for _, s := range statuses {
				state := "pending"
				if s.Applied {
					state = "applied"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%05d  %-8s %s\n", s.Version, state, s.Name)
			}
			return nil
		},
	})

	return c
}
