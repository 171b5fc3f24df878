package main

import (
	"strconv"

	"gatehouse/config"
	logs "gatehouse/internal/infra/log"
	"gatehouse/internal/infra/persistence/migration"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// NewMigrateCmd creates the migrate subcommand.
func NewMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: withMigrator(func(cmd *cobra.Command, m *migration.Migrator, _ []string) error {
			if err := m.Up(); err != nil {
				return err
			}
			cmd.Println("Migrations completed successfully")

			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down [steps]",
		Short: "Roll back migrations, all of them when steps is omitted",
		Args:  cobra.MaximumNArgs(1),
		RunE: withMigrator(func(cmd *cobra.Command, m *migration.Migrator, args []string) error {
			if len(args) == 0 {
				if err := m.Down(); err != nil {
					return err
				}
				cmd.Println("All migrations rolled back")

				return nil
			}

			steps, err := strconv.Atoi(args[0])
			if err != nil || steps <= 0 {
				return errors.Errorf("steps must be a positive integer, got %q", args[0])
			}
			if err := m.Steps(-steps); err != nil {
				return err
			}
			cmd.Printf("Rolled back %d migration(s)\n", steps)

			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		RunE: withMigrator(func(cmd *cobra.Command, m *migration.Migrator, _ []string) error {
			version, dirty, err := m.Version()
			if err != nil {
				return err
			}
			cmd.Printf("version=%d dirty=%t\n", version, dirty)

			return nil
		}),
	})

	return cmd
}

type migratorFunc func(cmd *cobra.Command, m *migration.Migrator, args []string) error

// withMigrator loads config, opens the migrator and closes it after fn.
func withMigrator(fn migratorFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		cfg, err := config.New()
		if err != nil {
			return err
		}

		logger, err := logs.New(logs.Params{Config: cfg})
		if err != nil {
			return err
		}

		m, err := migration.Open(cfg, logger)
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := m.Close(); closeErr != nil && err == nil {
				err = closeErr
			}
		}()

		return fn(cmd, m, args)
	}
}
