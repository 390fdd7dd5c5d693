// AngelaMos | 2026
// migrate.go

package main

import (
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded schema to the configured SQL database",
		RunE:  migrateCommand,
	}
}

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the demo account into the configured SQL database",
		Long: `Load the demo user, brand settings, platform connections, templates
and posts. The schema is applied first. Running it twice is harmless.`,
		RunE: seedCommand,
	}
}

func migrateCommand(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := openSQLStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer store.Close() //nolint:errcheck // process exits next

	if err := store.Migrate(cmd.Context()); err != nil {
		return err
	}

	logger.Info("database schema applied", "driver", cfg.Storage.Driver)
	return nil
}

func seedCommand(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := openSQLStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer store.Close() //nolint:errcheck // process exits next

	if err := store.Migrate(cmd.Context()); err != nil {
		return err
	}

	return seedSQLStore(cmd.Context(), store, cfg.Location(), logger)
}
