package main

import (
	"fmt"

	"github.com/aussiebroadwan/passkeep/internal/vault/app"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := app.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		db, err := app.OpenStore(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.ApplyMigrations(); err != nil {
			return fmt.Errorf("failed to apply database migrations: %w", err)
		}

		version, dirty, err := db.SchemaVersion()
		if err != nil {
			return fmt.Errorf("failed to read schema version: %w", err)
		}
		cmd.Printf("database %s at schema version %d (dirty=%t)\n", cfg.DatabaseFile, version, dirty)
		return nil
	},
}
