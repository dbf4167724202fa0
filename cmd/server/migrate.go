package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bastianbuilt.com/internal/storage"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the contacts table",
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := cfg.Logger().WithComponent("migrate")

	dbURL, err := cfg.DatabaseURL()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	store, err := storage.Open(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer store.Close()

	if err := store.Migrate(); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	logger.Info(ctx, "Migrations applied")
	return nil
}
