package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/trogers1052/supershares/internal/config"
	"github.com/trogers1052/supershares/internal/database"
)

var migrationsDir string

var migrateCMD = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		dir := cfg.Database.MigrationsDir
		if migrationsDir != "" {
			dir = migrationsDir
		}

		db, err := database.New(cfg.Database.ConnectionString())
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		log.Printf("Applying migrations from %s", dir)
		if err := db.RunMigrations(dir); err != nil {
			return err
		}
		log.Println("Migrations applied")
		return nil
	},
}

func init() {
	migrateCMD.Flags().StringVar(&migrationsDir, "dir", "", "migrations directory (default from DB_MIGRATIONS_DIR)")
}
