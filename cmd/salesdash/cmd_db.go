package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gurpreet0022/sales-dashboard/config"
	"github.com/Gurpreet0022/sales-dashboard/database/seeders"
	"github.com/Gurpreet0022/sales-dashboard/pkg/database"
	"github.com/Gurpreet0022/sales-dashboard/pkg/migration"
)

// bootDB loads config and opens the database connection.
func bootDB() error {
	if err := config.Load(); err != nil {
		return err
	}
	return database.Connect()
}

// salesdash db:init — the explicit reset step: drop everything, rebuild the
// schema, load the demo dataset.
var dbInitCmd = &cobra.Command{
	Use:   "db:init",
	Short: "Initialize the database from scratch (drop, migrate, seed)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		fmt.Println("Rebuilding schema…")
		if err := migration.New(database.DB).Fresh(); err != nil {
			return err
		}
		fmt.Println("Seeding demo data…")
		if err := seeders.RunAll(database.DB); err != nil {
			return err
		}
		fmt.Println("Database initialized successfully.")
		return nil
	},
}

// salesdash migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run all pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		fmt.Println("Running migrations…")
		return migration.New(database.DB).Run()
	},
}

// salesdash migrate:rollback
var migrateRollbackCmd = &cobra.Command{
	Use:   "migrate:rollback",
	Short: "Rollback the last batch of migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		fmt.Println("Rolling back last batch…")
		return migration.New(database.DB).Rollback()
	},
}

// salesdash migrate:status
var migrateStatusCmd = &cobra.Command{
	Use:   "migrate:status",
	Short: "Show the status of each migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		return migration.New(database.DB).Status()
	},
}

// salesdash seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run all database seeders",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		fmt.Println("Running seeders…")
		return seeders.RunAll(database.DB)
	},
}
