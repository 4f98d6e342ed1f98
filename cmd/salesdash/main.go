package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import migrations and seeders so their init() funcs run and
	// register themselves before any command executes.
	_ "github.com/Gurpreet0022/sales-dashboard/database/migrations"
	_ "github.com/Gurpreet0022/sales-dashboard/database/seeders"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "salesdash",
	Short: "salesdash — e-commerce sales analytics dashboard",
	Long:  "salesdash serves aggregated sales reports (revenue, top products, trends) from a relational store over JSON, CSV and a live WebSocket feed.",
}

func init() {
	// Server
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)

	// Database
	rootCmd.AddCommand(dbInitCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(migrateRollbackCmd)
	rootCmd.AddCommand(migrateStatusCmd)
	rootCmd.AddCommand(seedCmd)

	// Reports
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(exportCmd)
}
