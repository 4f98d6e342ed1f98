package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Gurpreet0022/sales-dashboard/app/repositories"
	"github.com/Gurpreet0022/sales-dashboard/app/services"
	"github.com/Gurpreet0022/sales-dashboard/pkg/cache"
	"github.com/Gurpreet0022/sales-dashboard/pkg/database"
	"github.com/Gurpreet0022/sales-dashboard/pkg/export"
)

var reportRange string

func init() {
	reportCmd.Flags().StringVar(&reportRange, "range", "all", "date range: all, 30d, 90d or 1y")
	exportCmd.Flags().StringVar(&reportRange, "range", "all", "date range: all, 30d, 90d or 1y")
	exportCmd.Flags().StringVar(&exportDisk, "disk", "", "target disk: local or s3 (default from STORAGE_DISK)")
}

// newCLIService opens the database and builds an uncached report service.
func newCLIService() (*services.ReportService, error) {
	if err := bootDB(); err != nil {
		return nil, err
	}
	repo := repositories.NewReportRepository(database.DB)
	return services.NewReportService(repo, cache.Nop(), 0), nil
}

// salesdash report [name] — print report tables to the terminal.
var reportCmd = &cobra.Command{
	Use:   "report [name]",
	Short: "Print report tables (all of them, or one by name)",
	Long:  "Available reports: " + joinNames(),
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newCLIService()
		if err != nil {
			return err
		}

		rng, err := repositories.ParseRange(reportRange)
		if err != nil {
			return err
		}

		snap, err := svc.Snapshot(rng)
		if err != nil {
			return err
		}

		if len(args) == 1 {
			table, ok := export.ByName(snap, args[0])
			if !ok {
				return fmt.Errorf("unknown report %q (available: %s)", args[0], joinNames())
			}
			printTable(table)
			return nil
		}

		for _, table := range export.Tables(snap) {
			printTable(table)
		}
		return nil
	},
}

func printTable(t export.Table) {
	fmt.Printf("\n== %s ==\n", t.Name)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	for i, col := range t.Columns {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, col)
	}
	fmt.Fprintln(w)

	if len(t.Rows) == 0 {
		fmt.Fprintln(w, "(no rows)")
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(w, "\t")
			}
			fmt.Fprint(w, cell)
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}

func joinNames() string {
	out := ""
	for i, n := range export.Names() {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}
