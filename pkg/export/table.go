// Package export renders report results as flat tables and CSV files.
// The presentation boundary of the reports is "give me a table"; this
// package is that table.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/Gurpreet0022/sales-dashboard/app/services"
)

// Table is one tabular report: a header row plus data rows, all strings.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// WriteCSV writes the table as CSV, header first.
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export: write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Names lists every exportable report in a stable order.
func Names() []string {
	return []string{
		"overview",
		"top_products",
		"monthly_trend",
		"revenue_by_country",
		"top_customers",
		"segments",
		"top_customers_detail",
		"product_performance",
		"recent_orders",
	}
}

// Tables flattens a snapshot into one table per report, in Names() order.
func Tables(snap services.Snapshot) []Table {
	tables := make([]Table, 0, len(Names()))
	for _, name := range Names() {
		t, _ := ByName(snap, name)
		tables = append(tables, t)
	}
	return tables
}

// ByName returns the named report table from snap. The second return is
// false when the name is unknown.
func ByName(snap services.Snapshot, name string) (Table, bool) {
	switch name {
	case "overview":
		o := snap.Overview
		return Table{
			Name:    name,
			Columns: []string{"total_revenue", "total_orders", "active_customers", "avg_order_value"},
			Rows: [][]string{{
				money(o.TotalRevenue), strconv.Itoa(o.TotalOrders),
				strconv.Itoa(o.ActiveCustomers), money(o.AvgOrderValue),
			}},
		}, true

	case "top_products":
		t := Table{Name: name, Columns: []string{"product_name", "total_sold", "total_revenue"}}
		for _, r := range snap.TopProducts {
			t.Rows = append(t.Rows, []string{r.ProductName, strconv.Itoa(r.TotalSold), money(r.TotalRevenue)})
		}
		return t, true

	case "monthly_trend":
		t := Table{Name: name, Columns: []string{"month", "monthly_revenue", "monthly_orders"}}
		for _, r := range snap.MonthlyTrend {
			t.Rows = append(t.Rows, []string{r.Month, money(r.MonthlyRevenue), strconv.Itoa(r.MonthlyOrders)})
		}
		return t, true

	case "revenue_by_country":
		t := Table{Name: name, Columns: []string{"country", "revenue", "customers", "orders"}}
		for _, r := range snap.RevenueByCountry {
			t.Rows = append(t.Rows, []string{r.Country, money(r.Revenue), strconv.Itoa(r.Customers), strconv.Itoa(r.Orders)})
		}
		return t, true

	case "top_customers":
		t := Table{Name: name, Columns: []string{"name", "total_orders", "total_spent"}}
		for _, r := range snap.TopCustomers {
			t.Rows = append(t.Rows, []string{r.Name, strconv.Itoa(r.TotalOrders), money(r.TotalSpent)})
		}
		return t, true

	case "segments":
		t := Table{Name: name, Columns: []string{"segment", "customer_count", "avg_spending"}}
		for _, r := range snap.Segments {
			t.Rows = append(t.Rows, []string{r.Segment, strconv.Itoa(r.CustomerCount), money(r.AvgSpending)})
		}
		return t, true

	case "top_customers_detail":
		t := Table{Name: name, Columns: []string{"name", "email", "country", "total_orders", "total_items", "total_spent", "last_order_date"}}
		for _, r := range snap.CustomersDetail {
			t.Rows = append(t.Rows, []string{
				r.Name, r.Email, r.Country,
				strconv.Itoa(r.TotalOrders), strconv.Itoa(r.TotalItems),
				money(r.TotalSpent), r.LastOrderDate,
			})
		}
		return t, true

	case "product_performance":
		t := Table{Name: name, Columns: []string{"product_name", "category", "price", "units_sold", "total_revenue", "unique_customers"}}
		for _, r := range snap.Performance {
			t.Rows = append(t.Rows, []string{
				r.ProductName, r.Category, money(r.Price),
				strconv.Itoa(r.UnitsSold), money(r.TotalRevenue), strconv.Itoa(r.UniqueCustomers),
			})
		}
		return t, true

	case "recent_orders":
		t := Table{Name: name, Columns: []string{"order_id", "order_date", "customer_name", "product_name", "quantity", "price", "order_value"}}
		for _, r := range snap.RecentOrders {
			t.Rows = append(t.Rows, []string{
				strconv.FormatUint(uint64(r.OrderID), 10), r.OrderDate, r.CustomerName,
				r.ProductName, strconv.Itoa(r.Quantity), money(r.Price), money(r.OrderValue),
			})
		}
		return t, true
	}

	return Table{}, false
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
