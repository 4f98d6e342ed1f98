package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gurpreet0022/sales-dashboard/app/repositories"
	"github.com/Gurpreet0022/sales-dashboard/app/services"
)

func demoSnapshot() services.Snapshot {
	return services.Snapshot{
		Range: repositories.RangeAll,
		Overview: repositories.Overview{
			TotalRevenue: 75000, TotalOrders: 3, ActiveCustomers: 3, AvgOrderValue: 25000,
		},
		TopProducts: []repositories.ProductSales{
			{ProductName: "Notebook", TotalSold: 10, TotalRevenue: 1000},
			{ProductName: "Headphones", TotalSold: 2, TotalRevenue: 4000},
			{ProductName: "Laptop", TotalSold: 1, TotalRevenue: 70000},
		},
		RevenueByCountry: []repositories.CountryRevenue{
			{Country: "India", Revenue: 70000, Customers: 1, Orders: 1},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	table, ok := ByName(demoSnapshot(), "top_products")
	require.True(t, ok)

	var sb strings.Builder
	require.NoError(t, WriteCSV(&sb, table))

	want := "product_name,total_sold,total_revenue\n" +
		"Notebook,10,1000.00\n" +
		"Headphones,2,4000.00\n" +
		"Laptop,1,70000.00\n"
	assert.Equal(t, want, sb.String())
}

func TestByNameOverviewIsSingleRow(t *testing.T) {
	table, ok := ByName(demoSnapshot(), "overview")
	require.True(t, ok)

	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"75000.00", "3", "3", "25000.00"}, table.Rows[0])
}

func TestByNameUnknownReport(t *testing.T) {
	_, ok := ByName(demoSnapshot(), "profit_margin")
	assert.False(t, ok)
}

func TestTablesCoversEveryName(t *testing.T) {
	tables := Tables(demoSnapshot())
	require.Len(t, tables, len(Names()))

	for i, name := range Names() {
		assert.Equal(t, name, tables[i].Name)
		assert.NotEmpty(t, tables[i].Columns)
	}
}

func TestEmptyReportStillHasHeader(t *testing.T) {
	table, ok := ByName(services.Snapshot{}, "monthly_trend")
	require.True(t, ok)
	assert.Empty(t, table.Rows)

	var sb strings.Builder
	require.NoError(t, WriteCSV(&sb, table))
	assert.Equal(t, "month,monthly_revenue,monthly_orders\n", sb.String())
}
