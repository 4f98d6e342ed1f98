package repositories

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Gurpreet0022/sales-dashboard/app/models"
	"github.com/Gurpreet0022/sales-dashboard/database/seeders"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "sales.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Customer{}, &models.Product{}, &models.Order{}))
	return db
}

func seededRepo(t *testing.T) (*ReportRepository, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	require.NoError(t, seeders.SeedDemo(db))
	return NewReportRepository(db), db
}

func emptyRepo(t *testing.T) *ReportRepository {
	t.Helper()
	return NewReportRepository(newTestDB(t))
}

// ─── Core query set ──────────────────────────────────────────────────────────

func TestTotalRevenue(t *testing.T) {
	repo, _ := seededRepo(t)

	total, err := repo.TotalRevenue(RangeAll)
	require.NoError(t, err)

	// 70000×1 + 2000×2 + 100×10
	assert.Equal(t, 75000.0, total)
}

func TestTotalRevenueEmptyOrders(t *testing.T) {
	repo := emptyRepo(t)

	total, err := repo.TotalRevenue(RangeAll)
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)
}

func TestTopProducts(t *testing.T) {
	repo, _ := seededRepo(t)

	rows, err := repo.TopProducts(RangeAll, 5)
	require.NoError(t, err)

	// Fewer rows than the limit when fewer distinct products exist.
	require.Len(t, rows, 3)

	assert.Equal(t, "Notebook", rows[0].ProductName)
	assert.Equal(t, 10, rows[0].TotalSold)
	assert.Equal(t, 1000.0, rows[0].TotalRevenue)

	assert.Equal(t, "Headphones", rows[1].ProductName)
	assert.Equal(t, 2, rows[1].TotalSold)

	assert.Equal(t, "Laptop", rows[2].ProductName)
	assert.Equal(t, 1, rows[2].TotalSold)
}

func TestTopProductsRespectsLimit(t *testing.T) {
	repo, _ := seededRepo(t)

	rows, err := repo.TopProducts(RangeAll, 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Notebook", rows[0].ProductName)
}

func TestTopProductsEmptyOrders(t *testing.T) {
	repo := emptyRepo(t)

	rows, err := repo.TopProducts(RangeAll, 5)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestMonthlyTrend(t *testing.T) {
	repo, _ := seededRepo(t)

	rows, err := repo.MonthlyTrend(RangeAll)
	require.NoError(t, err)

	// All three demo orders fall in June 2024; no zero-fill for other months.
	require.Len(t, rows, 1)
	assert.Equal(t, "2024-06", rows[0].Month)
	assert.Equal(t, 75000.0, rows[0].MonthlyRevenue)
	assert.Equal(t, 3, rows[0].MonthlyOrders)
}

func TestMonthlyTrendSortsChronologically(t *testing.T) {
	repo, db := seededRepo(t)

	// A later order in another month appends a second bucket.
	var laptop models.Product
	require.NoError(t, db.Where("product_name = ?", "Laptop").First(&laptop).Error)
	require.NoError(t, db.Create(&models.Order{
		CustomerID: 1, ProductID: laptop.ProductID, Quantity: 1, OrderDate: "2024-07-02",
	}).Error)

	rows, err := repo.MonthlyTrend(RangeAll)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-06", rows[0].Month)
	assert.Equal(t, "2024-07", rows[1].Month)
	assert.Equal(t, 70000.0, rows[1].MonthlyRevenue)
}

func TestRevenueByCountry(t *testing.T) {
	repo, _ := seededRepo(t)

	rows, err := repo.RevenueByCountry(RangeAll)
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, "India", rows[0].Country)
	assert.Equal(t, 70000.0, rows[0].Revenue)
	assert.Equal(t, 1, rows[0].Customers)
	assert.Equal(t, 1, rows[0].Orders)

	assert.Equal(t, "USA", rows[1].Country)
	assert.Equal(t, 4000.0, rows[1].Revenue)

	assert.Equal(t, "UK", rows[2].Country)
	assert.Equal(t, 1000.0, rows[2].Revenue)
}

func TestTopCustomers(t *testing.T) {
	repo, _ := seededRepo(t)

	rows, err := repo.TopCustomers(RangeAll, 5)
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, "Amit Sharma", rows[0].Name)
	assert.Equal(t, 1, rows[0].TotalOrders)
	assert.Equal(t, 70000.0, rows[0].TotalSpent)

	assert.Equal(t, "John Carter", rows[1].Name)
	assert.Equal(t, "Emma Brown", rows[2].Name)
}

// Grouping is by customer name, mirroring the dashboard this replaces:
// two customers sharing a name collapse into a single row.
func TestTopCustomersCollapsesSharedNames(t *testing.T) {
	repo, db := seededRepo(t)

	twin := models.Customer{Name: "Amit Sharma", Email: "amit.2@example.com", Country: "India"}
	require.NoError(t, db.Create(&twin).Error)
	require.NoError(t, db.Create(&models.Order{
		CustomerID: twin.CustomerID, ProductID: 2, Quantity: 1, OrderDate: "2024-06-20",
	}).Error)

	rows, err := repo.TopCustomers(RangeAll, 5)
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, "Amit Sharma", rows[0].Name)
	assert.Equal(t, 2, rows[0].TotalOrders)
	assert.Equal(t, 72000.0, rows[0].TotalSpent)
}

// ─── Cross-report properties ─────────────────────────────────────────────────

func TestCountryRevenuePartitionsTotal(t *testing.T) {
	repo, _ := seededRepo(t)

	total, err := repo.TotalRevenue(RangeAll)
	require.NoError(t, err)

	countries, err := repo.RevenueByCountry(RangeAll)
	require.NoError(t, err)

	sum := 0.0
	for _, c := range countries {
		sum += c.Revenue
	}
	assert.Equal(t, total, sum)

	products, err := repo.TopProducts(RangeAll, 100)
	require.NoError(t, err)

	sum = 0.0
	for _, p := range products {
		sum += p.TotalRevenue
	}
	assert.Equal(t, total, sum)
}

func TestQueriesAreDeterministic(t *testing.T) {
	repo, _ := seededRepo(t)

	first, err := repo.RevenueByCountry(RangeAll)
	require.NoError(t, err)
	second, err := repo.RevenueByCountry(RangeAll)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	p1, err := repo.TopProducts(RangeAll, 5)
	require.NoError(t, err)
	p2, err := repo.TopProducts(RangeAll, 5)
	require.NoError(t, err)
	assert.Equal(t, p1, p2)
}

// ─── KPI and detail queries ──────────────────────────────────────────────────

func TestOverview(t *testing.T) {
	repo, _ := seededRepo(t)

	o, err := repo.Overview(RangeAll)
	require.NoError(t, err)

	assert.Equal(t, 75000.0, o.TotalRevenue)
	assert.Equal(t, 3, o.TotalOrders)
	assert.Equal(t, 3, o.ActiveCustomers)
	assert.Equal(t, 25000.0, o.AvgOrderValue)
}

func TestOverviewEmptyOrders(t *testing.T) {
	repo := emptyRepo(t)

	o, err := repo.Overview(RangeAll)
	require.NoError(t, err)

	assert.Equal(t, 0.0, o.TotalRevenue)
	assert.Equal(t, 0, o.TotalOrders)
	assert.Equal(t, 0, o.ActiveCustomers)
	assert.Equal(t, 0.0, o.AvgOrderValue)
}

func TestCustomerSegments(t *testing.T) {
	repo, _ := seededRepo(t)

	rows, err := repo.CustomerSegments(RangeAll)
	require.NoError(t, err)

	// Amit spent 70000 (VIP); John 4000 and Emma 1000 (Regular).
	require.Len(t, rows, 2)
	assert.Equal(t, "VIP", rows[0].Segment)
	assert.Equal(t, 1, rows[0].CustomerCount)
	assert.Equal(t, 70000.0, rows[0].AvgSpending)

	assert.Equal(t, "Regular", rows[1].Segment)
	assert.Equal(t, 2, rows[1].CustomerCount)
	assert.Equal(t, 2500.0, rows[1].AvgSpending)
}

func TestTopCustomersDetail(t *testing.T) {
	repo, _ := seededRepo(t)

	rows, err := repo.TopCustomersDetail(RangeAll, 10)
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, "Amit Sharma", rows[0].Name)
	assert.Equal(t, "amit.sharma@example.com", rows[0].Email)
	assert.Equal(t, "India", rows[0].Country)
	assert.Equal(t, 1, rows[0].TotalOrders)
	assert.Equal(t, 1, rows[0].TotalItems)
	assert.Equal(t, 70000.0, rows[0].TotalSpent)
	assert.Equal(t, "2024-06-01", rows[0].LastOrderDate)
}

func TestProductPerformance(t *testing.T) {
	repo, _ := seededRepo(t)

	rows, err := repo.ProductPerformance(RangeAll)
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, "Laptop", rows[0].ProductName)
	assert.Equal(t, "Electronics", rows[0].Category)
	assert.Equal(t, 70000.0, rows[0].TotalRevenue)
	assert.Equal(t, 1, rows[0].UniqueCustomers)

	assert.Equal(t, "Headphones", rows[1].ProductName)
	assert.Equal(t, "Notebook", rows[2].ProductName)
}

func TestRecentOrders(t *testing.T) {
	repo, _ := seededRepo(t)

	rows, err := repo.RecentOrders(RangeAll, 20)
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, "2024-06-10", rows[0].OrderDate)
	assert.Equal(t, "Emma Brown", rows[0].CustomerName)
	assert.Equal(t, "Notebook", rows[0].ProductName)
	assert.Equal(t, 1000.0, rows[0].OrderValue)

	assert.Equal(t, "2024-06-01", rows[2].OrderDate)
}

// ─── Range filtering ─────────────────────────────────────────────────────────

func TestRangeFilterExcludesOldOrders(t *testing.T) {
	repo, db := seededRepo(t)

	// The demo orders are fixed in June 2024, outside any rolling window.
	total, err := repo.TotalRevenue(Range30Days)
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)

	// An order placed today is inside every window.
	var laptop models.Product
	require.NoError(t, db.Where("product_name = ?", "Laptop").First(&laptop).Error)
	require.NoError(t, db.Create(&models.Order{
		CustomerID: 1, ProductID: laptop.ProductID, Quantity: 1,
		OrderDate: time.Now().Format("2006-01-02"),
	}).Error)

	total, err = repo.TotalRevenue(Range30Days)
	require.NoError(t, err)
	assert.Equal(t, 70000.0, total)

	total, err = repo.TotalRevenue(RangeAll)
	require.NoError(t, err)
	assert.Equal(t, 145000.0, total)
}

func TestParseRange(t *testing.T) {
	cases := []struct {
		in      string
		want    Range
		wantErr bool
	}{
		{"", RangeAll, false},
		{"all", RangeAll, false},
		{"30d", Range30Days, false},
		{"90d", Range90Days, false},
		{"1y", RangeYear, false},
		{"7d", RangeAll, true},
		{"yesterday", RangeAll, true},
	}

	for _, tc := range cases {
		got, err := ParseRange(tc.in)
		if tc.wantErr {
			assert.Error(t, err, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}
