package services

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
	"github.com/Gurpreet0022/sales-dashboard/app/repositories"
	"github.com/Gurpreet0022/sales-dashboard/database/seeders"
	"github.com/Gurpreet0022/sales-dashboard/pkg/cache"
)

func newSeededDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "sales.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Customer{}, &models.Product{}, &models.Order{}))
	require.NoError(t, seeders.SeedDemo(db))
	return db
}

func TestServiceCachesResults(t *testing.T) {
	db := newSeededDB(t)
	svc := NewReportService(repositories.NewReportRepository(db), cache.Memory(), time.Minute)

	total, err := svc.TotalRevenue(repositories.RangeAll)
	require.NoError(t, err)
	assert.Equal(t, 75000.0, total)

	// A new order within the TTL is invisible: the cached value is served.
	require.NoError(t, db.Create(&models.Order{
		CustomerID: 1, ProductID: 1, Quantity: 1, OrderDate: "2024-06-15",
	}).Error)

	total, err = svc.TotalRevenue(repositories.RangeAll)
	require.NoError(t, err)
	assert.Equal(t, 75000.0, total)
}

func TestServiceWithoutCacheRecomputes(t *testing.T) {
	db := newSeededDB(t)
	svc := NewReportService(repositories.NewReportRepository(db), cache.Nop(), 0)

	total, err := svc.TotalRevenue(repositories.RangeAll)
	require.NoError(t, err)
	assert.Equal(t, 75000.0, total)

	require.NoError(t, db.Create(&models.Order{
		CustomerID: 1, ProductID: 1, Quantity: 1, OrderDate: "2024-06-15",
	}).Error)

	total, err = svc.TotalRevenue(repositories.RangeAll)
	require.NoError(t, err)
	assert.Equal(t, 145000.0, total)
}

func TestCacheKeysAreRangeScoped(t *testing.T) {
	db := newSeededDB(t)
	svc := NewReportService(repositories.NewReportRepository(db), cache.Memory(), time.Minute)

	all, err := svc.TotalRevenue(repositories.RangeAll)
	require.NoError(t, err)
	assert.Equal(t, 75000.0, all)

	// The demo orders are all in June 2024, so a rolling window is empty.
	// A shared cache key would wrongly return 75000 here.
	windowed, err := svc.TotalRevenue(repositories.Range30Days)
	require.NoError(t, err)
	assert.Equal(t, 0.0, windowed)
}

func TestSnapshotComposesAllReports(t *testing.T) {
	db := newSeededDB(t)
	svc := NewReportService(repositories.NewReportRepository(db), cache.Nop(), 0)

	snap, err := svc.Snapshot(repositories.RangeAll)
	require.NoError(t, err)

	assert.Equal(t, repositories.RangeAll, snap.Range)
	assert.False(t, snap.GeneratedAt.IsZero())

	assert.Equal(t, 75000.0, snap.Overview.TotalRevenue)
	assert.Len(t, snap.TopProducts, 3)
	assert.Len(t, snap.MonthlyTrend, 1)
	assert.Len(t, snap.RevenueByCountry, 3)
	assert.Len(t, snap.TopCustomers, 3)
	assert.Len(t, snap.Segments, 2)
	assert.Len(t, snap.CustomersDetail, 3)
	assert.Len(t, snap.Performance, 3)
	assert.Len(t, snap.RecentOrders, 3)
}
