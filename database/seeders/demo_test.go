package seeders

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Gurpreet0022/sales-dashboard/app/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "seed.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Customer{}, &models.Product{}, &models.Order{}))
	return db
}

func TestSeedDemoLoadsFixedDataset(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, SeedDemo(db))

	var customers, products, orders int64
	require.NoError(t, db.Model(&models.Customer{}).Count(&customers).Error)
	require.NoError(t, db.Model(&models.Product{}).Count(&products).Error)
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)

	assert.EqualValues(t, 3, customers)
	assert.EqualValues(t, 3, products)
	assert.EqualValues(t, 3, orders)
}

func TestSeedDemoOrdersResolveReferences(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, SeedDemo(db))

	var all []models.Order
	require.NoError(t, db.Find(&all).Error)

	for _, o := range all {
		assert.Positive(t, o.Quantity)

		var n int64
		require.NoError(t, db.Model(&models.Customer{}).Where("customer_id = ?", o.CustomerID).Count(&n).Error)
		assert.EqualValues(t, 1, n, "order %d customer", o.OrderID)

		require.NoError(t, db.Model(&models.Product{}).Where("product_id = ?", o.ProductID).Count(&n).Error)
		assert.EqualValues(t, 1, n, "order %d product", o.OrderID)
	}
}

func TestVerifyReferencesRejectsDanglingOrder(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, SeedDemo(db))

	err := verifyReferences(db, models.Order{CustomerID: 999, ProductID: 1})
	assert.ErrorContains(t, err, "customer 999")

	err = verifyReferences(db, models.Order{CustomerID: 1, ProductID: 999})
	assert.ErrorContains(t, err, "product 999")
}
