package migrations

import (
	"github.com/Gurpreet0022/sales-dashboard/app/models"
	"github.com/Gurpreet0022/sales-dashboard/pkg/migration"
	"gorm.io/gorm"
)

func init() {
	migration.Register("20240601000000_create_customers_table", &CreateCustomersTable{})
	migration.Register("20240601000001_create_products_table", &CreateProductsTable{})
	migration.Register("20240601000002_create_orders_table", &CreateOrdersTable{})
}

// -------- 0001: customers --------

type CreateCustomersTable struct{}

func (m *CreateCustomersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Customer{})
}

func (m *CreateCustomersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("customers")
}

// -------- 0002: products --------

type CreateProductsTable struct{}

func (m *CreateProductsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{})
}

func (m *CreateProductsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("products")
}

// -------- 0003: orders --------
// Orders last: its foreign keys reference customers and products.

type CreateOrdersTable struct{}

func (m *CreateOrdersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Order{})
}

func (m *CreateOrdersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("orders")
}
