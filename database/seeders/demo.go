package seeders

import (
	"fmt"

	"github.com/Gurpreet0022/sales-dashboard/app/models"
	"gorm.io/gorm"
)

func init() {
	Register("demo", SeedDemo)
}

// SeedDemo inserts the fixed demo dataset: three customers in three
// countries, three products, and three orders all placed in June 2024.
// Exported so tests can load the same canonical rows.
func SeedDemo(db *gorm.DB) error {
	customers := []models.Customer{
		{Name: "Amit Sharma", Email: "amit.sharma@example.com", Gender: "Male", Country: "India"},
		{Name: "John Carter", Email: "john.carter@example.com", Gender: "Male", Country: "USA"},
		{Name: "Emma Brown", Email: "emma.brown@example.com", Gender: "Female", Country: "UK"},
	}
	if err := db.Create(&customers).Error; err != nil {
		return fmt.Errorf("seed customers: %w", err)
	}

	products := []models.Product{
		{ProductName: "Laptop", Category: "Electronics", Price: 70000},
		{ProductName: "Headphones", Category: "Electronics", Price: 2000},
		{ProductName: "Notebook", Category: "Stationery", Price: 100},
	}
	if err := db.Create(&products).Error; err != nil {
		return fmt.Errorf("seed products: %w", err)
	}

	orders := []models.Order{
		{CustomerID: customers[0].CustomerID, ProductID: products[0].ProductID, Quantity: 1, OrderDate: "2024-06-01"},
		{CustomerID: customers[1].CustomerID, ProductID: products[1].ProductID, Quantity: 2, OrderDate: "2024-06-05"},
		{CustomerID: customers[2].CustomerID, ProductID: products[2].ProductID, Quantity: 10, OrderDate: "2024-06-10"},
	}
	for _, o := range orders {
		if err := verifyReferences(db, o); err != nil {
			return err
		}
	}
	if err := db.Create(&orders).Error; err != nil {
		return fmt.Errorf("seed orders: %w", err)
	}

	return nil
}

// verifyReferences checks that an order points at existing customer and
// product rows before insert. A violation here means the demo dataset
// itself is broken, so seeding aborts.
func verifyReferences(db *gorm.DB, o models.Order) error {
	var n int64
	if err := db.Model(&models.Customer{}).Where("customer_id = ?", o.CustomerID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("seed orders: customer %d does not exist", o.CustomerID)
	}

	if err := db.Model(&models.Product{}).Where("product_id = ?", o.ProductID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("seed orders: product %d does not exist", o.ProductID)
	}

	return nil
}
