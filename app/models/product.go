package models

// Product represents a product in the catalogue.
type Product struct {
	ProductID   uint    `gorm:"column:product_id;primaryKey;autoIncrement" json:"product_id"`
	ProductName string  `gorm:"column:product_name;size:255;not null;index" json:"product_name"`
	Category    string  `gorm:"size:100"                                    json:"category"`
	Price       float64 `gorm:"not null;default:0;check:price >= 0"         json:"price"`
}

func (Product) TableName() string { return "products" }
