package models

// Customer is a buyer record. Rows are written once at seed time and are
// read-only for the rest of the application's life.
type Customer struct {
	CustomerID uint   `gorm:"column:customer_id;primaryKey;autoIncrement" json:"customer_id"`
	Name       string `gorm:"size:255;not null" json:"name"`
	Email      string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Gender     string `gorm:"size:20" json:"gender"`
	Country    string `gorm:"size:100;not null;index" json:"country"`
}

func (Customer) TableName() string { return "customers" }
