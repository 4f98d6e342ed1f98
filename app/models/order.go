package models

// Order is a single order line: one customer bought Quantity units of one
// product on OrderDate.
//
// OrderDate is stored as a YYYY-MM-DD string rather than a native date so
// that month bucketing (substr(order_date, 1, 7)) and range filtering
// (plain string comparison) behave identically on every supported driver.
type Order struct {
	OrderID    uint   `gorm:"column:order_id;primaryKey;autoIncrement" json:"order_id"`
	CustomerID uint   `gorm:"column:customer_id;not null;index"        json:"customer_id"`
	ProductID  uint   `gorm:"column:product_id;not null;index"         json:"product_id"`
	Quantity   int    `gorm:"not null;check:quantity > 0"              json:"quantity"`
	OrderDate  string `gorm:"column:order_date;size:10;not null;index" json:"order_date"`

	Customer *Customer `gorm:"foreignKey:CustomerID;references:CustomerID" json:"-"`
	Product  *Product  `gorm:"foreignKey:ProductID;references:ProductID"   json:"-"`
}

func (Order) TableName() string { return "orders" }
