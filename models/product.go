package models

import "time"

// Product represents products table
type Product struct {
	ProductID   uint      `gorm:"primaryKey;column:product_id" json:"product_id"`
	ProductName string    `gorm:"type:varchar(200);not null" json:"product_name"`
	Category    string    `gorm:"type:varchar(50);not null" json:"category"`
	UnitPrice   float64   `gorm:"type:decimal(12,2);not null;check:unit_price >= 0" json:"unit_price"`
	SupplierID  uint      `gorm:"not null" json:"supplier_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relationships
	Supplier Supplier `gorm:"foreignKey:SupplierID;belongsTo" json:"supplier,omitempty"`
	// Reverse relationships - commented out to avoid circular dependency issues during migration
	// OrderDetails []OrderDetail `gorm:"foreignKey:ProductID" json:"order_details,omitempty"`
	// Inventories  []Inventory   `gorm:"foreignKey:ProductID" json:"inventories,omitempty"`
}

// TableName specifies the table name for Product
func (Product) TableName() string {
	return "products"
}
