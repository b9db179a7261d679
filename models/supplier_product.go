package models

import "time"

// SupplierProduct represents supplier_products junction table
// Composite primary key enforces uniqueness of (supplier_id, product_id).
type SupplierProduct struct {
	SupplierID uint      `gorm:"primaryKey;column:supplier_id" json:"supplier_id"`
	ProductID  uint      `gorm:"primaryKey;column:product_id" json:"product_id"`
	CreatedAt  time.Time `json:"created_at"`

	// Relationships
	Supplier Supplier `gorm:"foreignKey:SupplierID;constraint:OnDelete:CASCADE" json:"supplier,omitempty"`
	Product  Product  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
}

// TableName specifies the table name for SupplierProduct
func (SupplierProduct) TableName() string {
	return "supplier_products"
}
