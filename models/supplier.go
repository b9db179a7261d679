package models

import "time"

// Supplier represents suppliers table
type Supplier struct {
	SupplierID   uint      `gorm:"primaryKey;column:supplier_id" json:"supplier_id"`
	SupplierName string    `gorm:"type:varchar(200);not null" json:"supplier_name"`
	Region       string    `gorm:"type:varchar(100);not null" json:"region"`
	Phone        string    `gorm:"type:varchar(20);not null" json:"phone"`
	Email        string    `gorm:"type:varchar(100);not null" json:"email"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Reverse relationships - commented out to avoid circular dependency issues during migration
	// Products  []Product  `gorm:"foreignKey:SupplierID" json:"products,omitempty"`
	// Orders    []Order    `gorm:"foreignKey:SupplierID" json:"orders,omitempty"`
	// Shipments []Shipment `gorm:"foreignKey:SupplierID" json:"shipments,omitempty"`
}

// TableName specifies the table name for Supplier
func (Supplier) TableName() string {
	return "suppliers"
}
