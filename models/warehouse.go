package models

import "time"

// Warehouse represents warehouses table
type Warehouse struct {
	WarehouseID uint      `gorm:"primaryKey;column:warehouse_id" json:"warehouse_id"`
	Location    string    `gorm:"type:varchar(200);not null" json:"location"`
	CreatedAt   time.Time `json:"created_at"`

	// Reverse relationships - commented out to avoid circular dependency issues during migration
	// Inventories []Inventory `gorm:"foreignKey:WarehouseID" json:"inventories,omitempty"`
	// Shipments   []Shipment  `gorm:"foreignKey:WarehouseID" json:"shipments,omitempty"`
}

// TableName specifies the table name for Warehouse
func (Warehouse) TableName() string {
	return "warehouses"
}

// Inventory represents inventories table
type Inventory struct {
	InventoryID     uint      `gorm:"primaryKey;column:inventory_id" json:"inventory_id"`
	ProductID       uint      `gorm:"not null" json:"product_id"`
	WarehouseID     uint      `gorm:"not null" json:"warehouse_id"`
	QuantityInStock int       `gorm:"not null;default:0;check:quantity_in_stock >= 0" json:"quantity_in_stock"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Relationships
	Product   Product   `gorm:"foreignKey:ProductID;belongsTo" json:"product,omitempty"`
	Warehouse Warehouse `gorm:"foreignKey:WarehouseID;belongsTo" json:"warehouse,omitempty"`
}

// TableName specifies the table name for Inventory
func (Inventory) TableName() string {
	return "inventories"
}
