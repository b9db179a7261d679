package models

import "time"

// ShipmentStatus type for shipment status
type ShipmentStatus string

const (
	ShipmentPending   ShipmentStatus = "Pending"
	ShipmentInTransit ShipmentStatus = "In Transit"
	ShipmentReceived  ShipmentStatus = "Received"
	ShipmentDelayed   ShipmentStatus = "Delayed"
)

// MovementType type for product movement direction
type MovementType string

const (
	MovementShipped  MovementType = "Shipped"
	MovementReceived MovementType = "Received"
	MovementReturned MovementType = "Returned"
)

// Shipment represents shipments table
type Shipment struct {
	ShipmentID   uint           `gorm:"primaryKey;column:shipment_id" json:"shipment_id"`
	ShipmentNo   string         `gorm:"type:varchar(30);not null;unique" json:"shipment_no"`
	SupplierID   uint           `gorm:"not null" json:"supplier_id"`
	WarehouseID  uint           `gorm:"not null" json:"warehouse_id"`
	DeliveryDate *time.Time     `gorm:"type:date" json:"delivery_date,omitempty"`
	Status       ShipmentStatus `gorm:"type:varchar(20);not null;default:'Pending';check:status IN ('Pending','In Transit','Received','Delayed')" json:"status"`
	Weight       float64        `gorm:"type:decimal(10,2);not null;default:0;check:weight >= 0" json:"weight"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`

	// Relationships
	Supplier  Supplier  `gorm:"foreignKey:SupplierID;belongsTo;constraint:OnDelete:CASCADE" json:"supplier,omitempty"`
	Warehouse Warehouse `gorm:"foreignKey:WarehouseID;belongsTo" json:"warehouse,omitempty"`
	// Reverse relationships - commented out to avoid circular dependency issues during migration
	// Movements []ProductMovement `gorm:"foreignKey:ShipmentID" json:"movements,omitempty"`
}

// TableName specifies the table name for Shipment
func (Shipment) TableName() string {
	return "shipments"
}

// ProductMovement represents product_movements table
type ProductMovement struct {
	MovementID   uint         `gorm:"primaryKey;column:movement_id" json:"movement_id"`
	ShipmentID   uint         `gorm:"not null" json:"shipment_id"`
	ProductID    uint         `gorm:"not null" json:"product_id"`
	WarehouseID  uint         `gorm:"not null" json:"warehouse_id"`
	Quantity     int          `gorm:"not null;check:quantity > 0" json:"quantity"`
	MovementType MovementType `gorm:"type:varchar(20);not null;check:movement_type IN ('Shipped','Received','Returned')" json:"movement_type"`
	CreatedAt    time.Time    `json:"created_at"`

	// Relationships
	Shipment  Shipment  `gorm:"foreignKey:ShipmentID;belongsTo;constraint:OnDelete:CASCADE" json:"shipment,omitempty"`
	Product   Product   `gorm:"foreignKey:ProductID;belongsTo" json:"product,omitempty"`
	Warehouse Warehouse `gorm:"foreignKey:WarehouseID;belongsTo" json:"warehouse,omitempty"`
}

// TableName specifies the table name for ProductMovement
func (ProductMovement) TableName() string {
	return "product_movements"
}
