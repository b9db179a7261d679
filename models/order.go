package models

import "time"

// OrderStatus type for order status
type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderCompleted OrderStatus = "Completed"
	OrderShipped   OrderStatus = "Shipped"
	OrderCancelled OrderStatus = "Cancelled"
)

// Order represents orders table
type Order struct {
	OrderID    uint        `gorm:"primaryKey;column:order_id" json:"order_id"`
	OrderNo    string      `gorm:"type:varchar(30);not null;unique" json:"order_no"`
	CustomerID uint        `gorm:"not null" json:"customer_id"`
	ProductID  uint        `gorm:"not null" json:"product_id"`
	SupplierID uint        `gorm:"not null" json:"supplier_id"`
	OrderDate  time.Time   `gorm:"not null;default:CURRENT_TIMESTAMP" json:"order_date"`
	Status     OrderStatus `gorm:"type:varchar(20);not null;default:'Pending';check:status IN ('Pending','Completed','Shipped','Cancelled')" json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`

	// Relationships
	Customer Customer `gorm:"foreignKey:CustomerID;belongsTo" json:"customer,omitempty"`
	Product  Product  `gorm:"foreignKey:ProductID;belongsTo" json:"product,omitempty"`
	Supplier Supplier `gorm:"foreignKey:SupplierID;belongsTo;constraint:OnDelete:CASCADE" json:"supplier,omitempty"`
	// Reverse relationships - commented out to avoid circular dependency issues during migration
	// Details []OrderDetail `gorm:"foreignKey:OrderID" json:"details,omitempty"`
}

// TableName specifies the table name for Order
func (Order) TableName() string {
	return "orders"
}

// OrderDetail represents order_details table
type OrderDetail struct {
	DetailID  uint      `gorm:"primaryKey;column:detail_id" json:"detail_id"`
	OrderID   uint      `gorm:"not null" json:"order_id"`
	ProductID uint      `gorm:"not null" json:"product_id"`
	Quantity  int       `gorm:"not null;check:quantity > 0" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Order   Order   `gorm:"foreignKey:OrderID;belongsTo;constraint:OnDelete:CASCADE" json:"order,omitempty"`
	Product Product `gorm:"foreignKey:ProductID;belongsTo" json:"product,omitempty"`
}

// TableName specifies the table name for OrderDetail
func (OrderDetail) TableName() string {
	return "order_details"
}
