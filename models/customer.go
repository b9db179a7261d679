package models

import "time"

// LoyaltyStatus type for customer loyalty tiers
type LoyaltyStatus string

const (
	LoyaltyBronze LoyaltyStatus = "Bronze"
	LoyaltySilver LoyaltyStatus = "Silver"
	LoyaltyGold   LoyaltyStatus = "Gold"
)

// Customer represents customers table
type Customer struct {
	CustomerID    uint          `gorm:"primaryKey;column:customer_id" json:"customer_id"`
	CustomerName  string        `gorm:"type:varchar(100);not null" json:"customer_name"`
	LoyaltyStatus LoyaltyStatus `gorm:"type:varchar(20);not null;default:'Bronze';check:loyalty_status IN ('Bronze','Silver','Gold')" json:"loyalty_status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`

	// Reverse relationships - commented out to avoid circular dependency issues during migration
	// Orders []Order `gorm:"foreignKey:CustomerID" json:"orders,omitempty"`
}

// TableName specifies the table name for Customer
func (Customer) TableName() string {
	return "customers"
}
