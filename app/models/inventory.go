package models

import "time"

// Inventory is the current stock level for one product. At most one row
// exists per product; the unique index backs the application-level check.
type Inventory struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	ProductID         uint      `gorm:"uniqueIndex;not null" json:"product_id"`
	Quantity          int       `gorm:"not null;default:0" json:"quantity"`
	LowStockThreshold int       `gorm:"not null;default:10" json:"low_stock_threshold"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TableName keeps the singular table name the API has always used.
func (Inventory) TableName() string { return "inventory" }
