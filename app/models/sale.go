package models

import "time"

// Sale is one recorded sale of a product.
//
// SaleDate is the business event time supplied by the caller and is what all
// revenue reports bucket on; CreatedAt is merely when the record was stored.
// TotalAmount is caller-supplied as well; the server never recomputes it
// from price times quantity.
type Sale struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ProductID   uint      `gorm:"not null;index" json:"product_id"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	TotalAmount float64   `gorm:"not null" json:"total_amount"`
	SaleDate    time.Time `gorm:"not null;index" json:"sale_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
