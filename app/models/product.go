package models

import "time"

// Product represents a product in the catalogue.
//
// Rows are hard-deleted, so the models here carry explicit ID and timestamp
// columns instead of gorm.Model (whose DeletedAt would turn every delete
// into a soft delete).
type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null;index" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
