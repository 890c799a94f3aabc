package repositories

import (
	"time"

	"github.com/shashiranjanraj/vanij/app/models"
	"github.com/shashiranjanraj/vanij/pkg/orm"
)

// InventoryRepository handles database operations for Inventory.
type InventoryRepository struct{}

func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{}
}

// All returns inventory rows with offset pagination and an optional
// product filter.
func (r *InventoryRepository) All(skip, limit int, productID uint) ([]models.Inventory, error) {
	q := orm.DB().Model(&models.Inventory{})
	if productID != 0 {
		q = q.Where("product_id = ?", productID)
	}

	var items []models.Inventory
	err := q.Offset(skip).Limit(limit).Get(&items)
	return items, err
}

// AllItems returns every inventory row; status and alert reports always
// evaluate the full stock list.
func (r *InventoryRepository) AllItems() ([]models.Inventory, error) {
	var items []models.Inventory
	err := orm.DB().Model(&models.Inventory{}).Get(&items)
	return items, err
}

// FindByID looks up an inventory row by primary key.
func (r *InventoryRepository) FindByID(id uint) (models.Inventory, error) {
	var item models.Inventory
	err := orm.DB().Model(&models.Inventory{}).Where("id = ?", id).First(&item)
	return item, err
}

// FindByProduct looks up the inventory row for a product.
func (r *InventoryRepository) FindByProduct(productID uint) (models.Inventory, error) {
	var item models.Inventory
	err := orm.DB().Model(&models.Inventory{}).Where("product_id = ?", productID).First(&item)
	return item, err
}

// UpdatedBetween returns inventory rows whose last update falls inside the
// inclusive [start, end] window, newest first. id and productID are optional
// narrowing filters (zero means no filter).
func (r *InventoryRepository) UpdatedBetween(start, end time.Time, id, productID uint) ([]models.Inventory, error) {
	q := orm.DB().Model(&models.Inventory{}).
		Where("updated_at >= ?", start).
		Where("updated_at <= ?", end)
	if id != 0 {
		q = q.Where("id = ?", id)
	}
	if productID != 0 {
		q = q.Where("product_id = ?", productID)
	}

	var items []models.Inventory
	err := q.Order("updated_at desc").Get(&items)
	return items, err
}

// Create persists a new inventory record.
func (r *InventoryRepository) Create(item *models.Inventory) error {
	return orm.DB().Create(item)
}

// Save persists changes to an existing inventory record.
func (r *InventoryRepository) Save(item *models.Inventory) error {
	return orm.DB().Save(item)
}

// Delete hard-deletes the inventory record.
func (r *InventoryRepository) Delete(item *models.Inventory) error {
	return orm.DB().Delete(item)
}
