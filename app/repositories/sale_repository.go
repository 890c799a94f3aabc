package repositories

import (
	"time"

	"github.com/shashiranjanraj/vanij/app/models"
	"github.com/shashiranjanraj/vanij/pkg/orm"
)

// SaleFilter narrows a sale listing. Zero values mean "no filter".
type SaleFilter struct {
	Skip      int
	Limit     int
	StartDate *time.Time
	EndDate   *time.Time
	ProductID uint
}

// SaleRepository handles database operations for Sale.
type SaleRepository struct{}

func NewSaleRepository() *SaleRepository {
	return &SaleRepository{}
}

// All returns sales matching the filter with offset pagination.
func (r *SaleRepository) All(f SaleFilter) ([]models.Sale, error) {
	q := orm.DB().Model(&models.Sale{})
	if f.StartDate != nil {
		q = q.Where("sale_date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("sale_date <= ?", *f.EndDate)
	}
	if f.ProductID != 0 {
		q = q.Where("product_id = ?", f.ProductID)
	}

	var sales []models.Sale
	err := q.Offset(f.Skip).Limit(f.Limit).Get(&sales)
	return sales, err
}

// InWindow returns sales whose sale_date falls inside the inclusive
// [start, end] window. Nil bounds are left open; productID zero means all
// products. Reports bucket and sum the result in application code so the
// rules stay identical across database drivers.
func (r *SaleRepository) InWindow(start, end *time.Time, productID uint) ([]models.Sale, error) {
	q := orm.DB().Model(&models.Sale{})
	if start != nil {
		q = q.Where("sale_date >= ?", *start)
	}
	if end != nil {
		q = q.Where("sale_date <= ?", *end)
	}
	if productID != 0 {
		q = q.Where("product_id = ?", productID)
	}

	var sales []models.Sale
	err := q.Get(&sales)
	return sales, err
}

// FindByID looks up a sale by primary key.
func (r *SaleRepository) FindByID(id uint) (models.Sale, error) {
	var sale models.Sale
	err := orm.DB().Model(&models.Sale{}).Where("id = ?", id).First(&sale)
	return sale, err
}

// CountByProduct counts sales recorded against a product.
func (r *SaleRepository) CountByProduct(productID uint) (int64, error) {
	return orm.DB().Model(&models.Sale{}).Where("product_id = ?", productID).Count()
}

// Create persists a new sale record.
func (r *SaleRepository) Create(sale *models.Sale) error {
	return orm.DB().Create(sale)
}

// Save persists changes to an existing sale.
func (r *SaleRepository) Save(sale *models.Sale) error {
	return orm.DB().Save(sale)
}

// Delete hard-deletes the sale.
func (r *SaleRepository) Delete(sale *models.Sale) error {
	return orm.DB().Delete(sale)
}
