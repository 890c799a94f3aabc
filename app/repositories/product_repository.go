package repositories

import (
	"strings"

	"github.com/shashiranjanraj/vanij/app/models"
	"github.com/shashiranjanraj/vanij/pkg/orm"
)

// ProductRepository handles database operations for Product.
type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// All returns products with offset pagination and an optional
// case-insensitive substring match on the name.
func (r *ProductRepository) All(skip, limit int, search string) ([]models.Product, error) {
	q := orm.DB().Model(&models.Product{})
	if search != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var products []models.Product
	err := q.Offset(skip).Limit(limit).Get(&products)
	return products, err
}

// FindByID looks up a product by primary key.
func (r *ProductRepository) FindByID(id uint) (models.Product, error) {
	var product models.Product
	err := orm.DB().Model(&models.Product{}).Where("id = ?", id).First(&product)
	return product, err
}

// NamesByIDs resolves product names for the given ids in one query.
// Reports join product names this way instead of navigating object graphs.
func (r *ProductRepository) NamesByIDs(ids []uint) (map[uint]string, error) {
	names := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	var products []models.Product
	if err := orm.DB().Model(&models.Product{}).Where("id IN ?", ids).Get(&products); err != nil {
		return nil, err
	}

	for _, p := range products {
		names[p.ID] = p.Name
	}
	return names, nil
}

// Create persists a new product record.
func (r *ProductRepository) Create(product *models.Product) error {
	return orm.DB().Create(product)
}

// Save persists changes to an existing product.
func (r *ProductRepository) Save(product *models.Product) error {
	return orm.DB().Save(product)
}

// Delete hard-deletes the product.
func (r *ProductRepository) Delete(product *models.Product) error {
	return orm.DB().Delete(product)
}
