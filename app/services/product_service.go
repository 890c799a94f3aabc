package services

import (
	"errors"
	"fmt"

	"github.com/shashiranjanraj/vanij/app/models"
	"github.com/shashiranjanraj/vanij/app/repositories"
	"gorm.io/gorm"
)

// ProductInput is a product creation payload.
type ProductInput struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
}

// ProductUpdateInput is a partial update: only populated fields are applied,
// absent fields keep their stored values.
type ProductUpdateInput struct {
	Name        *string  `json:"name" validate:"nullable,min=1,max=255"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"nullable,gt=0"`
}

// ProductService implements the product catalogue operations.
type ProductService struct {
	products    *repositories.ProductRepository
	inventories *repositories.InventoryRepository
	sales       *repositories.SaleRepository
}

func NewProductService() *ProductService {
	return &ProductService{
		products:    repositories.NewProductRepository(),
		inventories: repositories.NewInventoryRepository(),
		sales:       repositories.NewSaleRepository(),
	}
}

// List returns products with pagination and optional name search.
func (s *ProductService) List(skip, limit int, search string) ([]models.Product, error) {
	return s.products.All(skip, limit, search)
}

// Get returns one product by id.
func (s *ProductService) Get(id uint) (models.Product, error) {
	product, err := s.products.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, ErrProductNotFound
	}
	return product, err
}

// Create persists a new product.
func (s *ProductService) Create(in ProductInput) (models.Product, error) {
	product := models.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
	}
	if err := s.products.Create(&product); err != nil {
		return models.Product{}, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

// Update applies the populated fields of in to the stored product.
func (s *ProductService) Update(id uint, in ProductUpdateInput) (models.Product, error) {
	product, err := s.Get(id)
	if err != nil {
		return models.Product{}, err
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}

	if err := s.products.Save(&product); err != nil {
		return models.Product{}, fmt.Errorf("update product %d: %w", id, err)
	}
	return product, nil
}

// Delete removes a product. Deletion is blocked while an inventory row or
// any sales still reference the product, so reports never orphan.
func (s *ProductService) Delete(id uint) error {
	product, err := s.Get(id)
	if err != nil {
		return err
	}

	if _, err := s.inventories.FindByProduct(id); err == nil {
		return ErrProductInUse
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	saleCount, err := s.sales.CountByProduct(id)
	if err != nil {
		return err
	}
	if saleCount > 0 {
		return ErrProductInUse
	}

	return s.products.Delete(&product)
}
