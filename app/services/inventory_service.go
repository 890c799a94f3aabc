package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/shashiranjanraj/vanij/app/models"
	"github.com/shashiranjanraj/vanij/app/repositories"
	"github.com/shashiranjanraj/vanij/pkg/collection"
	"github.com/shashiranjanraj/vanij/pkg/metrics"
	"gorm.io/gorm"
)

// defaultLowStockThreshold applies when a create payload omits the threshold.
const defaultLowStockThreshold = 10

// InventoryInput is an inventory creation payload. Quantity may be zero, so
// it carries gte instead of required.
type InventoryInput struct {
	ProductID         uint `json:"product_id" validate:"required"`
	Quantity          int  `json:"quantity" validate:"gte=0"`
	LowStockThreshold *int `json:"low_stock_threshold" validate:"nullable,gte=0"`
}

// InventoryUpdateInput is a partial update: only populated fields are applied.
type InventoryUpdateInput struct {
	Quantity          *int `json:"quantity" validate:"nullable,gte=0"`
	LowStockThreshold *int `json:"low_stock_threshold" validate:"nullable,gte=0"`
}

// InventoryStatus is one row of the stock status report.
type InventoryStatus struct {
	ID                uint        `json:"id"`
	ProductID         uint        `json:"product_id"`
	ProductName       string      `json:"product_name"`
	Quantity          int         `json:"quantity"`
	LowStockThreshold int         `json:"low_stock_threshold"`
	Status            StockStatus `json:"status"`
}

// InventoryHistory is one entry of the inventory change report. The report
// reads current snapshots filtered by their last update time; change_date is
// that update time.
type InventoryHistory struct {
	ID                uint        `json:"id"`
	ProductID         uint        `json:"product_id"`
	ProductName       string      `json:"product_name"`
	Quantity          int         `json:"quantity"`
	LowStockThreshold int         `json:"low_stock_threshold"`
	Status            StockStatus `json:"status"`
	ChangeDate        time.Time   `json:"change_date"`
}

// InventoryService implements stock level tracking and reporting.
type InventoryService struct {
	inventories *repositories.InventoryRepository
	products    *repositories.ProductRepository
}

func NewInventoryService() *InventoryService {
	return &InventoryService{
		inventories: repositories.NewInventoryRepository(),
		products:    repositories.NewProductRepository(),
	}
}

// List returns inventory rows with pagination and an optional product filter.
func (s *InventoryService) List(skip, limit int, productID uint) ([]models.Inventory, error) {
	return s.inventories.All(skip, limit, productID)
}

// Get returns one inventory row by id.
func (s *InventoryService) Get(id uint) (models.Inventory, error) {
	item, err := s.inventories.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Inventory{}, ErrInventoryNotFound
	}
	return item, err
}

// Create opens inventory tracking for a product. The product must exist and
// must not be tracked already.
func (s *InventoryService) Create(in InventoryInput) (models.Inventory, error) {
	if _, err := s.products.FindByID(in.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Inventory{}, ErrProductNotFound
		}
		return models.Inventory{}, err
	}

	if _, err := s.inventories.FindByProduct(in.ProductID); err == nil {
		return models.Inventory{}, ErrDuplicateInventory
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Inventory{}, err
	}

	threshold := defaultLowStockThreshold
	if in.LowStockThreshold != nil {
		threshold = *in.LowStockThreshold
	}

	item := models.Inventory{
		ProductID:         in.ProductID,
		Quantity:          in.Quantity,
		LowStockThreshold: threshold,
	}
	if err := s.inventories.Create(&item); err != nil {
		return models.Inventory{}, fmt.Errorf("create inventory: %w", err)
	}
	return item, nil
}

// Update applies the populated fields of in to the stored inventory row.
func (s *InventoryService) Update(id uint, in InventoryUpdateInput) (models.Inventory, error) {
	item, err := s.Get(id)
	if err != nil {
		return models.Inventory{}, err
	}

	if in.Quantity != nil {
		item.Quantity = *in.Quantity
	}
	if in.LowStockThreshold != nil {
		item.LowStockThreshold = *in.LowStockThreshold
	}

	if err := s.inventories.Save(&item); err != nil {
		return models.Inventory{}, fmt.Errorf("update inventory %d: %w", id, err)
	}
	return item, nil
}

// Delete stops tracking an inventory row.
func (s *InventoryService) Delete(id uint) error {
	item, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.inventories.Delete(&item)
}

// Status classifies every tracked inventory row. With lowStockOnly set, only
// rows at or below their own threshold are returned.
func (s *InventoryService) Status(lowStockOnly bool) ([]InventoryStatus, error) {
	items, err := s.inventories.AllItems()
	if err != nil {
		return nil, err
	}

	names, err := s.productNames(items)
	if err != nil {
		return nil, err
	}

	report := collection.Map(items, func(i models.Inventory) InventoryStatus {
		return InventoryStatus{
			ID:                i.ID,
			ProductID:         i.ProductID,
			ProductName:       names[i.ProductID],
			Quantity:          i.Quantity,
			LowStockThreshold: i.LowStockThreshold,
			Status:            ClassifyStock(i.Quantity, i.LowStockThreshold),
		}
	})

	if lowStockOnly {
		report = collection.Filter(report, func(r InventoryStatus) bool {
			return r.Quantity <= r.LowStockThreshold
		})
	}

	metrics.ReportGenerated.WithLabelValues("status").Inc()
	return report, nil
}

// Alerts returns the rows currently at or below a threshold. A nil threshold
// compares each row against its own configured threshold; a non-nil one
// overrides it for every row.
func (s *InventoryService) Alerts(threshold *int) ([]InventoryStatus, error) {
	report, err := s.Status(false)
	if err != nil {
		return nil, err
	}

	alerts := collection.Filter(report, func(r InventoryStatus) bool {
		limit := r.LowStockThreshold
		if threshold != nil {
			limit = *threshold
		}
		return r.Quantity <= limit
	})

	return alerts, nil
}

// History reports inventory snapshots whose last update falls inside the
// window, newest first. A zero inventoryID or productID means no filter; an
// unknown inventoryID is an error rather than an empty report.
func (s *InventoryService) History(inventoryID, productID uint, start, end *time.Time) ([]InventoryHistory, error) {
	if inventoryID != 0 {
		if _, err := s.Get(inventoryID); err != nil {
			return nil, err
		}
	}

	from, to := ReportWindow(start, end)
	items, err := s.inventories.UpdatedBetween(from, to, inventoryID, productID)
	if err != nil {
		return nil, err
	}

	names, err := s.productNames(items)
	if err != nil {
		return nil, err
	}

	history := collection.Map(items, func(i models.Inventory) InventoryHistory {
		return InventoryHistory{
			ID:                i.ID,
			ProductID:         i.ProductID,
			ProductName:       names[i.ProductID],
			Quantity:          i.Quantity,
			LowStockThreshold: i.LowStockThreshold,
			Status:            ClassifyStock(i.Quantity, i.LowStockThreshold),
			ChangeDate:        i.UpdatedAt,
		}
	})

	metrics.ReportGenerated.WithLabelValues("history").Inc()
	return history, nil
}

func (s *InventoryService) productNames(items []models.Inventory) (map[uint]string, error) {
	ids := collection.Map(items, func(i models.Inventory) uint { return i.ProductID })
	return s.products.NamesByIDs(ids)
}
