package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shashiranjanraj/vanij/app/models"
	"github.com/shashiranjanraj/vanij/pkg/database"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupDB points the shared handle at a fresh sqlite database for one test.
func setupDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.Inventory{}, &models.Sale{}))

	database.DB = db
}

func createProduct(t *testing.T, name string, price float64) models.Product {
	t.Helper()

	product := models.Product{Name: name, Price: price}
	require.NoError(t, database.DB.Create(&product).Error)
	return product
}

func createInventory(t *testing.T, productID uint, quantity, threshold int) models.Inventory {
	t.Helper()

	inv := models.Inventory{ProductID: productID, Quantity: quantity, LowStockThreshold: threshold}
	require.NoError(t, database.DB.Create(&inv).Error)
	return inv
}

func createSale(t *testing.T, productID uint, amount float64, daysAgo int) models.Sale {
	t.Helper()

	sale := models.Sale{
		ProductID:   productID,
		Quantity:    1,
		TotalAmount: amount,
		SaleDate:    time.Now().UTC().AddDate(0, 0, -daysAgo),
	}
	require.NoError(t, database.DB.Create(&sale).Error)
	return sale
}

func ptr[T any](v T) *T { return &v }
