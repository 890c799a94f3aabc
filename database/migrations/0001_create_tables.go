// Package migrations holds the schema migrations. Importing the package
// registers every migration with the runner.
package migrations

import (
	"github.com/shashiranjanraj/vanij/app/models"
	"github.com/shashiranjanraj/vanij/pkg/migration"
	"gorm.io/gorm"
)

func init() {
	migration.Register("20260101000001_create_products_table", &CreateProductsTable{})
	migration.Register("20260101000002_create_inventory_table", &CreateInventoryTable{})
	migration.Register("20260101000003_create_sales_table", &CreateSalesTable{})
}

type CreateProductsTable struct{}

func (CreateProductsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{})
}

func (CreateProductsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.Product{})
}

type CreateInventoryTable struct{}

func (CreateInventoryTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Inventory{})
}

func (CreateInventoryTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.Inventory{})
}

type CreateSalesTable struct{}

func (CreateSalesTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Sale{})
}

func (CreateSalesTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.Sale{})
}
