package services

import "errors"

// Sentinel errors returned by the service layer. Controllers translate them
// to transport status codes with errors.Is; nothing below the controllers
// knows about HTTP.
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInventoryNotFound = errors.New("inventory not found")
	ErrSaleNotFound      = errors.New("sale not found")

	// ErrDuplicateInventory guards the one-row-per-product invariant.
	ErrDuplicateInventory = errors.New("inventory already exists for this product")

	// ErrProductInUse blocks deleting a product that still has an inventory
	// row or sales records.
	ErrProductInUse = errors.New("product still has inventory or sales records")

	// ErrNoSalesData is the per-product revenue report's empty result. The
	// period-wide reports return zeros instead; only this variant errors.
	ErrNoSalesData = errors.New("no sales data found for this product")
)
