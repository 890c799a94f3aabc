package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryCreateDefaultThreshold(t *testing.T) {
	setupDB(t)
	svc := NewInventoryService()
	product := createProduct(t, "Desk Lamp", 29.99)

	item, err := svc.Create(InventoryInput{ProductID: product.ID, Quantity: 5})
	require.NoError(t, err)
	assert.Equal(t, 10, item.LowStockThreshold)
	assert.Equal(t, 5, item.Quantity)
}

func TestInventoryCreateUnknownProduct(t *testing.T) {
	setupDB(t)
	svc := NewInventoryService()

	_, err := svc.Create(InventoryInput{ProductID: 9999, Quantity: 5})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestInventoryCreateDuplicate(t *testing.T) {
	setupDB(t)
	svc := NewInventoryService()
	product := createProduct(t, "Desk Lamp", 29.99)
	createInventory(t, product.ID, 5, 10)

	_, err := svc.Create(InventoryInput{ProductID: product.ID, Quantity: 3})
	assert.ErrorIs(t, err, ErrDuplicateInventory)
}

func TestInventoryPartialUpdate(t *testing.T) {
	setupDB(t)
	svc := NewInventoryService()
	product := createProduct(t, "Desk Lamp", 29.99)
	item := createInventory(t, product.ID, 5, 7)

	updated, err := svc.Update(item.ID, InventoryUpdateInput{Quantity: ptr(42)})
	require.NoError(t, err)
	assert.Equal(t, 42, updated.Quantity)
	assert.Equal(t, 7, updated.LowStockThreshold, "absent fields keep stored values")
}

func TestInventoryStatus(t *testing.T) {
	setupDB(t)
	svc := NewInventoryService()
	lamp := createProduct(t, "Desk Lamp", 29.99)
	chair := createProduct(t, "Office Chair", 199)
	createInventory(t, lamp.ID, 3, 10)
	createInventory(t, chair.ID, 50, 10)

	report, err := svc.Status(false)
	require.NoError(t, err)
	require.Len(t, report, 2)

	byName := map[string]InventoryStatus{}
	for _, row := range report {
		byName[row.ProductName] = row
	}
	assert.Equal(t, StatusLowStock, byName["Desk Lamp"].Status)
	assert.Equal(t, StatusInStock, byName["Office Chair"].Status)

	lowOnly, err := svc.Status(true)
	require.NoError(t, err)
	require.Len(t, lowOnly, 1)
	assert.Equal(t, "Desk Lamp", lowOnly[0].ProductName)
}

func TestInventoryAlertsThresholdOverride(t *testing.T) {
	setupDB(t)
	svc := NewInventoryService()
	lamp := createProduct(t, "Desk Lamp", 29.99)
	chair := createProduct(t, "Office Chair", 199)
	createInventory(t, lamp.ID, 3, 10)
	createInventory(t, chair.ID, 50, 10)

	alerts, err := svc.Alerts(nil)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "Desk Lamp", alerts[0].ProductName)

	// Overriding the threshold pulls the chair in too.
	alerts, err = svc.Alerts(ptr(60))
	require.NoError(t, err)
	assert.Len(t, alerts, 2)
}

func TestInventoryHistory(t *testing.T) {
	setupDB(t)
	svc := NewInventoryService()
	lamp := createProduct(t, "Desk Lamp", 29.99)
	item := createInventory(t, lamp.ID, 5, 10)

	history, err := svc.History(0, 0, nil, nil)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, item.ID, history[0].ID)
	assert.Equal(t, "Desk Lamp", history[0].ProductName)
	assert.Equal(t, 5, history[0].Quantity)
	assert.Equal(t, StatusLowStock, history[0].Status)
	assert.False(t, history[0].ChangeDate.IsZero())
}

func TestInventoryHistoryUnknownID(t *testing.T) {
	setupDB(t)
	svc := NewInventoryService()

	_, err := svc.History(9999, 0, nil, nil)
	assert.ErrorIs(t, err, ErrInventoryNotFound)
}

func TestInventoryHistoryWindowExcludes(t *testing.T) {
	setupDB(t)
	svc := NewInventoryService()
	lamp := createProduct(t, "Desk Lamp", 29.99)
	createInventory(t, lamp.ID, 5, 10)

	// A window entirely in the past cannot contain a row updated just now.
	end := time.Now().UTC().AddDate(0, 0, -60)
	start := end.AddDate(0, 0, -30)
	history, err := svc.History(0, 0, &start, &end)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestInventoryDelete(t *testing.T) {
	setupDB(t)
	svc := NewInventoryService()
	lamp := createProduct(t, "Desk Lamp", 29.99)
	item := createInventory(t, lamp.ID, 5, 10)

	require.NoError(t, svc.Delete(item.ID))

	_, err := svc.Get(item.ID)
	assert.ErrorIs(t, err, ErrInventoryNotFound)
}
