package routes_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shashiranjanraj/vanij/app/models"
	"github.com/shashiranjanraj/vanij/config"
	"github.com/shashiranjanraj/vanij/internal/server"
	"github.com/shashiranjanraj/vanij/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type envelope struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func newTestAPI(t *testing.T) http.Handler {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "api.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.Inventory{}, &models.Sale{}))
	database.DB = db

	cfg := &config.Config{
		AppEnv:             "testing",
		StorageDisk:        "local",
		RateLimitPerMinute: 10000,
		ReportCacheTTL:     time.Minute,
	}
	return server.NewRouter(cfg).Handler()
}

func do(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestWelcome(t *testing.T) {
	h := newTestAPI(t)

	rec, env := do(t, h, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome to the E-commerce Admin API", env.Message)
}

func TestProductLifecycle(t *testing.T) {
	h := newTestAPI(t)

	rec, env := do(t, h, http.MethodPost, "/api/products",
		`{"name":"Desk Lamp","description":"LED","price":29.99}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Product
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.NotZero(t, created.ID)

	rec, env = do(t, h, http.MethodGet, "/api/products/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var got models.Product
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "Desk Lamp", got.Name)

	rec, _ = do(t, h, http.MethodPut, "/api/products/1", `{"price":24.99}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(t, h, http.MethodDelete, "/api/products/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(t, h, http.MethodGet, "/api/products/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductValidation(t *testing.T) {
	h := newTestAPI(t)

	rec, env := do(t, h, http.MethodPost, "/api/products", `{"description":"no name or price"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, env.Errors, "name")
	assert.Contains(t, env.Errors, "price")
}

func TestInventoryDuplicateIsBadRequest(t *testing.T) {
	h := newTestAPI(t)

	rec, _ := do(t, h, http.MethodPost, "/api/products", `{"name":"Desk Lamp","price":29.99}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, _ = do(t, h, http.MethodPost, "/api/inventory", `{"product_id":1,"quantity":5}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, _ = do(t, h, http.MethodPost, "/api/inventory", `{"product_id":1,"quantity":3}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductDeleteConflict(t *testing.T) {
	h := newTestAPI(t)

	rec, _ := do(t, h, http.MethodPost, "/api/products", `{"name":"Desk Lamp","price":29.99}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec, _ = do(t, h, http.MethodPost, "/api/inventory", `{"product_id":1,"quantity":5}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, _ = do(t, h, http.MethodDelete, "/api/products/1", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRevenueDailyReport(t *testing.T) {
	h := newTestAPI(t)

	rec, _ := do(t, h, http.MethodPost, "/api/products", `{"name":"Desk Lamp","price":29.99}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	saleDate := time.Now().UTC().AddDate(0, 0, -1).Format(time.RFC3339)
	rec, _ = do(t, h, http.MethodPost, "/api/sales",
		`{"product_id":1,"quantity":2,"total_amount":59.98,"sale_date":"`+saleDate+`"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env := do(t, h, http.MethodGet, "/api/sales/revenue/daily", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var report []struct {
		Period       string  `json:"period"`
		TotalRevenue float64 `json:"total_revenue"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &report))
	require.Len(t, report, 1)
	assert.Equal(t, 59.98, report[0].TotalRevenue)
}

func TestCompareRequiresAllBounds(t *testing.T) {
	h := newTestAPI(t)

	rec, env := do(t, h, http.MethodGet,
		"/api/sales/revenue/compare?period1_start=2024-01-01&period1_end=2024-01-31", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, env.Errors, "period2_start")
	assert.Contains(t, env.Errors, "period2_end")
}

func TestSaleUnknownProductIsNotFound(t *testing.T) {
	h := newTestAPI(t)

	saleDate := time.Now().UTC().Format(time.RFC3339)
	rec, _ := do(t, h, http.MethodPost, "/api/sales",
		`{"product_id":42,"quantity":1,"total_amount":10,"sale_date":"`+saleDate+`"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInventoryStatusEndpoint(t *testing.T) {
	h := newTestAPI(t)

	rec, _ := do(t, h, http.MethodPost, "/api/products", `{"name":"Desk Lamp","price":29.99}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec, _ = do(t, h, http.MethodPost, "/api/inventory", `{"product_id":1,"quantity":3}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env := do(t, h, http.MethodGet, "/api/inventory/status", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var report []struct {
		ProductName string `json:"product_name"`
		Status      string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &report))
	require.Len(t, report, 1)
	assert.Equal(t, "Desk Lamp", report[0].ProductName)
	assert.Equal(t, "Low Stock", report[0].Status)
}
