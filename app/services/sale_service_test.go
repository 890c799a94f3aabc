package services

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shashiranjanraj/vanij/config"
	"github.com/shashiranjanraj/vanij/pkg/cache"
	"github.com/shashiranjanraj/vanij/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSaleService() *SaleService {
	return NewSaleService(&config.Config{
		ReportCacheTTL: time.Minute,
	})
}

func TestSaleCreateUnknownProduct(t *testing.T) {
	setupDB(t)
	svc := newTestSaleService()

	_, err := svc.Create(SaleInput{
		ProductID:   9999,
		Quantity:    1,
		TotalAmount: 10,
		SaleDate:    time.Now().UTC(),
	})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestSaleCreateAndGet(t *testing.T) {
	setupDB(t)
	svc := newTestSaleService()
	product := createProduct(t, "Desk Lamp", 29.99)

	when := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	created, err := svc.Create(SaleInput{
		ProductID:   product.ID,
		Quantity:    2,
		TotalAmount: 59.98,
		SaleDate:    when,
	})
	require.NoError(t, err)

	got, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Quantity)
	assert.Equal(t, 59.98, got.TotalAmount)
	assert.True(t, got.SaleDate.Equal(when))
}

func TestSalePartialUpdate(t *testing.T) {
	setupDB(t)
	svc := newTestSaleService()
	product := createProduct(t, "Desk Lamp", 29.99)
	sale := createSale(t, product.ID, 29.99, 1)

	updated, err := svc.Update(sale.ID, SaleUpdateInput{Quantity: ptr(5)})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Quantity)
	assert.Equal(t, 29.99, updated.TotalAmount, "total is never recomputed")
}

func TestProductRevenueNoSales(t *testing.T) {
	setupDB(t)
	svc := newTestSaleService()
	product := createProduct(t, "Desk Lamp", 29.99)

	_, err := svc.ProductRevenue(product.ID, nil, nil)
	assert.ErrorIs(t, err, ErrNoSalesData)
}

func TestProductRevenueUnknownProduct(t *testing.T) {
	setupDB(t)
	svc := newTestSaleService()

	_, err := svc.ProductRevenue(9999, nil, nil)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductRevenueAggregates(t *testing.T) {
	setupDB(t)
	svc := newTestSaleService()
	product := createProduct(t, "Desk Lamp", 29.99)
	createSale(t, product.ID, 100, 1)
	createSale(t, product.ID, 50, 2)

	analytics, err := svc.ProductRevenue(product.ID, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 150.0, analytics.Revenue)
	assert.Equal(t, 2, analytics.OrderCount)
	assert.Equal(t, 75.0, analytics.AverageOrderValue)
	assert.Contains(t, analytics.Period, " to ")
}

func TestRevenueReportDaily(t *testing.T) {
	setupDB(t)
	svc := newTestSaleService()
	product := createProduct(t, "Desk Lamp", 29.99)
	createSale(t, product.ID, 100, 3)
	createSale(t, product.ID, 50, 3)
	createSale(t, product.ID, 25, 1)

	report, err := svc.RevenueReport(BucketDaily, nil, nil)
	require.NoError(t, err)
	require.Len(t, report, 2)

	assert.Equal(t, 150.0, report[0].TotalRevenue)
	assert.Equal(t, 25.0, report[1].TotalRevenue)
	assert.Less(t, report[0].Period, report[1].Period, "buckets are sorted ascending")
}

func TestRevenueReportWindowFilter(t *testing.T) {
	setupDB(t)
	svc := newTestSaleService()
	product := createProduct(t, "Desk Lamp", 29.99)
	createSale(t, product.ID, 100, 100)
	createSale(t, product.ID, 25, 1)

	start := time.Now().UTC().AddDate(0, 0, -7)
	report, err := svc.RevenueReport(BucketDaily, &start, nil)
	require.NoError(t, err)
	require.Len(t, report, 1)
	assert.Equal(t, 25.0, report[0].TotalRevenue)
}

func TestCompare(t *testing.T) {
	setupDB(t)
	svc := newTestSaleService()
	product := createProduct(t, "Desk Lamp", 29.99)
	createSale(t, product.ID, 100, 20)
	createSale(t, product.ID, 150, 5)

	p1Start := time.Now().UTC().AddDate(0, 0, -30)
	p1End := time.Now().UTC().AddDate(0, 0, -15)
	p2Start := time.Now().UTC().AddDate(0, 0, -14)
	p2End := time.Now().UTC()

	comparison, err := svc.Compare(p1Start, p1End, p2Start, p2End)
	require.NoError(t, err)
	assert.Equal(t, 100.0, comparison.Period1.TotalRevenue)
	assert.Equal(t, 150.0, comparison.Period2.TotalRevenue)
	assert.Equal(t, 50.0, comparison.PercentageChange)
}

func TestCompareEmptyFirstPeriod(t *testing.T) {
	setupDB(t)
	svc := newTestSaleService()
	product := createProduct(t, "Desk Lamp", 29.99)
	createSale(t, product.ID, 150, 5)

	p1Start := time.Now().UTC().AddDate(0, 0, -60)
	p1End := time.Now().UTC().AddDate(0, 0, -31)
	p2Start := time.Now().UTC().AddDate(0, 0, -14)
	p2End := time.Now().UTC()

	comparison, err := svc.Compare(p1Start, p1End, p2Start, p2End)
	require.NoError(t, err)
	assert.Equal(t, 100.0, comparison.PercentageChange)
}

// memDisk is an in-memory storage.Disk for export tests.
type memDisk struct {
	files map[string][]byte
}

func newMemDisk() *memDisk { return &memDisk{files: map[string][]byte{}} }

func (d *memDisk) Put(path string, content []byte) error {
	d.files[path] = content
	return nil
}

func (d *memDisk) PutStream(path string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	d.files[path] = data
	return nil
}

func (d *memDisk) Get(path string) ([]byte, error) { return d.files[path], nil }

func (d *memDisk) GetStream(path string) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(d.files[path])), nil
}

func (d *memDisk) Exists(path string) bool { _, ok := d.files[path]; return ok }

func (d *memDisk) LastModified(string) (time.Time, error) { return time.Now(), nil }

func (d *memDisk) URL(path string) string { return "mem://" + path }

func (d *memDisk) Delete(path string) error {
	delete(d.files, path)
	return nil
}

// setupExportDisk boots the storage manager the way the server does, then
// swaps the resolved local disk for an in-memory one.
func setupExportDisk(t *testing.T, configuredDisk string) *memDisk {
	t.Helper()

	storage.Connect(&config.Config{
		StorageDisk:      configuredDisk,
		StorageLocalRoot: t.TempDir(),
		StorageURL:       "http://localhost:8080/storage",
	})

	disk := newMemDisk()
	storage.RegisterDisk("local", disk)
	return disk
}

func TestExportWritesCSV(t *testing.T) {
	setupDB(t)
	disk := setupExportDisk(t, "local")

	svc := newTestSaleService()
	product := createProduct(t, "Desk Lamp", 29.99)
	createSale(t, product.ID, 100, 3)
	createSale(t, product.ID, 25, 1)

	export, err := svc.Export(BucketDaily, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, export.Rows)
	assert.True(t, strings.HasPrefix(export.Path, "reports/revenue-daily-"))
	assert.Equal(t, "mem://"+export.Path, export.URL)

	content, err := disk.Get(export.Path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "period,total_revenue", lines[0])
	assert.Contains(t, lines[1], "100.00")
	assert.Contains(t, lines[2], "25.00")
}

func TestExportUsesFallbackDiskWhenConfiguredDiskNeverBooted(t *testing.T) {
	setupDB(t)

	// STORAGE_DISK=s3 without a bucket: the manager only boots local and
	// resolves the default there, and exports must follow that resolution.
	disk := setupExportDisk(t, "s3")

	svc := newTestSaleService()
	product := createProduct(t, "Desk Lamp", 29.99)
	createSale(t, product.ID, 100, 1)

	export, err := svc.Export(BucketDaily, nil, nil)
	require.NoError(t, err)
	assert.True(t, disk.Exists(export.Path))
}

func TestRevenueReportSurvivesCacheOutage(t *testing.T) {
	setupDB(t)

	// A client pointed at a dead address fails both the read and the write
	// side of the cache; the report must still come back from the database.
	cache.RDB = redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	t.Cleanup(func() { cache.RDB = nil })

	svc := newTestSaleService()
	product := createProduct(t, "Desk Lamp", 29.99)
	createSale(t, product.ID, 100, 1)

	report, err := svc.RevenueReport(BucketDaily, nil, nil)
	require.NoError(t, err)
	require.Len(t, report, 1)
	assert.Equal(t, 100.0, report[0].TotalRevenue)
}
