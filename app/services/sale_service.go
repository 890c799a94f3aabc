package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shashiranjanraj/vanij/app/models"
	"github.com/shashiranjanraj/vanij/app/repositories"
	"github.com/shashiranjanraj/vanij/config"
	"github.com/shashiranjanraj/vanij/pkg/cache"
	"github.com/shashiranjanraj/vanij/pkg/logger"
	"github.com/shashiranjanraj/vanij/pkg/metrics"
	"github.com/shashiranjanraj/vanij/pkg/storage"
	"gorm.io/gorm"
)

// revenueCachePrefix namespaces cached revenue reports so sale writes can
// invalidate them in one sweep.
const revenueCachePrefix = "revenue:"

// SaleInput is a sale creation payload. The sale date is the business event
// time supplied by the caller, not the insert time.
type SaleInput struct {
	ProductID   uint      `json:"product_id" validate:"required"`
	Quantity    int       `json:"quantity" validate:"required,gt=0"`
	TotalAmount float64   `json:"total_amount" validate:"required,gt=0"`
	SaleDate    time.Time `json:"sale_date" validate:"required"`
}

// SaleUpdateInput is a partial update: only populated fields are applied.
// TotalAmount is stored as given and never recomputed from price.
type SaleUpdateInput struct {
	Quantity    *int       `json:"quantity" validate:"nullable,gt=0"`
	TotalAmount *float64   `json:"total_amount" validate:"nullable,gt=0"`
	SaleDate    *time.Time `json:"sale_date" validate:"nullable"`
}

// RevenueExport describes a report file written to storage.
type RevenueExport struct {
	Path string `json:"path"`
	URL  string `json:"url"`
	Rows int    `json:"rows"`
}

// SaleService implements sale recording and the revenue reports.
type SaleService struct {
	sales    *repositories.SaleRepository
	products *repositories.ProductRepository

	cacheTTL time.Duration
}

func NewSaleService(cfg *config.Config) *SaleService {
	return &SaleService{
		sales:    repositories.NewSaleRepository(),
		products: repositories.NewProductRepository(),
		cacheTTL: cfg.ReportCacheTTL,
	}
}

// List returns sales matching the filter.
func (s *SaleService) List(f repositories.SaleFilter) ([]models.Sale, error) {
	return s.sales.All(f)
}

// Get returns one sale by id.
func (s *SaleService) Get(id uint) (models.Sale, error) {
	sale, err := s.sales.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Sale{}, ErrSaleNotFound
	}
	return sale, err
}

// Create records a sale against an existing product and invalidates cached
// revenue reports.
func (s *SaleService) Create(in SaleInput) (models.Sale, error) {
	if _, err := s.products.FindByID(in.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Sale{}, ErrProductNotFound
		}
		return models.Sale{}, err
	}

	sale := models.Sale{
		ProductID:   in.ProductID,
		Quantity:    in.Quantity,
		TotalAmount: in.TotalAmount,
		SaleDate:    in.SaleDate,
	}
	if err := s.sales.Create(&sale); err != nil {
		return models.Sale{}, fmt.Errorf("create sale: %w", err)
	}

	s.invalidateReports()
	return sale, nil
}

// Update applies the populated fields of in to the stored sale.
func (s *SaleService) Update(id uint, in SaleUpdateInput) (models.Sale, error) {
	sale, err := s.Get(id)
	if err != nil {
		return models.Sale{}, err
	}

	if in.Quantity != nil {
		sale.Quantity = *in.Quantity
	}
	if in.TotalAmount != nil {
		sale.TotalAmount = *in.TotalAmount
	}
	if in.SaleDate != nil {
		sale.SaleDate = *in.SaleDate
	}

	if err := s.sales.Save(&sale); err != nil {
		return models.Sale{}, fmt.Errorf("update sale %d: %w", id, err)
	}

	s.invalidateReports()
	return sale, nil
}

// Delete removes a sale record.
func (s *SaleService) Delete(id uint) error {
	sale, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.sales.Delete(&sale); err != nil {
		return err
	}

	s.invalidateReports()
	return nil
}

// ProductRevenue aggregates one product's sales over the window. A product
// with no sales in the window is a not-found condition, unlike the
// period-wide reports which return zeros.
func (s *SaleService) ProductRevenue(productID uint, start, end *time.Time) (RevenueAnalytics, error) {
	if _, err := s.products.FindByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RevenueAnalytics{}, ErrProductNotFound
		}
		return RevenueAnalytics{}, err
	}

	from, to := ReportWindow(start, end)
	sales, err := s.sales.InWindow(&from, &to, productID)
	if err != nil {
		return RevenueAnalytics{}, err
	}
	if len(sales) == 0 {
		return RevenueAnalytics{}, ErrNoSalesData
	}

	revenue, orders, average := AggregateRevenue(sales)
	return RevenueAnalytics{
		Period:            fmt.Sprintf("%s to %s", from.Format("2006-01-02"), to.Format("2006-01-02")),
		Revenue:           revenue,
		OrderCount:        orders,
		AverageOrderValue: average,
	}, nil
}

// RevenueReport buckets revenue by the given mode over an optional window.
// Nil bounds leave the window open on that side. Results are cached per
// mode and window; sale writes invalidate the whole prefix.
func (s *SaleService) RevenueReport(mode BucketMode, start, end *time.Time) ([]RevenuePeriod, error) {
	key := reportCacheKey(mode, start, end)

	var cached []RevenuePeriod
	if cache.Get(key, &cached) {
		return cached, nil
	}

	sales, err := s.sales.InWindow(start, end, 0)
	if err != nil {
		return nil, err
	}

	report := BucketRevenue(sales, mode)
	metrics.ReportGenerated.WithLabelValues(string(mode)).Inc()

	// The report is already computed; a failing cache write must not turn
	// a good response into an error.
	if err := cache.Set(key, report, s.cacheTTL); err != nil {
		logger.Warn("cache revenue report", "key", key, "error", err)
	}
	return report, nil
}

// Compare totals revenue over two windows and reports the percentage change
// from the first to the second.
func (s *SaleService) Compare(p1Start, p1End, p2Start, p2End time.Time) (RevenueComparison, error) {
	first, err := s.sales.InWindow(&p1Start, &p1End, 0)
	if err != nil {
		return RevenueComparison{}, err
	}
	second, err := s.sales.InWindow(&p2Start, &p2End, 0)
	if err != nil {
		return RevenueComparison{}, err
	}

	total1 := SumRevenue(first)
	total2 := SumRevenue(second)

	metrics.ReportGenerated.WithLabelValues("compare").Inc()
	return RevenueComparison{
		Period1:          PeriodRevenue{Start: p1Start, End: p1End, TotalRevenue: total1},
		Period2:          PeriodRevenue{Start: p2Start, End: p2End, TotalRevenue: total2},
		PercentageChange: PercentageChange(total1, total2),
	}, nil
}

// Export writes a bucketed revenue report as CSV to the configured storage
// disk and returns where it landed.
func (s *SaleService) Export(mode BucketMode, start, end *time.Time) (RevenueExport, error) {
	report, err := s.RevenueReport(mode, start, end)
	if err != nil {
		return RevenueExport{}, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"period", "total_revenue"}); err != nil {
		return RevenueExport{}, err
	}
	for _, p := range report {
		row := []string{p.Period, strconv.FormatFloat(p.TotalRevenue, 'f', 2, 64)}
		if err := w.Write(row); err != nil {
			return RevenueExport{}, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return RevenueExport{}, err
	}

	path := fmt.Sprintf("reports/revenue-%s-%s.csv", mode, uuid.NewString())

	// The empty name resolves through the manager, which falls back to the
	// local disk when the configured one never booted.
	disk := storage.Use("")
	if err := disk.Put(path, buf.Bytes()); err != nil {
		return RevenueExport{}, fmt.Errorf("export revenue report: %w", err)
	}

	return RevenueExport{Path: path, URL: disk.URL(path), Rows: len(report)}, nil
}

func (s *SaleService) invalidateReports() {
	_ = cache.DelPrefix(revenueCachePrefix)
}

func reportCacheKey(mode BucketMode, start, end *time.Time) string {
	fmtBound := func(t *time.Time) string {
		if t == nil {
			return "open"
		}
		return t.UTC().Format("2006-01-02T15:04:05")
	}
	return revenueCachePrefix + string(mode) + ":" + fmtBound(start) + ":" + fmtBound(end)
}
