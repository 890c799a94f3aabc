package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shashiranjanraj/vanij/app/models"
	"github.com/shashiranjanraj/vanij/pkg/collection"
)

// BucketMode selects the time bucket revenue is grouped into.
type BucketMode string

const (
	BucketDaily   BucketMode = "daily"
	BucketWeekly  BucketMode = "weekly"
	BucketMonthly BucketMode = "monthly"
	BucketAnnual  BucketMode = "annual"
)

// ValidBucketMode reports whether mode names a supported bucketing.
func ValidBucketMode(mode BucketMode) bool {
	switch mode {
	case BucketDaily, BucketWeekly, BucketMonthly, BucketAnnual:
		return true
	}
	return false
}

// RevenuePeriod is one bucket of a revenue report.
type RevenuePeriod struct {
	Period       string  `json:"period"`
	TotalRevenue float64 `json:"total_revenue"`
}

// RevenueAnalytics is the aggregate over one window of sales.
type RevenueAnalytics struct {
	Period            string  `json:"period"`
	Revenue           float64 `json:"revenue"`
	OrderCount        int     `json:"order_count"`
	AverageOrderValue float64 `json:"average_order_value"`
}

// PeriodRevenue is one side of a two-window comparison.
type PeriodRevenue struct {
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	TotalRevenue float64   `json:"total_revenue"`
}

// RevenueComparison relates two windows by their percentage change.
type RevenueComparison struct {
	Period1          PeriodRevenue `json:"period1"`
	Period2          PeriodRevenue `json:"period2"`
	PercentageChange float64       `json:"percentage_change"`
}

// bucketLabel derives the period label a sale date falls into.
// Weekly buckets use ISO weeks (Monday start), so a sale contributes to the
// same "2024-W05" label no matter which weekday it lands on.
func bucketLabel(mode BucketMode, t time.Time) string {
	switch mode {
	case BucketWeekly:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	case BucketMonthly:
		return fmt.Sprintf("%d-%02d", t.Year(), int(t.Month()))
	case BucketAnnual:
		return strconv.Itoa(t.Year())
	default:
		return t.Format("2006-01-02")
	}
}

// BucketRevenue groups sales into period buckets and sums total_amount per
// bucket. Buckets with no sales are absent from the result, not zero-filled.
// Labels sort chronologically because every format is fixed-width, so the
// result is ordered ascending by period.
func BucketRevenue(sales []models.Sale, mode BucketMode) []RevenuePeriod {
	grouped := collection.GroupBy(sales, func(s models.Sale) string {
		return bucketLabel(mode, s.SaleDate)
	})

	out := make([]RevenuePeriod, 0, len(grouped))
	for label, group := range grouped {
		total := collection.Reduce(group, 0.0, func(acc float64, s models.Sale) float64 {
			return acc + s.TotalAmount
		})
		out = append(out, RevenuePeriod{Period: label, TotalRevenue: total})
	}

	return collection.SortBy(out, func(p RevenuePeriod) string { return p.Period })
}

// SumRevenue totals total_amount over a sale set.
func SumRevenue(sales []models.Sale) float64 {
	return collection.Reduce(sales, 0.0, func(acc float64, s models.Sale) float64 {
		return acc + s.TotalAmount
	})
}

// AggregateRevenue computes the window aggregate over a sale set.
// An empty set yields zeros, never an error.
func AggregateRevenue(sales []models.Sale) (revenue float64, orderCount int, averageOrderValue float64) {
	revenue = SumRevenue(sales)
	orderCount = len(sales)
	if orderCount > 0 {
		averageOrderValue = revenue / float64(orderCount)
	}
	return revenue, orderCount, averageOrderValue
}

// PercentageChange is the relative change from period1 to period2 in
// percent. A zero period1 total cannot divide, so the convention is: 100
// when period2 has revenue, 0 when both are empty.
func PercentageChange(period1Total, period2Total float64) float64 {
	if period1Total == 0 {
		if period2Total > 0 {
			return 100
		}
		return 0
	}
	return (period2Total - period1Total) / period1Total * 100
}

// ReportWindow applies the default trailing window: a missing start becomes
// now − 30 days, a missing end becomes now. Bounds are inclusive.
func ReportWindow(start, end *time.Time) (time.Time, time.Time) {
	s := time.Now().UTC().AddDate(0, 0, -30)
	e := time.Now().UTC()
	if start != nil {
		s = *start
	}
	if end != nil {
		e = *end
	}
	return s, e
}
