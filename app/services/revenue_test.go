package services

import (
	"testing"
	"time"

	"github.com/shashiranjanraj/vanij/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saleOn(date string, amount float64) models.Sale {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return models.Sale{ProductID: 1, Quantity: 1, TotalAmount: amount, SaleDate: t}
}

func TestBucketLabel(t *testing.T) {
	jan5 := time.Date(2024, 1, 5, 14, 30, 0, 0, time.UTC)

	assert.Equal(t, "2024-01-05", bucketLabel(BucketDaily, jan5))
	assert.Equal(t, "2024-01", bucketLabel(BucketMonthly, jan5))
	assert.Equal(t, "2024", bucketLabel(BucketAnnual, jan5))

	// 2024-01-05 is a Friday in ISO week 1.
	assert.Equal(t, "2024-W01", bucketLabel(BucketWeekly, jan5))

	// Early January can belong to the previous ISO year.
	jan1 := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2022-W52", bucketLabel(BucketWeekly, jan1))
}

func TestBucketRevenueDaily(t *testing.T) {
	sales := []models.Sale{
		saleOn("2024-03-01", 100),
		saleOn("2024-03-01", 50),
		saleOn("2024-03-03", 25),
	}

	report := BucketRevenue(sales, BucketDaily)
	require.Len(t, report, 2)

	assert.Equal(t, RevenuePeriod{Period: "2024-03-01", TotalRevenue: 150}, report[0])
	assert.Equal(t, RevenuePeriod{Period: "2024-03-03", TotalRevenue: 25}, report[1])
}

func TestBucketRevenueWeeklySpansWeekdays(t *testing.T) {
	// Monday and Sunday of the same ISO week land in one bucket.
	sales := []models.Sale{
		saleOn("2024-01-01", 10), // Monday, 2024-W01
		saleOn("2024-01-07", 20), // Sunday, 2024-W01
		saleOn("2024-01-08", 5),  // Monday, 2024-W02
	}

	report := BucketRevenue(sales, BucketWeekly)
	require.Len(t, report, 2)
	assert.Equal(t, RevenuePeriod{Period: "2024-W01", TotalRevenue: 30}, report[0])
	assert.Equal(t, RevenuePeriod{Period: "2024-W02", TotalRevenue: 5}, report[1])
}

func TestBucketRevenueEmpty(t *testing.T) {
	report := BucketRevenue(nil, BucketMonthly)
	assert.Empty(t, report)
}

func TestAggregateRevenue(t *testing.T) {
	revenue, orders, average := AggregateRevenue([]models.Sale{
		saleOn("2024-03-01", 100),
		saleOn("2024-03-02", 50),
	})
	assert.Equal(t, 150.0, revenue)
	assert.Equal(t, 2, orders)
	assert.Equal(t, 75.0, average)

	revenue, orders, average = AggregateRevenue(nil)
	assert.Zero(t, revenue)
	assert.Zero(t, orders)
	assert.Zero(t, average)
}

func TestPercentageChange(t *testing.T) {
	assert.Equal(t, 50.0, PercentageChange(100, 150))
	assert.Equal(t, -50.0, PercentageChange(100, 50))
	assert.Equal(t, 100.0, PercentageChange(0, 50))
	assert.Equal(t, 0.0, PercentageChange(0, 0))
}

func TestReportWindowDefaults(t *testing.T) {
	start, end := ReportWindow(nil, nil)
	assert.WithinDuration(t, time.Now().UTC(), end, time.Minute)
	assert.WithinDuration(t, time.Now().UTC().AddDate(0, 0, -30), start, time.Minute)

	fixed := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	start, end = ReportWindow(&fixed, nil)
	assert.Equal(t, fixed, start)
	assert.WithinDuration(t, time.Now().UTC(), end, time.Minute)
}

func TestValidBucketMode(t *testing.T) {
	assert.True(t, ValidBucketMode(BucketDaily))
	assert.True(t, ValidBucketMode(BucketAnnual))
	assert.False(t, ValidBucketMode("hourly"))
}
