package aggregating

import (
	"testing"
	"time"

	"github.com/sajangez/sajangez-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func day(dateKey string) time.Time {
	t, _ := time.ParseInLocation(time.DateOnly, dateKey, time.Local)
	return t
}

func TestChangeRate(t *testing.T) {
	service := NewService()

	tests := []struct {
		name           string
		todaySales     float64
		yesterdaySales float64
		expected       float64
	}{
		{
			name:           "no sales on either day",
			todaySales:     0,
			yesterdaySales: 0,
			expected:       0,
		},
		{
			name:           "sales appear on a zero baseline",
			todaySales:     100000,
			yesterdaySales: 0,
			expected:       100,
		},
		{
			name:           "sales grow by half",
			todaySales:     150000,
			yesterdaySales: 100000,
			expected:       50,
		},
		{
			name:           "sales shrink by half",
			todaySales:     50000,
			yesterdaySales: 100000,
			expected:       -50,
		},
		{
			name:           "fractional change is rounded to one decimal",
			todaySales:     100000,
			yesterdaySales: 30000,
			expected:       233.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.ChangeRate(tt.todaySales, tt.yesterdaySales))
		})
	}
}

func TestTotalsAndAverages(t *testing.T) {
	service := NewService()

	records := []domain.SaleRecord{
		{ID: "s1", Date: "2024-01-01", Amount: 100000},
		{ID: "s2", Date: "2024-01-02", Amount: 150000},
		{ID: "s3", Date: "2024-01-04", Amount: 50000},
	}

	assert.Equal(t, float64(300000), service.TotalSales(records))
	assert.Equal(t, float64(100000), service.AverageDailySales(records))
	assert.Equal(t, float64(150000), service.SalesOn(records, "2024-01-02"))
	assert.Equal(t, float64(0), service.SalesOn(records, "2024-01-03"))
}

func TestAverageDailySalesEmpty(t *testing.T) {
	service := NewService()

	assert.Equal(t, float64(0), service.AverageDailySales(nil))
}

func TestWeeklyWindow(t *testing.T) {
	service := NewService()

	records := []domain.SaleRecord{
		{ID: "s1", Date: "2024-01-01", Amount: 700000}, // outside the window
		{ID: "s2", Date: "2024-01-03", Amount: 140000},
		{ID: "s3", Date: "2024-01-07", Amount: 210000},
	}

	// The window is the 7 calendar days ending 2024-01-07, so 2024-01-01
	// falls outside and days without a record count as zero.
	assert.Equal(t, float64(350000), service.WeeklyTotal(records, day("2024-01-07")))
	assert.Equal(t, float64(50000), service.WeeklyAverage(records, day("2024-01-07")))
}

func TestWeekdayAverages(t *testing.T) {
	service := NewService()

	// 2024-01-01 and 2024-01-08 are Mondays, 2024-01-03 is a Wednesday.
	records := []domain.SaleRecord{
		{ID: "s1", Date: "2024-01-01", Amount: 100000},
		{ID: "s2", Date: "2024-01-08", Amount: 300000},
		{ID: "s3", Date: "2024-01-03", Amount: 500000},
	}

	averages := service.WeekdayAverages(records)

	assert.Equal(t, float64(200000), averages[int(time.Monday)])
	assert.Equal(t, float64(500000), averages[int(time.Wednesday)])
	assert.Equal(t, float64(0), averages[int(time.Sunday)])
	assert.Equal(t, float64(0), averages[int(time.Friday)])
}

func TestMonthlyTotal(t *testing.T) {
	service := NewService()

	records := []domain.SaleRecord{
		{ID: "s1", Date: "2024-01-05", Amount: 100000},
		{ID: "s2", Date: "2024-01-31", Amount: 150000},
		{ID: "s3", Date: "2024-02-01", Amount: 999999},
	}

	assert.Equal(t, float64(250000), service.MonthlyTotal(records, day("2024-01-15")))
	assert.Equal(t, float64(999999), service.MonthlyTotal(records, day("2024-02-20")))
	assert.Equal(t, float64(0), service.MonthlyTotal(records, day("2024-03-01")))
}

func TestDailySummary(t *testing.T) {
	service := NewService()

	records := []domain.SaleRecord{
		{ID: "s1", Date: "2024-01-01", Amount: 100000},
		{ID: "s2", Date: "2024-01-02", Amount: 150000},
	}

	summary := service.DailySummary(records, day("2024-01-02"))

	assert.Equal(t, "2024-01-02", summary.Date)
	assert.Equal(t, float64(150000), summary.TodaySales)
	assert.Equal(t, float64(100000), summary.YesterdaySales)
	assert.Equal(t, float64(50), summary.ChangeRate)
	assert.Equal(t, float64(250000), summary.TotalSales)
	assert.Equal(t, float64(125000), summary.AverageDailySales)
}
