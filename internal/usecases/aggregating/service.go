package aggregating

import (
	"time"

	"github.com/sajangez/sajangez-api/internal/domain"
	"github.com/sajangez/sajangez-api/pkg/utils"
)

// Service derives metrics from a set of dated sales records.
type Service interface {
	TotalSales(records []domain.SaleRecord) float64
	AverageDailySales(records []domain.SaleRecord) float64
	ChangeRate(todaySales, yesterdaySales float64) float64
	SalesOn(records []domain.SaleRecord, dateKey string) float64
	WeeklyAverage(records []domain.SaleRecord, endDate time.Time) float64
	WeeklyTotal(records []domain.SaleRecord, endDate time.Time) float64
	WeekdayAverages(records []domain.SaleRecord) [7]float64
	MonthlyTotal(records []domain.SaleRecord, monthAnchor time.Time) float64
	DailySummary(records []domain.SaleRecord, selectedDate time.Time) domain.DailySummary
}

type service struct{}

func NewService() Service {
	return &service{}
}

func (s *service) TotalSales(records []domain.SaleRecord) float64 {
	var total float64
	for _, r := range records {
		total += r.Amount
	}
	return total
}

func (s *service) AverageDailySales(records []domain.SaleRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	return s.TotalSales(records) / float64(len(records))
}

// ChangeRate returns the day-over-day change in percent, rounded to one
// decimal place. A zero baseline yields 100 when today has sales, 0 otherwise.
func (s *service) ChangeRate(todaySales, yesterdaySales float64) float64 {
	if yesterdaySales == 0 {
		if todaySales > 0 {
			return 100
		}
		return 0
	}
	return utils.RoundWithOneDecimalPlace((todaySales - yesterdaySales) / yesterdaySales * 100)
}

func (s *service) SalesOn(records []domain.SaleRecord, dateKey string) float64 {
	if record, ok := domain.FindSaleByDate(records, dateKey); ok {
		return record.Amount
	}
	return 0
}

// WeeklyAverage is the mean over the 7 calendar days ending at endDate.
// Days without a record count as zero.
func (s *service) WeeklyAverage(records []domain.SaleRecord, endDate time.Time) float64 {
	return s.WeeklyTotal(records, endDate) / 7
}

func (s *service) WeeklyTotal(records []domain.SaleRecord, endDate time.Time) float64 {
	var total float64
	for i := 6; i >= 0; i-- {
		dateKey := utils.DateKey(endDate.AddDate(0, 0, -i))
		total += s.SalesOn(records, dateKey)
	}
	return total
}

// WeekdayAverages buckets records by weekday (Sunday = 0) and averages each
// bucket over its observed records only. Unobserved weekdays stay zero.
func (s *service) WeekdayAverages(records []domain.SaleRecord) [7]float64 {
	var totals [7]float64
	var counts [7]int

	for _, r := range records {
		date, err := utils.ParseDateKey(r.Date)
		if err != nil {
			continue
		}
		weekday := int(date.Weekday())
		totals[weekday] += r.Amount
		counts[weekday]++
	}

	var averages [7]float64
	for i := range totals {
		if counts[i] > 0 {
			averages[i] = totals[i] / float64(counts[i])
		}
	}
	return averages
}

func (s *service) MonthlyTotal(records []domain.SaleRecord, monthAnchor time.Time) float64 {
	monthKey := utils.MonthKey(monthAnchor)

	var total float64
	for _, r := range records {
		if len(r.Date) >= len(monthKey) && r.Date[:len(monthKey)] == monthKey {
			total += r.Amount
		}
	}
	return total
}

func (s *service) DailySummary(records []domain.SaleRecord, selectedDate time.Time) domain.DailySummary {
	todayKey := utils.DateKey(selectedDate)
	yesterdayKey := utils.DateKey(selectedDate.AddDate(0, 0, -1))

	todaySales := s.SalesOn(records, todayKey)
	yesterdaySales := s.SalesOn(records, yesterdayKey)

	return domain.DailySummary{
		Date:              todayKey,
		TodaySales:        todaySales,
		YesterdaySales:    yesterdaySales,
		ChangeRate:        s.ChangeRate(todaySales, yesterdaySales),
		TotalSales:        s.TotalSales(records),
		AverageDailySales: s.AverageDailySales(records),
	}
}
