package domain

import (
	"time"

	"github.com/sajangez/sajangez-api/pkg/utils"
)

// KoreanDayNames maps time.Weekday (Sunday = 0) to its Korean name.
var KoreanDayNames = [7]string{"일요일", "월요일", "화요일", "수요일", "목요일", "금요일", "토요일"}

// CalendarCell is one slot of the month view. Cells outside the displayed
// month keep their date key so adjacent-month days remain clickable.
type CalendarCell struct {
	Date       string  `json:"date"`
	Day        int     `json:"day"`
	InMonth    bool    `json:"inMonth"`
	IsToday    bool    `json:"isToday"`
	IsSelected bool    `json:"isSelected"`
	HasSales   bool    `json:"hasSales"`
	Amount     float64 `json:"amount"`
}

// BuildMonthGrid lays out a 6-week calendar for the month containing anchor.
// The grid always holds 42 cells and starts on the Sunday on or before the
// first day of the month.
func BuildMonthGrid(anchor time.Time, selectedDate string, today time.Time, records []SaleRecord) []CalendarCell {
	amounts := make(map[string]float64, len(records))
	for _, r := range records {
		amounts[r.Date] = r.Amount
	}

	firstOfMonth := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	gridStart := firstOfMonth.AddDate(0, 0, -int(firstOfMonth.Weekday()))
	todayKey := utils.DateKey(today)

	cells := make([]CalendarCell, 0, 42)
	for i := 0; i < 42; i++ {
		day := gridStart.AddDate(0, 0, i)
		key := utils.DateKey(day)
		amount, hasSales := amounts[key]

		cells = append(cells, CalendarCell{
			Date:       key,
			Day:        day.Day(),
			InMonth:    day.Month() == anchor.Month(),
			IsToday:    key == todayKey,
			IsSelected: key == selectedDate,
			HasSales:   hasSales,
			Amount:     amount,
		})
	}

	return cells
}
