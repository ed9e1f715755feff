package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMonthGrid(t *testing.T) {
	anchor := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.Local)
	today := time.Date(2024, time.January, 10, 9, 30, 0, 0, time.Local)

	records := []SaleRecord{
		{ID: "s1", Date: "2024-01-10", Amount: 150000},
	}

	cells := BuildMonthGrid(anchor, "2024-01-05", today, records)

	require.Len(t, cells, 42)

	// January 2024 starts on a Monday, so the grid opens on the last
	// Sunday of December.
	assert.Equal(t, "2023-12-31", cells[0].Date)
	assert.Equal(t, 31, cells[0].Day)
	assert.False(t, cells[0].InMonth)

	assert.Equal(t, "2024-01-01", cells[1].Date)
	assert.True(t, cells[1].InMonth)

	selected := cells[5]
	assert.Equal(t, "2024-01-05", selected.Date)
	assert.True(t, selected.IsSelected)
	assert.False(t, selected.IsToday)

	todayCell := cells[10]
	assert.Equal(t, "2024-01-10", todayCell.Date)
	assert.True(t, todayCell.IsToday)
	assert.True(t, todayCell.HasSales)
	assert.Equal(t, float64(150000), todayCell.Amount)

	last := cells[41]
	assert.Equal(t, "2024-02-10", last.Date)
	assert.False(t, last.InMonth)
}

func TestBuildMonthGridStartsOnSunday(t *testing.T) {
	// September 2024 starts on a Sunday, so the grid opens on the first
	// of the month itself.
	anchor := time.Date(2024, time.September, 1, 0, 0, 0, 0, time.Local)

	cells := BuildMonthGrid(anchor, "", anchor, nil)

	require.Len(t, cells, 42)
	assert.Equal(t, "2024-09-01", cells[0].Date)
	assert.True(t, cells[0].InMonth)
	assert.Equal(t, time.Sunday, mustParseDate(t, cells[0].Date).Weekday())
}

func mustParseDate(t *testing.T, key string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation(time.DateOnly, key, time.Local)
	require.NoError(t, err)
	return parsed
}
