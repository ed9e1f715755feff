package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateKey(t *testing.T) {
	moment := time.Date(2024, time.January, 5, 23, 59, 59, 0, time.Local)

	assert.Equal(t, "2024-01-05", DateKey(moment))
	assert.Equal(t, "2024-01", MonthKey(moment))
}

func TestParseDateKey(t *testing.T) {
	parsed, err := ParseDateKey("2024-01-05")
	require.NoError(t, err)
	assert.Equal(t, 2024, parsed.Year())
	assert.Equal(t, time.January, parsed.Month())
	assert.Equal(t, 5, parsed.Day())

	_, err = ParseDateKey("05/01/2024")
	assert.Error(t, err)
}

func TestRoundWithOneDecimalPlace(t *testing.T) {
	assert.Equal(t, 33.3, RoundWithOneDecimalPlace(33.333))
	assert.Equal(t, -50.0, RoundWithOneDecimalPlace(-50.04))
	assert.Equal(t, float64(0), RoundWithOneDecimalPlace(0))
}

func TestFormatThousands(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{name: "small amount", input: 900, expected: "900"},
		{name: "thousands", input: 1500, expected: "1,500"},
		{name: "millions", input: 1312500, expected: "1,312,500"},
		{name: "rounded fraction", input: 1312500.4, expected: "1,312,500"},
		{name: "negative amount", input: -920000, expected: "-920,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatThousands(tt.input))
		})
	}
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, 10)

	other, err := GenerateID()
	require.NoError(t, err)
	assert.NotEqual(t, id, other)
}
