package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBenchmarkSales(t *testing.T) {
	tests := []struct {
		name         string
		district     string
		businessType string
		expected     float64
	}{
		{
			name:         "known district and business type",
			district:     "서초구",
			businessType: "중식",
			expected:     1312500,
		},
		{
			name:         "multiplier below one",
			district:     "도봉구",
			businessType: "카페",
			expected:     774000,
		},
		{
			name:         "unknown district falls back to the default",
			district:     "판교구",
			businessType: "중식",
			expected:     1000000,
		},
		{
			name:         "unknown business type falls back to the default",
			district:     "강남구",
			businessType: "세탁소",
			expected:     1000000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BenchmarkSales(tt.district, tt.businessType))
		})
	}
}

func TestInferDistrict(t *testing.T) {
	tests := []struct {
		name     string
		address  string
		expected string
	}{
		{
			name:     "district inside a full address",
			address:  "서울특별시 강남구 태헌로6 129",
			expected: "강남구",
		},
		{
			name:     "short district name",
			address:  "서울특별시 중구 게동길 17",
			expected: "중구",
		},
		{
			name:     "no district in the address",
			address:  "부산광역시 해운대구 마린시티",
			expected: "",
		},
		{
			name:     "empty address",
			address:  "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, InferDistrict(tt.address))
		})
	}
}

func TestReferenceTables(t *testing.T) {
	assert.Len(t, SeoulDistricts, 25)
	assert.Len(t, BusinessTypes, 8)

	district, ok := FindDistrict("강남구")
	assert.True(t, ok)
	assert.Equal(t, 1.15, district.Multiplier)

	businessType, ok := FindBusinessType("양식")
	assert.True(t, ok)
	assert.Equal(t, float64(1280000), businessType.BaseSales)

	_, ok = FindDistrict("해운대구")
	assert.False(t, ok)
}
