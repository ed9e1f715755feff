package domain

import (
	"math"
	"strings"
)

// DistrictBenchmark is a Seoul district with its sales multiplier relative to
// the city baseline.
type DistrictBenchmark struct {
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
}

// BusinessTypeBenchmark is a restaurant category with its baseline monthly
// average daily sales in KRW.
type BusinessTypeBenchmark struct {
	Name      string  `json:"name"`
	BaseSales float64 `json:"baseSales"`
}

// SeoulDistricts lists the 25 autonomous districts of Seoul with their sales
// multipliers. Order matters for address inference and listing endpoints.
var SeoulDistricts = []DistrictBenchmark{
	{Name: "강남구", Multiplier: 1.15},
	{Name: "강동구", Multiplier: 0.95},
	{Name: "강북구", Multiplier: 0.88},
	{Name: "강서구", Multiplier: 1.02},
	{Name: "관악구", Multiplier: 0.92},
	{Name: "광진구", Multiplier: 0.98},
	{Name: "구로구", Multiplier: 0.94},
	{Name: "금천구", Multiplier: 0.89},
	{Name: "노원구", Multiplier: 0.91},
	{Name: "도봉구", Multiplier: 0.86},
	{Name: "동대문구", Multiplier: 0.93},
	{Name: "동작구", Multiplier: 0.97},
	{Name: "마포구", Multiplier: 1.08},
	{Name: "서대문구", Multiplier: 1.01},
	{Name: "서초구", Multiplier: 1.25},
	{Name: "성동구", Multiplier: 0.96},
	{Name: "성북구", Multiplier: 0.95},
	{Name: "송파구", Multiplier: 1.12},
	{Name: "양천구", Multiplier: 0.98},
	{Name: "영등포구", Multiplier: 1.05},
	{Name: "용산구", Multiplier: 1.07},
	{Name: "은평구", Multiplier: 0.90},
	{Name: "종로구", Multiplier: 1.04},
	{Name: "중구", Multiplier: 1.06},
	{Name: "중랑구", Multiplier: 0.87},
}

// BusinessTypes lists the supported restaurant categories with their baseline
// average daily sales.
var BusinessTypes = []BusinessTypeBenchmark{
	{Name: "중식", BaseSales: 1050000},
	{Name: "한식", BaseSales: 980000},
	{Name: "일식", BaseSales: 1180000},
	{Name: "양식", BaseSales: 1280000},
	{Name: "치킨", BaseSales: 920000},
	{Name: "피자", BaseSales: 1100000},
	{Name: "카페", BaseSales: 900000},
	{Name: "분식", BaseSales: 950000},
}

// DefaultBenchmarkSales is returned when the district or business type is not
// in the reference tables.
const DefaultBenchmarkSales = 1000000

// FindDistrict looks up a district benchmark by exact name.
func FindDistrict(name string) (DistrictBenchmark, bool) {
	for _, d := range SeoulDistricts {
		if d.Name == name {
			return d, true
		}
	}
	return DistrictBenchmark{}, false
}

// FindBusinessType looks up a business type benchmark by exact name.
func FindBusinessType(name string) (BusinessTypeBenchmark, bool) {
	for _, bt := range BusinessTypes {
		if bt.Name == name {
			return bt, true
		}
	}
	return BusinessTypeBenchmark{}, false
}

// BenchmarkSales estimates the average daily sales for a business type in a
// district. Unknown names fall back to the city-wide default.
func BenchmarkSales(districtName, businessTypeName string) float64 {
	district, okDistrict := FindDistrict(districtName)
	businessType, okType := FindBusinessType(businessTypeName)
	if !okDistrict || !okType {
		return DefaultBenchmarkSales
	}
	return math.Round(businessType.BaseSales * district.Multiplier)
}

// InferDistrict extracts the first known district name contained in a store
// address. It returns an empty string when no district matches.
func InferDistrict(address string) string {
	for _, d := range SeoulDistricts {
		if strings.Contains(address, d.Name) {
			return d.Name
		}
	}
	return ""
}
