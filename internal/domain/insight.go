package domain

// Insight kinds, rendered differently by the dashboard.
const (
	InsightKindPositive = "positive"
	InsightKindWarning  = "warning"
	InsightKindInfo     = "info"
)

// Insight is one automated observation about recent sales.
type Insight struct {
	Kind        string `json:"kind"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// DailySummary is the headline figures shown for a selected date.
type DailySummary struct {
	Date              string  `json:"date"`
	TodaySales        float64 `json:"todaySales"`
	YesterdaySales    float64 `json:"yesterdaySales"`
	ChangeRate        float64 `json:"changeRate"`
	TotalSales        float64 `json:"totalSales"`
	AverageDailySales float64 `json:"averageDailySales"`
}
