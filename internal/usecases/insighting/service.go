package insighting

import (
	"fmt"
	"math"
	"time"

	"github.com/sajangez/sajangez-api/internal/domain"
	"github.com/sajangez/sajangez-api/internal/usecases/aggregating"
	"github.com/sajangez/sajangez-api/pkg/utils"
)

const (
	goodPerformanceThreshold = 1.2
	weakPerformanceThreshold = 0.8
	goalPaceThreshold        = 80.0
	monthlyGoalDays          = 30
)

// Service turns aggregated sales metrics into dashboard insights.
type Service interface {
	Generate(records []domain.SaleRecord, selectedDate, monthAnchor time.Time) []domain.Insight
}

type service struct {
	aggregator aggregating.Service
}

func NewService(aggregator aggregating.Service) Service {
	return &service{aggregator: aggregator}
}

// Generate evaluates the insight rules in order and returns every insight
// that qualifies. When none qualifies it returns a single placeholder asking
// for more data.
func (s *service) Generate(records []domain.SaleRecord, selectedDate, monthAnchor time.Time) []domain.Insight {
	insights := []domain.Insight{}

	todaySales := s.aggregator.SalesOn(records, utils.DateKey(selectedDate))
	weeklyAverage := s.aggregator.WeeklyAverage(records, selectedDate)
	weeklyTotal := s.aggregator.WeeklyTotal(records, selectedDate)

	if weeklyTotal > 0 && todaySales > weeklyAverage*goodPerformanceThreshold {
		percentAbove := math.Round((todaySales/weeklyAverage - 1) * 100)
		insights = append(insights, domain.Insight{
			Kind:        domain.InsightKindPositive,
			Title:       "좋은 매출 성과!",
			Description: fmt.Sprintf("오늘 매출이 주간 평균보다 %.0f%% 높습니다.", percentAbove),
		})
	} else if weeklyTotal > 0 && todaySales < weeklyAverage*weakPerformanceThreshold {
		percentBelow := math.Round((1 - todaySales/weeklyAverage) * 100)
		insights = append(insights, domain.Insight{
			Kind:        domain.InsightKindWarning,
			Title:       "매출 개선 필요",
			Description: fmt.Sprintf("오늘 매출이 주간 평균보다 %.0f%% 낮습니다.", percentBelow),
		})
	}

	weekdayAverages := s.aggregator.WeekdayAverages(records)
	bestDay := bestWeekday(weekdayAverages)
	if bestDay >= 0 {
		insights = append(insights, domain.Insight{
			Kind:  domain.InsightKindInfo,
			Title: "최고 매출 요일",
			Description: fmt.Sprintf(
				"%s이 평균적으로 가장 좋은 매출을 보입니다. (평균 %s원)",
				domain.KoreanDayNames[bestDay],
				utils.FormatThousands(weekdayAverages[bestDay]),
			),
		})
	}

	averageDailySales := s.aggregator.AverageDailySales(records)
	if averageDailySales > 0 {
		monthlyGoal := averageDailySales * monthlyGoalDays
		monthlyTotal := s.aggregator.MonthlyTotal(records, monthAnchor)
		achievementRate := utils.RoundWithOneDecimalPlace(monthlyTotal / monthlyGoal * 100)

		if achievementRate > goalPaceThreshold {
			insights = append(insights, domain.Insight{
				Kind:        domain.InsightKindPositive,
				Title:       "월 목표 달성 중",
				Description: fmt.Sprintf("이번 달 예상 목표의 %.1f%%를 달성했습니다.", achievementRate),
			})
		}
	}

	if len(insights) == 0 {
		insights = append(insights, domain.Insight{
			Kind:        domain.InsightKindInfo,
			Title:       "데이터 수집 중",
			Description: "더 정확한 분석을 위해 매출 데이터를 꾸준히 입력해주세요.",
		})
	}

	return insights
}

// bestWeekday returns the weekday index with the highest average, or -1 when
// no weekday has an observed record. Ties keep the earliest weekday.
func bestWeekday(averages [7]float64) int {
	best := -1
	for i, avg := range averages {
		if avg <= 0 {
			continue
		}
		if best == -1 || avg > averages[best] {
			best = i
		}
	}
	return best
}
