package comparing

import (
	"fmt"
	"math"
	"sync"

	"github.com/pkg/errors"
	"github.com/sajangez/sajangez-api/internal/domain"
	"github.com/sajangez/sajangez-api/pkg/utils"
)

const maxSelectedDistricts = 3

var (
	ErrUnknownDistrict     = errors.New("알 수 없는 지역입니다")
	ErrUnknownBusinessType = errors.New("알 수 없는 업종입니다")
)

const (
	myStoreColor      = "#EF4444"
	districtColor     = "#E5E7EB"
	businessTypeColor = "#D1D5DB"
)

// SelectedDistrict is a district chosen for comparison, with its benchmark
// recomputed for the currently selected business type.
type SelectedDistrict struct {
	Name         string  `json:"name"`
	AverageSales float64 `json:"averageSales"`
}

// ChartEntry is one bar of the comparison chart.
type ChartEntry struct {
	Name      string  `json:"name"`
	Sales     float64 `json:"sales"`
	Color     string  `json:"color"`
	IsMyStore bool    `json:"isMyStore"`
	Share     float64 `json:"share"`
}

// Report is the full display-ready comparison data set.
type Report struct {
	StoreName           string             `json:"storeName"`
	BusinessType        string             `json:"businessType"`
	MyAverageDailySales float64            `json:"myAverageDailySales"`
	SelectedDistricts   []SelectedDistrict `json:"selectedDistricts"`
	Chart               []ChartEntry       `json:"chart"`
	MaxValue            float64            `json:"maxValue"`
	DistrictSummary     string             `json:"districtSummary,omitempty"`
	BusinessTypeSummary string             `json:"businessTypeSummary,omitempty"`
}

// Service maintains per-store comparison selections and builds reports.
type Service interface {
	Districts() []domain.DistrictBenchmark
	BusinessTypes() []domain.BusinessTypeBenchmark
	ToggleDistrict(userID string, store domain.Store, districtName string) ([]SelectedDistrict, error)
	SetBusinessType(userID string, store domain.Store, businessTypeName string) error
	Report(userID string, store domain.Store, myAverageDailySales float64) *Report
}

// selection is the comparison state for one user/store pair.
type selection struct {
	businessType string
	districts    []string
}

type service struct {
	mu         sync.Mutex
	selections map[string]*selection
}

func NewService() Service {
	return &service{
		selections: make(map[string]*selection),
	}
}

func (s *service) Districts() []domain.DistrictBenchmark {
	return domain.SeoulDistricts
}

func (s *service) BusinessTypes() []domain.BusinessTypeBenchmark {
	return domain.BusinessTypes
}

func selectionKey(userID, storeID string) string {
	return fmt.Sprintf("%s_%s", userID, storeID)
}

// selectionFor returns the selection for the user's store, initializing it
// from the store's business type and address on first access. The caller must
// hold the mutex.
func (s *service) selectionFor(userID string, store domain.Store) *selection {
	key := selectionKey(userID, store.ID)
	if sel, ok := s.selections[key]; ok {
		return sel
	}

	sel := &selection{
		businessType: store.BusinessType,
	}
	if sel.businessType == "" {
		sel.businessType = domain.BusinessTypes[0].Name
	}
	if district := domain.InferDistrict(store.Address); district != "" {
		sel.districts = []string{district}
	}

	s.selections[key] = sel
	return sel
}

func (s *service) ToggleDistrict(userID string, store domain.Store, districtName string) ([]SelectedDistrict, error) {
	if _, ok := domain.FindDistrict(districtName); !ok {
		return nil, ErrUnknownDistrict
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sel := s.selectionFor(userID, store)

	for i, name := range sel.districts {
		if name == districtName {
			sel.districts = append(sel.districts[:i], sel.districts[i+1:]...)
			return s.selectedDistricts(sel), nil
		}
	}

	// A full selection ignores further additions.
	if len(sel.districts) < maxSelectedDistricts {
		sel.districts = append(sel.districts, districtName)
	}

	return s.selectedDistricts(sel), nil
}

func (s *service) SetBusinessType(userID string, store domain.Store, businessTypeName string) error {
	if _, ok := domain.FindBusinessType(businessTypeName); !ok {
		return ErrUnknownBusinessType
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sel := s.selectionFor(userID, store)
	sel.businessType = businessTypeName

	return nil
}

func (s *service) selectedDistricts(sel *selection) []SelectedDistrict {
	districts := make([]SelectedDistrict, 0, len(sel.districts))
	for _, name := range sel.districts {
		districts = append(districts, SelectedDistrict{
			Name:         name,
			AverageSales: domain.BenchmarkSales(name, sel.businessType),
		})
	}
	return districts
}

func (s *service) Report(userID string, store domain.Store, myAverageDailySales float64) *Report {
	s.mu.Lock()
	sel := s.selectionFor(userID, store)
	businessType := sel.businessType
	districts := s.selectedDistricts(sel)
	s.mu.Unlock()

	report := &Report{
		StoreName:           store.Name,
		BusinessType:        businessType,
		MyAverageDailySales: myAverageDailySales,
		SelectedDistricts:   districts,
	}

	chart := []ChartEntry{
		{
			Name:      fmt.Sprintf("내 가게 (%s)", store.Name),
			Sales:     math.Round(myAverageDailySales),
			Color:     myStoreColor,
			IsMyStore: true,
		},
	}

	for _, district := range districts {
		chart = append(chart, ChartEntry{
			Name:  district.Name,
			Sales: district.AverageSales,
			Color: districtColor,
		})
	}

	comparingOtherBusinessType := businessType != store.BusinessType
	if comparingOtherBusinessType {
		if businessTypeObj, ok := domain.FindBusinessType(businessType); ok {
			chart = append(chart, ChartEntry{
				Name:  fmt.Sprintf("%s 업종 평균", businessType),
				Sales: businessTypeObj.BaseSales,
				Color: businessTypeColor,
			})
		}
	}

	var maxValue float64
	for _, entry := range chart {
		if entry.Sales > maxValue {
			maxValue = entry.Sales
		}
	}
	if maxValue > 0 {
		for i := range chart {
			chart[i].Share = utils.RoundWithOneDecimalPlace(chart[i].Sales / maxValue * 100)
		}
	}

	report.Chart = chart
	report.MaxValue = maxValue

	if len(districts) > 0 {
		var regionTotal float64
		for _, district := range districts {
			regionTotal += district.AverageSales
		}
		regionAverage := regionTotal / float64(len(districts))
		report.DistrictSummary = summaryMessage("선택한 지역", myAverageDailySales, regionAverage)
	}

	if comparingOtherBusinessType {
		if businessTypeObj, ok := domain.FindBusinessType(businessType); ok {
			report.BusinessTypeSummary = summaryMessage(
				fmt.Sprintf("%s 업종", businessType),
				myAverageDailySales,
				businessTypeObj.BaseSales,
			)
		}
	}

	return report
}

func summaryMessage(subject string, mySales, benchmark float64) string {
	diff := mySales - benchmark

	var percentage float64
	if benchmark > 0 {
		percentage = math.Abs(diff / benchmark * 100)
	}

	direction := "높습니다"
	if diff < 0 {
		direction = "낮습니다"
	}

	return fmt.Sprintf("%s 대비 내 가게 매출이 %.1f%% %s", subject, percentage, direction)
}
