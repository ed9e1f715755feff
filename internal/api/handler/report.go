package handler

import (
	"net/http"
	"time"

	"github.com/sajangez/sajangez-api/internal/domain"
	"github.com/sajangez/sajangez-api/internal/usecases/aggregating"
	"github.com/sajangez/sajangez-api/internal/usecases/authenticating"
	"github.com/sajangez/sajangez-api/internal/usecases/insighting"
	"github.com/sajangez/sajangez-api/internal/usecases/tracking"
	"github.com/sajangez/sajangez-api/pkg/apiErrors"
	"github.com/sajangez/sajangez-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// ReportDependencies bundles the services the sales and report handlers need.
type ReportDependencies struct {
	Auth       authenticating.Authenticator
	Tracker    tracking.Service
	Aggregator aggregating.Service
	Insighter  insighting.Service
}

type ReportResponse struct {
	Summary      domain.DailySummary   `json:"summary"`
	Calendar     []domain.CalendarCell `json:"calendar"`
	Insights     []domain.Insight      `json:"insights"`
	RecordedDays int                   `json:"recordedDays"`
	Offline      bool                  `json:"offline"`
}

// GetReport builds the full dashboard view for a selected date and month.
// Defaults to today and its month when the query parameters are absent.
func GetReport(deps ReportDependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := currentUser(r, deps.Auth)
		if err != nil {
			handleAuthError(w, err)
			return
		}

		store, ok := user.SelectedStore()
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "선택된 매장이 없습니다", nil)
			return
		}

		selectedDate := time.Now()
		if dateParam := r.URL.Query().Get("date"); dateParam != "" {
			selectedDate, err = utils.ParseDateKey(dateParam)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "날짜 형식이 올바르지 않습니다", nil)
				return
			}
		}

		monthAnchor := selectedDate
		if monthParam := r.URL.Query().Get("month"); monthParam != "" {
			monthAnchor, err = time.ParseInLocation("2006-01", monthParam, time.Local)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "월 형식이 올바르지 않습니다", nil)
				return
			}
		}

		result, err := deps.Tracker.ListSales(r.Context(), user.ID, store.ID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrUpstreamService, "매출 데이터를 불러올 수 없습니다", nil)
			return
		}

		records := result.Records

		response := ReportResponse{
			Summary:      deps.Aggregator.DailySummary(records, selectedDate),
			Calendar:     domain.BuildMonthGrid(monthAnchor, utils.DateKey(selectedDate), time.Now(), records),
			Insights:     deps.Insighter.Generate(records, selectedDate, monthAnchor),
			RecordedDays: len(records),
			Offline:      result.Offline,
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}
