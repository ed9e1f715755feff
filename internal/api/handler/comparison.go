package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sajangez/sajangez-api/internal/usecases/authenticating"
	"github.com/sajangez/sajangez-api/internal/usecases/comparing"
	"github.com/sajangez/sajangez-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

type ToggleDistrictRequest struct {
	District string `json:"district"`
}

type ToggleDistrictResponse struct {
	SelectedDistricts []comparing.SelectedDistrict `json:"selectedDistricts"`
}

type SetBusinessTypeRequest struct {
	BusinessType string `json:"businessType"`
}

// GetComparison benchmarks the user's average daily sales against the
// selected districts and business type.
func GetComparison(authService authenticating.Authenticator, compareService comparing.Service, deps ReportDependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := currentUser(r, authService)
		if err != nil {
			handleAuthError(w, err)
			return
		}

		store, ok := user.SelectedStore()
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "선택된 매장이 없습니다", nil)
			return
		}

		result, err := deps.Tracker.ListSales(r.Context(), user.ID, store.ID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrUpstreamService, "매출 데이터를 불러올 수 없습니다", nil)
			return
		}

		myAverage := deps.Aggregator.AverageDailySales(result.Records)
		report := compareService.Report(user.ID, store, myAverage)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(report)
	}
}

func ToggleComparisonDistrict(authService authenticating.Authenticator, compareService comparing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := currentUser(r, authService)
		if err != nil {
			handleAuthError(w, err)
			return
		}

		store, ok := user.SelectedStore()
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "선택된 매장이 없습니다", nil)
			return
		}

		var req ToggleDistrictRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "요청 형식이 올바르지 않습니다", nil)
			return
		}

		selected, err := compareService.ToggleDistrict(user.ID, store, req.District)
		if err != nil {
			if errors.Is(err, comparing.ErrUnknownDistrict) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
				return
			}
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "지역 선택을 변경할 수 없습니다", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ToggleDistrictResponse{SelectedDistricts: selected})
	}
}

func SetComparisonBusinessType(authService authenticating.Authenticator, compareService comparing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := currentUser(r, authService)
		if err != nil {
			handleAuthError(w, err)
			return
		}

		store, ok := user.SelectedStore()
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "선택된 매장이 없습니다", nil)
			return
		}

		var req SetBusinessTypeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "요청 형식이 올바르지 않습니다", nil)
			return
		}

		if err := compareService.SetBusinessType(user.ID, store, req.BusinessType); err != nil {
			if errors.Is(err, comparing.ErrUnknownBusinessType) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
				return
			}
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "업종 선택을 변경할 수 없습니다", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"businessType": req.BusinessType})
	}
}

func ListDistricts(compareService comparing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(compareService.Districts())
	}
}

func ListBusinessTypes(compareService comparing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(compareService.BusinessTypes())
	}
}
