package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sajangez/sajangez-api/internal/domain"
	"github.com/sajangez/sajangez-api/internal/usecases/tracking"
	"github.com/sajangez/sajangez-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

type SaveSaleRequest struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

type SaveSaleResponse struct {
	Record  domain.SaleRecord `json:"record"`
	Offline bool              `json:"offline"`
	Message string            `json:"message"`
}

type ListSalesResponse struct {
	Records []domain.SaleRecord `json:"records"`
	Offline bool                `json:"offline"`
}

func ListSales(deps ReportDependencies) http.HandlerFunc {
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

		result, err := deps.Tracker.ListSales(r.Context(), user.ID, store.ID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrUpstreamService, "매출 데이터를 불러올 수 없습니다", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ListSalesResponse{
			Records: result.Records,
			Offline: result.Offline,
		})
	}
}

func SaveSale(deps ReportDependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := currentUser(r, deps.Auth)
		if err != nil {
			handleAuthError(w, err)
			return
		}

		var req SaveSaleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "요청 형식이 올바르지 않습니다", nil)
			return
		}

		result, err := deps.Tracker.SaveSale(r.Context(), user, req.Date, req.Amount)
		if err != nil {
			switch {
			case errors.Is(err, tracking.ErrInvalidAmount), errors.Is(err, tracking.ErrInvalidDate):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			default:
				logrus.Error(err)
				apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "매출 데이터를 저장할 수 없습니다", nil)
			}
			return
		}

		message := "매출 데이터가 성공적으로 저장되었습니다."
		if result.Offline {
			message = "매출 데이터가 저장되었습니다. (오프라인 모드)"
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(SaveSaleResponse{
			Record:  result.Record,
			Offline: result.Offline,
			Message: message,
		})
	}
}

func DeleteSale(deps ReportDependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := currentUser(r, deps.Auth)
		if err != nil {
			handleAuthError(w, err)
			return
		}

		saleID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if saleID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "매출 ID가 필요합니다", nil)
			return
		}

		if err := deps.Tracker.DeleteSale(r.Context(), user, saleID); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrUpstreamService, "매출 데이터를 삭제할 수 없습니다", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
