package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sajangez/sajangez-api/internal/domain"
	"github.com/sajangez/sajangez-api/internal/usecases/authenticating"
	"github.com/sajangez/sajangez-api/pkg/apiErrors"
	"github.com/sajangez/sajangez-api/pkg/middleware"
)

func ListStores(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := currentUser(r, service)
		if err != nil {
			handleAuthError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"stores":          user.Stores,
			"selectedStoreId": user.SelectedStoreID,
		})
	}
}

func AddStore(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "인증이 필요합니다", nil)
			return
		}

		var input authenticating.StoreInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "요청 형식이 올바르지 않습니다", nil)
			return
		}

		store, err := service.AddStore(r.Context(), claims.UserID, input)
		if err != nil {
			handleAuthError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(store)
	}
}

func EditStore(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "인증이 필요합니다", nil)
			return
		}

		storeID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if storeID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "매장 ID가 필요합니다", nil)
			return
		}

		var input authenticating.StoreInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "요청 형식이 올바르지 않습니다", nil)
			return
		}

		store, err := service.EditStore(r.Context(), claims.UserID, storeID, input)
		if err != nil {
			handleAuthError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(store)
	}
}

func SelectStore(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "인증이 필요합니다", nil)
			return
		}

		storeID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if storeID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "매장 ID가 필요합니다", nil)
			return
		}

		user, err := service.SelectStore(r.Context(), claims.UserID, storeID)
		if err != nil {
			handleAuthError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(user)
	}
}
