package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sajangez/sajangez-api/internal/domain"
	"github.com/sajangez/sajangez-api/internal/usecases/authenticating"
	"github.com/sajangez/sajangez-api/pkg/apiErrors"
	"github.com/sajangez/sajangez-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "요청 형식이 올바르지 않습니다", nil)
			return
		}

		token, user, err := service.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			handleAuthError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(LoginResponse{
			Token: token,
			User:  user,
		})
	}
}

func Signup(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req authenticating.SignupRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "요청 형식이 올바르지 않습니다", nil)
			return
		}

		token, user, err := service.Signup(r.Context(), req)
		if err != nil {
			handleAuthError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(LoginResponse{
			Token: token,
			User:  user,
		})
	}
}

// Logout acknowledges the session end. Tokens are stateless, so the client
// discards its copy and nothing is kept server-side.
func Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "로그아웃되었습니다.",
		})
	}
}

// GetMe returns the authenticated user's profile, stores included.
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := currentUser(r, service)
		if err != nil {
			handleAuthError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(user); err != nil {
			logrus.Error(err)
		}
	}
}

// currentUser resolves the full user profile from the session claims.
func currentUser(r *http.Request, service authenticating.Authenticator) (*domain.User, error) {
	claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	if !ok {
		return nil, authenticating.NewAuthError(authenticating.ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return service.GetUser(r.Context(), claims.UserID)
}

// handleAuthError maps authentication failures onto API error responses.
func handleAuthError(w http.ResponseWriter, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		var details any
		if authErr.UserID != "" {
			details = map[string]any{"user_id": authErr.UserID}
		}
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), details)
		return
	}

	switch {
	case errors.Is(err, authenticating.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, err.Error(), nil)

	case errors.Is(err, authenticating.ErrUserNotFound):
		apiErrors.WriteError(w, apiErrors.ErrUserNotFound, err.Error(), nil)

	case errors.Is(err, authenticating.ErrUpstreamOffline):
		apiErrors.WriteError(w, apiErrors.ErrUpstreamOffline, err.Error(), nil)

	case errors.Is(err, authenticating.ErrInvalidToken):
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "로그인 처리 중 오류가 발생했습니다", nil)
	}
}
