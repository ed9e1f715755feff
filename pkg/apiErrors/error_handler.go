package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes returned to clients.
const (
	// Authentication errors (AUTH_*)
	ErrInvalidCredentials    = "AUTH_001" // wrong password
	ErrUserNotFound          = "AUTH_002" // email not in the demo directory
	ErrInvalidToken          = "AUTH_003" // missing/invalid session token
	ErrExpiredToken          = "AUTH_004"
	ErrUserAlreadyExists     = "AUTH_005"
	ErrInsufficientPrivilege = "AUTH_006"

	// Validation errors (VAL_*)
	ErrInvalidRequest      = "VAL_001" // malformed request body
	ErrMissingRequiredData = "VAL_002"
	ErrInvalidFormat       = "VAL_003" // bad date key, non-positive amount, ...
	ErrPasswordMismatch    = "VAL_004"

	// Server / upstream errors (SRV_*)
	ErrInternalServer   = "SRV_001"
	ErrStorageOperation = "SRV_002" // local fallback store failure
	ErrUpstreamService  = "SRV_003" // upstream sales API returned an error
	ErrUpstreamOffline  = "SRV_004" // upstream sales API unreachable
	ErrResourceNotFound = "SRV_005"
)

var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserNotFound:          http.StatusNotFound,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrUserAlreadyExists:     http.StatusBadRequest,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrPasswordMismatch:      http.StatusBadRequest,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrStorageOperation:      http.StatusInternalServerError,
	ErrUpstreamService:       http.StatusBadGateway,
	ErrUpstreamOffline:       http.StatusServiceUnavailable,
	ErrResourceNotFound:      http.StatusNotFound,
}

// APIError is the standard error envelope.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes the standard error envelope to the response.
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
