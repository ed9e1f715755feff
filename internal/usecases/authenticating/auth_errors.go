package authenticating

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("비밀번호가 일치하지 않습니다")
	ErrUserNotFound       = errors.New("등록되지 않은 사용자입니다")
	ErrInvalidToken       = errors.New("유효하지 않은 토큰입니다")
	ErrUserAlreadyExists  = errors.New("이미 등록된 이메일입니다")
	ErrStoreNotFound      = errors.New("매장을 찾을 수 없습니다")

	ErrMissingRequiredData = errors.New("필수 정보를 모두 입력해주세요")
	ErrPasswordMismatch    = errors.New("비밀번호가 일치하지 않습니다")
	ErrWeakPassword        = errors.New("비밀번호는 6자 이상이어야 합니다")

	ErrUpstreamOffline = errors.New("백엔드 서버에 연결할 수 없습니다. 서버가 실행 중인지 확인해주세요")
)

// AuthError carries an API error code and extra context alongside the base
// error.
type AuthError struct {
	Err     error
	Code    string
	UserID  string
	Details string
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsCredentialsError reports whether the error is caused by bad credentials.
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrUserNotFound)
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

func NewUserAuthError(baseErr error, code string, userID string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}
