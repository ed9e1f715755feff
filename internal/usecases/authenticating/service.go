package authenticating

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sajangez/sajangez-api/infrastructure/localstore"
	"github.com/sajangez/sajangez-api/internal/config"
	"github.com/sajangez/sajangez-api/internal/domain"
	"github.com/sajangez/sajangez-api/pkg/apiErrors"
	"github.com/sajangez/sajangez-api/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

const demoPassword = "password123"

// demoAccountHint lists the pre-registered accounts shown on failed logins.
const demoAccountHint = "사용 가능한 계정: rlaeogml0724@naver.com, rladlsgy@naver.com, dbswldnjs@naver.com, wjdtndud@naver.com"

// Pinger reports whether the upstream sales service is reachable.
type Pinger interface {
	Ping(ctx context.Context) bool
}

type SignupRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	StoreName       string `json:"storeName"`
	BusinessType    string `json:"businessType"`
	Address         string `json:"address"`
}

type StoreInput struct {
	Name         string `json:"name"`
	BusinessType string `json:"businessType"`
	Address      string `json:"address"`
}

type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Signup(ctx context.Context, req SignupRequest) (string, *domain.User, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	AddStore(ctx context.Context, userID string, input StoreInput) (*domain.Store, error)
	EditStore(ctx context.Context, userID, storeID string, input StoreInput) (*domain.Store, error)
	SelectStore(ctx context.Context, userID, storeID string) (*domain.User, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type userEntry struct {
	user         *domain.User
	passwordHash string
}

type Service struct {
	mu       sync.RWMutex
	users    map[string]*userEntry
	snapshot localstore.Store
	pinger   Pinger
	cfg      *config.Config
}

func NewService(snapshot localstore.Store, pinger Pinger, cfg *config.Config) (Authenticator, error) {
	demoHash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	s := &Service{
		users:    make(map[string]*userEntry),
		snapshot: snapshot,
		pinger:   pinger,
		cfg:      cfg,
	}

	for _, user := range demoUsers() {
		s.users[user.ID] = &userEntry{
			user:         user,
			passwordHash: string(demoHash),
		}
	}

	return s, nil
}

// demoUsers is the pre-registered account directory.
func demoUsers() []*domain.User {
	return []*domain.User{
		{
			ID:    "rlaeogml0724@naver.com",
			Email: "rlaeogml0724@naver.com",
			Name:  "김대희",
			Stores: []domain.Store{{
				ID:           "store1",
				Name:         "인호네 마라탕",
				BusinessType: "중식",
				Address:      "서울특별시 강남구 태헌로6 129",
			}},
			SelectedStoreID: "store1",
		},
		{
			ID:    "rladlsgy@naver.com",
			Email: "rladlsgy@naver.com",
			Name:  "김인호",
			Stores: []domain.Store{{
				ID:           "store1",
				Name:         "인다방",
				BusinessType: "카페",
				Address:      "서울특별시 강남구 태헌로6 152",
			}},
			SelectedStoreID: "store1",
		},
		{
			ID:    "dbswldnjs@naver.com",
			Email: "dbswldnjs@naver.com",
			Name:  "윤지원",
			Stores: []domain.Store{{
				ID:           "store1",
				Name:         "윤초밥",
				BusinessType: "일식",
				Address:      "서울특별시 성동구 성수동2가 315-71",
			}},
			SelectedStoreID: "store1",
		},
		{
			ID:    "wjdtndud@naver.com",
			Email: "wjdtndud@naver.com",
			Name:  "정수영",
			Stores: []domain.Store{{
				ID:           "store1",
				Name:         "정식당",
				BusinessType: "한식",
				Address:      "서울특별시 중구 게동길 17",
			}},
			SelectedStoreID: "store1",
		},
	}
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

func cloneUser(user *domain.User) *domain.User {
	clone := *user
	clone.Stores = append([]domain.Store(nil), user.Stores...)
	return &clone
}

func (s *Service) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "이메일과 비밀번호를 입력해주세요")
	}

	if !s.pinger.Ping(ctx) {
		return "", nil, NewAuthError(ErrUpstreamOffline, apiErrors.ErrUpstreamOffline, "")
	}

	email = handleEmail(email)

	s.mu.RLock()
	entry, ok := s.users[email]
	s.mu.RUnlock()

	if !ok {
		return "", nil, NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, demoAccountHint)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(entry.passwordHash), []byte(password)); err != nil {
		return "", nil, NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, entry.user.ID, "데모용 비밀번호: password123")
	}

	token, err := generateJWT(entry.user, s.cfg.SecretKey)
	if err != nil {
		return "", nil, NewAuthError(err, apiErrors.ErrInternalServer, "토큰 생성에 실패했습니다")
	}

	s.persistSnapshot(ctx, entry.user)

	return token, cloneUser(entry.user), nil
}

func (s *Service) Signup(ctx context.Context, req SignupRequest) (string, *domain.User, error) {
	if req.Name == "" || req.StoreName == "" || req.Email == "" || req.Password == "" {
		return "", nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "")
	}
	if req.Password != req.ConfirmPassword {
		return "", nil, NewAuthError(ErrPasswordMismatch, apiErrors.ErrPasswordMismatch, "")
	}
	if len(req.Password) < 6 {
		return "", nil, NewAuthError(ErrWeakPassword, apiErrors.ErrInvalidFormat, "")
	}

	email := handleEmail(req.Email)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	businessType := req.BusinessType
	if businessType == "" {
		businessType = domain.BusinessTypes[0].Name
	}

	user := &domain.User{
		ID:    email,
		Email: email,
		Name:  req.Name,
		Stores: []domain.Store{{
			ID:           "store1",
			Name:         req.StoreName,
			BusinessType: businessType,
			Address:      req.Address,
		}},
		SelectedStoreID: "store1",
	}

	s.mu.Lock()
	if _, exists := s.users[email]; exists {
		s.mu.Unlock()
		return "", nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "")
	}
	s.users[email] = &userEntry{
		user:         user,
		passwordHash: string(hashedPassword),
	}
	s.mu.Unlock()

	token, err := generateJWT(user, s.cfg.SecretKey)
	if err != nil {
		return "", nil, NewAuthError(err, apiErrors.ErrInternalServer, "토큰 생성에 실패했습니다")
	}

	s.persistSnapshot(ctx, user)

	return token, cloneUser(user), nil
}

func (s *Service) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	s.mu.RLock()
	entry, ok := s.users[userID]
	s.mu.RUnlock()

	if ok {
		return cloneUser(entry.user), nil
	}

	// Fall back to the local snapshot for accounts created before a restart.
	user, err := s.snapshot.LoadUserSnapshot(ctx, userID)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrStorageOperation, "사용자 정보를 불러올 수 없습니다")
	}
	if user == nil {
		return nil, NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "")
	}

	return user, nil
}

func (s *Service) AddStore(ctx context.Context, userID string, input StoreInput) (*domain.Store, error) {
	if input.Name == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "매장 이름을 입력해주세요")
	}

	s.mu.Lock()
	entry, ok := s.users[userID]
	if !ok {
		s.mu.Unlock()
		return nil, NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "")
	}

	store := domain.Store{
		ID:           fmt.Sprintf("store%d", len(entry.user.Stores)+1),
		Name:         input.Name,
		BusinessType: input.BusinessType,
		Address:      input.Address,
	}
	entry.user.Stores = append(entry.user.Stores, store)
	entry.user.SelectedStoreID = store.ID
	user := cloneUser(entry.user)
	s.mu.Unlock()

	s.persistSnapshot(ctx, user)

	return &store, nil
}

func (s *Service) EditStore(ctx context.Context, userID, storeID string, input StoreInput) (*domain.Store, error) {
	s.mu.Lock()
	entry, ok := s.users[userID]
	if !ok {
		s.mu.Unlock()
		return nil, NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "")
	}

	var updated *domain.Store
	for i := range entry.user.Stores {
		if entry.user.Stores[i].ID != storeID {
			continue
		}
		if input.Name != "" {
			entry.user.Stores[i].Name = input.Name
		}
		if input.BusinessType != "" {
			entry.user.Stores[i].BusinessType = input.BusinessType
		}
		if input.Address != "" {
			entry.user.Stores[i].Address = input.Address
		}
		storeCopy := entry.user.Stores[i]
		updated = &storeCopy
		break
	}
	if updated == nil {
		s.mu.Unlock()
		return nil, NewAuthError(ErrStoreNotFound, apiErrors.ErrResourceNotFound, "")
	}
	user := cloneUser(entry.user)
	s.mu.Unlock()

	s.persistSnapshot(ctx, user)

	return updated, nil
}

func (s *Service) SelectStore(ctx context.Context, userID, storeID string) (*domain.User, error) {
	s.mu.Lock()
	entry, ok := s.users[userID]
	if !ok {
		s.mu.Unlock()
		return nil, NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "")
	}

	if _, found := entry.user.FindStore(storeID); !found {
		s.mu.Unlock()
		return nil, NewAuthError(ErrStoreNotFound, apiErrors.ErrResourceNotFound, "")
	}
	entry.user.SelectedStoreID = storeID
	user := cloneUser(entry.user)
	s.mu.Unlock()

	s.persistSnapshot(ctx, user)

	return user, nil
}

func (s *Service) persistSnapshot(ctx context.Context, user *domain.User) {
	if err := s.snapshot.SaveUserSnapshot(ctx, user); err != nil {
		log.ForContext(ctx).WithError(err).WithField("user_id", user.ID).Warn("could not persist user snapshot")
	}
}

func generateJWT(user *domain.User, secretKey string) (string, error) {
	claims := domain.Claims{
		UserID:    user.ID,
		UserName:  user.Name,
		UserEmail: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
