package tracking

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/sajangez/sajangez-api/infrastructure/localstore"
	"github.com/sajangez/sajangez-api/infrastructure/salesapi"
	"github.com/sajangez/sajangez-api/internal/domain"
	"github.com/sajangez/sajangez-api/pkg/log"
	"github.com/sajangez/sajangez-api/pkg/utils"
)

var (
	ErrInvalidAmount = errors.New("매출 금액은 0보다 커야 합니다")
	ErrInvalidDate   = errors.New("날짜 형식이 올바르지 않습니다")
)

// SalesResult is a record set together with where it came from.
type SalesResult struct {
	Records []domain.SaleRecord
	Offline bool
}

// SaveResult reports where a sale ended up being written.
type SaveResult struct {
	Record  domain.SaleRecord
	Offline bool
}

// Service fetches and persists dated sales records, preferring the upstream
// sales service and falling back to the local store when it fails.
type Service interface {
	ListSales(ctx context.Context, userID, storeID string) (*SalesResult, error)
	SaveSale(ctx context.Context, user *domain.User, dateKey string, amount float64) (*SaveResult, error)
	DeleteSale(ctx context.Context, user *domain.User, saleID string) error
	Subscribe(listener func())
}

type service struct {
	client salesapi.Client
	local  localstore.Store

	mu        sync.Mutex
	listeners []func()
}

func NewService(client salesapi.Client, local localstore.Store) Service {
	return &service{
		client: client,
		local:  local,
	}
}

// Subscribe registers a callback invoked after every successful write.
func (s *service) Subscribe(listener func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, listener)
}

func (s *service) notify() {
	s.mu.Lock()
	listeners := append([]func(){}, s.listeners...)
	s.mu.Unlock()

	for _, listener := range listeners {
		listener()
	}
}

// ListSales returns the user's records from upstream. An upstream failure or
// an empty upstream result falls back to the local store.
func (s *service) ListSales(ctx context.Context, userID, storeID string) (*SalesResult, error) {
	records, err := s.client.ListSalesByUser(ctx, userID)
	if err == nil && len(records) > 0 {
		domain.SortSalesByDate(records)
		return &SalesResult{Records: records}, nil
	}

	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("user_id", userID).Warn("upstream sales fetch failed, using local store")
	}

	localRecords, localErr := s.local.LoadSales(ctx, userID, storeID)
	if localErr != nil {
		if err != nil {
			return nil, errors.Wrap(err, "upstream and local sales fetch failed")
		}
		return nil, localErr
	}

	return &SalesResult{
		Records: localRecords,
		Offline: err != nil,
	}, nil
}

// SaveSale records one day's sales. The amount replaces any existing entry
// for the same date. When the upstream write fails, the record is kept in the
// local store instead.
func (s *service) SaveSale(ctx context.Context, user *domain.User, dateKey string, amount float64) (*SaveResult, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if _, err := utils.ParseDateKey(dateKey); err != nil {
		return nil, ErrInvalidDate
	}

	store, ok := user.SelectedStore()
	if !ok {
		return nil, errors.New("선택된 매장이 없습니다")
	}

	record, err := s.client.CreateSale(ctx, salesapi.CreateSaleRequest{
		UserID:       user.ID,
		SaleDate:     dateKey,
		Amount:       amount,
		StoreName:    store.Name,
		BusinessType: store.BusinessType,
	})
	if err == nil {
		s.notify()
		return &SaveResult{Record: *record}, nil
	}

	log.ForContext(ctx).WithError(err).WithField("user_id", user.ID).Warn("upstream sale save failed, writing to local store")

	localRecord, localErr := s.saveLocal(ctx, user.ID, store.ID, dateKey, amount)
	if localErr != nil {
		return nil, errors.Wrap(localErr, "upstream and local sale save failed")
	}

	s.notify()
	return &SaveResult{Record: *localRecord, Offline: true}, nil
}

func (s *service) saveLocal(ctx context.Context, userID, storeID, dateKey string, amount float64) (*domain.SaleRecord, error) {
	records, err := s.local.LoadSales(ctx, userID, storeID)
	if err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	record := domain.SaleRecord{
		ID:     id,
		UserID: userID,
		Date:   dateKey,
		Amount: amount,
	}
	if existing, ok := domain.FindSaleByDate(records, dateKey); ok {
		record.ID = existing.ID
	}

	records = domain.UpsertSaleByDate(records, record)

	if err := s.local.SaveSales(ctx, userID, storeID, records); err != nil {
		return nil, err
	}

	return &record, nil
}

// DeleteSale removes a record upstream and prunes any local copy kept from an
// earlier offline save.
func (s *service) DeleteSale(ctx context.Context, user *domain.User, saleID string) error {
	if err := s.client.DeleteSale(ctx, saleID, user.ID); err != nil {
		return err
	}

	if store, ok := user.SelectedStore(); ok {
		s.pruneLocal(ctx, user.ID, store.ID, saleID)
	}

	s.notify()
	return nil
}

func (s *service) pruneLocal(ctx context.Context, userID, storeID, saleID string) {
	records, err := s.local.LoadSales(ctx, userID, storeID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("user_id", userID).Warn("could not read local sales for pruning")
		return
	}

	records, removed := domain.RemoveSaleByID(records, saleID)
	if !removed {
		return
	}

	if err := s.local.SaveSales(ctx, userID, storeID, records); err != nil {
		log.ForContext(ctx).WithError(err).WithField("user_id", userID).Warn("could not prune local sale copy")
	}
}
