package localstore

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	sq "github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sajangez/sajangez-api/internal/config"
	"github.com/sajangez/sajangez-api/internal/domain"

	_ "modernc.org/sqlite"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	salesDocumentKey = "sajang_ez_sales_data"
	userDocumentKey  = "sajang_ez_user_data"
)

// Store keeps a local copy of sales and account data for offline operation.
type Store interface {
	LoadSales(ctx context.Context, userID, storeID string) ([]domain.SaleRecord, error)
	SaveSales(ctx context.Context, userID, storeID string, records []domain.SaleRecord) error
	SaveUserSnapshot(ctx context.Context, user *domain.User) error
	LoadUserSnapshot(ctx context.Context, userID string) (*domain.User, error)
	Close() error
}

type SQLiteStore struct {
	db      *sql.DB
	builder sq.StatementBuilderType
}

func New(cfg *config.Config) (*SQLiteStore, error) {
	if dir := filepath.Dir(cfg.LocalStore.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "creating local store directory")
		}
	}

	db, err := sql.Open("sqlite", cfg.LocalStore.Path)
	if err != nil {
		return nil, errors.Wrap(err, "opening local store")
	}

	store := &SQLiteStore{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)
	`)
	return errors.Wrap(err, "migrating local store")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// storedSale is the persisted shape of one day's sales.
type storedSale struct {
	ID     string  `json:"id"`
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

func storeKey(userID, storeID string) string {
	return fmt.Sprintf("%s_%s", userID, storeID)
}

func (s *SQLiteStore) LoadSales(ctx context.Context, userID, storeID string) ([]domain.SaleRecord, error) {
	document, err := s.loadDocument(ctx, salesDocumentKey)
	if err != nil {
		return nil, err
	}
	if document == nil {
		return []domain.SaleRecord{}, nil
	}

	var allSales map[string][]storedSale
	if err := json.Unmarshal(document, &allSales); err != nil {
		return nil, errors.Wrap(err, "decoding local sales document")
	}

	sales := allSales[storeKey(userID, storeID)]
	records := make([]domain.SaleRecord, 0, len(sales))
	for _, sale := range sales {
		records = append(records, domain.SaleRecord{
			ID:     sale.ID,
			UserID: userID,
			Date:   sale.Date,
			Amount: sale.Amount,
		})
	}

	domain.SortSalesByDate(records)

	return records, nil
}

func (s *SQLiteStore) SaveSales(ctx context.Context, userID, storeID string, records []domain.SaleRecord) error {
	document, err := s.loadDocument(ctx, salesDocumentKey)
	if err != nil {
		return err
	}

	allSales := map[string][]storedSale{}
	if document != nil {
		if err := json.Unmarshal(document, &allSales); err != nil {
			return errors.Wrap(err, "decoding local sales document")
		}
	}

	sales := make([]storedSale, 0, len(records))
	for _, r := range records {
		sales = append(sales, storedSale{
			ID:     r.ID,
			Date:   r.Date,
			Amount: r.Amount,
		})
	}
	allSales[storeKey(userID, storeID)] = sales

	updated, err := json.Marshal(allSales)
	if err != nil {
		return errors.Wrap(err, "encoding local sales document")
	}

	return s.saveDocument(ctx, salesDocumentKey, updated)
}

func (s *SQLiteStore) SaveUserSnapshot(ctx context.Context, user *domain.User) error {
	document, err := s.loadDocument(ctx, userDocumentKey)
	if err != nil {
		return err
	}

	snapshots := map[string]*domain.User{}
	if document != nil {
		if err := json.Unmarshal(document, &snapshots); err != nil {
			return errors.Wrap(err, "decoding local user document")
		}
	}

	snapshots[user.ID] = user

	updated, err := json.Marshal(snapshots)
	if err != nil {
		return errors.Wrap(err, "encoding local user document")
	}

	return s.saveDocument(ctx, userDocumentKey, updated)
}

func (s *SQLiteStore) LoadUserSnapshot(ctx context.Context, userID string) (*domain.User, error) {
	document, err := s.loadDocument(ctx, userDocumentKey)
	if err != nil {
		return nil, err
	}
	if document == nil {
		return nil, nil
	}

	snapshots := map[string]*domain.User{}
	if err := json.Unmarshal(document, &snapshots); err != nil {
		return nil, errors.Wrap(err, "decoding local user document")
	}

	return snapshots[userID], nil
}

func (s *SQLiteStore) loadDocument(ctx context.Context, key string) ([]byte, error) {
	query, args, err := s.builder.
		Select("value").
		From("kv").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building local store query")
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading local store document")
	}

	return []byte(value), nil
}

func (s *SQLiteStore) saveDocument(ctx context.Context, key string, value []byte) error {
	query, args, err := s.builder.
		Insert("kv").
		Columns("key", "value", "updated_at").
		Values(key, string(value), time.Now().UTC().Format(time.RFC3339)).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building local store upsert")
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "writing local store document")
	}

	return nil
}
