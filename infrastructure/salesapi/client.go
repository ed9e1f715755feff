package salesapi

import (
	"context"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sajangez/sajangez-api/internal/config"
	"github.com/sajangez/sajangez-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client talks to the upstream sales service.
type Client interface {
	ListSalesByUser(ctx context.Context, userID string) ([]domain.SaleRecord, error)
	CreateSale(ctx context.Context, req CreateSaleRequest) (*domain.SaleRecord, error)
	DeleteSale(ctx context.Context, saleID, userID string) error
	Ping(ctx context.Context) bool
}

type SalesClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.SalesAPI.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &SalesClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: cfg.SalesAPI.BaseURL,
	}
}
