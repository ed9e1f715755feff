package salesapi

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sajangez/sajangez-api/internal/domain"
)

// envelope is the upstream response wrapper.
type envelope struct {
	Success bool                `json:"success"`
	Data    jsoniter.RawMessage `json:"data"`
	Error   string              `json:"error"`
}

// apiSale is a sales record in the upstream wire format.
type apiSale struct {
	ID           string  `json:"id"`
	UserID       string  `json:"userId"`
	SaleDate     string  `json:"saleDate"`
	Amount       float64 `json:"amount"`
	StoreName    string  `json:"storeName"`
	BusinessType string  `json:"businessType"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// CreateSaleRequest is the payload for registering a day's sales upstream.
type CreateSaleRequest struct {
	UserID       string  `json:"userId"`
	SaleDate     string  `json:"saleDate"`
	Amount       float64 `json:"amount"`
	StoreName    string  `json:"storeName"`
	BusinessType string  `json:"businessType"`
}

func (s apiSale) toDomain() domain.SaleRecord {
	record := domain.SaleRecord{
		ID:           s.ID,
		UserID:       s.UserID,
		Date:         s.SaleDate,
		Amount:       s.Amount,
		StoreName:    s.StoreName,
		BusinessType: s.BusinessType,
	}

	if createdAt, err := time.Parse(time.RFC3339, s.CreatedAt); err == nil {
		record.CreatedAt = createdAt
	}
	if updatedAt, err := time.Parse(time.RFC3339, s.UpdatedAt); err == nil {
		record.UpdatedAt = updatedAt
	}

	return record
}

func (c *SalesClient) ListSalesByUser(ctx context.Context, userID string) ([]domain.SaleRecord, error) {
	endpoint := fmt.Sprintf("%s/sales/user/%s", c.baseURL, url.PathEscape(userID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "building list sales request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "calling upstream sales service")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("upstream sales service returned status %s", resp.Status)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, errors.Wrap(err, "decoding upstream response")
	}
	if !env.Success {
		return nil, errors.Errorf("upstream sales service error: %s", env.Error)
	}

	var sales []apiSale
	if err := json.Unmarshal(env.Data, &sales); err != nil {
		return nil, errors.Wrap(err, "decoding upstream sales payload")
	}

	records := make([]domain.SaleRecord, 0, len(sales))
	for _, s := range sales {
		records = append(records, s.toDomain())
	}

	return records, nil
}

func (c *SalesClient) CreateSale(ctx context.Context, createReq CreateSaleRequest) (*domain.SaleRecord, error) {
	body, err := json.Marshal(createReq)
	if err != nil {
		return nil, errors.Wrap(err, "encoding create sale payload")
	}

	endpoint := fmt.Sprintf("%s/sales", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "building create sale request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "calling upstream sales service")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, errors.Errorf("upstream sales service returned status %s", resp.Status)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, errors.Wrap(err, "decoding upstream response")
	}
	if !env.Success {
		return nil, errors.Errorf("upstream sales service error: %s", env.Error)
	}

	var sale apiSale
	if err := json.Unmarshal(env.Data, &sale); err != nil {
		return nil, errors.Wrap(err, "decoding upstream sale payload")
	}

	record := sale.toDomain()
	return &record, nil
}

func (c *SalesClient) DeleteSale(ctx context.Context, saleID, userID string) error {
	endpoint := fmt.Sprintf("%s/sales/%s/user/%s", c.baseURL, url.PathEscape(saleID), url.PathEscape(userID))

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "building delete sale request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "calling upstream sales service")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return errors.Errorf("upstream sales service returned status %s", resp.Status)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return errors.Wrap(err, "decoding upstream response")
	}
	if !env.Success {
		return errors.Errorf("upstream sales service error: %s", env.Error)
	}

	return nil
}
