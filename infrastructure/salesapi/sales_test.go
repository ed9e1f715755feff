package salesapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sajangez/sajangez-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) Client {
	return NewClient(&config.Config{
		SalesAPI: config.SalesAPI{
			BaseURL:        baseURL,
			TimeoutSeconds: 5,
		},
	})
}

func TestListSalesByUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/sales/user/user1", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"success": true,
			"data": [
				{
					"id": "s1",
					"userId": "user1",
					"saleDate": "2024-01-01",
					"amount": 100000,
					"storeName": "인호네 마라탕",
					"businessType": "중식",
					"createdAt": "2024-01-01T12:00:00Z",
					"updatedAt": "2024-01-01T12:00:00Z"
				}
			]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL + "/api")

	records, err := client.ListSalesByUser(context.Background(), "user1")

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "s1", records[0].ID)
	assert.Equal(t, "2024-01-01", records[0].Date)
	assert.Equal(t, float64(100000), records[0].Amount)
	assert.Equal(t, "중식", records[0].BusinessType)
	assert.False(t, records[0].CreatedAt.IsZero())
}

func TestListSalesByUserEnvelopeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": false, "error": "user not found"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL + "/api")

	_, err := client.ListSalesByUser(context.Background(), "user1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "user not found")
}

func TestListSalesByUserBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL + "/api")

	_, err := client.ListSalesByUser(context.Background(), "user1")

	assert.Error(t, err)
}

func TestCreateSale(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/sales", r.URL.Path)

		var payload CreateSaleRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "user1", payload.UserID)
		assert.Equal(t, "2024-01-05", payload.SaleDate)
		assert.Equal(t, float64(250000), payload.Amount)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{
			"success": true,
			"data": {
				"id": "remote1",
				"userId": "user1",
				"saleDate": "2024-01-05",
				"amount": 250000
			}
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL + "/api")

	record, err := client.CreateSale(context.Background(), CreateSaleRequest{
		UserID:       "user1",
		SaleDate:     "2024-01-05",
		Amount:       250000,
		StoreName:    "인호네 마라탕",
		BusinessType: "중식",
	})

	require.NoError(t, err)
	assert.Equal(t, "remote1", record.ID)
	assert.Equal(t, "2024-01-05", record.Date)
}

func TestDeleteSale(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/sales/s1/user/user1", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL + "/api")

	assert.NoError(t, client.DeleteSale(context.Background(), "s1", "user1"))
}

func TestPing(t *testing.T) {
	t.Run("any response counts as online", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/sales/user/test", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := newTestClient(server.URL + "/api")

		assert.True(t, client.Ping(context.Background()))
	})

	t.Run("transport failure counts as offline", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := newTestClient(server.URL + "/api")

		assert.False(t, client.Ping(context.Background()))
	})
}
