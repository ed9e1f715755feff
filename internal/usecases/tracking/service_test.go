package tracking

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	localstoremocks "github.com/sajangez/sajangez-api/infrastructure/localstore/mocks"
	"github.com/sajangez/sajangez-api/infrastructure/salesapi"
	salesapimocks "github.com/sajangez/sajangez-api/infrastructure/salesapi/mocks"
	"github.com/sajangez/sajangez-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testUser() *domain.User {
	return &domain.User{
		ID:    "user1",
		Email: "user1@naver.com",
		Name:  "김대희",
		Stores: []domain.Store{{
			ID:           "store1",
			Name:         "인호네 마라탕",
			BusinessType: "중식",
		}},
		SelectedStoreID: "store1",
	}
}

func TestListSales(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	upstreamRecords := []domain.SaleRecord{
		{ID: "s2", UserID: "user1", Date: "2024-01-02", Amount: 150000},
		{ID: "s1", UserID: "user1", Date: "2024-01-01", Amount: 100000},
	}
	localRecords := []domain.SaleRecord{
		{ID: "l1", UserID: "user1", Date: "2024-01-03", Amount: 70000},
	}

	tests := []struct {
		name     string
		setup    func(client *salesapimocks.MockClient, local *localstoremocks.MockStore)
		validate func(t *testing.T, result *SalesResult, err error)
	}{
		{
			name: "upstream records are returned sorted",
			setup: func(client *salesapimocks.MockClient, local *localstoremocks.MockStore) {
				client.EXPECT().ListSalesByUser(ctx, "user1").Return(upstreamRecords, nil)
			},
			validate: func(t *testing.T, result *SalesResult, err error) {
				require.NoError(t, err)
				assert.False(t, result.Offline)
				require.Len(t, result.Records, 2)
				assert.Equal(t, "2024-01-01", result.Records[0].Date)
				assert.Equal(t, "2024-01-02", result.Records[1].Date)
			},
		},
		{
			name: "upstream failure falls back to the local store",
			setup: func(client *salesapimocks.MockClient, local *localstoremocks.MockStore) {
				client.EXPECT().ListSalesByUser(ctx, "user1").Return(nil, errors.New("connection refused"))
				local.EXPECT().LoadSales(ctx, "user1", "store1").Return(localRecords, nil)
			},
			validate: func(t *testing.T, result *SalesResult, err error) {
				require.NoError(t, err)
				assert.True(t, result.Offline)
				require.Len(t, result.Records, 1)
				assert.Equal(t, "l1", result.Records[0].ID)
			},
		},
		{
			name: "empty upstream result uses the local store without going offline",
			setup: func(client *salesapimocks.MockClient, local *localstoremocks.MockStore) {
				client.EXPECT().ListSalesByUser(ctx, "user1").Return([]domain.SaleRecord{}, nil)
				local.EXPECT().LoadSales(ctx, "user1", "store1").Return(localRecords, nil)
			},
			validate: func(t *testing.T, result *SalesResult, err error) {
				require.NoError(t, err)
				assert.False(t, result.Offline)
				assert.Len(t, result.Records, 1)
			},
		},
		{
			name: "both sources failing is an error",
			setup: func(client *salesapimocks.MockClient, local *localstoremocks.MockStore) {
				client.EXPECT().ListSalesByUser(ctx, "user1").Return(nil, errors.New("connection refused"))
				local.EXPECT().LoadSales(ctx, "user1", "store1").Return(nil, errors.New("disk error"))
			},
			validate: func(t *testing.T, result *SalesResult, err error) {
				require.Error(t, err)
				assert.Nil(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := salesapimocks.NewMockClient(ctrl)
			local := localstoremocks.NewMockStore(ctrl)
			tt.setup(client, local)

			service := NewService(client, local)
			result, err := service.ListSales(ctx, "user1", "store1")
			tt.validate(t, result, err)
		})
	}
}

func TestSaveSaleValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := salesapimocks.NewMockClient(ctrl)
	local := localstoremocks.NewMockStore(ctrl)
	service := NewService(client, local)

	_, err := service.SaveSale(context.Background(), testUser(), "2024-01-01", 0)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = service.SaveSale(context.Background(), testUser(), "01/02/2024", 100000)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestSaveSaleUpstream(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	client := salesapimocks.NewMockClient(ctrl)
	local := localstoremocks.NewMockStore(ctrl)

	saved := domain.SaleRecord{ID: "remote1", UserID: "user1", Date: "2024-01-05", Amount: 250000}
	client.EXPECT().
		CreateSale(ctx, salesapi.CreateSaleRequest{
			UserID:       "user1",
			SaleDate:     "2024-01-05",
			Amount:       250000,
			StoreName:    "인호네 마라탕",
			BusinessType: "중식",
		}).
		Return(&saved, nil)

	service := NewService(client, local)

	notified := false
	service.Subscribe(func() { notified = true })

	result, err := service.SaveSale(ctx, testUser(), "2024-01-05", 250000)

	require.NoError(t, err)
	assert.False(t, result.Offline)
	assert.Equal(t, "remote1", result.Record.ID)
	assert.True(t, notified)
}

func TestSaveSaleFallsBackToLocalStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	client := salesapimocks.NewMockClient(ctrl)
	local := localstoremocks.NewMockStore(ctrl)

	client.EXPECT().CreateSale(ctx, gomock.Any()).Return(nil, errors.New("connection refused"))
	local.EXPECT().LoadSales(ctx, "user1", "store1").Return([]domain.SaleRecord{}, nil)

	var savedRecords []domain.SaleRecord
	local.EXPECT().
		SaveSales(ctx, "user1", "store1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, records []domain.SaleRecord) error {
			savedRecords = records
			return nil
		})

	service := NewService(client, local)
	result, err := service.SaveSale(ctx, testUser(), "2024-01-05", 250000)

	require.NoError(t, err)
	assert.True(t, result.Offline)
	assert.NotEmpty(t, result.Record.ID)
	assert.Equal(t, "2024-01-05", result.Record.Date)

	require.Len(t, savedRecords, 1)
	assert.Equal(t, float64(250000), savedRecords[0].Amount)
}

func TestSaveSaleOfflineKeepsExistingID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	client := salesapimocks.NewMockClient(ctrl)
	local := localstoremocks.NewMockStore(ctrl)

	existing := []domain.SaleRecord{
		{ID: "l1", UserID: "user1", Date: "2024-01-05", Amount: 100000},
	}

	client.EXPECT().CreateSale(ctx, gomock.Any()).Return(nil, errors.New("connection refused"))
	local.EXPECT().LoadSales(ctx, "user1", "store1").Return(existing, nil)

	var savedRecords []domain.SaleRecord
	local.EXPECT().
		SaveSales(ctx, "user1", "store1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, records []domain.SaleRecord) error {
			savedRecords = records
			return nil
		})

	service := NewService(client, local)
	result, err := service.SaveSale(ctx, testUser(), "2024-01-05", 250000)

	require.NoError(t, err)
	assert.True(t, result.Offline)

	// Re-entering the same day's amount keeps the original record ID.
	assert.Equal(t, "l1", result.Record.ID)
	require.Len(t, savedRecords, 1)
	assert.Equal(t, float64(250000), savedRecords[0].Amount)
}

func TestDeleteSale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	client := salesapimocks.NewMockClient(ctrl)
	local := localstoremocks.NewMockStore(ctrl)

	client.EXPECT().DeleteSale(ctx, "s1", "user1").Return(nil)
	local.EXPECT().LoadSales(ctx, "user1", "store1").Return([]domain.SaleRecord{}, nil)

	service := NewService(client, local)

	notified := false
	service.Subscribe(func() { notified = true })

	require.NoError(t, service.DeleteSale(ctx, testUser(), "s1"))
	assert.True(t, notified)
}

func TestDeleteSalePrunesLocalCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	client := salesapimocks.NewMockClient(ctrl)
	local := localstoremocks.NewMockStore(ctrl)

	client.EXPECT().DeleteSale(ctx, "l1", "user1").Return(nil)
	local.EXPECT().LoadSales(ctx, "user1", "store1").Return([]domain.SaleRecord{
		{ID: "l1", UserID: "user1", Date: "2024-01-05", Amount: 100000},
		{ID: "l2", UserID: "user1", Date: "2024-01-06", Amount: 200000},
	}, nil)

	var savedRecords []domain.SaleRecord
	local.EXPECT().
		SaveSales(ctx, "user1", "store1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, records []domain.SaleRecord) error {
			savedRecords = records
			return nil
		})

	service := NewService(client, local)

	require.NoError(t, service.DeleteSale(ctx, testUser(), "l1"))
	require.Len(t, savedRecords, 1)
	assert.Equal(t, "l2", savedRecords[0].ID)
}

func TestDeleteSaleUpstreamError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	client := salesapimocks.NewMockClient(ctrl)
	local := localstoremocks.NewMockStore(ctrl)

	client.EXPECT().DeleteSale(ctx, "s1", "user1").Return(errors.New("connection refused"))

	service := NewService(client, local)

	assert.Error(t, service.DeleteSale(ctx, testUser(), "s1"))
}
