package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertSaleByDate(t *testing.T) {
	records := []SaleRecord{
		{ID: "s1", Date: "2024-01-01", Amount: 100000},
		{ID: "s2", Date: "2024-01-03", Amount: 200000},
	}

	// A new date is inserted in order.
	records = UpsertSaleByDate(records, SaleRecord{ID: "s3", Date: "2024-01-02", Amount: 50000})
	require.Len(t, records, 3)
	assert.Equal(t, "2024-01-02", records[1].Date)

	// An existing date is replaced in place.
	records = UpsertSaleByDate(records, SaleRecord{ID: "s1", Date: "2024-01-01", Amount: 999999})
	require.Len(t, records, 3)
	assert.Equal(t, float64(999999), records[0].Amount)
}

func TestRemoveSaleByID(t *testing.T) {
	records := []SaleRecord{
		{ID: "s1", Date: "2024-01-01"},
		{ID: "s2", Date: "2024-01-02"},
	}

	records, removed := RemoveSaleByID(records, "s1")
	assert.True(t, removed)
	require.Len(t, records, 1)
	assert.Equal(t, "s2", records[0].ID)

	records, removed = RemoveSaleByID(records, "missing")
	assert.False(t, removed)
	assert.Len(t, records, 1)
}

func TestSelectedStore(t *testing.T) {
	user := &User{
		Stores: []Store{
			{ID: "store1", Name: "정식당"},
			{ID: "store2", Name: "정카페"},
		},
		SelectedStoreID: "store2",
	}

	store, ok := user.SelectedStore()
	require.True(t, ok)
	assert.Equal(t, "store2", store.ID)

	// A stale selection falls back to the first store.
	user.SelectedStoreID = "store9"
	store, ok = user.SelectedStore()
	require.True(t, ok)
	assert.Equal(t, "store1", store.ID)

	empty := &User{}
	_, ok = empty.SelectedStore()
	assert.False(t, ok)
}
