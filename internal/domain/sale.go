package domain

import (
	"sort"
	"time"
)

// SaleRecord is a single day's sales entry for a store.
type SaleRecord struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Date         string    `json:"date"` // canonical YYYY-MM-DD key
	Amount       float64   `json:"amount"`
	StoreName    string    `json:"storeName,omitempty"`
	BusinessType string    `json:"businessType,omitempty"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt,omitempty"`
}

// SortSalesByDate orders records by their date key, oldest first.
func SortSalesByDate(records []SaleRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date < records[j].Date
	})
}

// FindSaleByDate returns the record for the given date key, if present.
func FindSaleByDate(records []SaleRecord, dateKey string) (SaleRecord, bool) {
	for _, r := range records {
		if r.Date == dateKey {
			return r, true
		}
	}
	return SaleRecord{}, false
}

// UpsertSaleByDate replaces the record holding the same date key, or appends.
// The result is kept sorted by date.
func UpsertSaleByDate(records []SaleRecord, record SaleRecord) []SaleRecord {
	for i, r := range records {
		if r.Date == record.Date {
			records[i] = record
			return records
		}
	}
	records = append(records, record)
	SortSalesByDate(records)
	return records
}

// RemoveSaleByID deletes the record with the given ID. It reports whether a
// record was removed.
func RemoveSaleByID(records []SaleRecord, saleID string) ([]SaleRecord, bool) {
	for i, r := range records {
		if r.ID == saleID {
			return append(records[:i], records[i+1:]...), true
		}
	}
	return records, false
}
