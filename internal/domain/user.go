package domain

import "github.com/golang-jwt/jwt/v5"

// Store is one business location owned by a user.
type Store struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	BusinessType string `json:"businessType"`
	Address      string `json:"address,omitempty"`
}

// User is an account with one or more stores.
type User struct {
	ID              string  `json:"id"`
	Email           string  `json:"email"`
	Name            string  `json:"name"`
	Stores          []Store `json:"stores"`
	SelectedStoreID string  `json:"selectedStoreId"`
}

// SelectedStore returns the user's currently selected store. It falls back to
// the first store when the selection is stale.
func (u *User) SelectedStore() (Store, bool) {
	for _, s := range u.Stores {
		if s.ID == u.SelectedStoreID {
			return s, true
		}
	}
	if len(u.Stores) > 0 {
		return u.Stores[0], true
	}
	return Store{}, false
}

// FindStore returns the store with the given ID.
func (u *User) FindStore(storeID string) (Store, bool) {
	for _, s := range u.Stores {
		if s.ID == storeID {
			return s, true
		}
	}
	return Store{}, false
}

// Claims carries the authenticated user's identity in the session token.
type Claims struct {
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	jwt.RegisteredClaims
}
