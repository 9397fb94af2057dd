package auth

import (
	"github.com/vitrine-erp/vitrine-erp/internal/store"
)

// User is a store operator account. The password hash never leaves the
// server.
type User struct {
	ID           string          `json:"id"`
	Email        string          `json:"email"`
	Name         string          `json:"name"`
	PasswordHash string          `json:"-"`
	CreatedAt    store.Timestamp `json:"createdAt"`
}

// storedUser is the persisted form, hash included.
type storedUser struct {
	ID           string          `json:"id"`
	Email        string          `json:"email"`
	Name         string          `json:"name"`
	PasswordHash string          `json:"passwordHash"`
	CreatedAt    store.Timestamp `json:"createdAt"`
}

func (u storedUser) public() User {
	return User{ID: u.ID, Email: u.Email, Name: u.Name, PasswordHash: u.PasswordHash, CreatedAt: u.CreatedAt}
}
