package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/vitrine-erp/vitrine-erp/internal/shared"
	"github.com/vitrine-erp/vitrine-erp/internal/store"
)

// Service handles account creation and credential checks.
type Service struct {
	store store.Store
	now   func() time.Time
}

// NewService builds a Service instance.
func NewService(st store.Store) *Service {
	return &Service{store: st, now: time.Now}
}

func (s *Service) loadUsers(ctx context.Context) ([]storedUser, error) {
	var users []storedUser
	if err := s.store.Load(ctx, store.CollUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Signup registers a new operator account.
func (s *Service) Signup(ctx context.Context, email, name, password string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("auth: valid email required: %w", shared.ErrValidation)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("auth: password must be at least 8 characters: %w", shared.ErrValidation)
	}

	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == email {
			return nil, fmt.Errorf("auth: email already registered: %w", shared.ErrValidation)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := storedUser{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    store.NewTimestamp(s.now()),
	}
	users = append(users, user)
	if err := s.store.Save(ctx, store.CollUsers, users); err != nil {
		return nil, err
	}
	public := user.public()
	return &public, nil
}

// Login checks credentials and returns the matching user.
func (s *Service) Login(ctx context.Context, email, password string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email != email {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
			return nil, shared.ErrInvalidCredentials
		}
		public := u.public()
		return &public, nil
	}
	return nil, shared.ErrInvalidCredentials
}

// Get returns one user by id.
func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID == id {
			public := u.public()
			return &public, nil
		}
	}
	return nil, fmt.Errorf("auth: user %s: %w", id, shared.ErrNotFound)
}
