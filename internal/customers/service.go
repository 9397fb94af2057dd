package customers

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vitrine-erp/vitrine-erp/internal/shared"
	"github.com/vitrine-erp/vitrine-erp/internal/store"
)

// RepositoryPort defines data access for the customer book.
type RepositoryPort interface {
	List(ctx context.Context) ([]Customer, error)
	ReplaceAll(ctx context.Context, customers []Customer) error
}

// Service handles customer business logic.
type Service struct {
	repo RepositoryPort
	now  func() time.Time
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo, now: time.Now}
}

// List returns every customer, newest first.
func (s *Service) List(ctx context.Context) ([]Customer, error) {
	return s.repo.List(ctx)
}

// Get returns one customer by id.
func (s *Service) Get(ctx context.Context, id string) (*Customer, error) {
	customers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range customers {
		if customers[i].ID == id {
			return &customers[i], nil
		}
	}
	return nil, fmt.Errorf("customers: customer %s: %w", id, shared.ErrNotFound)
}

// Save creates or replaces a customer. New entries are prepended so the
// most recent signups stay at the top of the book.
func (s *Service) Save(ctx context.Context, customer Customer) (*Customer, error) {
	if customer.Name == "" {
		return nil, fmt.Errorf("customers: name required: %w", shared.ErrValidation)
	}
	if customer.Source == SourceOutros && customer.SourceOther == "" {
		return nil, fmt.Errorf("customers: sourceOther required when source is Outros: %w", shared.ErrValidation)
	}
	if customer.Status == "" {
		customer.Status = StatusNova
	}
	if customer.ID == "" {
		customer.ID = uuid.NewString()
	}
	if customer.CreatedAt.IsZero() {
		customer.CreatedAt = store.NewTimestamp(s.now())
	}

	customers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	replaced := false
	for i := range customers {
		if customers[i].ID == customer.ID {
			customers[i] = customer
			replaced = true
			break
		}
	}
	if !replaced {
		customers = append([]Customer{customer}, customers...)
	}
	if err := s.repo.ReplaceAll(ctx, customers); err != nil {
		return nil, err
	}
	return &customer, nil
}

// Delete removes a customer by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	customers, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	kept := customers[:0:0]
	for _, c := range customers {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(customers) {
		return fmt.Errorf("customers: customer %s: %w", id, shared.ErrNotFound)
	}
	return s.repo.ReplaceAll(ctx, kept)
}
