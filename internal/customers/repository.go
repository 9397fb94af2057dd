package customers

import (
	"context"

	"github.com/vitrine-erp/vitrine-erp/internal/store"
)

// Repository persists the customer collection.
type Repository struct {
	store store.Store
}

// NewRepository constructs a repository.
func NewRepository(st store.Store) *Repository {
	return &Repository{store: st}
}

// List loads every customer.
func (r *Repository) List(ctx context.Context) ([]Customer, error) {
	var customers []Customer
	if err := r.store.Load(ctx, store.CollCustomers, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// ReplaceAll overwrites the customer collection.
func (r *Repository) ReplaceAll(ctx context.Context, customers []Customer) error {
	return r.store.Save(ctx, store.CollCustomers, customers)
}
