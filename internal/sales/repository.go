package sales

import (
	"context"

	"github.com/vitrine-erp/vitrine-erp/internal/store"
)

// Repository persists the sales collection.
type Repository struct {
	store store.Store
}

// NewRepository constructs a repository.
func NewRepository(st store.Store) *Repository {
	return &Repository{store: st}
}

// List loads every sale.
func (r *Repository) List(ctx context.Context) ([]Sale, error) {
	var sales []Sale
	if err := r.store.Load(ctx, store.CollSales, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

// ReplaceAll overwrites the sales collection.
func (r *Repository) ReplaceAll(ctx context.Context, sales []Sale) error {
	return r.store.Save(ctx, store.CollSales, sales)
}
