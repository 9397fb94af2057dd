package exchanges

import (
	"context"

	"github.com/vitrine-erp/vitrine-erp/internal/store"
)

// Repository persists the exchange collection.
type Repository struct {
	store store.Store
}

// NewRepository constructs a repository.
func NewRepository(st store.Store) *Repository {
	return &Repository{store: st}
}

// List loads every exchange.
func (r *Repository) List(ctx context.Context) ([]Exchange, error) {
	var exchanges []Exchange
	if err := r.store.Load(ctx, store.CollExchanges, &exchanges); err != nil {
		return nil, err
	}
	return exchanges, nil
}

// ReplaceAll overwrites the exchange collection.
func (r *Repository) ReplaceAll(ctx context.Context, exchanges []Exchange) error {
	return r.store.Save(ctx, store.CollExchanges, exchanges)
}
