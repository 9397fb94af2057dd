package orders

import (
	"context"

	"github.com/vitrine-erp/vitrine-erp/internal/store"
)

// Repository persists the specific order collection.
type Repository struct {
	store store.Store
}

// NewRepository constructs a repository.
func NewRepository(st store.Store) *Repository {
	return &Repository{store: st}
}

// List loads every specific order.
func (r *Repository) List(ctx context.Context) ([]SpecificOrder, error) {
	var orders []SpecificOrder
	if err := r.store.Load(ctx, store.CollSpecificOrders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// ReplaceAll overwrites the specific order collection.
func (r *Repository) ReplaceAll(ctx context.Context, orders []SpecificOrder) error {
	return r.store.Save(ctx, store.CollSpecificOrders, orders)
}
