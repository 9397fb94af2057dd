package catalog

import (
	"context"

	"github.com/vitrine-erp/vitrine-erp/internal/store"
)

// Repository persists the product collection.
type Repository struct {
	store store.Store
}

// NewRepository constructs a repository.
func NewRepository(st store.Store) *Repository {
	return &Repository{store: st}
}

// List loads every product.
func (r *Repository) List(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := r.store.Load(ctx, store.CollProducts, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ReplaceAll overwrites the product collection.
func (r *Repository) ReplaceAll(ctx context.Context, products []Product) error {
	return r.store.Save(ctx, store.CollProducts, products)
}
