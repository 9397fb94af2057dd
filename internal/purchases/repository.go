package purchases

import (
	"context"

	"github.com/vitrine-erp/vitrine-erp/internal/store"
)

// Repository persists the purchase and aplicação collections.
type Repository struct {
	store store.Store
}

// NewRepository constructs a repository.
func NewRepository(st store.Store) *Repository {
	return &Repository{store: st}
}

// ListPurchases loads every purchase.
func (r *Repository) ListPurchases(ctx context.Context) ([]Purchase, error) {
	var purchases []Purchase
	if err := r.store.Load(ctx, store.CollPurchases, &purchases); err != nil {
		return nil, err
	}
	return purchases, nil
}

// ReplacePurchases overwrites the purchase collection.
func (r *Repository) ReplacePurchases(ctx context.Context, purchases []Purchase) error {
	return r.store.Save(ctx, store.CollPurchases, purchases)
}

// ListAplicacoes loads every aplicação.
func (r *Repository) ListAplicacoes(ctx context.Context) ([]Aplicacao, error) {
	var aplicacoes []Aplicacao
	if err := r.store.Load(ctx, store.CollAplicacoes, &aplicacoes); err != nil {
		return nil, err
	}
	return aplicacoes, nil
}

// ReplaceAplicacoes overwrites the aplicação collection.
func (r *Repository) ReplaceAplicacoes(ctx context.Context, aplicacoes []Aplicacao) error {
	return r.store.Save(ctx, store.CollAplicacoes, aplicacoes)
}
