package payroll

import (
	"context"

	"github.com/vitrine-erp/vitrine-erp/internal/store"
)

// Repository persists the salary payment collection.
type Repository struct {
	store store.Store
}

// NewRepository constructs a repository.
func NewRepository(st store.Store) *Repository {
	return &Repository{store: st}
}

// List loads every salary payment.
func (r *Repository) List(ctx context.Context) ([]SalaryPayment, error) {
	var payments []SalaryPayment
	if err := r.store.Load(ctx, store.CollSalaryPayments, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// ReplaceAll overwrites the salary payment collection.
func (r *Repository) ReplaceAll(ctx context.Context, payments []SalaryPayment) error {
	return r.store.Save(ctx, store.CollSalaryPayments, payments)
}
