package receivables

import (
	"context"
	"fmt"
	"time"

	"github.com/vitrine-erp/vitrine-erp/internal/customers"
	"github.com/vitrine-erp/vitrine-erp/internal/sales"
	"github.com/vitrine-erp/vitrine-erp/internal/shared"
)

// SaleSource provides the sales ledger.
type SaleSource interface {
	List(ctx context.Context) ([]sales.Sale, error)
	ReplaceAll(ctx context.Context, sales []sales.Sale) error
}

// CustomerSource provides the customer book.
type CustomerSource interface {
	List(ctx context.Context) ([]customers.Customer, error)
}

// Service exposes the installment ledger over the sales collection.
type Service struct {
	sales     SaleSource
	customers CustomerSource
	now       func() time.Time
}

// NewService builds a Service instance.
func NewService(saleSrc SaleSource, customerSrc CustomerSource) *Service {
	return &Service{sales: saleSrc, customers: customerSrc, now: time.Now}
}

// Grouped returns installments grouped per customer, optionally
// filtered to a YYYY-MM due month.
func (s *Service) Grouped(ctx context.Context, monthFilter string) ([]CustomerGroup, error) {
	allSales, err := s.sales.List(ctx)
	if err != nil {
		return nil, err
	}
	book, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	return GroupByCustomer(allSales, book, monthFilter), nil
}

// OverdueReport buckets late installments relative to the current day.
func (s *Service) OverdueReport(ctx context.Context) (OverdueBuckets, error) {
	allSales, err := s.sales.List(ctx)
	if err != nil {
		return OverdueBuckets{}, err
	}
	book, err := s.customers.List(ctx)
	if err != nil {
		return OverdueBuckets{}, err
	}
	return Overdue(allSales, book, s.now()), nil
}

// Toggle flips one installment between Pendente and Pago and persists
// the updated sale.
func (s *Service) Toggle(ctx context.Context, saleID, paymentID string, index int, status sales.InstallmentStatus) (*sales.Sale, error) {
	allSales, err := s.sales.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range allSales {
		if allSales[i].ID != saleID {
			continue
		}
		updated, err := ToggleInstallment(allSales[i], paymentID, index, status, s.now())
		if err != nil {
			return nil, err
		}
		allSales[i] = updated
		if err := s.sales.ReplaceAll(ctx, allSales); err != nil {
			return nil, err
		}
		return &updated, nil
	}
	return nil, fmt.Errorf("receivables: sale %s: %w", saleID, shared.ErrNotFound)
}
