package payroll

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/vitrine-erp/vitrine-erp/internal/shared"
)

// RepositoryPort defines data access for salary payments.
type RepositoryPort interface {
	List(ctx context.Context) ([]SalaryPayment, error)
	ReplaceAll(ctx context.Context, payments []SalaryPayment) error
}

// Service handles salary payment business logic.
type Service struct {
	repo RepositoryPort
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// List returns every salary payment, most recent payment date first.
func (s *Service) List(ctx context.Context) ([]SalaryPayment, error) {
	return s.repo.List(ctx)
}

// Save creates or replaces a salary payment. The month field must agree
// with the payment date, and payments to Outros must name who got paid.
func (s *Service) Save(ctx context.Context, payment SalaryPayment) (*SalaryPayment, error) {
	if payment.Amount <= 0 {
		return nil, fmt.Errorf("payroll: amount must be positive: %w", shared.ErrValidation)
	}
	if _, err := shared.ParseLocalDate(payment.PaymentDate); err != nil {
		return nil, fmt.Errorf("payroll: %v: %w", err, shared.ErrValidation)
	}
	if payment.Month == "" {
		payment.Month = shared.MonthOfDate(payment.PaymentDate)
	}
	if payment.Month != shared.MonthOfDate(payment.PaymentDate) {
		return nil, fmt.Errorf("payroll: month %s does not match payment date %s: %w", payment.Month, payment.PaymentDate, shared.ErrValidation)
	}
	if payment.Recipient == RecipientOutros && payment.RecipientName == "" {
		return nil, fmt.Errorf("payroll: recipientName required when recipient is Outros: %w", shared.ErrValidation)
	}
	if payment.ID == "" {
		payment.ID = uuid.NewString()
	}

	payments, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	replaced := false
	for i := range payments {
		if payments[i].ID == payment.ID {
			payments[i] = payment
			replaced = true
			break
		}
	}
	if !replaced {
		payments = append(payments, payment)
	}
	sort.SliceStable(payments, func(i, j int) bool {
		return payments[i].PaymentDate > payments[j].PaymentDate
	})
	if err := s.repo.ReplaceAll(ctx, payments); err != nil {
		return nil, err
	}
	return &payment, nil
}

// Delete removes a salary payment by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	payments, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	kept := payments[:0:0]
	for _, p := range payments {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(payments) {
		return fmt.Errorf("payroll: payment %s: %w", id, shared.ErrNotFound)
	}
	return s.repo.ReplaceAll(ctx, kept)
}
