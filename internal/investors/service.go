package investors

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vitrine-erp/vitrine-erp/internal/purchases"
	"github.com/vitrine-erp/vitrine-erp/internal/shared"
)

// repaymentTolerance absorbs float drift when checking a repayment
// against the outstanding amount.
const repaymentTolerance = 0.001

// RepositoryPort defines data access over the two funding collections.
type RepositoryPort interface {
	ListPurchases(ctx context.Context) ([]purchases.Purchase, error)
	ReplacePurchases(ctx context.Context, purchases []purchases.Purchase) error
	ListAplicacoes(ctx context.Context) ([]purchases.Aplicacao, error)
	ReplaceAplicacoes(ctx context.Context, aplicacoes []purchases.Aplicacao) error
}

// Service exposes the investor ledger.
type Service struct {
	repo RepositoryPort
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// Ledger is the full investor view: flattened payments, per-investor
// groups and aggregate totals.
type Ledger struct {
	Payments []InvestorPayment `json:"payments"`
	Groups   []InvestorGroup   `json:"groups"`
	Summary  Summary           `json:"summary"`
}

// Report builds the current ledger from both collections.
func (s *Service) Report(ctx context.Context) (*Ledger, error) {
	allPurchases, err := s.repo.ListPurchases(ctx)
	if err != nil {
		return nil, err
	}
	aplicacoes, err := s.repo.ListAplicacoes(ctx)
	if err != nil {
		return nil, err
	}
	payments := Flatten(allPurchases, aplicacoes)
	return &Ledger{
		Payments: payments,
		Groups:   GroupByInvestor(payments),
		Summary:  Summarize(payments),
	}, nil
}

// RegisterRepayment appends a partial repayment to an investor-funded
// leg. The receipt must be positive and must not push cumulative
// receipts past the invested amount.
func (s *Service) RegisterRepayment(ctx context.Context, ownerID, paymentID string, amount float64, date string, origin OriginKind) error {
	if amount <= 0 {
		return fmt.Errorf("investors: repayment must be positive: %w", shared.ErrValidation)
	}
	if _, err := shared.ParseLocalDate(date); err != nil {
		return fmt.Errorf("investors: %v: %w", err, shared.ErrValidation)
	}
	receipt := purchases.ReceivedPayment{ID: uuid.NewString(), Amount: amount, Date: date}

	switch origin {
	case OriginPurchase:
		allPurchases, err := s.repo.ListPurchases(ctx)
		if err != nil {
			return err
		}
		for i := range allPurchases {
			if allPurchases[i].ID != ownerID {
				continue
			}
			if err := appendReceipt(allPurchases[i].Payments, paymentID, receipt); err != nil {
				return err
			}
			return s.repo.ReplacePurchases(ctx, allPurchases)
		}
	case OriginApplication:
		aplicacoes, err := s.repo.ListAplicacoes(ctx)
		if err != nil {
			return err
		}
		for i := range aplicacoes {
			if aplicacoes[i].ID != ownerID {
				continue
			}
			if err := appendReceipt(aplicacoes[i].Payments, paymentID, receipt); err != nil {
				return err
			}
			return s.repo.ReplaceAplicacoes(ctx, aplicacoes)
		}
	default:
		return fmt.Errorf("investors: unknown origin %q: %w", origin, shared.ErrValidation)
	}
	return fmt.Errorf("investors: owner %s: %w", ownerID, shared.ErrNotFound)
}

func appendReceipt(legs []purchases.PurchasePayment, paymentID string, receipt purchases.ReceivedPayment) error {
	for i := range legs {
		if legs[i].ID != paymentID {
			continue
		}
		pending := legs[i].Pending()
		if receipt.Amount > pending+repaymentTolerance {
			return fmt.Errorf("investors: repayment %.2f exceeds pending %.2f: %w", receipt.Amount, pending, shared.ErrValidation)
		}
		legs[i].PaymentsReceived = append(legs[i].PaymentsReceived, receipt)
		return nil
	}
	return fmt.Errorf("investors: payment %s: %w", paymentID, shared.ErrNotFound)
}
