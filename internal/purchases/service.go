package purchases

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/vitrine-erp/vitrine-erp/internal/shared"
	"github.com/vitrine-erp/vitrine-erp/internal/store"
)

// totalTolerance absorbs float drift when comparing leg sums against
// the document total.
const totalTolerance = 0.01

// RepositoryPort defines data access for purchases and aplicações.
type RepositoryPort interface {
	ListPurchases(ctx context.Context) ([]Purchase, error)
	ReplacePurchases(ctx context.Context, purchases []Purchase) error
	ListAplicacoes(ctx context.Context) ([]Aplicacao, error)
	ReplaceAplicacoes(ctx context.Context, aplicacoes []Aplicacao) error
}

// Service handles purchase and aplicação business logic.
type Service struct {
	repo RepositoryPort
	now  func() time.Time
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo, now: time.Now}
}

// ListPurchases returns every purchase, newest first.
func (s *Service) ListPurchases(ctx context.Context) ([]Purchase, error) {
	return s.repo.ListPurchases(ctx)
}

// ListAplicacoes returns every aplicação, newest first.
func (s *Service) ListAplicacoes(ctx context.Context) ([]Aplicacao, error) {
	return s.repo.ListAplicacoes(ctx)
}

// preparePayments validates leg sums against the document total and
// self-settles store-cash legs: a leg paid out of the register is
// stamped with a single receipt for its own amount on the document
// date, replacing whatever stamp a previous save left.
func preparePayments(payments []PurchasePayment, totalValue float64, docDate string) ([]PurchasePayment, error) {
	if len(payments) == 0 {
		return nil, fmt.Errorf("purchases: at least one payment leg required: %w", shared.ErrValidation)
	}
	var sum float64
	for _, leg := range payments {
		sum += leg.Amount
	}
	if math.Abs(sum-totalValue) > totalTolerance {
		return nil, fmt.Errorf("purchases: payment legs sum to %.2f, total is %.2f: %w", sum, totalValue, shared.ErrValidation)
	}
	prepared := make([]PurchasePayment, len(payments))
	copy(prepared, payments)
	for i := range prepared {
		if prepared[i].ID == "" {
			prepared[i].ID = uuid.NewString()
		}
		if prepared[i].Source == SourceOutros && prepared[i].OtherSourceName == "" {
			return nil, fmt.Errorf("purchases: otherSourceName required when source is Outros: %w", shared.ErrValidation)
		}
		if prepared[i].Source == SourceStoreCash {
			prepared[i].PaymentsReceived = []ReceivedPayment{{
				ID:     uuid.NewString(),
				Amount: prepared[i].Amount,
				Date:   docDate,
			}}
		} else if prepared[i].PaymentsReceived == nil {
			prepared[i].PaymentsReceived = []ReceivedPayment{}
		}
	}
	return prepared, nil
}

// SavePurchase creates or replaces a purchase.
func (s *Service) SavePurchase(ctx context.Context, purchase Purchase) (*Purchase, error) {
	if purchase.ID == "" {
		purchase.ID = uuid.NewString()
	}
	if purchase.Date.IsZero() {
		purchase.Date = store.NewTimestamp(s.now())
	}
	payments, err := preparePayments(purchase.Payments, purchase.TotalValue, shared.LocalDateString(purchase.Date.Time))
	if err != nil {
		return nil, err
	}
	purchase.Payments = payments

	purchases, err := s.repo.ListPurchases(ctx)
	if err != nil {
		return nil, err
	}
	replaced := false
	for i := range purchases {
		if purchases[i].ID == purchase.ID {
			purchases[i] = purchase
			replaced = true
			break
		}
	}
	if !replaced {
		purchases = append([]Purchase{purchase}, purchases...)
	}
	sort.SliceStable(purchases, func(i, j int) bool {
		return purchases[i].Date.After(purchases[j].Date.Time)
	})
	if err := s.repo.ReplacePurchases(ctx, purchases); err != nil {
		return nil, err
	}
	return &purchase, nil
}

// DeletePurchase removes a purchase by id.
func (s *Service) DeletePurchase(ctx context.Context, id string) error {
	purchases, err := s.repo.ListPurchases(ctx)
	if err != nil {
		return err
	}
	kept := purchases[:0:0]
	for _, p := range purchases {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(purchases) {
		return fmt.Errorf("purchases: purchase %s: %w", id, shared.ErrNotFound)
	}
	return s.repo.ReplacePurchases(ctx, kept)
}

// SaveAplicacao creates or replaces an aplicação.
func (s *Service) SaveAplicacao(ctx context.Context, aplicacao Aplicacao) (*Aplicacao, error) {
	if aplicacao.Name == "" {
		return nil, fmt.Errorf("purchases: aplicação name required: %w", shared.ErrValidation)
	}
	if aplicacao.ID == "" {
		aplicacao.ID = uuid.NewString()
	}
	if aplicacao.Date.IsZero() {
		aplicacao.Date = store.NewTimestamp(s.now())
	}
	payments, err := preparePayments(aplicacao.Payments, aplicacao.TotalValue, shared.LocalDateString(aplicacao.Date.Time))
	if err != nil {
		return nil, err
	}
	aplicacao.Payments = payments

	aplicacoes, err := s.repo.ListAplicacoes(ctx)
	if err != nil {
		return nil, err
	}
	replaced := false
	for i := range aplicacoes {
		if aplicacoes[i].ID == aplicacao.ID {
			aplicacoes[i] = aplicacao
			replaced = true
			break
		}
	}
	if !replaced {
		aplicacoes = append([]Aplicacao{aplicacao}, aplicacoes...)
	}
	sort.SliceStable(aplicacoes, func(i, j int) bool {
		return aplicacoes[i].Date.After(aplicacoes[j].Date.Time)
	})
	if err := s.repo.ReplaceAplicacoes(ctx, aplicacoes); err != nil {
		return nil, err
	}
	return &aplicacao, nil
}

// DeleteAplicacao removes an aplicação by id.
func (s *Service) DeleteAplicacao(ctx context.Context, id string) error {
	aplicacoes, err := s.repo.ListAplicacoes(ctx)
	if err != nil {
		return err
	}
	kept := aplicacoes[:0:0]
	for _, a := range aplicacoes {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(aplicacoes) {
		return fmt.Errorf("purchases: aplicação %s: %w", id, shared.ErrNotFound)
	}
	return s.repo.ReplaceAplicacoes(ctx, kept)
}
