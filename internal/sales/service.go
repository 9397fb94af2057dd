package sales

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/vitrine-erp/vitrine-erp/internal/shared"
	"github.com/vitrine-erp/vitrine-erp/internal/store"
)

// RepositoryPort defines data access for sales.
type RepositoryPort interface {
	List(ctx context.Context) ([]Sale, error)
	ReplaceAll(ctx context.Context, sales []Sale) error
}

// StockAdjuster applies net quantity changes to the catalog.
type StockAdjuster interface {
	ApplyStockDeltas(ctx context.Context, deltas map[string]int) error
}

// Service handles sale business logic.
type Service struct {
	logger *slog.Logger
	repo   RepositoryPort
	stock  StockAdjuster
	now    func() time.Time
}

// NewService builds a Service instance.
func NewService(logger *slog.Logger, repo RepositoryPort, stock StockAdjuster) *Service {
	return &Service{logger: logger, repo: repo, stock: stock, now: time.Now}
}

// List returns every sale, newest first.
func (s *Service) List(ctx context.Context) ([]Sale, error) {
	return s.repo.List(ctx)
}

// Get returns one sale by id.
func (s *Service) Get(ctx context.Context, id string) (*Sale, error) {
	sales, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range sales {
		if sales[i].ID == id {
			return &sales[i], nil
		}
	}
	return nil, fmt.Errorf("sales: sale %s: %w", id, shared.ErrNotFound)
}

// Save creates or replaces a sale and adjusts stock by the net item
// difference. A payment total that disagrees with the items total is
// logged but accepted: discounts and rounding at the counter are
// normal.
func (s *Service) Save(ctx context.Context, sale Sale) (*Sale, error) {
	if len(sale.Items) == 0 {
		return nil, fmt.Errorf("sales: at least one item required: %w", shared.ErrValidation)
	}
	if len(sale.Payments) == 0 {
		return nil, fmt.Errorf("sales: at least one payment required: %w", shared.ErrValidation)
	}
	for i := range sale.Payments {
		if sale.Payments[i].ID == "" {
			sale.Payments[i].ID = uuid.NewString()
		}
		if sale.Payments[i].Type == PaymentAPrazo && len(sale.Payments[i].PaymentDates) == 0 {
			return nil, fmt.Errorf("sales: A Prazo leg needs installment dates: %w", shared.ErrValidation)
		}
	}
	if sale.ID == "" {
		sale.ID = uuid.NewString()
	}
	if sale.Date.IsZero() {
		sale.Date = store.NewTimestamp(s.now())
	}
	if sale.Total == 0 {
		sale.Total = sale.ItemsTotal()
	}
	if diff := math.Abs(sale.PaymentsTotal() - sale.Total); diff > 0.01 {
		s.logger.Warn("sale payments differ from total", "id", sale.ID, "total", sale.Total, "payments", sale.PaymentsTotal())
	}

	sales, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	var previous *Sale
	replaced := false
	for i := range sales {
		if sales[i].ID == sale.ID {
			prev := sales[i]
			previous = &prev
			sales[i] = sale
			replaced = true
			break
		}
	}
	if !replaced {
		sales = append([]Sale{sale}, sales...)
	}
	if err := s.repo.ReplaceAll(ctx, sales); err != nil {
		return nil, err
	}
	if err := s.stock.ApplyStockDeltas(ctx, StockDelta(previous, &sale)); err != nil {
		return nil, err
	}
	return &sale, nil
}

// Delete removes a sale and returns its items to stock.
func (s *Service) Delete(ctx context.Context, id string) error {
	sales, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	var removed *Sale
	kept := sales[:0:0]
	for _, sale := range sales {
		if sale.ID == id {
			sale := sale
			removed = &sale
			continue
		}
		kept = append(kept, sale)
	}
	if removed == nil {
		return fmt.Errorf("sales: sale %s: %w", id, shared.ErrNotFound)
	}
	if err := s.repo.ReplaceAll(ctx, kept); err != nil {
		return err
	}
	return s.stock.ApplyStockDeltas(ctx, StockDelta(removed, nil))
}
