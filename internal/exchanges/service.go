package exchanges

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vitrine-erp/vitrine-erp/internal/shared"
	"github.com/vitrine-erp/vitrine-erp/internal/store"
)

// valeValidityDays is the default vale lifetime after the exchange.
const valeValidityDays = 30

// RepositoryPort defines data access for exchanges.
type RepositoryPort interface {
	List(ctx context.Context) ([]Exchange, error)
	ReplaceAll(ctx context.Context, exchanges []Exchange) error
}

// Service handles exchange business logic.
type Service struct {
	repo RepositoryPort
	now  func() time.Time
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo, now: time.Now}
}

// DefaultValeExpiry is the expiry stamped on a vale when the form does
// not pick one.
func DefaultValeExpiry(date time.Time) time.Time {
	return date.AddDate(0, 0, valeValidityDays)
}

// IsExpired reports whether a pending vale has passed its expiry.
func IsExpired(exchange Exchange, now time.Time) bool {
	if exchange.PaymentMethod != MethodVale || exchange.ValeExpiresAt == nil {
		return false
	}
	return exchange.Status == StatusPendente && exchange.ValeExpiresAt.Before(now)
}

// List returns every exchange, newest first.
func (s *Service) List(ctx context.Context) ([]Exchange, error) {
	return s.repo.List(ctx)
}

// Save creates or replaces an exchange. Vale exchanges default to a
// Pendente status and a 30 day expiry; cash exchanges carry neither.
func (s *Service) Save(ctx context.Context, exchange Exchange) (*Exchange, error) {
	if exchange.CustomerID == "" {
		return nil, fmt.Errorf("exchanges: customer required: %w", shared.ErrValidation)
	}
	if !exchange.IsBulk && len(exchange.Items) == 0 {
		return nil, fmt.Errorf("exchanges: itemised exchange needs items: %w", shared.ErrValidation)
	}
	if exchange.IsBulk && exchange.BulkQuantity <= 0 {
		return nil, fmt.Errorf("exchanges: bulk exchange needs a quantity: %w", shared.ErrValidation)
	}
	if exchange.ID == "" {
		exchange.ID = uuid.NewString()
	}
	if exchange.Date.IsZero() {
		exchange.Date = store.NewTimestamp(s.now())
	}
	switch exchange.PaymentMethod {
	case MethodVale:
		if exchange.Status == "" {
			exchange.Status = StatusPendente
		}
		if exchange.ValeExpiresAt == nil {
			expiry := store.NewTimestamp(DefaultValeExpiry(exchange.Date.Time))
			exchange.ValeExpiresAt = &expiry
		}
	case MethodDinheiro:
		exchange.Status = ""
		exchange.ValeExpiresAt = nil
	default:
		return nil, fmt.Errorf("exchanges: unknown payment method %q: %w", exchange.PaymentMethod, shared.ErrValidation)
	}

	exchanges, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	replaced := false
	for i := range exchanges {
		if exchanges[i].ID == exchange.ID {
			exchanges[i] = exchange
			replaced = true
			break
		}
	}
	if !replaced {
		exchanges = append([]Exchange{exchange}, exchanges...)
	}
	if err := s.repo.ReplaceAll(ctx, exchanges); err != nil {
		return nil, err
	}
	return &exchange, nil
}

// UpdateStatus moves a vale between Pendente, Finalizado and Pago em
// Dinheiro. Cash exchanges have no status to update.
func (s *Service) UpdateStatus(ctx context.Context, id string, status Status) (*Exchange, error) {
	switch status {
	case StatusPendente, StatusFinalizado, StatusPagoEmDinheiro:
	default:
		return nil, fmt.Errorf("exchanges: unknown status %q: %w", status, shared.ErrValidation)
	}
	exchanges, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range exchanges {
		if exchanges[i].ID != id {
			continue
		}
		if exchanges[i].PaymentMethod != MethodVale {
			return nil, fmt.Errorf("exchanges: only vale exchanges carry a status: %w", shared.ErrValidation)
		}
		exchanges[i].Status = status
		if err := s.repo.ReplaceAll(ctx, exchanges); err != nil {
			return nil, err
		}
		return &exchanges[i], nil
	}
	return nil, fmt.Errorf("exchanges: exchange %s: %w", id, shared.ErrNotFound)
}

// Delete removes an exchange by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	exchanges, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	kept := exchanges[:0:0]
	for _, e := range exchanges {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(exchanges) {
		return fmt.Errorf("exchanges: exchange %s: %w", id, shared.ErrNotFound)
	}
	return s.repo.ReplaceAll(ctx, kept)
}

// ExpiredVales lists pending vales past their expiry, for the nightly
// scan.
func (s *Service) ExpiredVales(ctx context.Context) ([]Exchange, error) {
	exchanges, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	var expired []Exchange
	for _, e := range exchanges {
		if IsExpired(e, now) {
			expired = append(expired, e)
		}
	}
	return expired, nil
}
