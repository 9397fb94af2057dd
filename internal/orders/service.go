package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vitrine-erp/vitrine-erp/internal/shared"
	"github.com/vitrine-erp/vitrine-erp/internal/store"
)

// RepositoryPort defines data access for specific orders.
type RepositoryPort interface {
	List(ctx context.Context) ([]SpecificOrder, error)
	ReplaceAll(ctx context.Context, orders []SpecificOrder) error
}

// Service handles specific order business logic.
type Service struct {
	repo RepositoryPort
	now  func() time.Time
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo, now: time.Now}
}

func validStatus(status OrderStatus) bool {
	switch status {
	case StatusPendente, StatusBuscando, StatusEntregue, StatusCancelado:
		return true
	}
	return false
}

// List returns every specific order.
func (s *Service) List(ctx context.Context) ([]SpecificOrder, error) {
	return s.repo.List(ctx)
}

// Save creates or replaces a specific order.
func (s *Service) Save(ctx context.Context, order SpecificOrder) (*SpecificOrder, error) {
	if order.CustomerID == "" {
		return nil, fmt.Errorf("orders: customer required: %w", shared.ErrValidation)
	}
	if order.Product == "" {
		return nil, fmt.Errorf("orders: product required: %w", shared.ErrValidation)
	}
	if order.Status == "" {
		order.Status = StatusPendente
	}
	if !validStatus(order.Status) {
		return nil, fmt.Errorf("orders: unknown status %q: %w", order.Status, shared.ErrValidation)
	}
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = store.NewTimestamp(s.now())
	}

	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	replaced := false
	for i := range orders {
		if orders[i].ID == order.ID {
			orders[i] = order
			replaced = true
			break
		}
	}
	if !replaced {
		orders = append([]SpecificOrder{order}, orders...)
	}
	if err := s.repo.ReplaceAll(ctx, orders); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateStatus moves an order through its lifecycle.
func (s *Service) UpdateStatus(ctx context.Context, id string, status OrderStatus) (*SpecificOrder, error) {
	if !validStatus(status) {
		return nil, fmt.Errorf("orders: unknown status %q: %w", status, shared.ErrValidation)
	}
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		orders[i].Status = status
		if err := s.repo.ReplaceAll(ctx, orders); err != nil {
			return nil, err
		}
		return &orders[i], nil
	}
	return nil, fmt.Errorf("orders: order %s: %w", id, shared.ErrNotFound)
}

// Delete removes a specific order by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	kept := orders[:0:0]
	for _, o := range orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	if len(kept) == len(orders) {
		return fmt.Errorf("orders: order %s: %w", id, shared.ErrNotFound)
	}
	return s.repo.ReplaceAll(ctx, kept)
}
