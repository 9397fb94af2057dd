package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vitrine-erp/vitrine-erp/internal/shared"
	"github.com/vitrine-erp/vitrine-erp/internal/store"
)

// RepositoryPort defines data access for the catalog.
type RepositoryPort interface {
	List(ctx context.Context) ([]Product, error)
	ReplaceAll(ctx context.Context, products []Product) error
}

// Service handles catalog business logic.
type Service struct {
	repo RepositoryPort
	now  func() time.Time
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo, now: time.Now}
}

// List returns every product.
func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}

// Get returns one product by id.
func (s *Service) Get(ctx context.Context, id string) (*Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, fmt.Errorf("catalog: product %s: %w", id, shared.ErrNotFound)
}

// Save creates or replaces a product. New products are appended and
// receive an id and creation timestamp when missing.
func (s *Service) Save(ctx context.Context, product Product) (*Product, error) {
	if product.Name == "" {
		return nil, fmt.Errorf("catalog: name required: %w", shared.ErrValidation)
	}
	if product.Price < 0 || product.Quantity < 0 {
		return nil, fmt.Errorf("catalog: price and quantity must not be negative: %w", shared.ErrValidation)
	}
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	if product.CreatedAt.IsZero() {
		product.CreatedAt = store.NewTimestamp(s.now())
	}

	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	replaced := false
	for i := range products {
		if products[i].ID == product.ID {
			products[i] = product
			replaced = true
			break
		}
	}
	if !replaced {
		products = append(products, product)
	}
	if err := s.repo.ReplaceAll(ctx, products); err != nil {
		return nil, err
	}
	return &product, nil
}

// BulkDelete removes every product whose id is listed.
func (s *Service) BulkDelete(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	products, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	kept := products[:0:0]
	for _, p := range products {
		if !drop[p.ID] {
			kept = append(kept, p)
		}
	}
	return s.repo.ReplaceAll(ctx, kept)
}

// ApplyStockDeltas adjusts product quantities in one pass. Products
// missing from the catalog are skipped: sales history and inventory are
// allowed to diverge.
func (s *Service) ApplyStockDeltas(ctx context.Context, deltas map[string]int) error {
	if len(deltas) == 0 {
		return nil
	}
	products, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	changed := false
	for i := range products {
		if delta, ok := deltas[products[i].ID]; ok && delta != 0 {
			products[i].Quantity += delta
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.repo.ReplaceAll(ctx, products)
}
