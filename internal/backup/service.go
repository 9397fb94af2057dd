// Package backup exports and restores the persisted collections as a
// single JSON document, the portable form the store owner carries
// between machines.
package backup

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vitrine-erp/vitrine-erp/internal/shared"
	"github.com/vitrine-erp/vitrine-erp/internal/store"
)

// Invalidator drops derived caches after a bulk restore.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

// Service handles backup export and import.
type Service struct {
	store store.Store
	cache Invalidator
}

// NewService builds a Service instance.
func NewService(st store.Store, cache Invalidator) *Service {
	return &Service{store: st, cache: cache}
}

// Export collects every backup collection into one document. Absent
// collections are left out rather than emitted as null.
func (s *Service) Export(ctx context.Context) (map[string]json.RawMessage, error) {
	doc := make(map[string]json.RawMessage, len(store.BackupCollections))
	for _, name := range store.BackupCollections {
		raw, err := s.store.LoadRaw(ctx, name)
		if err != nil {
			return nil, err
		}
		if raw == nil {
			continue
		}
		doc[name] = raw
	}
	return doc, nil
}

// Import overwrites every collection present in the document. A file
// carrying none of the known collection keys is rejected before any
// write, so a bad upload cannot clobber existing data.
func (s *Service) Import(ctx context.Context, doc map[string]json.RawMessage) error {
	known := false
	for _, name := range store.BackupCollections {
		if _, ok := doc[name]; ok {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("backup: no recognised collections in file: %w", shared.ErrValidation)
	}
	docs := make(map[string]json.RawMessage)
	for _, name := range store.BackupCollections {
		raw, ok := doc[name]
		if !ok {
			continue
		}
		docs[name] = raw
	}
	if err := s.store.SaveRawAll(ctx, docs); err != nil {
		return err
	}
	if s.cache != nil {
		return s.cache.Invalidate(ctx)
	}
	return nil
}
