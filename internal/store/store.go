// Package store persists whole entity collections as JSON documents.
// Every save overwrites the named collection in full, mirroring the
// single-writer, last-write-wins persistence model of the client.
package store

import (
	"context"
	"encoding/json"
)

// Logical collection names. These double as the keys of backup files,
// so they must stay stable.
const (
	CollProducts        = "products"
	CollCustomers       = "customers"
	CollSales           = "sales"
	CollExchanges       = "exchanges"
	CollPurchases       = "purchases"
	CollAplicacoes      = "aplicacoes"
	CollSalaryPayments  = "salaryPayments"
	CollSaldosAnteriores = "saldosAnteriores"
	CollSpecificOrders  = "specificOrders"
	CollUsers           = "users"
)

// BackupCollections lists every collection included in a backup file.
// Users are deliberately excluded: credentials never leave the server.
var BackupCollections = []string{
	CollProducts,
	CollCustomers,
	CollSales,
	CollExchanges,
	CollPurchases,
	CollAplicacoes,
	CollSalaryPayments,
	CollSaldosAnteriores,
	CollSpecificOrders,
}

// Store is the persistence contract consumed by every repository.
type Store interface {
	// Load unmarshals the named collection into dest. A collection that
	// was never saved loads as the zero value, not an error.
	Load(ctx context.Context, name string, dest any) error
	// Save overwrites the named collection.
	Save(ctx context.Context, name string, value any) error
	// LoadRaw returns the stored JSON document, nil when absent.
	LoadRaw(ctx context.Context, name string) (json.RawMessage, error)
	// SaveRaw overwrites the named collection with a pre-encoded document.
	SaveRaw(ctx context.Context, name string, doc json.RawMessage) error
	// SaveRawAll overwrites several collections in one atomic write.
	SaveRawAll(ctx context.Context, docs map[string]json.RawMessage) error
}
