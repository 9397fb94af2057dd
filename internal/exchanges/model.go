// Package exchanges records merchandise returned by customers, settled
// either in cash or as a store-credit vale with an expiry date.
package exchanges

import (
	"github.com/vitrine-erp/vitrine-erp/internal/store"
)

// PaymentMethod says how the customer was compensated.
type PaymentMethod string

const (
	MethodVale     PaymentMethod = "Vale"
	MethodDinheiro PaymentMethod = "Dinheiro"
)

// Status tracks a vale's lifecycle. Cash exchanges carry no status.
type Status string

const (
	StatusPendente       Status = "Pendente"
	StatusFinalizado     Status = "Finalizado"
	StatusPagoEmDinheiro Status = "Pago em Dinheiro"
)

// ExchangeItem is one returned article.
type ExchangeItem struct {
	ID            string  `json:"id"`
	Description   string  `json:"description"`
	PurchaseValue float64 `json:"purchaseValue"`
}

// Exchange is one return transaction. Bulk exchanges carry a quantity
// instead of itemised entries.
type Exchange struct {
	ID            string           `json:"id"`
	Date          store.Timestamp  `json:"date"`
	CustomerID    string           `json:"customerId"`
	IsBulk        bool             `json:"isBulk"`
	Items         []ExchangeItem   `json:"items"`
	BulkQuantity  int              `json:"bulkQuantity,omitempty"`
	TotalValue    float64          `json:"totalValue"`
	PaymentMethod PaymentMethod    `json:"paymentMethod"`
	Status        Status           `json:"status,omitempty"`
	ValeExpiresAt *store.Timestamp `json:"valeExpiresAt,omitempty"`
}
