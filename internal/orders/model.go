package orders

import (
	"github.com/vitrine-erp/vitrine-erp/internal/store"
)

// OrderStatus tracks a specific order's lifecycle.
type OrderStatus string

const (
	StatusPendente  OrderStatus = "Pendente"
	StatusBuscando  OrderStatus = "Buscando"
	StatusEntregue  OrderStatus = "Entregue"
	StatusCancelado OrderStatus = "Cancelado"
)

// SpecificOrder is a customer's request for an article the store does
// not currently stock. Images are base64 data URLs captured from the
// customer's reference photos.
type SpecificOrder struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customerId"`
	Product    string          `json:"product"`
	Size       string          `json:"size"`
	Color      string          `json:"color"`
	EventDate  string          `json:"eventDate,omitempty"`
	CreatedAt  store.Timestamp `json:"createdAt"`
	Status     OrderStatus     `json:"status"`
	Images     []string        `json:"images,omitempty"`
}
