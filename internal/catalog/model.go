package catalog

import (
	"github.com/vitrine-erp/vitrine-erp/internal/store"
)

// ProductCondition enumerates product conditions.
type ProductCondition string

const (
	ConditionNovo  ProductCondition = "Novo"
	ConditionUsado ProductCondition = "Usado"
)

// Product represents a catalog entry with its stock on hand.
type Product struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Category      string           `json:"category"`
	Brand         string           `json:"brand"`
	Condition     ProductCondition `json:"condition"`
	Size          string           `json:"size"`
	Color         string           `json:"color"`
	Price         float64          `json:"price"`
	PurchasePrice float64          `json:"purchasePrice"`
	Quantity      int              `json:"quantity"`
	CreatedAt     store.Timestamp  `json:"createdAt"`
}
