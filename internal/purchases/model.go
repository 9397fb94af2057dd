// Package purchases records inventory purchases and aplicações
// (capital spending), both funded by the store's cash or by outside
// investors, with per-leg repayment histories.
package purchases

import (
	"github.com/vitrine-erp/vitrine-erp/internal/catalog"
	"github.com/vitrine-erp/vitrine-erp/internal/sales"
	"github.com/vitrine-erp/vitrine-erp/internal/store"
)

// PaymentSource names who funded a payment leg. Anything other than
// the store's own cash is investor capital.
type PaymentSource string

const (
	SourceStoreCash PaymentSource = "Caixa da loja"
	SourceMaikellen PaymentSource = "Maikellen"
	SourceDhaluma   PaymentSource = "Dhaluma"
	SourceOutros    PaymentSource = "Outros"
)

// ReceivedPayment is one partial repayment toward an investor-funded
// leg. Date is a local calendar day.
type ReceivedPayment struct {
	ID     string  `json:"id"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
}

// PurchasePayment is one funding leg of a purchase or aplicação.
type PurchasePayment struct {
	ID               string            `json:"id"`
	Source           PaymentSource     `json:"source"`
	OtherSourceName  string            `json:"otherSourceName,omitempty"`
	Amount           float64           `json:"amount"`
	PaymentMethod    sales.PaymentType `json:"paymentMethod"`
	PaymentsReceived []ReceivedPayment `json:"paymentsReceived"`
}

// ReceivedTotal sums the leg's repayments so far.
func (p *PurchasePayment) ReceivedTotal() float64 {
	var total float64
	for _, r := range p.PaymentsReceived {
		total += r.Amount
	}
	return total
}

// Pending is the amount the investor has not been repaid yet.
func (p *PurchasePayment) Pending() float64 {
	return p.Amount - p.ReceivedTotal()
}

// PurchaseType distinguishes itemised purchases from bulk lots.
type PurchaseType string

const (
	PurchaseDetalhado PurchaseType = "detalhado"
	PurchaseLote      PurchaseType = "lote"
)

// PurchaseItem is one article inside an itemised purchase.
type PurchaseItem struct {
	ID            string                   `json:"id"`
	Description   string                   `json:"description"`
	PurchaseValue float64                  `json:"purchaseValue"`
	Category      string                   `json:"category"`
	Condition     catalog.ProductCondition `json:"condition"`
}

// LotInfo describes a bulk lot purchase.
type LotInfo struct {
	Quantity            int  `json:"quantity"`
	IncludesClothing    bool `json:"includesClothing"`
	IncludesFootwear    bool `json:"includesFootwear"`
	IncludesAccessories bool `json:"includesAccessories"`
	IncludesNew         bool `json:"includesNew"`
	IncludesUsed        bool `json:"includesUsed"`
}

// Purchase is one merchandise acquisition.
type Purchase struct {
	ID             string            `json:"id"`
	Date           store.Timestamp   `json:"date"`
	CollectionName string            `json:"collectionName"`
	PurchaseType   PurchaseType      `json:"purchaseType"`
	Items          []PurchaseItem    `json:"items"`
	LotInfo        *LotInfo          `json:"lotInfo,omitempty"`
	Payments       []PurchasePayment `json:"payments"`
	TotalValue     float64           `json:"totalValue"`
}

// AplicacaoType distinguishes itemised aplicações from summarised ones.
type AplicacaoType string

const (
	AplicacaoDetalhada AplicacaoType = "detalhada"
	AplicacaoResumida  AplicacaoType = "resumida"
)

// AplicacaoItem is one line of an itemised aplicação.
type AplicacaoItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Value       float64 `json:"value"`
}

// Aplicacao is a capital expenditure parallel to Purchase, for spending
// that does not enter inventory.
type Aplicacao struct {
	ID                 string            `json:"id"`
	Date               store.Timestamp   `json:"date"`
	Name               string            `json:"name"`
	Type               AplicacaoType     `json:"type"`
	Items              []AplicacaoItem   `json:"items"`
	SummaryDescription string            `json:"summaryDescription,omitempty"`
	Payments           []PurchasePayment `json:"payments"`
	TotalValue         float64           `json:"totalValue"`
}
