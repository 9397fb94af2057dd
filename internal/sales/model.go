package sales

import (
	"github.com/vitrine-erp/vitrine-erp/internal/store"
)

// PaymentType enumerates accepted payment methods.
type PaymentType string

const (
	PaymentCredito      PaymentType = "Crédito"
	PaymentDebito       PaymentType = "Débito"
	PaymentPix          PaymentType = "Pix"
	PaymentDinheiro     PaymentType = "Dinheiro"
	PaymentAPrazo       PaymentType = "A Prazo"
	PaymentVale         PaymentType = "Vale"
	PaymentTrocaServico PaymentType = "Troca/Serviço"
)

// InstallmentStatus tracks whether an installment has been collected.
type InstallmentStatus string

const (
	InstallmentPendente InstallmentStatus = "Pendente"
	InstallmentPago     InstallmentStatus = "Pago"
)

// Installment is one due date inside an A Prazo payment leg. Date and
// PaymentDate are local calendar days in YYYY-MM-DD form, not instants.
type Installment struct {
	Date        string            `json:"date"`
	Status      InstallmentStatus `json:"status"`
	PaymentDate string            `json:"paymentDate,omitempty"`
}

// PaymentDetail is a single payment leg of a sale. Installments and
// PaymentDates are only set for A Prazo legs.
type PaymentDetail struct {
	ID           string        `json:"id"`
	Type         PaymentType   `json:"type"`
	Amount       float64       `json:"amount"`
	Installments int           `json:"installments,omitempty"`
	PaymentDates []Installment `json:"paymentDates,omitempty"`
	Description  string        `json:"description,omitempty"`
}

// SaleItem references a product and the quantity sold.
type SaleItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// Sale is one completed transaction, possibly split across several
// payment legs.
type Sale struct {
	ID                 string          `json:"id"`
	Date               store.Timestamp `json:"date"`
	SellerID           string          `json:"sellerId"`
	SellerNameOverride string          `json:"sellerNameOverride,omitempty"`
	CustomerID         string          `json:"customerId"`
	Items              []SaleItem      `json:"items"`
	Total              float64         `json:"total"`
	Payments           []PaymentDetail `json:"payments"`
}

// ItemsTotal sums quantity times unit price over all items.
func (s *Sale) ItemsTotal() float64 {
	var total float64
	for _, item := range s.Items {
		total += float64(item.Quantity) * item.UnitPrice
	}
	return total
}

// PaymentsTotal sums every payment leg.
func (s *Sale) PaymentsTotal() float64 {
	var total float64
	for _, p := range s.Payments {
		total += p.Amount
	}
	return total
}
