package customers

import (
	"github.com/vitrine-erp/vitrine-erp/internal/store"
)

// CustomerStatus classifies a customer's relationship with the store.
type CustomerStatus string

const (
	StatusNova    CustomerStatus = "Nova"
	StatusRegular CustomerStatus = "Regular"
	StatusTop10   CustomerStatus = "Top 10"
)

// CustomerSource records where the customer came from.
type CustomerSource string

const (
	SourceInstagram CustomerSource = "Instagram"
	SourceIndicacao CustomerSource = "Indicação"
	SourceStudioMB  CustomerSource = "Studio MB"
	SourceStudioDT  CustomerSource = "Studio DT"
	SourceOutros    CustomerSource = "Outros"
)

// Customer is an entry in the customer book.
type Customer struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Phone               string          `json:"phone"`
	Status              CustomerStatus  `json:"status"`
	Source              CustomerSource  `json:"source"`
	SourceOther         string          `json:"sourceOther,omitempty"`
	SourceIndicatorName string          `json:"sourceIndicatorName,omitempty"`
	CreatedAt           store.Timestamp `json:"createdAt"`
}
