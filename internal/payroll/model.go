package payroll

// SalaryRecipient names who the salary went to.
type SalaryRecipient string

const (
	RecipientMaikellen SalaryRecipient = "Maikellen"
	RecipientDhaluma   SalaryRecipient = "Dhaluma"
	RecipientOutros    SalaryRecipient = "Outros"
)

// SalaryPayment is one salary disbursement. Month is the YYYY-MM the
// payment belongs to and must match the payment date's month.
type SalaryPayment struct {
	ID            string          `json:"id"`
	Month         string          `json:"month"`
	Recipient     SalaryRecipient `json:"recipient"`
	RecipientName string          `json:"recipientName,omitempty"`
	Amount        float64         `json:"amount"`
	PaymentDate   string          `json:"paymentDate"`
}
