// Package cashbook reconciles the store's cash register month by
// month: cash-equivalent sale receipts and installment collections in,
// purchases, aplicações, cash exchanges, investor repayments and
// salaries out, against a carried balance.
package cashbook

// Inflows is the money that entered the register in a month.
type Inflows struct {
	VendasAVista   float64 `json:"vendasAVista"`
	APrazoRecebido float64 `json:"aPrazoRecebido"`
	SaldoAnterior  float64 `json:"saldoAnterior"`
	Total          float64 `json:"total"`
}

// Outflows is the money that left the register in a month.
type Outflows struct {
	Compras      float64 `json:"saidasCompras"`
	Aplicacoes   float64 `json:"saidasAplicacoes"`
	Trocas       float64 `json:"saidasTrocas"`
	Investidores float64 `json:"devolucoesInvestidores"`
	Salarios     float64 `json:"saidasSalarios"`
	Total        float64 `json:"total"`
}

// Report is the reconciled cash position for one month.
type Report struct {
	Month           string   `json:"month"`
	Entradas        Inflows  `json:"entradas"`
	Saidas          Outflows `json:"saidas"`
	SaldoFinal      float64  `json:"saldoFinal"`
	SaldoFinalLabel string   `json:"saldoFinalLabel"`
}
