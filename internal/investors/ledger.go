// Package investors derives the investor repayment view from purchases
// and aplicações: who put money in, how much came back, what is still
// owed.
package investors

import (
	"sort"

	"github.com/vitrine-erp/vitrine-erp/internal/purchases"
	"github.com/vitrine-erp/vitrine-erp/internal/store"
)

// OriginKind tells which collection an investor payment came from.
type OriginKind string

const (
	OriginPurchase    OriginKind = "purchase"
	OriginApplication OriginKind = "application"
)

// InvestorPayment is one investor-funded payment leg, normalised across
// purchases and aplicações.
type InvestorPayment struct {
	OwnerID          string                      `json:"ownerId"`
	Date             store.Timestamp             `json:"date"`
	Label            string                      `json:"label"`
	PaymentID        string                      `json:"paymentId"`
	InvestorName     string                      `json:"investorName"`
	InvestedAmount   float64                     `json:"investedAmount"`
	PaymentsReceived []purchases.ReceivedPayment `json:"paymentsReceived"`
	OriginKind       OriginKind                  `json:"originKind"`
}

// ReceivedTotal sums the repayments against this leg.
func (p *InvestorPayment) ReceivedTotal() float64 {
	var total float64
	for _, r := range p.PaymentsReceived {
		total += r.Amount
	}
	return total
}

// Pending is the amount still owed to the investor.
func (p *InvestorPayment) Pending() float64 {
	return p.InvestedAmount - p.ReceivedTotal()
}

// Summary aggregates the whole ledger.
type Summary struct {
	TotalInvested float64 `json:"totalInvested"`
	TotalReceived float64 `json:"totalReceived"`
	TotalPending  float64 `json:"totalPending"`
}

// InvestorGroup is the per-investor slice of the ledger with subtotals.
type InvestorGroup struct {
	InvestorName string            `json:"investorName"`
	Payments     []InvestorPayment `json:"payments"`
	Summary      Summary           `json:"summary"`
}

func investorName(leg purchases.PurchasePayment) string {
	if leg.Source == purchases.SourceOutros {
		if leg.OtherSourceName != "" {
			return leg.OtherSourceName
		}
		return string(purchases.SourceOutros)
	}
	return string(leg.Source)
}

// Flatten selects every payment leg not funded by the store's own cash
// from both collections and returns them newest first.
func Flatten(allPurchases []purchases.Purchase, aplicacoes []purchases.Aplicacao) []InvestorPayment {
	var payments []InvestorPayment
	for _, p := range allPurchases {
		for _, leg := range p.Payments {
			if leg.Source == purchases.SourceStoreCash {
				continue
			}
			payments = append(payments, InvestorPayment{
				OwnerID:          p.ID,
				Date:             p.Date,
				Label:            p.CollectionName,
				PaymentID:        leg.ID,
				InvestorName:     investorName(leg),
				InvestedAmount:   leg.Amount,
				PaymentsReceived: leg.PaymentsReceived,
				OriginKind:       OriginPurchase,
			})
		}
	}
	for _, a := range aplicacoes {
		for _, leg := range a.Payments {
			if leg.Source == purchases.SourceStoreCash {
				continue
			}
			payments = append(payments, InvestorPayment{
				OwnerID:          a.ID,
				Date:             a.Date,
				Label:            a.Name,
				PaymentID:        leg.ID,
				InvestorName:     investorName(leg),
				InvestedAmount:   leg.Amount,
				PaymentsReceived: leg.PaymentsReceived,
				OriginKind:       OriginApplication,
			})
		}
	}
	sort.SliceStable(payments, func(i, j int) bool {
		return payments[i].Date.After(payments[j].Date.Time)
	})
	return payments
}

// Summarize totals the ledger.
func Summarize(payments []InvestorPayment) Summary {
	var summary Summary
	for i := range payments {
		summary.TotalInvested += payments[i].InvestedAmount
		summary.TotalReceived += payments[i].ReceivedTotal()
	}
	summary.TotalPending = summary.TotalInvested - summary.TotalReceived
	return summary
}

// GroupByInvestor splits the ledger per investor name, in order of
// first appearance, with per-investor subtotals.
func GroupByInvestor(payments []InvestorPayment) []InvestorGroup {
	grouped := make(map[string]*InvestorGroup)
	var order []string
	for _, payment := range payments {
		group, ok := grouped[payment.InvestorName]
		if !ok {
			group = &InvestorGroup{InvestorName: payment.InvestorName}
			grouped[payment.InvestorName] = group
			order = append(order, payment.InvestorName)
		}
		group.Payments = append(group.Payments, payment)
	}
	groups := make([]InvestorGroup, 0, len(order))
	for _, name := range order {
		group := grouped[name]
		group.Summary = Summarize(group.Payments)
		groups = append(groups, *group)
	}
	return groups
}
