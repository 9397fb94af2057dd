// Package receivables tracks installment sales: which A Prazo
// installments are due, overdue or collected, grouped per customer.
package receivables

import (
	"fmt"
	"sort"
	"time"

	"github.com/vitrine-erp/vitrine-erp/internal/customers"
	"github.com/vitrine-erp/vitrine-erp/internal/sales"
	"github.com/vitrine-erp/vitrine-erp/internal/shared"
)

// Entry is one installment of one payment leg, flattened for display.
type Entry struct {
	SaleID       string                  `json:"saleId"`
	PaymentID    string                  `json:"paymentId"`
	Index        int                     `json:"index"`
	CustomerID   string                  `json:"customerId"`
	CustomerName string                  `json:"customerName"`
	DueDate      string                  `json:"dueDate"`
	Amount       float64                 `json:"amount"`
	Status       sales.InstallmentStatus `json:"status"`
	PaymentDate  string                  `json:"paymentDate,omitempty"`
}

// CustomerGroup collects a customer's installments with the amount
// still pending.
type CustomerGroup struct {
	CustomerID   string  `json:"customerId"`
	CustomerName string  `json:"customerName"`
	Installments []Entry `json:"installments"`
	TotalDue     float64 `json:"totalDue"`
}

// TotalReceivable sums the pending amount across all groups.
func TotalReceivable(groups []CustomerGroup) float64 {
	var total float64
	for _, g := range groups {
		total += g.TotalDue
	}
	return total
}

// OverdueEntry is an overdue installment annotated with how late it is.
type OverdueEntry struct {
	Entry
	DaysOverdue int `json:"daysOverdue"`
}

// OverdueBuckets splits overdue installments by how many days late they
// are. Installments less than three days late are not reported.
type OverdueBuckets struct {
	Days3to5   []OverdueEntry `json:"3-5"`
	Days6to10  []OverdueEntry `json:"6-10"`
	Days11to15 []OverdueEntry `json:"11-15"`
	Over15     []OverdueEntry `json:">15"`
}

// InstallmentAmount is the leg amount split evenly over its due dates.
func InstallmentAmount(leg sales.PaymentDetail) float64 {
	n := len(leg.PaymentDates)
	if n < 1 {
		n = 1
	}
	return leg.Amount / float64(n)
}

func customerNames(book []customers.Customer) map[string]string {
	names := make(map[string]string, len(book))
	for _, c := range book {
		names[c.ID] = c.Name
	}
	return names
}

func flatten(allSales []sales.Sale, book []customers.Customer) []Entry {
	names := customerNames(book)
	var entries []Entry
	for _, sale := range allSales {
		for _, leg := range sale.Payments {
			if leg.Type != sales.PaymentAPrazo {
				continue
			}
			amount := InstallmentAmount(leg)
			for i, inst := range leg.PaymentDates {
				entries = append(entries, Entry{
					SaleID:       sale.ID,
					PaymentID:    leg.ID,
					Index:        i,
					CustomerID:   sale.CustomerID,
					CustomerName: names[sale.CustomerID],
					DueDate:      inst.Date,
					Amount:       amount,
					Status:       inst.Status,
					PaymentDate:  inst.PaymentDate,
				})
			}
		}
	}
	return entries
}

// GroupByCustomer flattens all A Prazo installments and groups them per
// customer, in order of first appearance in the sales list. Installments
// whose customer is missing from the book are skipped rather than
// reported as an error. A non-empty monthFilter keeps only installments
// due in that YYYY-MM. TotalDue counts pending installments only.
func GroupByCustomer(allSales []sales.Sale, book []customers.Customer, monthFilter string) []CustomerGroup {
	known := customerNames(book)
	grouped := make(map[string]*CustomerGroup)
	var order []string
	for _, entry := range flatten(allSales, book) {
		if _, ok := known[entry.CustomerID]; !ok {
			continue
		}
		if monthFilter != "" && shared.MonthOfDate(entry.DueDate) != monthFilter {
			continue
		}
		group, ok := grouped[entry.CustomerID]
		if !ok {
			group = &CustomerGroup{CustomerID: entry.CustomerID, CustomerName: entry.CustomerName}
			grouped[entry.CustomerID] = group
			order = append(order, entry.CustomerID)
		}
		group.Installments = append(group.Installments, entry)
		if entry.Status == sales.InstallmentPendente {
			group.TotalDue += entry.Amount
		}
	}

	groups := make([]CustomerGroup, 0, len(order))
	for _, id := range order {
		group := grouped[id]
		sort.SliceStable(group.Installments, func(i, j int) bool {
			return group.Installments[i].DueDate < group.Installments[j].DueDate
		})
		groups = append(groups, *group)
	}
	return groups
}

// Overdue buckets pending installments by how many days past due they
// are relative to today. Due dates are read as local calendar days and
// only strictly past dates count. Each bucket is sorted latest first.
func Overdue(allSales []sales.Sale, book []customers.Customer, today time.Time) OverdueBuckets {
	var buckets OverdueBuckets
	var late []OverdueEntry
	for _, entry := range flatten(allSales, book) {
		if entry.Status != sales.InstallmentPendente {
			continue
		}
		due, err := shared.ParseLocalDate(entry.DueDate)
		if err != nil {
			continue
		}
		days := shared.DaysBetween(due, today)
		if days < 3 {
			continue
		}
		late = append(late, OverdueEntry{Entry: entry, DaysOverdue: days})
	}
	sort.SliceStable(late, func(i, j int) bool {
		return late[i].DaysOverdue > late[j].DaysOverdue
	})
	for _, entry := range late {
		switch {
		case entry.DaysOverdue > 15:
			buckets.Over15 = append(buckets.Over15, entry)
		case entry.DaysOverdue >= 11:
			buckets.Days11to15 = append(buckets.Days11to15, entry)
		case entry.DaysOverdue >= 6:
			buckets.Days6to10 = append(buckets.Days6to10, entry)
		default:
			buckets.Days3to5 = append(buckets.Days3to5, entry)
		}
	}
	return buckets
}

// ToggleInstallment returns a copy of the sale with one installment's
// status replaced. Marking an installment Pago stamps today's local
// date as its payment date; marking it Pendente clears the stamp.
func ToggleInstallment(sale sales.Sale, paymentID string, index int, status sales.InstallmentStatus, today time.Time) (sales.Sale, error) {
	if status != sales.InstallmentPendente && status != sales.InstallmentPago {
		return sales.Sale{}, fmt.Errorf("receivables: unknown status %q: %w", status, shared.ErrValidation)
	}
	updated := sale
	updated.Payments = make([]sales.PaymentDetail, len(sale.Payments))
	copy(updated.Payments, sale.Payments)
	for i, leg := range updated.Payments {
		if leg.ID != paymentID {
			continue
		}
		if index < 0 || index >= len(leg.PaymentDates) {
			return sales.Sale{}, fmt.Errorf("receivables: installment index %d out of range: %w", index, shared.ErrValidation)
		}
		dates := make([]sales.Installment, len(leg.PaymentDates))
		copy(dates, leg.PaymentDates)
		dates[index].Status = status
		if status == sales.InstallmentPago {
			dates[index].PaymentDate = shared.LocalDateString(today)
		} else {
			dates[index].PaymentDate = ""
		}
		updated.Payments[i].PaymentDates = dates
		return updated, nil
	}
	return sales.Sale{}, fmt.Errorf("receivables: payment %s: %w", paymentID, shared.ErrNotFound)
}
