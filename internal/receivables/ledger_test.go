package receivables

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vitrine-erp/vitrine-erp/internal/customers"
	"github.com/vitrine-erp/vitrine-erp/internal/sales"
)

func aPrazoSale(id, customerID string, amount float64, dates ...sales.Installment) sales.Sale {
	return sales.Sale{
		ID:         id,
		CustomerID: customerID,
		Payments: []sales.PaymentDetail{{
			ID:           id + "-leg",
			Type:         sales.PaymentAPrazo,
			Amount:       amount,
			Installments: len(dates),
			PaymentDates: dates,
		}},
	}
}

func TestInstallmentAmountSplitsEvenly(t *testing.T) {
	leg := sales.PaymentDetail{Amount: 300, PaymentDates: []sales.Installment{
		{Date: "2024-01-10", Status: sales.InstallmentPendente},
		{Date: "2024-02-10", Status: sales.InstallmentPendente},
		{Date: "2024-03-10", Status: sales.InstallmentPendente},
	}}
	require.InDelta(t, 100, InstallmentAmount(leg), 0.001)
}

func TestInstallmentAmountWithoutDates(t *testing.T) {
	leg := sales.PaymentDetail{Amount: 250}
	require.InDelta(t, 250, InstallmentAmount(leg), 0.001)
}

func TestGroupByCustomerPendingOnly(t *testing.T) {
	book := []customers.Customer{{ID: "c1", Name: "Maria"}}
	sale := aPrazoSale("s1", "c1", 300,
		sales.Installment{Date: "2024-01-10", Status: sales.InstallmentPago, PaymentDate: "2024-01-09"},
		sales.Installment{Date: "2024-02-10", Status: sales.InstallmentPendente},
		sales.Installment{Date: "2024-03-10", Status: sales.InstallmentPendente},
	)

	groups := GroupByCustomer([]sales.Sale{sale}, book, "")
	require.Len(t, groups, 1)
	require.Equal(t, "Maria", groups[0].CustomerName)
	require.Len(t, groups[0].Installments, 3)
	require.InDelta(t, 200, groups[0].TotalDue, 0.001)
}

func TestGroupByCustomerMonthFilter(t *testing.T) {
	book := []customers.Customer{{ID: "c1", Name: "Maria"}}
	sale := aPrazoSale("s1", "c1", 300,
		sales.Installment{Date: "2024-01-10", Status: sales.InstallmentPendente},
		sales.Installment{Date: "2024-02-10", Status: sales.InstallmentPendente},
		sales.Installment{Date: "2024-03-10", Status: sales.InstallmentPendente},
	)

	groups := GroupByCustomer([]sales.Sale{sale}, book, "2024-02")
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Installments, 1)
	require.Equal(t, "2024-02-10", groups[0].Installments[0].DueDate)
	require.InDelta(t, 100, groups[0].TotalDue, 0.001)
}

func TestGroupByCustomerSortsDueDatesAscending(t *testing.T) {
	book := []customers.Customer{{ID: "c1", Name: "Maria"}}
	sale := aPrazoSale("s1", "c1", 300,
		sales.Installment{Date: "2024-03-10", Status: sales.InstallmentPendente},
		sales.Installment{Date: "2024-01-10", Status: sales.InstallmentPendente},
		sales.Installment{Date: "2024-02-10", Status: sales.InstallmentPendente},
	)

	groups := GroupByCustomer([]sales.Sale{sale}, book, "")
	require.Len(t, groups, 1)
	var dates []string
	for _, inst := range groups[0].Installments {
		dates = append(dates, inst.DueDate)
	}
	require.Equal(t, []string{"2024-01-10", "2024-02-10", "2024-03-10"}, dates)
}

func TestGroupByCustomerKeepsFirstAppearanceOrder(t *testing.T) {
	book := []customers.Customer{{ID: "c1", Name: "Maria"}, {ID: "c2", Name: "Joana"}}
	s1 := aPrazoSale("s1", "c2", 100, sales.Installment{Date: "2024-01-10", Status: sales.InstallmentPendente})
	s2 := aPrazoSale("s2", "c1", 100, sales.Installment{Date: "2024-01-05", Status: sales.InstallmentPendente})

	groups := GroupByCustomer([]sales.Sale{s1, s2}, book, "")
	require.Len(t, groups, 2)
	require.Equal(t, "c2", groups[0].CustomerID)
	require.Equal(t, "c1", groups[1].CustomerID)
}

func TestOverdueBucketBoundaries(t *testing.T) {
	today := time.Date(2024, 6, 20, 12, 0, 0, 0, time.Local)
	book := []customers.Customer{{ID: "c1", Name: "Maria"}}

	daysAgo := func(n int) string {
		return today.AddDate(0, 0, -n).Format("2006-01-02")
	}
	sale := aPrazoSale("s1", "c1", 800,
		sales.Installment{Date: daysAgo(2), Status: sales.InstallmentPendente},
		sales.Installment{Date: daysAgo(3), Status: sales.InstallmentPendente},
		sales.Installment{Date: daysAgo(5), Status: sales.InstallmentPendente},
		sales.Installment{Date: daysAgo(6), Status: sales.InstallmentPendente},
		sales.Installment{Date: daysAgo(10), Status: sales.InstallmentPendente},
		sales.Installment{Date: daysAgo(11), Status: sales.InstallmentPendente},
		sales.Installment{Date: daysAgo(15), Status: sales.InstallmentPendente},
		sales.Installment{Date: daysAgo(16), Status: sales.InstallmentPendente},
	)

	buckets := Overdue([]sales.Sale{sale}, book, today)
	require.Len(t, buckets.Days3to5, 2)
	require.Len(t, buckets.Days6to10, 2)
	require.Len(t, buckets.Days11to15, 2)
	require.Len(t, buckets.Over15, 1)
}

func TestOverdueSkipsPaidAndFuture(t *testing.T) {
	today := time.Date(2024, 6, 20, 12, 0, 0, 0, time.Local)
	book := []customers.Customer{{ID: "c1", Name: "Maria"}}
	sale := aPrazoSale("s1", "c1", 300,
		sales.Installment{Date: "2024-06-10", Status: sales.InstallmentPago, PaymentDate: "2024-06-10"},
		sales.Installment{Date: "2024-07-10", Status: sales.InstallmentPendente},
		sales.Installment{Date: "2024-06-01", Status: sales.InstallmentPendente},
	)

	buckets := Overdue([]sales.Sale{sale}, book, today)
	require.Empty(t, buckets.Days3to5)
	require.Empty(t, buckets.Days6to10)
	require.Empty(t, buckets.Days11to15)
	require.Len(t, buckets.Over15, 1)
	require.Equal(t, 19, buckets.Over15[0].DaysOverdue)
}

func TestOverdueSortsLatestFirst(t *testing.T) {
	today := time.Date(2024, 6, 20, 12, 0, 0, 0, time.Local)
	book := []customers.Customer{{ID: "c1", Name: "Maria"}}
	sale := aPrazoSale("s1", "c1", 300,
		sales.Installment{Date: "2024-06-16", Status: sales.InstallmentPendente},
		sales.Installment{Date: "2024-06-17", Status: sales.InstallmentPendente},
		sales.Installment{Date: "2024-06-15", Status: sales.InstallmentPendente},
	)

	buckets := Overdue([]sales.Sale{sale}, book, today)
	require.Len(t, buckets.Days3to5, 3)
	require.Equal(t, 5, buckets.Days3to5[0].DaysOverdue)
	require.Equal(t, 4, buckets.Days3to5[1].DaysOverdue)
	require.Equal(t, 3, buckets.Days3to5[2].DaysOverdue)
}

func TestToggleInstallmentStampsPaymentDate(t *testing.T) {
	today := time.Date(2024, 6, 20, 12, 0, 0, 0, time.Local)
	sale := aPrazoSale("s1", "c1", 200,
		sales.Installment{Date: "2024-06-10", Status: sales.InstallmentPendente},
		sales.Installment{Date: "2024-07-10", Status: sales.InstallmentPendente},
	)

	updated, err := ToggleInstallment(sale, "s1-leg", 0, sales.InstallmentPago, today)
	require.NoError(t, err)
	require.Equal(t, sales.InstallmentPago, updated.Payments[0].PaymentDates[0].Status)
	require.Equal(t, "2024-06-20", updated.Payments[0].PaymentDates[0].PaymentDate)

	// the original is untouched
	require.Equal(t, sales.InstallmentPendente, sale.Payments[0].PaymentDates[0].Status)
}

func TestToggleInstallmentBackToPendenteClearsStamp(t *testing.T) {
	today := time.Date(2024, 6, 20, 12, 0, 0, 0, time.Local)
	sale := aPrazoSale("s1", "c1", 200,
		sales.Installment{Date: "2024-06-10", Status: sales.InstallmentPago, PaymentDate: "2024-06-15"},
	)

	updated, err := ToggleInstallment(sale, "s1-leg", 0, sales.InstallmentPendente, today)
	require.NoError(t, err)
	require.Equal(t, sales.InstallmentPendente, updated.Payments[0].PaymentDates[0].Status)
	require.Empty(t, updated.Payments[0].PaymentDates[0].PaymentDate)
}

func TestToggleInstallmentPendenteToPendenteLeavesNoStamp(t *testing.T) {
	today := time.Date(2024, 6, 20, 12, 0, 0, 0, time.Local)
	sale := aPrazoSale("s1", "c1", 200,
		sales.Installment{Date: "2024-06-10", Status: sales.InstallmentPendente},
	)

	updated, err := ToggleInstallment(sale, "s1-leg", 0, sales.InstallmentPendente, today)
	require.NoError(t, err)
	require.Empty(t, updated.Payments[0].PaymentDates[0].PaymentDate)
}

func TestToggleInstallmentRejectsBadInput(t *testing.T) {
	today := time.Now()
	sale := aPrazoSale("s1", "c1", 200,
		sales.Installment{Date: "2024-06-10", Status: sales.InstallmentPendente},
	)

	_, err := ToggleInstallment(sale, "missing-leg", 0, sales.InstallmentPago, today)
	require.Error(t, err)

	_, err = ToggleInstallment(sale, "s1-leg", 5, sales.InstallmentPago, today)
	require.Error(t, err)

	_, err = ToggleInstallment(sale, "s1-leg", 0, "Cancelado", today)
	require.Error(t, err)
}

func TestTotalReceivable(t *testing.T) {
	groups := []CustomerGroup{
		{CustomerID: "c1", TotalDue: 150},
		{CustomerID: "c2", TotalDue: 49.5},
	}
	require.InDelta(t, 199.5, TotalReceivable(groups), 0.0001)
	require.Zero(t, TotalReceivable(nil))
}
