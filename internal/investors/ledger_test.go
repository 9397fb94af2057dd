package investors

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vitrine-erp/vitrine-erp/internal/purchases"
	"github.com/vitrine-erp/vitrine-erp/internal/sales"
	"github.com/vitrine-erp/vitrine-erp/internal/store"
)

func ts(year, month, day int) store.Timestamp {
	return store.NewTimestamp(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local))
}

func TestFlattenSkipsStoreCashLegs(t *testing.T) {
	purchase := purchases.Purchase{
		ID:             "p1",
		Date:           ts(2024, 3, 1),
		CollectionName: "Inverno",
		Payments: []purchases.PurchasePayment{
			{ID: "leg1", Source: purchases.SourceStoreCash, Amount: 400, PaymentMethod: sales.PaymentDinheiro},
			{ID: "leg2", Source: purchases.SourceMaikellen, Amount: 600, PaymentMethod: sales.PaymentPix},
		},
	}

	payments := Flatten([]purchases.Purchase{purchase}, nil)
	require.Len(t, payments, 1)
	require.Equal(t, "leg2", payments[0].PaymentID)
	require.Equal(t, "Maikellen", payments[0].InvestorName)
	require.Equal(t, OriginPurchase, payments[0].OriginKind)
	require.Equal(t, "Inverno", payments[0].Label)
}

func TestFlattenResolvesOutrosName(t *testing.T) {
	aplicacao := purchases.Aplicacao{
		ID:   "a1",
		Date: ts(2024, 3, 5),
		Name: "Reforma",
		Payments: []purchases.PurchasePayment{
			{ID: "leg1", Source: purchases.SourceOutros, OtherSourceName: "Carlos", Amount: 500},
			{ID: "leg2", Source: purchases.SourceOutros, Amount: 200},
		},
	}

	payments := Flatten(nil, []purchases.Aplicacao{aplicacao})
	require.Len(t, payments, 2)
	require.Equal(t, "Carlos", payments[0].InvestorName)
	require.Equal(t, "Outros", payments[1].InvestorName)
	require.Equal(t, OriginApplication, payments[0].OriginKind)
	require.Equal(t, "Reforma", payments[0].Label)
}

func TestFlattenSortsNewestFirst(t *testing.T) {
	older := purchases.Purchase{
		ID: "p1", Date: ts(2024, 1, 10),
		Payments: []purchases.PurchasePayment{{ID: "leg1", Source: purchases.SourceDhaluma, Amount: 100}},
	}
	newer := purchases.Aplicacao{
		ID: "a1", Date: ts(2024, 4, 10), Name: "Obra",
		Payments: []purchases.PurchasePayment{{ID: "leg2", Source: purchases.SourceMaikellen, Amount: 100}},
	}

	payments := Flatten([]purchases.Purchase{older}, []purchases.Aplicacao{newer})
	require.Len(t, payments, 2)
	require.Equal(t, "leg2", payments[0].PaymentID)
	require.Equal(t, "leg1", payments[1].PaymentID)
}

func TestSummarize(t *testing.T) {
	payments := []InvestorPayment{
		{InvestedAmount: 1000, PaymentsReceived: []purchases.ReceivedPayment{{Amount: 400}, {Amount: 300}}},
		{InvestedAmount: 500},
	}

	summary := Summarize(payments)
	require.InDelta(t, 1500, summary.TotalInvested, 0.001)
	require.InDelta(t, 700, summary.TotalReceived, 0.001)
	require.InDelta(t, 800, summary.TotalPending, 0.001)
}

func TestGroupByInvestor(t *testing.T) {
	payments := []InvestorPayment{
		{InvestorName: "Maikellen", InvestedAmount: 1000},
		{InvestorName: "Carlos", InvestedAmount: 500},
		{InvestorName: "Maikellen", InvestedAmount: 200, PaymentsReceived: []purchases.ReceivedPayment{{Amount: 200}}},
	}

	groups := GroupByInvestor(payments)
	require.Len(t, groups, 2)
	require.Equal(t, "Maikellen", groups[0].InvestorName)
	require.Len(t, groups[0].Payments, 2)
	require.InDelta(t, 1200, groups[0].Summary.TotalInvested, 0.001)
	require.InDelta(t, 1000, groups[0].Summary.TotalPending, 0.001)
	require.Equal(t, "Carlos", groups[1].InvestorName)
}
