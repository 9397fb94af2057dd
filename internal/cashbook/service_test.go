package cashbook

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vitrine-erp/vitrine-erp/internal/exchanges"
	"github.com/vitrine-erp/vitrine-erp/internal/payroll"
	"github.com/vitrine-erp/vitrine-erp/internal/purchases"
	"github.com/vitrine-erp/vitrine-erp/internal/sales"
	"github.com/vitrine-erp/vitrine-erp/internal/store"
)

func newCashbook(t *testing.T) (*Service, store.Store) {
	t.Helper()
	st := store.NewMemory()
	svc := NewService(
		st,
		sales.NewRepository(st),
		purchases.NewRepository(st),
		exchanges.NewRepository(st),
		payroll.NewRepository(st),
	)
	return svc, st
}

func ts(year, month, day int) store.Timestamp {
	return store.NewTimestamp(time.Date(year, time.Month(month), day, 12, 0, 0, 0, time.Local))
}

func TestMonthlyCashFlowInflows(t *testing.T) {
	svc, st := newCashbook(t)
	ctx := context.Background()

	// A Pix sale inside the month and an old installment sale whose
	// first installment was collected inside the month.
	inMonthSale := sales.Sale{
		ID:   "s1",
		Date: ts(2024, 6, 5),
		Payments: []sales.PaymentDetail{
			{ID: "pg1", Type: sales.PaymentPix, Amount: 100},
		},
	}
	oldAPrazoSale := sales.Sale{
		ID:   "s2",
		Date: ts(2024, 3, 1),
		Payments: []sales.PaymentDetail{{
			ID:     "pg2",
			Type:   sales.PaymentAPrazo,
			Amount: 100,
			PaymentDates: []sales.Installment{
				{Date: "2024-04-01", Status: sales.InstallmentPago, PaymentDate: "2024-06-10"},
				{Date: "2024-05-01", Status: sales.InstallmentPendente},
			},
		}},
	}
	require.NoError(t, st.Save(ctx, store.CollSales, []sales.Sale{inMonthSale, oldAPrazoSale}))
	require.NoError(t, st.Save(ctx, store.CollSaldosAnteriores, map[string]string{"2024-06": "25.50"}))

	report, err := svc.MonthlyCashFlow(ctx, "2024-06")
	require.NoError(t, err)
	require.InDelta(t, 100, report.Entradas.VendasAVista, 0.001)
	require.InDelta(t, 50, report.Entradas.APrazoRecebido, 0.001)
	require.InDelta(t, 25.50, report.Entradas.SaldoAnterior, 0.001)
	require.InDelta(t, 175.50, report.Entradas.Total, 0.001)
}

func TestMonthlyCashFlowOutflows(t *testing.T) {
	svc, st := newCashbook(t)
	ctx := context.Background()

	purchase := purchases.Purchase{
		ID:   "p1",
		Date: ts(2024, 6, 3),
		Payments: []purchases.PurchasePayment{
			{ID: "leg1", Source: purchases.SourceStoreCash, Amount: 200},
			{ID: "leg2", Source: purchases.SourceMaikellen, Amount: 500, PaymentsReceived: []purchases.ReceivedPayment{
				{ID: "r1", Amount: 150, Date: "2024-06-20"},
				{ID: "r2", Amount: 100, Date: "2024-07-01"},
			}},
		},
	}
	// an old purchase whose investor was repaid this month
	oldPurchase := purchases.Purchase{
		ID:   "p2",
		Date: ts(2024, 2, 1),
		Payments: []purchases.PurchasePayment{
			{ID: "leg3", Source: purchases.SourceDhaluma, Amount: 300, PaymentsReceived: []purchases.ReceivedPayment{
				{ID: "r3", Amount: 80, Date: "2024-06-11"},
			}},
		},
	}
	aplicacao := purchases.Aplicacao{
		ID:   "a1",
		Date: ts(2024, 6, 8),
		Name: "Reforma",
		Payments: []purchases.PurchasePayment{
			{ID: "leg4", Source: purchases.SourceStoreCash, Amount: 120},
		},
	}
	require.NoError(t, st.Save(ctx, store.CollPurchases, []purchases.Purchase{purchase, oldPurchase}))
	require.NoError(t, st.Save(ctx, store.CollAplicacoes, []purchases.Aplicacao{aplicacao}))

	cashExchange := exchanges.Exchange{ID: "e1", Date: ts(2024, 6, 12), PaymentMethod: exchanges.MethodDinheiro, TotalValue: 60}
	valeExchange := exchanges.Exchange{ID: "e2", Date: ts(2024, 6, 13), PaymentMethod: exchanges.MethodVale, TotalValue: 90}
	require.NoError(t, st.Save(ctx, store.CollExchanges, []exchanges.Exchange{cashExchange, valeExchange}))

	require.NoError(t, st.Save(ctx, store.CollSalaryPayments, []payroll.SalaryPayment{
		{ID: "sp1", Month: "2024-06", Recipient: payroll.RecipientMaikellen, Amount: 900, PaymentDate: "2024-06-05"},
		{ID: "sp2", Month: "2024-05", Recipient: payroll.RecipientDhaluma, Amount: 900, PaymentDate: "2024-05-05"},
	}))

	report, err := svc.MonthlyCashFlow(ctx, "2024-06")
	require.NoError(t, err)
	require.InDelta(t, 200, report.Saidas.Compras, 0.001)
	require.InDelta(t, 120, report.Saidas.Aplicacoes, 0.001)
	require.InDelta(t, 60, report.Saidas.Trocas, 0.001)
	require.InDelta(t, 230, report.Saidas.Investidores, 0.001)
	require.InDelta(t, 900, report.Saidas.Salarios, 0.001)
	require.InDelta(t, 1510, report.Saidas.Total, 0.001)
	require.InDelta(t, -1510, report.SaldoFinal, 0.001)
}

func TestMonthlyCashFlowIgnoresBadCarriedValue(t *testing.T) {
	svc, st := newCashbook(t)
	ctx := context.Background()
	require.NoError(t, st.Save(ctx, store.CollSaldosAnteriores, map[string]string{"2024-06": "abc"}))

	report, err := svc.MonthlyCashFlow(ctx, "2024-06")
	require.NoError(t, err)
	require.InDelta(t, 0, report.Entradas.SaldoAnterior, 0.001)
}

func TestCloseMonthCarriesBalanceAcrossYearRollover(t *testing.T) {
	svc, st := newCashbook(t)
	ctx := context.Background()

	sale := sales.Sale{
		ID:   "s1",
		Date: ts(2024, 12, 15),
		Payments: []sales.PaymentDetail{
			{ID: "pg1", Type: sales.PaymentDinheiro, Amount: 543.21},
		},
	}
	require.NoError(t, st.Save(ctx, store.CollSales, []sales.Sale{sale}))

	report, err := svc.CloseMonth(ctx, "2024-12")
	require.NoError(t, err)
	require.InDelta(t, 543.21, report.SaldoFinal, 0.001)

	carried, err := svc.CarriedBalances(ctx)
	require.NoError(t, err)
	require.Equal(t, "543.21", carried["2025-01"])

	// closing again overwrites the same carry entry
	_, err = svc.CloseMonth(ctx, "2024-12")
	require.NoError(t, err)
	carried, err = svc.CarriedBalances(ctx)
	require.NoError(t, err)
	require.Equal(t, "543.21", carried["2025-01"])
}

func TestMonthlyCashFlowRejectsBadMonth(t *testing.T) {
	svc, _ := newCashbook(t)

	_, err := svc.MonthlyCashFlow(context.Background(), "junho")
	require.Error(t, err)
}
