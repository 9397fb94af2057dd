package receivables

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vitrine-erp/vitrine-erp/internal/customers"
	"github.com/vitrine-erp/vitrine-erp/internal/sales"
	"github.com/vitrine-erp/vitrine-erp/internal/store"
)

func TestServiceTogglePersists(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()

	sale := aPrazoSale("s1", "c1", 200,
		sales.Installment{Date: "2024-06-10", Status: sales.InstallmentPendente},
		sales.Installment{Date: "2024-07-10", Status: sales.InstallmentPendente},
	)
	require.NoError(t, st.Save(ctx, store.CollSales, []sales.Sale{sale}))
	require.NoError(t, st.Save(ctx, store.CollCustomers, []customers.Customer{{ID: "c1", Name: "Maria"}}))

	svc := NewService(sales.NewRepository(st), customers.NewRepository(st))
	svc.now = func() time.Time { return time.Date(2024, 6, 20, 10, 0, 0, 0, time.Local) }

	updated, err := svc.Toggle(ctx, "s1", "s1-leg", 0, sales.InstallmentPago)
	require.NoError(t, err)
	require.Equal(t, "2024-06-20", updated.Payments[0].PaymentDates[0].PaymentDate)

	var persisted []sales.Sale
	require.NoError(t, st.Load(ctx, store.CollSales, &persisted))
	require.Equal(t, sales.InstallmentPago, persisted[0].Payments[0].PaymentDates[0].Status)

	groups, err := svc.Grouped(ctx, "")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.InDelta(t, 100, groups[0].TotalDue, 0.001)
}

func TestServiceToggleUnknownSale(t *testing.T) {
	st := store.NewMemory()
	svc := NewService(sales.NewRepository(st), customers.NewRepository(st))

	_, err := svc.Toggle(context.Background(), "nope", "leg", 0, sales.InstallmentPago)
	require.Error(t, err)
}
