package investors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vitrine-erp/vitrine-erp/internal/purchases"
	"github.com/vitrine-erp/vitrine-erp/internal/store"
)

func seedPurchase(t *testing.T) (*Service, *purchases.Repository) {
	t.Helper()
	st := store.NewMemory()
	repo := purchases.NewRepository(st)
	ctx := context.Background()
	purchase := purchases.Purchase{
		ID:             "p1",
		Date:           ts(2024, 2, 1),
		CollectionName: "Verão",
		TotalValue:     1000,
		Payments: []purchases.PurchasePayment{{
			ID:     "leg1",
			Source: purchases.SourceMaikellen,
			Amount: 1000,
			PaymentsReceived: []purchases.ReceivedPayment{
				{ID: "r1", Amount: 400, Date: "2024-02-10"},
				{ID: "r2", Amount: 300, Date: "2024-03-10"},
			},
		}},
	}
	require.NoError(t, repo.ReplacePurchases(ctx, []purchases.Purchase{purchase}))
	return NewService(repo), repo
}

func TestRegisterRepaymentAcceptsExactPending(t *testing.T) {
	svc, repo := seedPurchase(t)
	ctx := context.Background()

	require.NoError(t, svc.RegisterRepayment(ctx, "p1", "leg1", 300, "2024-04-01", OriginPurchase))

	stored, err := repo.ListPurchases(ctx)
	require.NoError(t, err)
	require.Len(t, stored[0].Payments[0].PaymentsReceived, 3)
	require.InDelta(t, 0, stored[0].Payments[0].Pending(), 0.001)
}

func TestRegisterRepaymentRejectsOverpayment(t *testing.T) {
	svc, _ := seedPurchase(t)

	err := svc.RegisterRepayment(context.Background(), "p1", "leg1", 300.01, "2024-04-01", OriginPurchase)
	require.Error(t, err)
}

func TestRegisterRepaymentRejectsNonPositive(t *testing.T) {
	svc, _ := seedPurchase(t)

	require.Error(t, svc.RegisterRepayment(context.Background(), "p1", "leg1", 0, "2024-04-01", OriginPurchase))
	require.Error(t, svc.RegisterRepayment(context.Background(), "p1", "leg1", -10, "2024-04-01", OriginPurchase))
}

func TestRegisterRepaymentUnknownOwner(t *testing.T) {
	svc, _ := seedPurchase(t)

	err := svc.RegisterRepayment(context.Background(), "ghost", "leg1", 100, "2024-04-01", OriginPurchase)
	require.Error(t, err)
}

func TestRegisterRepaymentOnAplicacao(t *testing.T) {
	st := store.NewMemory()
	repo := purchases.NewRepository(st)
	ctx := context.Background()
	aplicacao := purchases.Aplicacao{
		ID:         "a1",
		Date:       ts(2024, 2, 1),
		Name:       "Obra",
		TotalValue: 500,
		Payments: []purchases.PurchasePayment{{
			ID: "leg1", Source: purchases.SourceDhaluma, Amount: 500,
		}},
	}
	require.NoError(t, repo.ReplaceAplicacoes(ctx, []purchases.Aplicacao{aplicacao}))
	svc := NewService(repo)

	require.NoError(t, svc.RegisterRepayment(ctx, "a1", "leg1", 250, "2024-03-01", OriginApplication))

	ledger, err := svc.Report(ctx)
	require.NoError(t, err)
	require.InDelta(t, 250, ledger.Summary.TotalPending, 0.001)
}
