package sales

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vitrine-erp/vitrine-erp/internal/catalog"
	"github.com/vitrine-erp/vitrine-erp/internal/store"
)

func newTestService(t *testing.T, products []catalog.Product) (*Service, *catalog.Service, store.Store) {
	t.Helper()
	st := store.NewMemory()
	ctx := context.Background()
	if products != nil {
		require.NoError(t, st.Save(ctx, store.CollProducts, products))
	}
	catalogSvc := catalog.NewService(catalog.NewRepository(st))
	svc := NewService(slog.Default(), NewRepository(st), catalogSvc)
	return svc, catalogSvc, st
}

func TestSaveDecrementsStock(t *testing.T) {
	svc, catalogSvc, _ := newTestService(t, []catalog.Product{
		{ID: "p1", Name: "Vestido", Quantity: 5},
	})
	ctx := context.Background()

	_, err := svc.Save(ctx, Sale{
		Items:    []SaleItem{{ProductID: "p1", Quantity: 2, UnitPrice: 100}},
		Payments: []PaymentDetail{{Type: PaymentPix, Amount: 200}},
	})
	require.NoError(t, err)

	p, err := catalogSvc.Get(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, 3, p.Quantity)
}

func TestSaveEditAdjustsByNetDelta(t *testing.T) {
	svc, catalogSvc, _ := newTestService(t, []catalog.Product{
		{ID: "p1", Name: "Vestido", Quantity: 5},
	})
	ctx := context.Background()

	created, err := svc.Save(ctx, Sale{
		Items:    []SaleItem{{ProductID: "p1", Quantity: 2, UnitPrice: 100}},
		Payments: []PaymentDetail{{Type: PaymentPix, Amount: 200}},
	})
	require.NoError(t, err)

	created.Items[0].Quantity = 5
	created.Payments[0].Amount = 500
	created.Total = 500
	_, err = svc.Save(ctx, *created)
	require.NoError(t, err)

	p, err := catalogSvc.Get(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, 0, p.Quantity)
}

func TestSaveEditWithoutChangesLeavesStockAlone(t *testing.T) {
	svc, catalogSvc, _ := newTestService(t, []catalog.Product{
		{ID: "p1", Name: "Vestido", Quantity: 5},
	})
	ctx := context.Background()

	created, err := svc.Save(ctx, Sale{
		Items:    []SaleItem{{ProductID: "p1", Quantity: 2, UnitPrice: 100}},
		Payments: []PaymentDetail{{Type: PaymentPix, Amount: 200}},
	})
	require.NoError(t, err)

	created.SellerNameOverride = "Ana"
	_, err = svc.Save(ctx, *created)
	require.NoError(t, err)

	p, err := catalogSvc.Get(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, 3, p.Quantity)
}

func TestDeleteReturnsItemsToStock(t *testing.T) {
	svc, catalogSvc, _ := newTestService(t, []catalog.Product{
		{ID: "p1", Name: "Vestido", Quantity: 5},
	})
	ctx := context.Background()

	created, err := svc.Save(ctx, Sale{
		Items:    []SaleItem{{ProductID: "p1", Quantity: 2, UnitPrice: 100}},
		Payments: []PaymentDetail{{Type: PaymentPix, Amount: 200}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	p, err := catalogSvc.Get(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, 5, p.Quantity)

	sales, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, sales)
}

func TestSaveSkipsMissingProducts(t *testing.T) {
	svc, catalogSvc, _ := newTestService(t, []catalog.Product{
		{ID: "p1", Name: "Vestido", Quantity: 5},
	})
	ctx := context.Background()

	_, err := svc.Save(ctx, Sale{
		Items: []SaleItem{
			{ProductID: "p1", Quantity: 1, UnitPrice: 100},
			{ProductID: "ghost", Quantity: 1, UnitPrice: 50},
		},
		Payments: []PaymentDetail{{Type: PaymentDinheiro, Amount: 150}},
	})
	require.NoError(t, err)

	p, err := catalogSvc.Get(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, 4, p.Quantity)
}

func TestSavePrependsNewest(t *testing.T) {
	svc, _, _ := newTestService(t, []catalog.Product{
		{ID: "p1", Name: "Vestido", Quantity: 5},
	})
	ctx := context.Background()

	first, err := svc.Save(ctx, Sale{
		Items:    []SaleItem{{ProductID: "p1", Quantity: 1, UnitPrice: 10}},
		Payments: []PaymentDetail{{Type: PaymentPix, Amount: 10}},
	})
	require.NoError(t, err)
	second, err := svc.Save(ctx, Sale{
		Items:    []SaleItem{{ProductID: "p1", Quantity: 1, UnitPrice: 20}},
		Payments: []PaymentDetail{{Type: PaymentPix, Amount: 20}},
	})
	require.NoError(t, err)

	sales, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 2)
	require.Equal(t, second.ID, sales[0].ID)
	require.Equal(t, first.ID, sales[1].ID)
}

func TestSaveRejectsEmptySale(t *testing.T) {
	svc, _, _ := newTestService(t, nil)
	ctx := context.Background()

	_, err := svc.Save(ctx, Sale{Payments: []PaymentDetail{{Type: PaymentPix, Amount: 10}}})
	require.Error(t, err)

	_, err = svc.Save(ctx, Sale{Items: []SaleItem{{ProductID: "p1", Quantity: 1}}})
	require.Error(t, err)
}

func TestSaveAcceptsMismatchedTotal(t *testing.T) {
	svc, _, _ := newTestService(t, []catalog.Product{
		{ID: "p1", Name: "Vestido", Quantity: 5},
	})
	ctx := context.Background()

	saved, err := svc.Save(ctx, Sale{
		Items:    []SaleItem{{ProductID: "p1", Quantity: 1, UnitPrice: 100}},
		Total:    90,
		Payments: []PaymentDetail{{Type: PaymentPix, Amount: 80}},
	})
	require.NoError(t, err)
	require.Equal(t, 90.0, saved.Total)
}
