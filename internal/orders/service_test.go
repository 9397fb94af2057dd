package orders

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vitrine-erp/vitrine-erp/internal/store"
)

func newOrderService(t *testing.T) *Service {
	t.Helper()
	return NewService(NewRepository(store.NewMemory()))
}

func TestSaveDefaultsToPendente(t *testing.T) {
	svc := newOrderService(t)

	saved, err := svc.Save(context.Background(), SpecificOrder{
		CustomerID: "c1",
		Product:    "Vestido longo",
		Size:       "M",
		Color:      "Vinho",
	})
	require.NoError(t, err)
	require.Equal(t, StatusPendente, saved.Status)
	require.NotEmpty(t, saved.ID)
	require.False(t, saved.CreatedAt.IsZero())
}

func TestUpdateStatusLifecycle(t *testing.T) {
	svc := newOrderService(t)
	ctx := context.Background()

	saved, err := svc.Save(ctx, SpecificOrder{CustomerID: "c1", Product: "Sapato"})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, saved.ID, StatusBuscando)
	require.NoError(t, err)
	require.Equal(t, StatusBuscando, updated.Status)

	updated, err = svc.UpdateStatus(ctx, saved.ID, StatusEntregue)
	require.NoError(t, err)
	require.Equal(t, StatusEntregue, updated.Status)

	_, err = svc.UpdateStatus(ctx, saved.ID, "Perdido")
	require.Error(t, err)

	_, err = svc.UpdateStatus(ctx, "ghost", StatusCancelado)
	require.Error(t, err)
}

func TestSaveRequiresCustomerAndProduct(t *testing.T) {
	svc := newOrderService(t)

	_, err := svc.Save(context.Background(), SpecificOrder{Product: "Bolsa"})
	require.Error(t, err)

	_, err = svc.Save(context.Background(), SpecificOrder{CustomerID: "c1"})
	require.Error(t, err)
}
