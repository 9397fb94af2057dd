package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vitrine-erp/vitrine-erp/internal/store"
)

func TestSignupAndLogin(t *testing.T) {
	svc := NewService(store.NewMemory())
	ctx := context.Background()

	user, err := svc.Signup(ctx, "Dona@Loja.com", "Dona", "segredo123")
	require.NoError(t, err)
	require.Equal(t, "dona@loja.com", user.Email)
	require.NotEmpty(t, user.ID)

	logged, err := svc.Login(ctx, "dona@loja.com", "segredo123")
	require.NoError(t, err)
	require.Equal(t, user.ID, logged.ID)

	_, err = svc.Login(ctx, "dona@loja.com", "errada1234")
	require.Error(t, err)

	_, err = svc.Login(ctx, "ninguem@loja.com", "segredo123")
	require.Error(t, err)
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	svc := NewService(store.NewMemory())
	ctx := context.Background()

	_, err := svc.Signup(ctx, "dona@loja.com", "Dona", "segredo123")
	require.NoError(t, err)

	_, err = svc.Signup(ctx, "dona@loja.com", "Outra", "segredo456")
	require.Error(t, err)
}

func TestSignupValidation(t *testing.T) {
	svc := NewService(store.NewMemory())
	ctx := context.Background()

	_, err := svc.Signup(ctx, "sem-arroba", "Dona", "segredo123")
	require.Error(t, err)

	_, err = svc.Signup(ctx, "dona@loja.com", "Dona", "curta")
	require.Error(t, err)
}
