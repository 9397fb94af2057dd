package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	var absent []string
	require.NoError(t, m.Load(ctx, CollProducts, &absent))
	require.Nil(t, absent)

	require.NoError(t, m.Save(ctx, CollProducts, []string{"a", "b"}))
	var loaded []string
	require.NoError(t, m.Load(ctx, CollProducts, &loaded))
	require.Equal(t, []string{"a", "b"}, loaded)

	raw, err := m.LoadRaw(ctx, CollProducts)
	require.NoError(t, err)
	require.JSONEq(t, `["a","b"]`, string(raw))
}

func TestMemorySaveRawAll(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.SaveRawAll(ctx, map[string]json.RawMessage{
		CollProducts:  json.RawMessage(`[{"id":"p"}]`),
		CollCustomers: json.RawMessage(`[]`),
	}))

	raw, err := m.LoadRaw(ctx, CollCustomers)
	require.NoError(t, err)
	require.JSONEq(t, `[]`, string(raw))
}
