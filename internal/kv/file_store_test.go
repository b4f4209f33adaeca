package kv_test

import (
	"context"
	"errors"
	"testing"

	"go-storefront/internal/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()

	store, err := kv.NewFileStore(t.TempDir())
	require.NoError(t, err)

	t.Run("get_missing_key", func(t *testing.T) {
		_, err := store.Get(ctx, kv.KeyCart)
		assert.True(t, errors.Is(err, kv.ErrNotFound))
	})

	t.Run("set_then_get", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, kv.KeyCart, []byte(`{"items":[]}`)))

		b, err := store.Get(ctx, kv.KeyCart)
		require.NoError(t, err)
		assert.Equal(t, `{"items":[]}`, string(b))
	})

	t.Run("set_overwrites", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, kv.KeySessionToken, []byte("a")))
		require.NoError(t, store.Set(ctx, kv.KeySessionToken, []byte("b")))

		b, err := store.Get(ctx, kv.KeySessionToken)
		require.NoError(t, err)
		assert.Equal(t, "b", string(b))
	})

	t.Run("delete_is_idempotent", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, kv.KeyCart, []byte("x")))
		assert.NoError(t, store.Delete(ctx, kv.KeyCart))
		assert.NoError(t, store.Delete(ctx, kv.KeyCart))

		_, err := store.Get(ctx, kv.KeyCart)
		assert.True(t, errors.Is(err, kv.ErrNotFound))
	})
}
