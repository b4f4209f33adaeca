package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-storefront/internal/auth"
	"go-storefront/internal/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVSource_Token(t *testing.T) {
	ctx := context.Background()

	store, err := kv.NewFileStore(t.TempDir())
	require.NoError(t, err)
	src := auth.NewKVSource(store)

	t.Run("anonymous_when_slot_empty", func(t *testing.T) {
		token, err := src.Token(ctx)
		assert.NoError(t, err)
		assert.Empty(t, token)
	})

	t.Run("reads_stored_token", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, kv.KeySessionToken, []byte("jwt-abc")))

		token, err := src.Token(ctx)
		assert.NoError(t, err)
		assert.Equal(t, "jwt-abc", token)
	})
}

func TestTransport_RoundTrip(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
	}))
	defer srv.Close()

	t.Run("injects_bearer_header", func(t *testing.T) {
		client := auth.NewHTTPClient(auth.StaticSource("tok-123"))
		resp, err := client.Get(srv.URL)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, "Bearer tok-123", gotAuth)
	})

	t.Run("anonymous_request_has_no_header", func(t *testing.T) {
		client := auth.NewHTTPClient(auth.StaticSource(""))
		resp, err := client.Get(srv.URL)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Empty(t, gotAuth)
	})
}
