// Package auth consumes the session token owned by the external auth
// collaborator. This core only reads the slot, it never writes it.
package auth

import (
	"context"
	"errors"

	"go-storefront/internal/kv"
)

type Source interface {
	// Token returns the current session token, or "" when the visitor is
	// anonymous. Anonymous is not an error: product reads are public.
	Token(ctx context.Context) (string, error)
}

type kvSource struct {
	store kv.Store
}

func NewKVSource(store kv.Store) Source {
	return &kvSource{store: store}
}

func (s *kvSource) Token(ctx context.Context) (string, error) {
	b, err := s.store.Get(ctx, kv.KeySessionToken)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return string(b), nil
}

// StaticSource is a fixed token, used by tests and the CLI demo.
type StaticSource string

func (s StaticSource) Token(context.Context) (string, error) {
	return string(s), nil
}
