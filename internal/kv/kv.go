// Package kv provides the durable local key-value slots the stores persist
// into. One slot holds the serialized cart, one holds the session token.
package kv

import (
	"context"

	"go-storefront/internal/pkg/apperror"
	"net/http"
)

// Well-known slot keys.
const (
	KeyCart         = "cart"
	KeySessionToken = "session_token"
)

var ErrNotFound = apperror.New(
	apperror.CodeNotFound,
	"key not found",
	http.StatusNotFound,
)

//go:generate mockgen -source=kv.go -destination=../mock/kv/kv_store_mock.go -package=mock
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
