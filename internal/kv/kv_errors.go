package kv

import (
	"net/http"

	"go-storefront/internal/pkg/apperror"
)

var errStorage = apperror.New(
	apperror.CodeStorage,
	"storage operation failed",
	http.StatusInternalServerError,
)
