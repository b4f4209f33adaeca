package checkout

import (
	"net/http"

	"go-storefront/internal/pkg/apperror"
)

var (
	ErrEmptyCart = apperror.New(
		apperror.CodeInvalidInput,
		"Cannot check out an empty cart",
		http.StatusBadRequest,
	)

	ErrCheckoutAborted = apperror.New(
		apperror.CodeInternalError,
		"Checkout was aborted",
		http.StatusInternalServerError,
	)
)
