package product

import (
	"net/http"

	"go-storefront/internal/pkg/apperror"
)

var (
	ErrInvalidProductID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid product ID",
		http.StatusBadRequest,
	)

	ErrProductNotFound = apperror.New(
		apperror.CodeNotFound,
		"Product not found",
		http.StatusNotFound,
	)

	ErrServiceUnavailable = apperror.New(
		apperror.CodeNetwork,
		"Product service is unreachable",
		http.StatusBadGateway,
	)

	ErrServiceRejected = apperror.New(
		apperror.CodeUnauthorized,
		"Product service rejected the request",
		http.StatusUnauthorized,
	)
)
