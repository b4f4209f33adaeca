package catalog

import (
	"net/http"

	"go-storefront/internal/pkg/apperror"
)

var ErrFetchFailed = apperror.New(
	apperror.CodeNetwork,
	"Could not load products",
	http.StatusBadGateway,
)
