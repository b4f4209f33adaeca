package catalog

import (
	"net/http"

	"go-storefront/internal/pkg/apperror"
	"go-storefront/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	model *Model
}

func NewHandler(model *Model) *Handler {
	return &Handler{model: model}
}

// List treats the request's query string as an incoming URL navigation:
// the model absorbs it, fetches, and the page renders whatever comes back.
func (h *Handler) List(c *gin.Context) {
	h.model.ApplyURL(c.Request.URL.RawQuery)

	products, err := h.model.Refresh(c.Request.Context())
	if err != nil {
		httpErr := apperror.ToHTTP(h.model.Err())
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "Products retrieved", products)
}
