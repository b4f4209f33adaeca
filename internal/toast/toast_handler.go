package toast

import (
	"net/http"
	"strconv"

	"go-storefront/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	channel *Channel
}

func NewHandler(c *Channel) *Handler {
	return &Handler{channel: c}
}

func (h *Handler) List(c *gin.Context) {
	response.Success(c, http.StatusOK, "Notifications retrieved", h.channel.List())
}

func (h *Handler) Dismiss(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid notification id", err.Error())
		return
	}

	h.channel.Dismiss(id)
	response.Success(c, http.StatusOK, "Notification dismissed", nil)
}
