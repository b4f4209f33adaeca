package cart

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"go-storefront/internal/pkg/apperror"
	"go-storefront/internal/pkg/response"
	"go-storefront/internal/product"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ProductGetter is the slice of the product client the cart needs: a fresh
// snapshot (price, stock) of the product being added.
type ProductGetter interface {
	Get(ctx context.Context, id int64) (product.Product, error)
}

type Handler struct {
	store    *Store
	products ProductGetter
	validate *validator.Validate
}

func NewHandler(store *Store, products ProductGetter) *Handler {
	return &Handler{
		store:    store,
		products: products,
		validate: validator.New(),
	}
}

func (h *Handler) Detail(c *gin.Context) {
	response.Success(c, http.StatusOK, "Cart retrieved", CartDetailResponse{
		Items: h.store.Lines(),
		Count: h.store.Count(),
		Total: h.store.Total(),
	})
}

func (h *Handler) Count(c *gin.Context) {
	response.Success(c, http.StatusOK, "Cart count retrieved", CartCountResponse{
		Count: h.store.Count(),
	})
}

func (h *Handler) AddItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid product id", err.Error())
		return
	}

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("Failed to parse AddItemRequest: %v", err)
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid input", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid quantity", err.Error())
		return
	}

	p, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	h.store.AddItem(c.Request.Context(), p, req.Qty)
	response.Success(c, http.StatusCreated, "Item added to cart", nil)
}

func (h *Handler) UpdateQty(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid product id", err.Error())
		return
	}

	var req UpdateQtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid input", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid quantity", err.Error())
		return
	}

	h.store.UpdateQuantity(c.Request.Context(), id, *req.Qty)
	response.Success(c, http.StatusOK, "Quantity updated", nil)
}

func (h *Handler) DeleteItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid product id", err.Error())
		return
	}

	h.store.RemoveItem(c.Request.Context(), id)
	response.Success(c, http.StatusOK, "Item removed", nil)
}

func (h *Handler) Delete(c *gin.Context) {
	h.store.Clear(c.Request.Context())
	response.Success(c, http.StatusOK, "Cart emptied", nil)
}
