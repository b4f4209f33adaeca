package admin_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-storefront/internal/admin"
	"go-storefront/internal/product"
	"go-storefront/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==================== FAKE CLIENTS ====================

type fakeProductAdmin struct {
	CreateFn func(ctx context.Context, req product.CreateProductRequest) (product.Product, error)
	UpdateFn func(ctx context.Context, id int64, req product.UpdateProductRequest) (product.Product, error)
	DeleteFn func(ctx context.Context, id int64) error
}

func (f *fakeProductAdmin) Create(ctx context.Context, req product.CreateProductRequest) (product.Product, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeProductAdmin) Update(ctx context.Context, id int64, req product.UpdateProductRequest) (product.Product, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeProductAdmin) Delete(ctx context.Context, id int64) error {
	return f.DeleteFn(ctx, id)
}

type fakeUserAdmin struct {
	ListFn       func(ctx context.Context) ([]user.User, error)
	UpdateRoleFn func(ctx context.Context, id int64, req user.UpdateRoleRequest) (user.User, error)
	DeleteFn     func(ctx context.Context, id int64) error
}

func (f *fakeUserAdmin) List(ctx context.Context) ([]user.User, error) {
	return f.ListFn(ctx)
}
func (f *fakeUserAdmin) UpdateRole(ctx context.Context, id int64, req user.UpdateRoleRequest) (user.User, error) {
	return f.UpdateRoleFn(ctx, id, req)
}
func (f *fakeUserAdmin) Delete(ctx context.Context, id int64) error {
	return f.DeleteFn(ctx, id)
}

// ==================== HELPER FUNCTIONS ====================

func setupTestRouter(t *testing.T, products admin.ProductAdmin, users admin.UserAdmin) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	r := gin.New()
	admin.RegisterRoutes(r.Group("/api/v1"), admin.NewHandler(products, users))
	return r
}

func signToken(t *testing.T, isAdmin bool) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  "user-1",
		"is_admin": isAdmin,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

// ==================== TEST CASES ====================

func TestAdminHandler_CreateProduct(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		products := &fakeProductAdmin{
			CreateFn: func(ctx context.Context, req product.CreateProductRequest) (product.Product, error) {
				assert.Equal(t, "Teclado", req.Name)
				return product.Product{ID: 9, Name: req.Name, Price: req.Price}, nil
			},
		}
		r := setupTestRouter(t, products, &fakeUserAdmin{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/products",
			strings.NewReader(`{"name":"Teclado","price":49.99,"stock":10}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+signToken(t, true))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("missing_token_rejected", func(t *testing.T) {
		r := setupTestRouter(t, &fakeProductAdmin{}, &fakeUserAdmin{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/products", strings.NewReader(`{}`))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("non_admin_forbidden", func(t *testing.T) {
		r := setupTestRouter(t, &fakeProductAdmin{}, &fakeUserAdmin{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/products",
			strings.NewReader(`{"name":"x","price":1}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+signToken(t, false))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("service_rejection_passed_through", func(t *testing.T) {
		products := &fakeProductAdmin{
			CreateFn: func(ctx context.Context, req product.CreateProductRequest) (product.Product, error) {
				return product.Product{}, product.ErrServiceRejected
			},
		}
		r := setupTestRouter(t, products, &fakeUserAdmin{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/products",
			strings.NewReader(`{"name":"x","price":1}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+signToken(t, true))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAdminHandler_Users(t *testing.T) {
	t.Run("list_users", func(t *testing.T) {
		users := &fakeUserAdmin{
			ListFn: func(ctx context.Context) ([]user.User, error) {
				return []user.User{{ID: 1, Username: "ana", IsAdmin: true}}, nil
			},
		}
		r := setupTestRouter(t, &fakeProductAdmin{}, users)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/users", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, true))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "ana")
	})

	t.Run("toggle_role", func(t *testing.T) {
		users := &fakeUserAdmin{
			UpdateRoleFn: func(ctx context.Context, id int64, req user.UpdateRoleRequest) (user.User, error) {
				assert.Equal(t, int64(4), id)
				assert.True(t, req.IsAdmin)
				return user.User{ID: id, IsAdmin: req.IsAdmin}, nil
			},
		}
		r := setupTestRouter(t, &fakeProductAdmin{}, users)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/users/4",
			strings.NewReader(`{"is_admin":true}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+signToken(t, true))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
