package admin

import (
	"go-storefront/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		products := adminGroup.Group("/products")
		{
			products.POST("", handler.CreateProduct)
			products.PUT("/:id", handler.UpdateProduct)
			products.DELETE("/:id", handler.DeleteProduct)
		}

		users := adminGroup.Group("/users")
		{
			users.GET("", handler.ListUsers)
			users.PUT("/:id", handler.UpdateUserRole)
			users.DELETE("/:id", handler.DeleteUser)
		}
	}
}
