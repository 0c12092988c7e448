package handler

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the public and admin route groups. Admin routes sit
// behind the bearer-token guard; the guard runs before any handler so a
// rejected request never reaches the store.
func (h *Handler) NewRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	router.GET("/", h.handleRoot)

	api := router.Group("/api")
	{
		api.GET("/categories", h.handleListCategories)
		api.GET("/products", h.handleListProducts)
		api.POST("/orders", h.handleCreateOrder)
		api.POST("/admin/login", h.handleAdminLogin)

		admin := api.Group("/admin")
		admin.Use(h.requireAdmin())
		{
			admin.GET("/orders", h.handleAdminListOrders)
			admin.GET("/products", h.handleAdminListProducts)
			admin.POST("/products", h.handleAdminCreateProduct)
			admin.PUT("/products/:id", h.handleAdminUpdateProduct)
			admin.DELETE("/products/:id", h.handleAdminDeleteProduct)
			admin.POST("/categories", h.handleAdminCreateCategory)
		}
	}

	return router
}
