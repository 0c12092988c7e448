package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/suprimaaldino/pempek-domino/internal/domain/entities"
	"github.com/suprimaaldino/pempek-domino/internal/domain/repositories"
	"github.com/suprimaaldino/pempek-domino/internal/infrastructure/logger"
	"github.com/suprimaaldino/pempek-domino/internal/usecase"
)

type Handler struct {
	catalog *usecase.CatalogUseCase
	orders  *usecase.OrderUseCase
	auth    *usecase.AuthUseCase
	logger  *logger.Logger
}

func NewHandler(catalog *usecase.CatalogUseCase, orders *usecase.OrderUseCase, auth *usecase.AuthUseCase, logger *logger.Logger) *Handler {
	return &Handler{
		catalog: catalog,
		orders:  orders,
		auth:    auth,
		logger:  logger,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Pempek Domino API"})
}

func (h *Handler) handleListCategories(c *gin.Context) {
	categories, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *Handler) handleListProducts(c *gin.Context) {
	products, err := h.catalog.ListProducts(c.Request.Context(), c.Query("category"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) handleCreateOrder(c *gin.Context) {
	var order entities.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid order payload"})
		return
	}

	created, err := h.orders.CreateOrder(c.Request.Context(), &order)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Pesanan berhasil dikirim!",
		"order_id": created.ID,
	})
}

func (h *Handler) handleAdminLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid login payload"})
		return
	}

	token, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}

func (h *Handler) handleAdminListOrders(c *gin.Context) {
	orders, err := h.orders.ListOrders(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) handleAdminListProducts(c *gin.Context) {
	products, err := h.catalog.ListProducts(c.Request.Context(), "")
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) handleAdminCreateProduct(c *gin.Context) {
	var product entities.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid product payload"})
		return
	}

	created, err := h.catalog.CreateProduct(c.Request.Context(), &product)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Product created successfully",
		"product_id": created.ID,
	})
}

func (h *Handler) handleAdminUpdateProduct(c *gin.Context) {
	var product entities.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid product payload"})
		return
	}

	if err := h.catalog.UpdateProduct(c.Request.Context(), c.Param("id"), &product); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully"})
}

func (h *Handler) handleAdminDeleteProduct(c *gin.Context) {
	if err := h.catalog.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

func (h *Handler) handleAdminCreateCategory(c *gin.Context) {
	var category entities.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid category payload"})
		return
	}

	created, err := h.catalog.CreateCategory(c.Request.Context(), &category)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Category created successfully",
		"category_id": created.ID,
	})
}

// respondError translates usecase and repository errors into the API's
// error shape. Anything unrecognized is an internal error; the cause is
// logged, not leaked.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid authentication credentials"})
	case errors.Is(err, repositories.ErrProductNotFound),
		errors.Is(err, repositories.ErrCategoryNotFound),
		errors.Is(err, repositories.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
	case errors.Is(err, usecase.ErrInvalidProduct),
		errors.Is(err, usecase.ErrInvalidCategory),
		errors.Is(err, usecase.ErrMissingCustomerInfo),
		errors.Is(err, usecase.ErrEmptyItems),
		errors.Is(err, usecase.ErrInvalidTotal):
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	default:
		h.logger.Error("Request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
	}
}
