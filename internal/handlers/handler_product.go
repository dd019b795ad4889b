package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mcodevbytes/finance_dashboard_app/internal/apperrors"
	portssvc "github.com/mcodevbytes/finance_dashboard_app/internal/core/ports/services"
	"github.com/mcodevbytes/finance_dashboard_app/internal/dto"
	"github.com/mcodevbytes/finance_dashboard_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// productHandler handles HTTP requests related to the product catalog
type productHandler struct {
	productService portssvc.ProductSvcFacade
}

// registerProductRoutes registers routes related to the product catalog
func registerProductRoutes(rg *gin.RouterGroup, productService portssvc.ProductSvcFacade) {
	h := &productHandler{productService: productService}

	products := rg.Group("/products")
	{
		products.POST("", h.createProduct)
		products.GET("", h.listProducts)
		products.GET("/:product_id", h.getProduct)
		products.PUT("/:product_id", h.updateProduct)
		products.DELETE("/:product_id", h.deleteProduct)
	}
}

// createProduct godoc
// @Summary Create product
// @Description Creates a new catalog product.
// @Tags products
// @Accept json
// @Produce json
// @Param product body dto.CreateProductRequest true "Product Info"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /products [post]
func (h *productHandler) createProduct(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	product := req.ToDomain()
	product.UserID = userID

	created, err := h.productService.CreateProduct(c.Request.Context(), product)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to create product", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToProductResponse(created))
}

// listProducts godoc
// @Summary List products
// @Description Lists all catalog products of the authenticated user.
// @Tags products
// @Produce json
// @Success 200 {object} dto.ListProductsResponse
// @Security BearerAuth
// @Router /products [get]
func (h *productHandler) listProducts(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	products, err := h.productService.ListProducts(c.Request.Context(), userID)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list products", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list products"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListProductsResponse(products))
}

// getProduct godoc
// @Summary Get product
// @Description Returns one catalog product by ID.
// @Tags products
// @Produce json
// @Param product_id path string true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/{product_id} [get]
func (h *productHandler) getProduct(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	product, err := h.productService.GetProductByID(c.Request.Context(), userID, c.Param("product_id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Product not found"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to fetch product", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch product"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// updateProduct godoc
// @Summary Update product
// @Description Updates an existing catalog product.
// @Tags products
// @Accept json
// @Produce json
// @Param product_id path string true "Product ID"
// @Param product body dto.UpdateProductRequest true "Product Fields"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/{product_id} [put]
func (h *productHandler) updateProduct(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	product, err := h.productService.GetProductByID(c.Request.Context(), userID, c.Param("product_id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Product not found"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to fetch product for update", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update product"})
		return
	}

	req.Apply(product)
	if err := h.productService.UpdateProduct(c.Request.Context(), *product); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to update product", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// deleteProduct godoc
// @Summary Delete product
// @Description Deletes a catalog product.
// @Tags products
// @Param product_id path string true "Product ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/{product_id} [delete]
func (h *productHandler) deleteProduct(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), userID, c.Param("product_id")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Product not found"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to delete product", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete product"})
		return
	}

	c.Status(http.StatusNoContent)
}
