package dto

import (
	"time"

	"github.com/mcodevbytes/finance_dashboard_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents the payload for creating a product
type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unitPrice" binding:"required"`
	TaxRate     decimal.Decimal `json:"taxRate"`
}

// UpdateProductRequest represents the payload for updating a product.
// Nil fields are left unchanged.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	UnitPrice   *decimal.Decimal `json:"unitPrice"`
	TaxRate     *decimal.Decimal `json:"taxRate"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ProductID   string          `json:"productID"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TaxRate     decimal.Decimal `json:"taxRate"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ListProductsResponse wraps a list of products
type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
}

// ToDomain converts the create request to a domain product
func (r CreateProductRequest) ToDomain() domain.Product {
	return domain.Product{
		Name:        r.Name,
		Description: r.Description,
		UnitPrice:   r.UnitPrice,
		TaxRate:     r.TaxRate,
	}
}

// Apply overlays the non-nil request fields onto an existing product
func (r UpdateProductRequest) Apply(product *domain.Product) {
	if r.Name != nil {
		product.Name = *r.Name
	}
	if r.Description != nil {
		product.Description = *r.Description
	}
	if r.UnitPrice != nil {
		product.UnitPrice = *r.UnitPrice
	}
	if r.TaxRate != nil {
		product.TaxRate = *r.TaxRate
	}
}

// ToProductResponse converts a domain product to its response representation
func ToProductResponse(product *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:   product.ProductID,
		Name:        product.Name,
		Description: product.Description,
		UnitPrice:   product.UnitPrice,
		TaxRate:     product.TaxRate,
		CreatedAt:   product.CreatedAt,
	}
}

// ToListProductsResponse converts a slice of domain products
func ToListProductsResponse(products []domain.Product) ListProductsResponse {
	resp := ListProductsResponse{Products: make([]ProductResponse, len(products))}
	for i := range products {
		resp.Products[i] = ToProductResponse(&products[i])
	}
	return resp
}
