package services

import (
	"context"

	"github.com/mcodevbytes/finance_dashboard_app/internal/core/domain"
)

// ProductSvcFacade manages the product catalog.
type ProductSvcFacade interface {
	CreateProduct(ctx context.Context, product domain.Product) (*domain.Product, error)
	GetProductByID(ctx context.Context, userID, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context, userID string) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, product domain.Product) error
	DeleteProduct(ctx context.Context, userID, productID string) error
}
