package repositories

import (
	"context"

	"github.com/mcodevbytes/finance_dashboard_app/internal/core/domain"
)

// ProductRepository is the storage interface for the product catalog.
type ProductRepository interface {
	SaveProduct(ctx context.Context, product domain.Product) error
	FindProductByID(ctx context.Context, userID, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context, userID string) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, product domain.Product) error
	DeleteProduct(ctx context.Context, userID, productID string) error
}
