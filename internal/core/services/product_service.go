package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mcodevbytes/finance_dashboard_app/internal/apperrors"
	"github.com/mcodevbytes/finance_dashboard_app/internal/core/domain"
	portsrepo "github.com/mcodevbytes/finance_dashboard_app/internal/core/ports/repositories"
	portssvc "github.com/mcodevbytes/finance_dashboard_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// productService implements the ProductSvcFacade interface
type productService struct {
	BaseService
	productRepo portsrepo.ProductRepository
	now         func() time.Time
}

// NewProductService creates a new product service
func NewProductService(repo portsrepo.ProductRepository) portssvc.ProductSvcFacade {
	return &productService{
		productRepo: repo,
		now:         time.Now,
	}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

func (s *productService) CreateProduct(ctx context.Context, product domain.Product) (*domain.Product, error) {
	if product.Name == "" {
		return nil, fmt.Errorf("product name is required: %w", apperrors.ErrValidation)
	}
	if product.UnitPrice.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("product unit price cannot be negative: %w", apperrors.ErrValidation)
	}
	if product.ProductID == "" {
		product.ProductID = uuid.NewString()
	}
	now := s.now()
	product.CreatedAt = now
	product.LastUpdatedAt = now

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "Failed to save product", slog.String("product_id", product.ProductID))
		return nil, fmt.Errorf("failed to save product: %w", err)
	}
	return &product, nil
}

func (s *productService) GetProductByID(ctx context.Context, userID, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, userID, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to find product %s: %w", productID, err)
	}
	return product, nil
}

func (s *productService) ListProducts(ctx context.Context, userID string) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *productService) UpdateProduct(ctx context.Context, product domain.Product) error {
	product.LastUpdatedAt = s.now()
	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "Failed to update product", slog.String("product_id", product.ProductID))
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

func (s *productService) DeleteProduct(ctx context.Context, userID, productID string) error {
	if err := s.productRepo.DeleteProduct(ctx, userID, productID); err != nil {
		return fmt.Errorf("failed to delete product %s: %w", productID, err)
	}
	return nil
}
