package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mcodevbytes/finance_dashboard_app/internal/apperrors"
	"github.com/mcodevbytes/finance_dashboard_app/internal/core/domain"
	portsrepo "github.com/mcodevbytes/finance_dashboard_app/internal/core/ports/repositories"
)

type PgxProductRepository struct {
	db *pgxpool.Pool
}

func newPgxProductRepository(db *pgxpool.Pool) portsrepo.ProductRepository {
	return &PgxProductRepository{db: db}
}

// Ensure PgxProductRepository implements portsrepo.ProductRepository
var _ portsrepo.ProductRepository = (*PgxProductRepository)(nil)

const productColumns = `product_id, user_id, name, description, unit_price, tax_rate, created_at, created_by, last_updated_at, last_updated_by`

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var product domain.Product
	err := row.Scan(
		&product.ProductID,
		&product.UserID,
		&product.Name,
		&product.Description,
		&product.UnitPrice,
		&product.TaxRate,
		&product.CreatedAt,
		&product.CreatedBy,
		&product.LastUpdatedAt,
		&product.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	query := `
        INSERT INTO products (product_id, user_id, name, description, unit_price, tax_rate, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.db.Exec(ctx, query,
		product.ProductID,
		product.UserID,
		product.Name,
		product.Description,
		product.UnitPrice,
		product.TaxRate,
		product.CreatedAt,
		product.CreatedBy,
		product.LastUpdatedAt,
		product.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}
	return nil
}

func (r *PgxProductRepository) FindProductByID(ctx context.Context, userID, productID string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1 AND user_id = $2;`
	product, err := scanProduct(r.db.QueryRow(ctx, query, productID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("product %s not found: %w", productID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	return product, nil
}

func (r *PgxProductRepository) ListProducts(ctx context.Context, userID string) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE user_id = $1 ORDER BY name;`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, *product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}
	return products, nil
}

func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	query := `
        UPDATE products SET
            name = $3,
            description = $4,
            unit_price = $5,
            tax_rate = $6,
            last_updated_at = $7,
            last_updated_by = $8
        WHERE product_id = $1 AND user_id = $2;
    `
	tag, err := r.db.Exec(ctx, query,
		product.ProductID,
		product.UserID,
		product.Name,
		product.Description,
		product.UnitPrice,
		product.TaxRate,
		product.LastUpdatedAt,
		product.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product %s not found for update: %w", product.ProductID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxProductRepository) DeleteProduct(ctx context.Context, userID, productID string) error {
	query := `DELETE FROM products WHERE product_id = $1 AND user_id = $2;`
	tag, err := r.db.Exec(ctx, query, productID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product %s not found for delete: %w", productID, apperrors.ErrNotFound)
	}
	return nil
}
