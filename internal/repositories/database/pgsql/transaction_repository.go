package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mcodevbytes/finance_dashboard_app/internal/apperrors"
	"github.com/mcodevbytes/finance_dashboard_app/internal/core/domain"
	portsrepo "github.com/mcodevbytes/finance_dashboard_app/internal/core/ports/repositories"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{BaseRepository{Pool: db}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepository
var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

const transactionColumns = `t.transaction_id, t.client_id, c.name, t.user_id, t.description, t.transaction_date, t.due_date, t.total_amount, t.status, t.reference_number, t.payment_method, t.notes, t.terms, t.created_at, t.created_by, t.last_updated_at, t.last_updated_by`

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var txn domain.Transaction
	err := row.Scan(
		&txn.TransactionID,
		&txn.ClientID,
		&txn.ClientName,
		&txn.UserID,
		&txn.Description,
		&txn.TransactionDate,
		&txn.DueDate,
		&txn.TotalAmount,
		&txn.Status,
		&txn.ReferenceNumber,
		&txn.PaymentMethod,
		&txn.Notes,
		&txn.Terms,
		&txn.CreatedAt,
		&txn.CreatedBy,
		&txn.LastUpdatedAt,
		&txn.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
        INSERT INTO transactions (transaction_id, client_id, user_id, description, transaction_date, due_date, total_amount, status, reference_number, payment_method, notes, terms, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
    `
	_, err = tx.Exec(ctx, query,
		txn.TransactionID,
		txn.ClientID,
		txn.UserID,
		txn.Description,
		txn.TransactionDate,
		txn.DueDate,
		txn.TotalAmount,
		txn.Status,
		txn.ReferenceNumber,
		txn.PaymentMethod,
		txn.Notes,
		txn.Terms,
		txn.CreatedAt,
		txn.CreatedBy,
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("transaction %s already exists: %w", txn.TransactionID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save transaction: %w", err)
	}

	if err := insertLineItems(ctx, tx, txn.TransactionID, txn.LineItems); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func insertLineItems(ctx context.Context, tx pgx.Tx, transactionID string, items []domain.LineItem) error {
	query := `
        INSERT INTO transaction_items (line_item_id, transaction_id, description, product_name, quantity, unit_price, tax_rate, total)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	for _, item := range items {
		_, err := tx.Exec(ctx, query,
			item.LineItemID,
			transactionID,
			item.Description,
			item.ProductName,
			item.Quantity,
			item.UnitPrice,
			item.TaxRate,
			item.Total,
		)
		if err != nil {
			return fmt.Errorf("failed to save transaction line item: %w", err)
		}
	}
	return nil
}

func (r *PgxTransactionRepository) findLineItems(ctx context.Context, transactionID string) ([]domain.LineItem, error) {
	query := `
        SELECT line_item_id, transaction_id, description, product_name, quantity, unit_price, tax_rate, total
        FROM transaction_items
        WHERE transaction_id = $1
        ORDER BY line_item_id;
    `
	rows, err := r.Pool.Query(ctx, query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transaction line items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.LineItem, 0)
	for rows.Next() {
		var item domain.LineItem
		err := rows.Scan(
			&item.LineItemID,
			&item.TransactionID,
			&item.Description,
			&item.ProductName,
			&item.Quantity,
			&item.UnitPrice,
			&item.TaxRate,
			&item.Total,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan line item row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating line item rows: %w", err)
	}
	return items, nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions t
        JOIN clients c ON c.client_id = t.client_id
        WHERE t.transaction_id = $1 AND t.user_id = $2;
    `
	txn, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("transaction %s not found: %w", transactionID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find transaction by ID: %w", err)
	}

	items, err := r.findLineItems(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	txn.LineItems = items
	return txn, nil
}

func (r *PgxTransactionRepository) listTransactions(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	txns := make([]domain.Transaction, 0)
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, *txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	for i := range txns {
		items, err := r.findLineItems(ctx, txns[i].TransactionID)
		if err != nil {
			return nil, err
		}
		txns[i].LineItems = items
	}
	return txns, nil
}

func (r *PgxTransactionRepository) ListTransactionsByClient(ctx context.Context, userID, clientID string, from, to time.Time) ([]domain.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions t
        JOIN clients c ON c.client_id = t.client_id
        WHERE t.user_id = $1 AND t.client_id = $2 AND t.transaction_date >= $3 AND t.transaction_date < $4
        ORDER BY t.transaction_date;
    `
	return r.listTransactions(ctx, query, userID, clientID, from, to)
}

func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions t
        JOIN clients c ON c.client_id = t.client_id
        WHERE t.user_id = $1
        ORDER BY t.transaction_date DESC;
    `
	return r.listTransactions(ctx, query, userID)
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
        UPDATE transactions SET
            description = $3,
            transaction_date = $4,
            due_date = $5,
            total_amount = $6,
            status = $7,
            reference_number = $8,
            payment_method = $9,
            notes = $10,
            terms = $11,
            last_updated_at = $12,
            last_updated_by = $13
        WHERE transaction_id = $1 AND user_id = $2;
    `
	tag, err := tx.Exec(ctx, query,
		txn.TransactionID,
		txn.UserID,
		txn.Description,
		txn.TransactionDate,
		txn.DueDate,
		txn.TotalAmount,
		txn.Status,
		txn.ReferenceNumber,
		txn.PaymentMethod,
		txn.Notes,
		txn.Terms,
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transaction %s not found for update: %w", txn.TransactionID, apperrors.ErrNotFound)
	}

	// Replace the full line item set
	if _, err := tx.Exec(ctx, `DELETE FROM transaction_items WHERE transaction_id = $1;`, txn.TransactionID); err != nil {
		return fmt.Errorf("failed to clear transaction line items: %w", err)
	}
	if err := insertLineItems(ctx, tx, txn.TransactionID, txn.LineItems); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func (r *PgxTransactionRepository) UpdateTransactionStatus(ctx context.Context, userID, transactionID string, status domain.TransactionStatus, updatedBy string, updatedAt time.Time) error {
	query := `
        UPDATE transactions SET
            status = $3,
            last_updated_at = $4,
            last_updated_by = $5
        WHERE transaction_id = $1 AND user_id = $2;
    `
	tag, err := r.Pool.Exec(ctx, query, transactionID, userID, status, updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update transaction status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transaction %s not found for status update: %w", transactionID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM transaction_items WHERE transaction_id = $1;`, transactionID); err != nil {
		return fmt.Errorf("failed to delete transaction line items: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1 AND user_id = $2;`, transactionID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transaction %s not found for delete: %w", transactionID, apperrors.ErrNotFound)
	}

	return r.Commit(ctx, tx)
}
