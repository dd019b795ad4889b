package repositories

import (
	"context"
	"time"

	"github.com/mcodevbytes/finance_dashboard_app/internal/core/domain"
)

// TransactionRepository is the storage interface for client transactions and
// their line items.
type TransactionRepository interface {
	// SaveTransaction persists a transaction together with its line items in
	// a single database transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	// FindTransactionByID returns one transaction with line items resolved.
	FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)
	// ListTransactionsByClient returns a client's transactions whose
	// transaction_date falls in [from, to), line items resolved, ordered by
	// transaction_date ascending.
	ListTransactionsByClient(ctx context.Context, userID, clientID string, from, to time.Time) ([]domain.Transaction, error)
	// ListTransactions returns all transactions owned by userID, newest first.
	ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)
	// UpdateTransaction replaces the mutable fields and line items.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error
	// UpdateTransactionStatus transitions only the status column.
	UpdateTransactionStatus(ctx context.Context, userID, transactionID string, status domain.TransactionStatus, updatedBy string, updatedAt time.Time) error
	// DeleteTransaction removes a transaction and its line items.
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
}
