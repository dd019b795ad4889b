package services

import (
	"context"
	"time"

	"github.com/mcodevbytes/finance_dashboard_app/internal/core/domain"
)

// TransactionSvcFacade manages client transactions and their lifecycle.
type TransactionSvcFacade interface {
	CreateTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)
	GetTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)
	ListClientTransactions(ctx context.Context, userID, clientID string, from, to time.Time) ([]domain.Transaction, error)
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
	// MarkPaid transitions the transaction to paid and records the matching
	// income ledger entry.
	MarkPaid(ctx context.Context, userID, transactionID string) error
}
