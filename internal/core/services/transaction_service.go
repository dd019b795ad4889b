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
)

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepository
	ledgerService   portssvc.LedgerSvcFacade
	now             func() time.Time
}

// NewTransactionService creates a new transaction service. The ledger service
// receives the income entry when a transaction is marked paid.
func NewTransactionService(repo portsrepo.TransactionRepository, ledgerService portssvc.LedgerSvcFacade) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: repo,
		ledgerService:   ledgerService,
		now:             time.Now,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	if txn.ClientID == "" {
		return nil, fmt.Errorf("transaction requires a client: %w", apperrors.ErrValidation)
	}
	if txn.TransactionID == "" {
		txn.TransactionID = "INV-" + uuid.NewString()[:8]
	}
	if txn.Status == "" {
		txn.Status = domain.StatusDraft
	}
	now := s.now()
	txn.CreatedAt = now
	txn.LastUpdatedAt = now
	for i := range txn.LineItems {
		if txn.LineItems[i].LineItemID == "" {
			txn.LineItems[i].LineItemID = uuid.NewString()
		}
		txn.LineItems[i].TransactionID = txn.TransactionID
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction",
			slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("client_id", txn.ClientID))
	return &txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.ListTransactions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

func (s *transactionService) ListClientTransactions(ctx context.Context, userID, clientID string, from, to time.Time) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.ListTransactionsByClient(ctx, userID, clientID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list client transactions: %w", err)
	}
	return transactions, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	txn.LastUpdatedAt = s.now()
	if err := s.transactionRepo.UpdateTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction",
			slog.String("transaction_id", txn.TransactionID))
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	return nil
}

// DeleteTransaction removes a transaction and its line items. Paid
// transactions back an income ledger entry and stay as history.
func (s *transactionService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	if txn.Status == domain.StatusPaid {
		return fmt.Errorf("transaction %s is paid and cannot be deleted: %w", transactionID, apperrors.ErrForbidden)
	}

	if err := s.transactionRepo.DeleteTransaction(ctx, userID, transactionID); err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

// MarkPaid transitions a transaction to paid and records the matching income
// ledger entry. Once marked paid the ledger entry is immutable history.
func (s *transactionService) MarkPaid(ctx context.Context, userID, transactionID string) error {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	if txn.Status == domain.StatusPaid {
		return fmt.Errorf("transaction %s is already paid: %w", transactionID, apperrors.ErrDuplicate)
	}

	now := s.now()
	if err := s.transactionRepo.UpdateTransactionStatus(ctx, userID, transactionID, domain.StatusPaid, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to mark transaction paid",
			slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to mark transaction %s paid: %w", transactionID, err)
	}

	clientID := txn.ClientID
	entry := domain.LedgerEntry{
		EntryID:       uuid.NewString(),
		UserID:        userID,
		EntryDate:     now,
		EntryType:     domain.EntryIncome,
		Amount:        txn.TotalAmount,
		Description:   fmt.Sprintf("Payment received for %s", txn.TransactionID),
		ReferenceID:   txn.TransactionID,
		ReferenceType: domain.RefClientTransaction,
		ClientID:      &clientID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.ledgerService.RecordEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to record income ledger entry for paid transaction",
			slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to record income entry for %s: %w", transactionID, err)
	}

	s.LogInfo(ctx, "Transaction marked paid",
		slog.String("transaction_id", transactionID),
		slog.String("amount", txn.TotalAmount.String()))
	return nil
}
