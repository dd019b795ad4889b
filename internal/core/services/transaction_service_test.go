package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/mcodevbytes/finance_dashboard_app/internal/apperrors"
	"github.com/mcodevbytes/finance_dashboard_app/internal/core/domain"
	portssvc "github.com/mcodevbytes/finance_dashboard_app/internal/core/ports/services"
	"github.com/mcodevbytes/finance_dashboard_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mock LedgerSvcFacade ---
type MockLedgerService struct {
	mock.Mock
}

// Ensure MockLedgerService implements portssvc.LedgerSvcFacade
var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

func (m *MockLedgerService) CurrentMonthSummary(ctx context.Context, userID string) (*domain.LedgerReport, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerReport), args.Error(1)
}

func (m *MockLedgerService) YearlySummary(ctx context.Context, userID string) ([]domain.YearlySummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.YearlySummary), args.Error(1)
}

func (m *MockLedgerService) RecordEntry(ctx context.Context, entry domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func TestCreateTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns an identifier and defaults the status to draft", func(t *testing.T) {
		txnRepo := new(MockTransactionRepository)
		ledgerSvc := new(MockLedgerService)

		var saved domain.Transaction
		txnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).
			Run(func(args mock.Arguments) {
				saved = args.Get(1).(domain.Transaction)
			}).
			Return(nil)

		svc := services.NewTransactionService(txnRepo, ledgerSvc)

		created, err := svc.CreateTransaction(ctx, domain.Transaction{
			ClientID:    "client-1",
			UserID:      "user-1",
			TotalAmount: decimal.RequireFromString("300"),
			LineItems: []domain.LineItem{
				{Description: "Hosting", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.RequireFromString("300"), Total: decimal.RequireFromString("300")},
			},
		})
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(created.TransactionID, "INV-"))
		assert.Equal(t, domain.StatusDraft, created.Status)
		assert.Equal(t, created.TransactionID, saved.TransactionID)
		require.Len(t, saved.LineItems, 1)
		assert.NotEmpty(t, saved.LineItems[0].LineItemID)
		assert.Equal(t, saved.TransactionID, saved.LineItems[0].TransactionID)
	})

	t.Run("keeps a caller supplied identifier and status", func(t *testing.T) {
		txnRepo := new(MockTransactionRepository)
		ledgerSvc := new(MockLedgerService)
		txnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil)

		svc := services.NewTransactionService(txnRepo, ledgerSvc)

		created, err := svc.CreateTransaction(ctx, domain.Transaction{
			TransactionID: "INV-custom",
			ClientID:      "client-1",
			Status:        domain.StatusPending,
			TotalAmount:   decimal.RequireFromString("100"),
		})
		require.NoError(t, err)
		assert.Equal(t, "INV-custom", created.TransactionID)
		assert.Equal(t, domain.StatusPending, created.Status)
	})

	t.Run("rejects a transaction without a client", func(t *testing.T) {
		txnRepo := new(MockTransactionRepository)
		ledgerSvc := new(MockLedgerService)

		svc := services.NewTransactionService(txnRepo, ledgerSvc)

		_, err := svc.CreateTransaction(ctx, domain.Transaction{TotalAmount: decimal.RequireFromString("100")})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		txnRepo.AssertNotCalled(t, "SaveTransaction", mock.Anything, mock.Anything)
	})
}

func TestDeleteTransaction(t *testing.T) {
	ctx := context.Background()
	userID := "user-1"

	t.Run("deletes an unpaid transaction", func(t *testing.T) {
		txnRepo := new(MockTransactionRepository)
		ledgerSvc := new(MockLedgerService)
		txnRepo.On("FindTransactionByID", ctx, userID, "INV-1001").
			Return(&domain.Transaction{TransactionID: "INV-1001", ClientID: "client-1", Status: domain.StatusDraft}, nil)
		txnRepo.On("DeleteTransaction", ctx, userID, "INV-1001").Return(nil)

		svc := services.NewTransactionService(txnRepo, ledgerSvc)

		require.NoError(t, svc.DeleteTransaction(ctx, userID, "INV-1001"))
		txnRepo.AssertExpectations(t)
	})

	t.Run("paid transactions are immutable history", func(t *testing.T) {
		txnRepo := new(MockTransactionRepository)
		ledgerSvc := new(MockLedgerService)
		txnRepo.On("FindTransactionByID", ctx, userID, "INV-1001").
			Return(&domain.Transaction{TransactionID: "INV-1001", ClientID: "client-1", Status: domain.StatusPaid}, nil)

		svc := services.NewTransactionService(txnRepo, ledgerSvc)

		err := svc.DeleteTransaction(ctx, userID, "INV-1001")
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		txnRepo.AssertNotCalled(t, "DeleteTransaction", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown transaction propagates not found", func(t *testing.T) {
		txnRepo := new(MockTransactionRepository)
		ledgerSvc := new(MockLedgerService)
		txnRepo.On("FindTransactionByID", ctx, userID, "INV-missing").Return(nil, apperrors.ErrNotFound)

		svc := services.NewTransactionService(txnRepo, ledgerSvc)

		assert.ErrorIs(t, svc.DeleteTransaction(ctx, userID, "INV-missing"), apperrors.ErrNotFound)
	})
}

func TestMarkPaid(t *testing.T) {
	ctx := context.Background()
	userID := "user-1"

	pendingTxn := func() *domain.Transaction {
		return &domain.Transaction{
			TransactionID: "INV-1001",
			ClientID:      "client-1",
			UserID:        userID,
			TotalAmount:   decimal.RequireFromString("1180"),
			Status:        domain.StatusPending,
		}
	}

	t.Run("transitions the status and records the income entry", func(t *testing.T) {
		txnRepo := new(MockTransactionRepository)
		ledgerSvc := new(MockLedgerService)
		txnRepo.On("FindTransactionByID", ctx, userID, "INV-1001").Return(pendingTxn(), nil)
		txnRepo.On("UpdateTransactionStatus", ctx, userID, "INV-1001", domain.StatusPaid, userID, mock.AnythingOfType("time.Time")).
			Return(nil)

		var recorded domain.LedgerEntry
		ledgerSvc.On("RecordEntry", ctx, mock.AnythingOfType("domain.LedgerEntry")).
			Run(func(args mock.Arguments) {
				recorded = args.Get(1).(domain.LedgerEntry)
			}).
			Return(nil)

		svc := services.NewTransactionService(txnRepo, ledgerSvc)

		require.NoError(t, svc.MarkPaid(ctx, userID, "INV-1001"))

		assert.Equal(t, domain.EntryIncome, recorded.EntryType)
		assert.Equal(t, userID, recorded.UserID)
		assert.True(t, recorded.Amount.Equal(decimal.RequireFromString("1180")))
		assert.Equal(t, "Payment received for INV-1001", recorded.Description)
		assert.Equal(t, "INV-1001", recorded.ReferenceID)
		assert.Equal(t, domain.RefClientTransaction, recorded.ReferenceType)
		require.NotNil(t, recorded.ClientID)
		assert.Equal(t, "client-1", *recorded.ClientID)
		assert.Nil(t, recorded.StaffID)
		assert.NotEmpty(t, recorded.EntryID)
		txnRepo.AssertExpectations(t)
		ledgerSvc.AssertExpectations(t)
	})

	t.Run("marking an already paid transaction is rejected", func(t *testing.T) {
		paid := pendingTxn()
		paid.Status = domain.StatusPaid

		txnRepo := new(MockTransactionRepository)
		ledgerSvc := new(MockLedgerService)
		txnRepo.On("FindTransactionByID", ctx, userID, "INV-1001").Return(paid, nil)

		svc := services.NewTransactionService(txnRepo, ledgerSvc)

		err := svc.MarkPaid(ctx, userID, "INV-1001")
		assert.ErrorIs(t, err, apperrors.ErrDuplicate)
		txnRepo.AssertNotCalled(t, "UpdateTransactionStatus",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		ledgerSvc.AssertNotCalled(t, "RecordEntry", mock.Anything, mock.Anything)
	})

	t.Run("unknown transaction propagates not found", func(t *testing.T) {
		txnRepo := new(MockTransactionRepository)
		ledgerSvc := new(MockLedgerService)
		txnRepo.On("FindTransactionByID", ctx, userID, "INV-missing").Return(nil, apperrors.ErrNotFound)

		svc := services.NewTransactionService(txnRepo, ledgerSvc)

		assert.ErrorIs(t, svc.MarkPaid(ctx, userID, "INV-missing"), apperrors.ErrNotFound)
	})

	t.Run("status update failure does not write a ledger entry", func(t *testing.T) {
		txnRepo := new(MockTransactionRepository)
		ledgerSvc := new(MockLedgerService)
		txnRepo.On("FindTransactionByID", ctx, userID, "INV-1001").Return(pendingTxn(), nil)
		txnRepo.On("UpdateTransactionStatus", ctx, userID, "INV-1001", domain.StatusPaid, userID, mock.AnythingOfType("time.Time")).
			Return(apperrors.ErrNotFound)

		svc := services.NewTransactionService(txnRepo, ledgerSvc)

		assert.ErrorIs(t, svc.MarkPaid(ctx, userID, "INV-1001"), apperrors.ErrNotFound)
		ledgerSvc.AssertNotCalled(t, "RecordEntry", mock.Anything, mock.Anything)
	})
}
