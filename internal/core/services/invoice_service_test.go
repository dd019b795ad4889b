package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mcodevbytes/finance_dashboard_app/internal/apperrors"
	"github.com/mcodevbytes/finance_dashboard_app/internal/core/domain"
	portsrepo "github.com/mcodevbytes/finance_dashboard_app/internal/core/ports/repositories"
	"github.com/mcodevbytes/finance_dashboard_app/internal/core/services"
	"github.com/mcodevbytes/finance_dashboard_app/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

// Ensure MockTransactionRepository implements portsrepo.TransactionRepository
var _ portsrepo.TransactionRepository = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByClient(ctx context.Context, userID, clientID string, from, to time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, clientID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransactionStatus(ctx context.Context, userID, transactionID string, status domain.TransactionStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, userID, transactionID, status, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	args := m.Called(ctx, userID, transactionID)
	return args.Error(0)
}

// --- Mock ClientRepository ---
type MockClientRepository struct {
	mock.Mock
}

// Ensure MockClientRepository implements portsrepo.ClientRepository
var _ portsrepo.ClientRepository = (*MockClientRepository)(nil)

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, userID, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, userID, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) ListClients(ctx context.Context, userID string) ([]domain.Client, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) DeleteClient(ctx context.Context, userID, clientID string) error {
	args := m.Called(ctx, userID, clientID)
	return args.Error(0)
}

var testCompany = config.CompanyInfo{
	Name:    "MCODEV Bytes",
	Address: "Malappuram",
	City:    "Kerala, India 676504",
	Phone:   "+91 98472-74569",
	Email:   "mcodevbiz@gmail.com",
	Website: "www.mcodevbytes.in",
}

const pdfDataURIPrefix = "data:application/pdf;base64,"

func TestGenerateInvoice(t *testing.T) {
	ctx := context.Background()
	userID := "user-1"

	client := &domain.Client{
		ClientID: "client-1",
		UserID:   userID,
		Name:     "Acme Corp",
		Email:    "billing@acme.example",
	}
	txn := &domain.Transaction{
		TransactionID:   "INV-1001",
		ClientID:        "client-1",
		UserID:          userID,
		TransactionDate: time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC),
		TotalAmount:     decimal.RequireFromString("1180"),
		Status:          domain.StatusPending,
	}

	t.Run("renders the stored transaction as a PDF data URI", func(t *testing.T) {
		txnRepo := new(MockTransactionRepository)
		clientRepo := new(MockClientRepository)
		txnRepo.On("FindTransactionByID", ctx, userID, "INV-1001").Return(txn, nil)
		clientRepo.On("FindClientByID", ctx, userID, "client-1").Return(client, nil)

		svc := services.NewInvoiceService(txnRepo, clientRepo, testCompany)

		dataURI, err := svc.GenerateInvoice(ctx, userID, "INV-1001")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(dataURI, pdfDataURIPrefix))
		txnRepo.AssertExpectations(t)
		clientRepo.AssertExpectations(t)
	})

	t.Run("missing transaction propagates not found", func(t *testing.T) {
		txnRepo := new(MockTransactionRepository)
		clientRepo := new(MockClientRepository)
		txnRepo.On("FindTransactionByID", ctx, userID, "INV-missing").Return(nil, apperrors.ErrNotFound)

		svc := services.NewInvoiceService(txnRepo, clientRepo, testCompany)

		_, err := svc.GenerateInvoice(ctx, userID, "INV-missing")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		clientRepo.AssertNotCalled(t, "FindClientByID", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing client propagates not found", func(t *testing.T) {
		txnRepo := new(MockTransactionRepository)
		clientRepo := new(MockClientRepository)
		txnRepo.On("FindTransactionByID", ctx, userID, "INV-1001").Return(txn, nil)
		clientRepo.On("FindClientByID", ctx, userID, "client-1").Return(nil, apperrors.ErrNotFound)

		svc := services.NewInvoiceService(txnRepo, clientRepo, testCompany)

		_, err := svc.GenerateInvoice(ctx, userID, "INV-1001")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestGenerateWeeklyInvoice(t *testing.T) {
	ctx := context.Background()
	userID := "user-1"
	weekStart := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	weekEnd := time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC)

	client := &domain.Client{
		ClientID: "client-1",
		UserID:   userID,
		Name:     "Acme Corp",
		Email:    "billing@acme.example",
	}

	t.Run("rolls up the week's transactions into one document", func(t *testing.T) {
		txnRepo := new(MockTransactionRepository)
		clientRepo := new(MockClientRepository)
		clientRepo.On("FindClientByID", ctx, userID, "client-1").Return(client, nil)
		txnRepo.On("ListTransactionsByClient", ctx, userID, "client-1", weekStart, weekEnd).
			Return([]domain.Transaction{
				{
					TransactionID:   "INV-1001",
					ClientID:        "client-1",
					TransactionDate: weekStart,
					Description:     "Maintenance",
					TotalAmount:     decimal.RequireFromString("500"),
					Status:          domain.StatusPaid,
				},
				{
					TransactionID:   "INV-1002",
					ClientID:        "client-1",
					TransactionDate: weekStart.AddDate(0, 0, 2),
					TotalAmount:     decimal.RequireFromString("250"),
					Status:          domain.StatusPending,
					LineItems: []domain.LineItem{
						{Description: "Hosting", Total: decimal.RequireFromString("250")},
					},
				},
			}, nil)

		svc := services.NewInvoiceService(txnRepo, clientRepo, testCompany)

		dataURI, err := svc.GenerateWeeklyInvoice(ctx, userID, "client-1", weekStart)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(dataURI, pdfDataURIPrefix))
		txnRepo.AssertExpectations(t)
		clientRepo.AssertExpectations(t)
	})

	t.Run("empty week still renders a document", func(t *testing.T) {
		txnRepo := new(MockTransactionRepository)
		clientRepo := new(MockClientRepository)
		clientRepo.On("FindClientByID", ctx, userID, "client-1").Return(client, nil)
		txnRepo.On("ListTransactionsByClient", ctx, userID, "client-1", weekStart, weekEnd).
			Return([]domain.Transaction{}, nil)

		svc := services.NewInvoiceService(txnRepo, clientRepo, testCompany)

		dataURI, err := svc.GenerateWeeklyInvoice(ctx, userID, "client-1", weekStart)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(dataURI, pdfDataURIPrefix))
	})

	t.Run("unknown client fails before listing transactions", func(t *testing.T) {
		txnRepo := new(MockTransactionRepository)
		clientRepo := new(MockClientRepository)
		clientRepo.On("FindClientByID", ctx, userID, "client-x").Return(nil, apperrors.ErrNotFound)

		svc := services.NewInvoiceService(txnRepo, clientRepo, testCompany)

		_, err := svc.GenerateWeeklyInvoice(ctx, userID, "client-x", weekStart)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		txnRepo.AssertNotCalled(t, "ListTransactionsByClient",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("listing failure propagates", func(t *testing.T) {
		listErr := errors.New("connection reset")
		txnRepo := new(MockTransactionRepository)
		clientRepo := new(MockClientRepository)
		clientRepo.On("FindClientByID", ctx, userID, "client-1").Return(client, nil)
		txnRepo.On("ListTransactionsByClient", ctx, userID, "client-1", weekStart, weekEnd).
			Return(nil, listErr)

		svc := services.NewInvoiceService(txnRepo, clientRepo, testCompany)

		_, err := svc.GenerateWeeklyInvoice(ctx, userID, "client-1", weekStart)
		assert.ErrorIs(t, err, listErr)
	})
}
