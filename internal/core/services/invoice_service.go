package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mcodevbytes/finance_dashboard_app/internal/core/domain"
	portsrepo "github.com/mcodevbytes/finance_dashboard_app/internal/core/ports/repositories"
	portssvc "github.com/mcodevbytes/finance_dashboard_app/internal/core/ports/services"
	"github.com/mcodevbytes/finance_dashboard_app/internal/pdf"
	"github.com/mcodevbytes/finance_dashboard_app/internal/platform/config"
	"github.com/shopspring/decimal"
)

// invoiceService implements the InvoiceSvcFacade interface
type invoiceService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepository
	clientRepo      portsrepo.ClientRepository
	issuer          pdf.Issuer
	now             func() time.Time
}

// NewInvoiceService creates a new invoice service using the configured
// company identity for the document header.
func NewInvoiceService(transactionRepo portsrepo.TransactionRepository, clientRepo portsrepo.ClientRepository, company config.CompanyInfo) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		transactionRepo: transactionRepo,
		clientRepo:      clientRepo,
		issuer: pdf.Issuer{
			Name:    company.Name,
			Address: company.Address,
			City:    company.City,
			Phone:   company.Phone,
			Email:   company.Email,
			Website: company.Website,
		},
		now: time.Now,
	}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

// GenerateInvoice renders the invoice for a stored transaction. Rendering
// failures propagate as errors; a partial document is never returned.
func (s *invoiceService) GenerateInvoice(ctx context.Context, userID, transactionID string) (string, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transaction for invoice",
			slog.String("transaction_id", transactionID))
		return "", fmt.Errorf("failed to load transaction %s: %w", transactionID, err)
	}

	client, err := s.clientRepo.FindClientByID(ctx, userID, txn.ClientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load client for invoice",
			slog.String("transaction_id", transactionID),
			slog.String("client_id", txn.ClientID))
		return "", fmt.Errorf("failed to load client %s: %w", txn.ClientID, err)
	}

	dataURI, err := pdf.RenderInvoice(s.issuer, *txn, *client, s.now())
	if err != nil {
		s.LogError(ctx, err, "Invoice rendering failed",
			slog.String("transaction_id", transactionID))
		return "", err
	}

	s.LogInfo(ctx, "Invoice generated",
		slog.String("transaction_id", transactionID),
		slog.String("invoice_kind", string(txn.InvoiceKind())))
	return dataURI, nil
}

// GenerateWeeklyInvoice rolls the client's transactions of one week into a
// synthesized weekly aggregate transaction and renders it. The aggregate's
// identifier carries the reserved weekly prefix so the renderer selects the
// weekly column set.
func (s *invoiceService) GenerateWeeklyInvoice(ctx context.Context, userID, clientID string, weekStart time.Time) (string, error) {
	client, err := s.clientRepo.FindClientByID(ctx, userID, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load client for weekly invoice",
			slog.String("client_id", clientID))
		return "", fmt.Errorf("failed to load client %s: %w", clientID, err)
	}

	weekEnd := weekStart.AddDate(0, 0, 7)
	transactions, err := s.transactionRepo.ListTransactionsByClient(ctx, userID, clientID, weekStart, weekEnd)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for weekly invoice",
			slog.String("client_id", clientID))
		return "", fmt.Errorf("failed to list transactions for weekly invoice: %w", err)
	}

	aggregate := synthesizeWeeklyTransaction(userID, *client, transactions, weekStart)

	dataURI, err := pdf.RenderInvoice(s.issuer, aggregate, *client, s.now())
	if err != nil {
		s.LogError(ctx, err, "Weekly invoice rendering failed",
			slog.String("client_id", clientID),
			slog.String("week_start", weekStart.Format("2006-01-02")))
		return "", err
	}

	s.LogInfo(ctx, "Weekly invoice generated",
		slog.String("client_id", clientID),
		slog.String("transaction_id", aggregate.TransactionID),
		slog.Int("rolled_up", len(transactions)))
	return dataURI, nil
}

// synthesizeWeeklyTransaction builds the weekly aggregate: one line item per
// underlying transaction, the total being the sum of their totals.
func synthesizeWeeklyTransaction(userID string, client domain.Client, transactions []domain.Transaction, weekStart time.Time) domain.Transaction {
	items := make([]domain.LineItem, 0, len(transactions))
	total := decimal.Zero
	for _, t := range transactions {
		product := t.Description
		if product == "" && len(t.LineItems) > 0 {
			product = t.LineItems[0].Description
		}
		items = append(items, domain.LineItem{
			TransactionRef: t.TransactionID,
			Date:           t.TransactionDate,
			ProductName:    product,
			Status:         t.Status,
			Total:          t.TotalAmount,
		})
		total = total.Add(t.TotalAmount)
	}

	return domain.Transaction{
		TransactionID:   domain.WeeklyInvoicePrefix + weekStart.Format("2006-01-02"),
		ClientID:        client.ClientID,
		ClientName:      client.Name,
		UserID:          userID,
		Description:     fmt.Sprintf("Weekly invoice for %s", client.Name),
		TransactionDate: weekStart,
		DueDate:         weekStart.AddDate(0, 0, 14),
		TotalAmount:     total,
		Status:          domain.StatusPending,
		LineItems:       items,
	}
}
