package services

import (
	"context"
	"time"
)

// InvoiceSvcFacade produces invoice documents for transactions.
type InvoiceSvcFacade interface {
	// GenerateInvoice renders the invoice PDF for one transaction and returns
	// it as a data URI (data:application/pdf;base64,...). No document is
	// produced on error.
	GenerateInvoice(ctx context.Context, userID, transactionID string) (string, error)
	// GenerateWeeklyInvoice synthesizes a weekly aggregate transaction from
	// the client's transactions in the week starting at weekStart and renders
	// it the same way.
	GenerateWeeklyInvoice(ctx context.Context, userID, clientID string, weekStart time.Time) (string, error)
}
