package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus is the billing state of a transaction.
type TransactionStatus string

const (
	StatusDraft   TransactionStatus = "draft"
	StatusPending TransactionStatus = "pending"
	StatusPaid    TransactionStatus = "paid"
	StatusPartial TransactionStatus = "partial"
	StatusOverdue TransactionStatus = "overdue"
)

// InvoiceKind selects the invoice document layout for a transaction.
type InvoiceKind string

const (
	// InvoiceStandard renders the usual item/quantity/price/tax table.
	InvoiceStandard InvoiceKind = "STANDARD"
	// InvoiceWeeklyAggregate renders one row per rolled-up transaction.
	InvoiceWeeklyAggregate InvoiceKind = "WEEKLY_AGGREGATE"
)

// WeeklyInvoicePrefix marks a transaction identifier as a weekly aggregate
// bill. The prefix convention is part of the external contract; callers and
// stored references rely on it.
const WeeklyInvoicePrefix = "WEEK-"

// ClassifyInvoiceKind maps a transaction identifier to its invoice layout.
// Classification happens once; rendering code switches on the returned tag
// rather than re-inspecting the identifier.
func ClassifyInvoiceKind(transactionID string) InvoiceKind {
	if strings.HasPrefix(transactionID, WeeklyInvoicePrefix) {
		return InvoiceWeeklyAggregate
	}
	return InvoiceStandard
}

// LineItem is one billable row within a transaction.
//
// For standard invoices Description, Quantity, UnitPrice, TaxRate and Total
// are populated. For weekly aggregate invoices each line item stands for a
// rolled-up transaction and instead carries TransactionRef, Date, ProductName,
// Status and Total. Total is computed by the producer; rendering never
// recomputes it (except for the aggregate tax display).
type LineItem struct {
	LineItemID    string          `json:"lineItemID,omitempty"`
	TransactionID string          `json:"transactionID,omitempty"`
	Description   string          `json:"description,omitempty"`
	ProductName   string          `json:"productName,omitempty"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	TaxRate       decimal.Decimal `json:"taxRate"` // Percentage
	Total         decimal.Decimal `json:"total"`

	// Weekly aggregate fields
	TransactionRef string            `json:"transactionRef,omitempty"`
	Date           time.Time         `json:"date,omitempty"`
	Status         TransactionStatus `json:"status,omitempty"`
}

// Transaction represents one client invoice, either a regular transaction or
// a synthesized weekly aggregate of several transactions.
type Transaction struct {
	TransactionID   string            `json:"transactionID"` // e.g. "INV-1001" or "WEEK-2024-05-06"
	ClientID        string            `json:"clientID"`
	ClientName      string            `json:"clientName,omitempty"`
	UserID          string            `json:"userID"` // Owning dashboard user
	Description     string            `json:"description,omitempty"`
	TransactionDate time.Time         `json:"transactionDate"`
	DueDate         time.Time         `json:"dueDate"`
	TotalAmount     decimal.Decimal   `json:"totalAmount"`
	Status          TransactionStatus `json:"status"`
	ReferenceNumber string            `json:"referenceNumber,omitempty"`
	PaymentMethod   string            `json:"paymentMethod,omitempty"`
	Notes           string            `json:"notes,omitempty"`
	Terms           string            `json:"terms,omitempty"`
	LineItems       []LineItem        `json:"lineItems,omitempty"`
	AuditFields
}

// InvoiceKind classifies this transaction's invoice layout.
func (t Transaction) InvoiceKind() InvoiceKind {
	return ClassifyInvoiceKind(t.TransactionID)
}
