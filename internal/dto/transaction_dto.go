package dto

import (
	"time"

	"github.com/mcodevbytes/finance_dashboard_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LineItemRequest represents one billable row in a transaction payload.
// Amount fields use FlexAmount so stringly or malformed values degrade to
// zero instead of rejecting the payload.
type LineItemRequest struct {
	Description string     `json:"description" binding:"required"`
	ProductName string     `json:"productName"`
	Quantity    FlexAmount `json:"quantity" binding:"required"`
	UnitPrice   FlexAmount `json:"unitPrice" binding:"required"`
	TaxRate     FlexAmount `json:"taxRate"`
	Total       FlexAmount `json:"total" binding:"required"`
}

// CreateTransactionRequest represents the payload for creating a transaction
type CreateTransactionRequest struct {
	ClientID        string            `json:"clientID" binding:"required"`
	Description     string            `json:"description"`
	TransactionDate time.Time         `json:"transactionDate"`
	DueDate         time.Time         `json:"dueDate"`
	TotalAmount     FlexAmount        `json:"totalAmount" binding:"required"`
	Status          string            `json:"status"`
	ReferenceNumber string            `json:"referenceNumber"`
	PaymentMethod   string            `json:"paymentMethod"`
	Notes           string            `json:"notes"`
	Terms           string            `json:"terms"`
	LineItems       []LineItemRequest `json:"lineItems" binding:"omitempty,dive"`
}

// UpdateTransactionRequest represents the payload for updating a transaction.
// Nil fields are left unchanged; a non-nil LineItems replaces the full set.
type UpdateTransactionRequest struct {
	Description     *string            `json:"description"`
	TransactionDate *time.Time         `json:"transactionDate"`
	DueDate         *time.Time         `json:"dueDate"`
	TotalAmount     *FlexAmount        `json:"totalAmount"`
	Status          *string            `json:"status"`
	ReferenceNumber *string            `json:"referenceNumber"`
	PaymentMethod   *string            `json:"paymentMethod"`
	Notes           *string            `json:"notes"`
	Terms           *string            `json:"terms"`
	LineItems       *[]LineItemRequest `json:"lineItems" binding:"omitempty,dive"`
}

// LineItemResponse represents one billable row in API responses
type LineItemResponse struct {
	LineItemID  string          `json:"lineItemID"`
	Description string          `json:"description,omitempty"`
	ProductName string          `json:"productName,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TaxRate     decimal.Decimal `json:"taxRate"`
	Total       decimal.Decimal `json:"total"`
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	TransactionID   string             `json:"transactionID"`
	ClientID        string             `json:"clientID"`
	ClientName      string             `json:"clientName,omitempty"`
	Description     string             `json:"description,omitempty"`
	TransactionDate time.Time          `json:"transactionDate"`
	DueDate         time.Time          `json:"dueDate"`
	TotalAmount     decimal.Decimal    `json:"totalAmount"`
	Status          string             `json:"status"`
	ReferenceNumber string             `json:"referenceNumber,omitempty"`
	PaymentMethod   string             `json:"paymentMethod,omitempty"`
	Notes           string             `json:"notes,omitempty"`
	Terms           string             `json:"terms,omitempty"`
	LineItems       []LineItemResponse `json:"lineItems,omitempty"`
	CreatedAt       time.Time          `json:"createdAt"`
}

// ListTransactionsResponse wraps a list of transactions
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// InvoiceDocumentResponse carries a rendered invoice as a PDF data URI
type InvoiceDocumentResponse struct {
	DataURI string `json:"dataUri"`
}

// ToDomain converts the create request to a domain transaction
func (r CreateTransactionRequest) ToDomain() domain.Transaction {
	txn := domain.Transaction{
		ClientID:        r.ClientID,
		Description:     r.Description,
		TransactionDate: r.TransactionDate,
		DueDate:         r.DueDate,
		TotalAmount:     r.TotalAmount.Decimal,
		Status:          domain.TransactionStatus(r.Status),
		ReferenceNumber: r.ReferenceNumber,
		PaymentMethod:   r.PaymentMethod,
		Notes:           r.Notes,
		Terms:           r.Terms,
		LineItems:       make([]domain.LineItem, len(r.LineItems)),
	}
	for i, item := range r.LineItems {
		txn.LineItems[i] = item.toDomain()
	}
	return txn
}

func (r LineItemRequest) toDomain() domain.LineItem {
	return domain.LineItem{
		Description: r.Description,
		ProductName: r.ProductName,
		Quantity:    r.Quantity.Decimal,
		UnitPrice:   r.UnitPrice.Decimal,
		TaxRate:     r.TaxRate.Decimal,
		Total:       r.Total.Decimal,
	}
}

// Apply overlays the non-nil request fields onto an existing transaction
func (r UpdateTransactionRequest) Apply(txn *domain.Transaction) {
	if r.Description != nil {
		txn.Description = *r.Description
	}
	if r.TransactionDate != nil {
		txn.TransactionDate = *r.TransactionDate
	}
	if r.DueDate != nil {
		txn.DueDate = *r.DueDate
	}
	if r.TotalAmount != nil {
		txn.TotalAmount = r.TotalAmount.Decimal
	}
	if r.Status != nil {
		txn.Status = domain.TransactionStatus(*r.Status)
	}
	if r.ReferenceNumber != nil {
		txn.ReferenceNumber = *r.ReferenceNumber
	}
	if r.PaymentMethod != nil {
		txn.PaymentMethod = *r.PaymentMethod
	}
	if r.Notes != nil {
		txn.Notes = *r.Notes
	}
	if r.Terms != nil {
		txn.Terms = *r.Terms
	}
	if r.LineItems != nil {
		items := make([]domain.LineItem, len(*r.LineItems))
		for i, item := range *r.LineItems {
			items[i] = item.toDomain()
		}
		txn.LineItems = items
	}
}

// ToTransactionResponse converts a domain transaction to its response representation
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		TransactionID:   txn.TransactionID,
		ClientID:        txn.ClientID,
		ClientName:      txn.ClientName,
		Description:     txn.Description,
		TransactionDate: txn.TransactionDate,
		DueDate:         txn.DueDate,
		TotalAmount:     txn.TotalAmount,
		Status:          string(txn.Status),
		ReferenceNumber: txn.ReferenceNumber,
		PaymentMethod:   txn.PaymentMethod,
		Notes:           txn.Notes,
		Terms:           txn.Terms,
		CreatedAt:       txn.CreatedAt,
		LineItems:       make([]LineItemResponse, len(txn.LineItems)),
	}
	for i, item := range txn.LineItems {
		resp.LineItems[i] = LineItemResponse{
			LineItemID:  item.LineItemID,
			Description: item.Description,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TaxRate:     item.TaxRate,
			Total:       item.Total,
		}
	}
	return resp
}

// ToListTransactionsResponse converts a slice of domain transactions
func ToListTransactionsResponse(txns []domain.Transaction) ListTransactionsResponse {
	resp := ListTransactionsResponse{Transactions: make([]TransactionResponse, len(txns))}
	for i := range txns {
		resp.Transactions[i] = ToTransactionResponse(&txns[i])
	}
	return resp
}
