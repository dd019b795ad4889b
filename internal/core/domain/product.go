package domain

import "github.com/shopspring/decimal"

// Product is a catalog item that transaction line items can reference.
type Product struct {
	ProductID   string          `json:"productID"` // Primary Key (UUID)
	UserID      string          `json:"userID"`    // Owning dashboard user
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TaxRate     decimal.Decimal `json:"taxRate"` // Percentage, e.g. 18 for 18%
	AuditFields
}
