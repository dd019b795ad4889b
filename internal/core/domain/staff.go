package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Staff represents an employee on the payroll.
type Staff struct {
	StaffID  string          `json:"staffID"` // Primary Key (UUID)
	UserID   string          `json:"userID"`  // Owning dashboard user
	Name     string          `json:"name"`
	Email    string          `json:"email,omitempty"`
	Phone    string          `json:"phone,omitempty"`
	Position string          `json:"position,omitempty"`
	Salary   decimal.Decimal `json:"salary"`
	AuditFields
}

// StaffPayment records one payroll disbursement to a staff member.
// Recording a payment writes a matching expense ledger entry.
type StaffPayment struct {
	PaymentID   string          `json:"paymentID"` // Primary Key (UUID)
	StaffID     string          `json:"staffID"`
	UserID      string          `json:"userID"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"paymentDate"`
	Description string          `json:"description,omitempty"`
	AuditFields
}
