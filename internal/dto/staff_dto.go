package dto

import (
	"time"

	"github.com/mcodevbytes/finance_dashboard_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateStaffRequest represents the payload for creating a staff member
type CreateStaffRequest struct {
	Name     string          `json:"name" binding:"required"`
	Email    string          `json:"email" binding:"omitempty,email"`
	Phone    string          `json:"phone"`
	Position string          `json:"position"`
	Salary   decimal.Decimal `json:"salary"`
}

// UpdateStaffRequest represents the payload for updating a staff member.
// Nil fields are left unchanged.
type UpdateStaffRequest struct {
	Name     *string          `json:"name"`
	Email    *string          `json:"email" binding:"omitempty,email"`
	Phone    *string          `json:"phone"`
	Position *string          `json:"position"`
	Salary   *decimal.Decimal `json:"salary"`
}

// RecordStaffPaymentRequest represents the payload for recording a payroll payment
type RecordStaffPaymentRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	PaymentDate time.Time       `json:"paymentDate"`
	Description string          `json:"description"`
}

// StaffResponse represents a staff member in API responses
type StaffResponse struct {
	StaffID   string          `json:"staffID"`
	Name      string          `json:"name"`
	Email     string          `json:"email,omitempty"`
	Phone     string          `json:"phone,omitempty"`
	Position  string          `json:"position,omitempty"`
	Salary    decimal.Decimal `json:"salary"`
	CreatedAt time.Time       `json:"createdAt"`
}

// StaffPaymentResponse represents a payroll payment in API responses
type StaffPaymentResponse struct {
	PaymentID   string          `json:"paymentID"`
	StaffID     string          `json:"staffID"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"paymentDate"`
	Description string          `json:"description,omitempty"`
}

// ListStaffResponse wraps a list of staff members
type ListStaffResponse struct {
	Staff []StaffResponse `json:"staff"`
}

// ListStaffPaymentsResponse wraps a list of payroll payments
type ListStaffPaymentsResponse struct {
	Payments []StaffPaymentResponse `json:"payments"`
}

// ToDomain converts the create request to a domain staff member
func (r CreateStaffRequest) ToDomain() domain.Staff {
	return domain.Staff{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Position: r.Position,
		Salary:   r.Salary,
	}
}

// Apply overlays the non-nil request fields onto an existing staff member
func (r UpdateStaffRequest) Apply(staff *domain.Staff) {
	if r.Name != nil {
		staff.Name = *r.Name
	}
	if r.Email != nil {
		staff.Email = *r.Email
	}
	if r.Phone != nil {
		staff.Phone = *r.Phone
	}
	if r.Position != nil {
		staff.Position = *r.Position
	}
	if r.Salary != nil {
		staff.Salary = *r.Salary
	}
}

// ToStaffResponse converts a domain staff member to its response representation
func ToStaffResponse(staff *domain.Staff) StaffResponse {
	return StaffResponse{
		StaffID:   staff.StaffID,
		Name:      staff.Name,
		Email:     staff.Email,
		Phone:     staff.Phone,
		Position:  staff.Position,
		Salary:    staff.Salary,
		CreatedAt: staff.CreatedAt,
	}
}

// ToStaffPaymentResponse converts a domain payroll payment
func ToStaffPaymentResponse(payment *domain.StaffPayment) StaffPaymentResponse {
	return StaffPaymentResponse{
		PaymentID:   payment.PaymentID,
		StaffID:     payment.StaffID,
		Amount:      payment.Amount,
		PaymentDate: payment.PaymentDate,
		Description: payment.Description,
	}
}

// ToListStaffResponse converts a slice of domain staff members
func ToListStaffResponse(staff []domain.Staff) ListStaffResponse {
	resp := ListStaffResponse{Staff: make([]StaffResponse, len(staff))}
	for i := range staff {
		resp.Staff[i] = ToStaffResponse(&staff[i])
	}
	return resp
}

// ToListStaffPaymentsResponse converts a slice of domain payroll payments
func ToListStaffPaymentsResponse(payments []domain.StaffPayment) ListStaffPaymentsResponse {
	resp := ListStaffPaymentsResponse{Payments: make([]StaffPaymentResponse, len(payments))}
	for i := range payments {
		resp.Payments[i] = ToStaffPaymentResponse(&payments[i])
	}
	return resp
}
