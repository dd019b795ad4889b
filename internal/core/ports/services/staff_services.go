package services

import (
	"context"

	"github.com/mcodevbytes/finance_dashboard_app/internal/core/domain"
)

// StaffSvcFacade manages staff records and payroll payments.
type StaffSvcFacade interface {
	CreateStaff(ctx context.Context, staff domain.Staff) (*domain.Staff, error)
	GetStaffByID(ctx context.Context, userID, staffID string) (*domain.Staff, error)
	ListStaff(ctx context.Context, userID string) ([]domain.Staff, error)
	UpdateStaff(ctx context.Context, staff domain.Staff) error
	DeleteStaff(ctx context.Context, userID, staffID string) error
	// RecordPayment persists the payment and the matching expense ledger
	// entry.
	RecordPayment(ctx context.Context, payment domain.StaffPayment) (*domain.StaffPayment, error)
	ListPayments(ctx context.Context, userID, staffID string) ([]domain.StaffPayment, error)
}
