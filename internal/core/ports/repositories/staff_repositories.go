package repositories

import (
	"context"

	"github.com/mcodevbytes/finance_dashboard_app/internal/core/domain"
)

// StaffRepository is the storage interface for staff and payroll records.
type StaffRepository interface {
	SaveStaff(ctx context.Context, staff domain.Staff) error
	FindStaffByID(ctx context.Context, userID, staffID string) (*domain.Staff, error)
	ListStaff(ctx context.Context, userID string) ([]domain.Staff, error)
	UpdateStaff(ctx context.Context, staff domain.Staff) error
	DeleteStaff(ctx context.Context, userID, staffID string) error

	SavePayment(ctx context.Context, payment domain.StaffPayment) error
	ListPaymentsByStaff(ctx context.Context, userID, staffID string) ([]domain.StaffPayment, error)
}
