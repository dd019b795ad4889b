package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mcodevbytes/finance_dashboard_app/internal/apperrors"
	"github.com/mcodevbytes/finance_dashboard_app/internal/core/domain"
	portsrepo "github.com/mcodevbytes/finance_dashboard_app/internal/core/ports/repositories"
	portssvc "github.com/mcodevbytes/finance_dashboard_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// staffService implements the StaffSvcFacade interface
type staffService struct {
	BaseService
	staffRepo     portsrepo.StaffRepository
	ledgerService portssvc.LedgerSvcFacade
	now           func() time.Time
}

// NewStaffService creates a new staff service. The ledger service receives
// the expense entry when a payroll payment is recorded.
func NewStaffService(repo portsrepo.StaffRepository, ledgerService portssvc.LedgerSvcFacade) portssvc.StaffSvcFacade {
	return &staffService{
		staffRepo:     repo,
		ledgerService: ledgerService,
		now:           time.Now,
	}
}

var _ portssvc.StaffSvcFacade = (*staffService)(nil)

func (s *staffService) CreateStaff(ctx context.Context, staff domain.Staff) (*domain.Staff, error) {
	if staff.Name == "" {
		return nil, fmt.Errorf("staff name is required: %w", apperrors.ErrValidation)
	}
	if staff.StaffID == "" {
		staff.StaffID = uuid.NewString()
	}
	now := s.now()
	staff.CreatedAt = now
	staff.LastUpdatedAt = now

	if err := s.staffRepo.SaveStaff(ctx, staff); err != nil {
		s.LogError(ctx, err, "Failed to save staff", slog.String("staff_id", staff.StaffID))
		return nil, fmt.Errorf("failed to save staff: %w", err)
	}
	return &staff, nil
}

func (s *staffService) GetStaffByID(ctx context.Context, userID, staffID string) (*domain.Staff, error) {
	staff, err := s.staffRepo.FindStaffByID(ctx, userID, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to find staff %s: %w", staffID, err)
	}
	return staff, nil
}

func (s *staffService) ListStaff(ctx context.Context, userID string) ([]domain.Staff, error) {
	staff, err := s.staffRepo.ListStaff(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	return staff, nil
}

func (s *staffService) UpdateStaff(ctx context.Context, staff domain.Staff) error {
	staff.LastUpdatedAt = s.now()
	if err := s.staffRepo.UpdateStaff(ctx, staff); err != nil {
		s.LogError(ctx, err, "Failed to update staff", slog.String("staff_id", staff.StaffID))
		return fmt.Errorf("failed to update staff: %w", err)
	}
	return nil
}

func (s *staffService) DeleteStaff(ctx context.Context, userID, staffID string) error {
	if err := s.staffRepo.DeleteStaff(ctx, userID, staffID); err != nil {
		return fmt.Errorf("failed to delete staff %s: %w", staffID, err)
	}
	return nil
}

// RecordPayment persists a payroll payment and its expense ledger entry.
func (s *staffService) RecordPayment(ctx context.Context, payment domain.StaffPayment) (*domain.StaffPayment, error) {
	if payment.StaffID == "" {
		return nil, fmt.Errorf("payment requires a staff member: %w", apperrors.ErrValidation)
	}
	if !payment.Amount.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("payment amount must be positive: %w", apperrors.ErrValidation)
	}

	staff, err := s.staffRepo.FindStaffByID(ctx, payment.UserID, payment.StaffID)
	if err != nil {
		return nil, fmt.Errorf("failed to find staff %s: %w", payment.StaffID, err)
	}

	if payment.PaymentID == "" {
		payment.PaymentID = uuid.NewString()
	}
	now := s.now()
	if payment.PaymentDate.IsZero() {
		payment.PaymentDate = now
	}
	payment.CreatedAt = now
	payment.LastUpdatedAt = now

	if err := s.staffRepo.SavePayment(ctx, payment); err != nil {
		s.LogError(ctx, err, "Failed to save staff payment",
			slog.String("staff_id", payment.StaffID))
		return nil, fmt.Errorf("failed to save staff payment: %w", err)
	}

	description := payment.Description
	if description == "" {
		description = fmt.Sprintf("Salary payment to %s", staff.Name)
	}
	staffID := payment.StaffID
	entry := domain.LedgerEntry{
		EntryID:       uuid.NewString(),
		UserID:        payment.UserID,
		EntryDate:     payment.PaymentDate,
		EntryType:     domain.EntryExpense,
		Amount:        payment.Amount,
		Description:   description,
		ReferenceID:   payment.PaymentID,
		ReferenceType: domain.RefStaffPayment,
		StaffID:       &staffID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.ledgerService.RecordEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to record expense ledger entry for staff payment",
			slog.String("payment_id", payment.PaymentID))
		return nil, fmt.Errorf("failed to record expense entry for payment %s: %w", payment.PaymentID, err)
	}

	s.LogInfo(ctx, "Staff payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("staff_id", payment.StaffID),
		slog.String("amount", payment.Amount.String()))
	return &payment, nil
}

func (s *staffService) ListPayments(ctx context.Context, userID, staffID string) ([]domain.StaffPayment, error) {
	payments, err := s.staffRepo.ListPaymentsByStaff(ctx, userID, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff payments: %w", err)
	}
	return payments, nil
}
