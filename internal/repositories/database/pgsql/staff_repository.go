package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mcodevbytes/finance_dashboard_app/internal/apperrors"
	"github.com/mcodevbytes/finance_dashboard_app/internal/core/domain"
	portsrepo "github.com/mcodevbytes/finance_dashboard_app/internal/core/ports/repositories"
)

type PgxStaffRepository struct {
	db *pgxpool.Pool
}

func newPgxStaffRepository(db *pgxpool.Pool) portsrepo.StaffRepository {
	return &PgxStaffRepository{db: db}
}

// Ensure PgxStaffRepository implements portsrepo.StaffRepository
var _ portsrepo.StaffRepository = (*PgxStaffRepository)(nil)

const staffColumns = `staff_id, user_id, name, email, phone, position, salary, created_at, created_by, last_updated_at, last_updated_by`

func scanStaff(row pgx.Row) (*domain.Staff, error) {
	var staff domain.Staff
	err := row.Scan(
		&staff.StaffID,
		&staff.UserID,
		&staff.Name,
		&staff.Email,
		&staff.Phone,
		&staff.Position,
		&staff.Salary,
		&staff.CreatedAt,
		&staff.CreatedBy,
		&staff.LastUpdatedAt,
		&staff.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *PgxStaffRepository) SaveStaff(ctx context.Context, staff domain.Staff) error {
	query := `
        INSERT INTO staff (staff_id, user_id, name, email, phone, position, salary, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.db.Exec(ctx, query,
		staff.StaffID,
		staff.UserID,
		staff.Name,
		staff.Email,
		staff.Phone,
		staff.Position,
		staff.Salary,
		staff.CreatedAt,
		staff.CreatedBy,
		staff.LastUpdatedAt,
		staff.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save staff: %w", err)
	}
	return nil
}

func (r *PgxStaffRepository) FindStaffByID(ctx context.Context, userID, staffID string) (*domain.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE staff_id = $1 AND user_id = $2;`
	staff, err := scanStaff(r.db.QueryRow(ctx, query, staffID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("staff %s not found: %w", staffID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find staff by ID: %w", err)
	}
	return staff, nil
}

func (r *PgxStaffRepository) ListStaff(ctx context.Context, userID string) ([]domain.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE user_id = $1 ORDER BY name;`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer rows.Close()

	staffList := make([]domain.Staff, 0)
	for rows.Next() {
		staff, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff row: %w", err)
		}
		staffList = append(staffList, *staff)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating staff rows: %w", err)
	}
	return staffList, nil
}

func (r *PgxStaffRepository) UpdateStaff(ctx context.Context, staff domain.Staff) error {
	query := `
        UPDATE staff SET
            name = $3,
            email = $4,
            phone = $5,
            position = $6,
            salary = $7,
            last_updated_at = $8,
            last_updated_by = $9
        WHERE staff_id = $1 AND user_id = $2;
    `
	tag, err := r.db.Exec(ctx, query,
		staff.StaffID,
		staff.UserID,
		staff.Name,
		staff.Email,
		staff.Phone,
		staff.Position,
		staff.Salary,
		staff.LastUpdatedAt,
		staff.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update staff: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("staff %s not found for update: %w", staff.StaffID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxStaffRepository) DeleteStaff(ctx context.Context, userID, staffID string) error {
	query := `DELETE FROM staff WHERE staff_id = $1 AND user_id = $2;`
	tag, err := r.db.Exec(ctx, query, staffID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete staff: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("staff %s not found for delete: %w", staffID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxStaffRepository) SavePayment(ctx context.Context, payment domain.StaffPayment) error {
	query := `
        INSERT INTO staff_payments (payment_id, staff_id, user_id, amount, payment_date, description, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.db.Exec(ctx, query,
		payment.PaymentID,
		payment.StaffID,
		payment.UserID,
		payment.Amount,
		payment.PaymentDate,
		payment.Description,
		payment.CreatedAt,
		payment.CreatedBy,
		payment.LastUpdatedAt,
		payment.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save staff payment: %w", err)
	}
	return nil
}

func (r *PgxStaffRepository) ListPaymentsByStaff(ctx context.Context, userID, staffID string) ([]domain.StaffPayment, error) {
	query := `
        SELECT payment_id, staff_id, user_id, amount, payment_date, description, created_at, created_by, last_updated_at, last_updated_by
        FROM staff_payments
        WHERE staff_id = $1 AND user_id = $2
        ORDER BY payment_date DESC;
    `
	rows, err := r.db.Query(ctx, query, staffID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff payments: %w", err)
	}
	defer rows.Close()

	payments := make([]domain.StaffPayment, 0)
	for rows.Next() {
		var p domain.StaffPayment
		err := rows.Scan(
			&p.PaymentID,
			&p.StaffID,
			&p.UserID,
			&p.Amount,
			&p.PaymentDate,
			&p.Description,
			&p.CreatedAt,
			&p.CreatedBy,
			&p.LastUpdatedAt,
			&p.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff payment row: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating staff payment rows: %w", err)
	}
	return payments, nil
}
