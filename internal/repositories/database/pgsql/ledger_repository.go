package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mcodevbytes/finance_dashboard_app/internal/core/domain"
	portsrepo "github.com/mcodevbytes/finance_dashboard_app/internal/core/ports/repositories"
)

type PgxLedgerRepository struct {
	db *pgxpool.Pool
}

func newPgxLedgerRepository(db *pgxpool.Pool) portsrepo.LedgerRepository {
	return &PgxLedgerRepository{db: db}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepository
var _ portsrepo.LedgerRepository = (*PgxLedgerRepository)(nil)

func (r *PgxLedgerRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry) error {
	query := `
        INSERT INTO ledger_entries (entry_id, user_id, entry_date, entry_type, amount, description, reference_id, reference_type, client_id, staff_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `
	_, err := r.db.Exec(ctx, query,
		entry.EntryID,
		entry.UserID,
		entry.EntryDate,
		entry.EntryType,
		entry.Amount,
		entry.Description,
		entry.ReferenceID,
		entry.ReferenceType,
		entry.ClientID,
		entry.StaffID,
		entry.CreatedAt,
		entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save ledger entry: %w", err)
	}
	return nil
}

func (r *PgxLedgerRepository) FindEntriesInRange(ctx context.Context, userID string, from, to time.Time) ([]domain.LedgerEntry, error) {
	query := `
        SELECT
            e.entry_id, e.user_id, e.entry_date, e.entry_type, e.amount, e.description,
            e.reference_id, e.reference_type, e.client_id, e.staff_id,
            COALESCE(c.name, ''), COALESCE(s.name, ''),
            e.created_at, e.updated_at
        FROM ledger_entries e
        LEFT JOIN clients c ON c.client_id = e.client_id
        LEFT JOIN staff s ON s.staff_id = e.staff_id
        WHERE e.user_id = $1 AND e.entry_date >= $2 AND e.entry_date < $3
        ORDER BY e.entry_date DESC;
    `
	rows, err := r.db.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.LedgerEntry, 0)
	for rows.Next() {
		var e domain.LedgerEntry
		err := rows.Scan(
			&e.EntryID,
			&e.UserID,
			&e.EntryDate,
			&e.EntryType,
			&e.Amount,
			&e.Description,
			&e.ReferenceID,
			&e.ReferenceType,
			&e.ClientID,
			&e.StaffID,
			&e.ClientName,
			&e.StaffName,
			&e.CreatedAt,
			&e.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger entry rows: %w", err)
	}
	return entries, nil
}

func (r *PgxLedgerRepository) GetYearlyTotals(ctx context.Context, userID string, fromYear, toYear int) ([]portsrepo.YearTotals, error) {
	query := `
        SELECT
            EXTRACT(YEAR FROM entry_date)::int AS entry_year,
            COALESCE(SUM(CASE WHEN entry_type = 'income' THEN amount ELSE 0 END), 0) AS income,
            COALESCE(SUM(CASE WHEN entry_type = 'expense' THEN amount ELSE 0 END), 0) AS expense
        FROM ledger_entries
        WHERE user_id = $1
          AND EXTRACT(YEAR FROM entry_date) BETWEEN $2 AND $3
        GROUP BY entry_year
        ORDER BY entry_year;
    `
	rows, err := r.db.Query(ctx, query, userID, fromYear, toYear)
	if err != nil {
		return nil, fmt.Errorf("failed to query yearly ledger totals: %w", err)
	}
	defer rows.Close()

	totals := make([]portsrepo.YearTotals, 0)
	for rows.Next() {
		var t portsrepo.YearTotals
		if err := rows.Scan(&t.Year, &t.Income, &t.Expense); err != nil {
			return nil, fmt.Errorf("failed to scan yearly totals row: %w", err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating yearly totals rows: %w", err)
	}
	return totals, nil
}
