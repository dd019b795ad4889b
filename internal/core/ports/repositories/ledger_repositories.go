package repositories

import (
	"context"
	"time"

	"github.com/mcodevbytes/finance_dashboard_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// YearTotals carries one year's raw income/expense sums as read from storage.
type YearTotals struct {
	Year    int
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// LedgerRepository is the read/write interface for ledger entries.
type LedgerRepository interface {
	// SaveEntry persists a new ledger entry.
	SaveEntry(ctx context.Context, entry domain.LedgerEntry) error
	// FindEntriesInRange returns entries for userID whose entry_date falls in
	// [from, to), joined with client and staff names, ordered by entry_date
	// descending.
	FindEntriesInRange(ctx context.Context, userID string, from, to time.Time) ([]domain.LedgerEntry, error)
	// GetYearlyTotals returns income/expense sums grouped by the calendar year
	// of entry_date, for years within [fromYear, toYear]. Years with no
	// entries are absent from the result.
	GetYearlyTotals(ctx context.Context, userID string, fromYear, toYear int) ([]YearTotals, error)
}
