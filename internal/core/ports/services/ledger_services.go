package services

import (
	"context"

	"github.com/mcodevbytes/finance_dashboard_app/internal/core/domain"
)

// LedgerSvcFacade derives financial summaries from ledger entries.
type LedgerSvcFacade interface {
	// CurrentMonthSummary returns the entries of the calendar month containing
	// now, together with their income/expense/profit totals.
	CurrentMonthSummary(ctx context.Context, userID string) (*domain.LedgerReport, error)
	// YearlySummary returns exactly five summaries, one per calendar year of
	// the trailing five-year window ending at the current year, ascending,
	// zero-filled for years with no entries.
	YearlySummary(ctx context.Context, userID string) ([]domain.YearlySummary, error)
	// RecordEntry appends a new ledger entry.
	RecordEntry(ctx context.Context, entry domain.LedgerEntry) error
}
