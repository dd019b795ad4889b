package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mcodevbytes/finance_dashboard_app/internal/apperrors"
	"github.com/mcodevbytes/finance_dashboard_app/internal/core/domain"
	portsrepo "github.com/mcodevbytes/finance_dashboard_app/internal/core/ports/repositories"
	portssvc "github.com/mcodevbytes/finance_dashboard_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// yearlyWindow is the number of trailing calendar years the yearly summary
// always reports, ending at the current year.
const yearlyWindow = 5

// ledgerService implements the LedgerSvcFacade interface
type ledgerService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepository
	// now is swappable for tests; defaults to time.Now.
	now func() time.Time
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithClock overrides the time source used to determine the current month
// and year windows.
func WithClock(now func() time.Time) LedgerServiceOption {
	return func(s *ledgerService) {
		s.now = now
	}
}

// NewLedgerService creates a new ledger service with the provided options
func NewLedgerService(repo portsrepo.LedgerRepository, options ...LedgerServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		ledgerRepo: repo,
		now:        time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// CurrentMonthSummary returns the ledger entries of the calendar month
// containing now, with income/expense/profit totals. Each call recomputes
// from the authoritative source; nothing is cached and entries are never
// mutated.
func (s *ledgerService) CurrentMonthSummary(ctx context.Context, userID string) (*domain.LedgerReport, error) {
	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	entries, err := s.ledgerRepo.FindEntriesInRange(ctx, userID, monthStart, monthEnd)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve current month ledger entries",
			slog.String("user_id", userID),
			slog.String("month_start", monthStart.Format(time.RFC3339)))
		return nil, fmt.Errorf("failed to retrieve current month ledger entries: %w", err)
	}

	report := &domain.LedgerReport{
		Summary: domain.SummarizeEntries(entries),
		Entries: entries,
	}

	s.LogInfo(ctx, "Current month summary generated",
		slog.String("user_id", userID),
		slog.Int("entry_count", len(entries)))
	return report, nil
}

// YearlySummary returns one summary per calendar year of the trailing
// five-year window ending at the current year, ascending. Years with no
// entries report zero totals; the zero-fill is part of the contract, not a
// display default.
func (s *ledgerService) YearlySummary(ctx context.Context, userID string) ([]domain.YearlySummary, error) {
	currentYear := s.now().Year()
	fromYear := currentYear - (yearlyWindow - 1)

	totals, err := s.ledgerRepo.GetYearlyTotals(ctx, userID, fromYear, currentYear)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve yearly ledger totals",
			slog.String("user_id", userID),
			slog.Int("from_year", fromYear),
			slog.Int("to_year", currentYear))
		return nil, fmt.Errorf("failed to retrieve yearly ledger totals: %w", err)
	}

	byYear := make(map[int]portsrepo.YearTotals, len(totals))
	for _, t := range totals {
		byYear[t.Year] = t
	}

	summaries := make([]domain.YearlySummary, 0, yearlyWindow)
	for year := fromYear; year <= currentYear; year++ {
		summary := domain.YearlySummary{
			Year:    year,
			Income:  decimal.Zero,
			Expense: decimal.Zero,
			Profit:  decimal.Zero,
		}
		if t, ok := byYear[year]; ok {
			summary.Income = t.Income
			summary.Expense = t.Expense
			summary.Profit = t.Income.Sub(t.Expense)
		}
		summaries = append(summaries, summary)
	}

	s.LogInfo(ctx, "Yearly summary generated",
		slog.String("user_id", userID),
		slog.Int("years_with_entries", len(totals)))
	return summaries, nil
}

// RecordEntry appends a new ledger entry after checking the reference
// invariant: exactly one of client/staff is set, consistent with the
// reference type.
func (s *ledgerService) RecordEntry(ctx context.Context, entry domain.LedgerEntry) error {
	if err := validateEntryReference(entry); err != nil {
		return err
	}
	if err := s.ledgerRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save ledger entry",
			slog.String("user_id", entry.UserID),
			slog.String("reference_id", entry.ReferenceID))
		return fmt.Errorf("failed to save ledger entry: %w", err)
	}
	return nil
}

func validateEntryReference(entry domain.LedgerEntry) error {
	switch entry.ReferenceType {
	case domain.RefClientTransaction:
		if entry.ClientID == nil || entry.StaffID != nil {
			return fmt.Errorf("client transaction entry must reference exactly one client: %w", apperrors.ErrValidation)
		}
	case domain.RefStaffPayment:
		if entry.StaffID == nil || entry.ClientID != nil {
			return fmt.Errorf("staff payment entry must reference exactly one staff member: %w", apperrors.ErrValidation)
		}
	default:
		return fmt.Errorf("unknown reference type %q: %w", entry.ReferenceType, apperrors.ErrValidation)
	}
	return nil
}
