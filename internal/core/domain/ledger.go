package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// EntryType distinguishes money flowing in from money flowing out.
type EntryType string

const (
	EntryIncome  EntryType = "income"
	EntryExpense EntryType = "expense"
)

// ReferenceType names the workflow that produced a ledger entry.
type ReferenceType string

const (
	RefClientTransaction ReferenceType = "client_transaction"
	RefStaffPayment      ReferenceType = "staff_payment"
)

// LedgerEntry is one income or expense event attributable to a client
// transaction or a staff payment. Exactly one of ClientID/StaffID is set,
// consistent with ReferenceType. Entries are immutable history once written;
// corrective updates bump UpdatedAt.
type LedgerEntry struct {
	EntryID       string          `json:"entryID"` // Primary Key (UUID)
	UserID        string          `json:"userID"`  // Owning dashboard user
	EntryDate     time.Time       `json:"entryDate"`
	EntryType     EntryType       `json:"entryType"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	ReferenceID   string          `json:"referenceID"`
	ReferenceType ReferenceType   `json:"referenceType"`
	ClientID      *string         `json:"clientID,omitempty"`
	StaffID       *string         `json:"staffID,omitempty"`
	ClientName    string          `json:"clientName,omitempty"`
	StaffName     string          `json:"staffName,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// MonthSummary holds the rolled-up totals for one calendar month.
// Profit is always Income minus Expense.
type MonthSummary struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Profit  decimal.Decimal `json:"profit"`
}

// YearlySummary holds the rolled-up totals for one calendar year.
type YearlySummary struct {
	Year    int             `json:"year"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Profit  decimal.Decimal `json:"profit"`
}

// LedgerReport pairs a month's entries with their totals.
type LedgerReport struct {
	Summary MonthSummary  `json:"summary"`
	Entries []LedgerEntry `json:"entries"`
}

// EntryFilter narrows an already-fetched entry list. Zero values disable the
// corresponding criterion.
type EntryFilter struct {
	Year   int
	Month  time.Month
	Search string
}

// AmountFromRaw converts an untyped amount value into a decimal. Malformed
// input contributes zero so that downstream sums stay well-defined.
func AmountFromRaw(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// SummarizeEntries folds a set of entries into income/expense/profit totals.
// It never mutates the input.
func SummarizeEntries(entries []LedgerEntry) MonthSummary {
	income := decimal.Zero
	expense := decimal.Zero
	for _, e := range entries {
		if e.EntryType == EntryIncome {
			income = income.Add(e.Amount)
		} else {
			expense = expense.Add(e.Amount)
		}
	}
	return MonthSummary{
		Income:  income,
		Expense: expense,
		Profit:  income.Sub(expense),
	}
}

// FilterEntries applies f to entries, preserving order. The result is always
// a subset of the input and applying the same filter again is a no-op.
func FilterEntries(entries []LedgerEntry, f EntryFilter) []LedgerEntry {
	filtered := make([]LedgerEntry, 0, len(entries))
	search := strings.ToLower(strings.TrimSpace(f.Search))
	for _, e := range entries {
		if f.Year != 0 && e.EntryDate.Year() != f.Year {
			continue
		}
		if f.Month != 0 && e.EntryDate.Month() != f.Month {
			continue
		}
		if search != "" && !entryMatchesSearch(e, search) {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}

func entryMatchesSearch(e LedgerEntry, search string) bool {
	return strings.Contains(strings.ToLower(e.Description), search) ||
		(e.ClientName != "" && strings.Contains(strings.ToLower(e.ClientName), search)) ||
		(e.StaffName != "" && strings.Contains(strings.ToLower(e.StaffName), search)) ||
		strings.Contains(strings.ToLower(e.ReferenceID), search)
}
