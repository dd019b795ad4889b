package domain_test

import (
	"testing"
	"time"

	"github.com/mcodevbytes/finance_dashboard_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeEntry(entryType domain.EntryType, amount string, date time.Time, description string) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryType:   entryType,
		Amount:      decimal.RequireFromString(amount),
		EntryDate:   date,
		Description: description,
	}
}

func TestSummarizeEntries(t *testing.T) {
	date := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	t.Run("empty input yields zero totals", func(t *testing.T) {
		summary := domain.SummarizeEntries(nil)
		assert.True(t, summary.Income.IsZero())
		assert.True(t, summary.Expense.IsZero())
		assert.True(t, summary.Profit.IsZero())
	})

	t.Run("profit is income minus expense", func(t *testing.T) {
		entries := []domain.LedgerEntry{
			makeEntry(domain.EntryIncome, "1500.50", date, "Payment received"),
			makeEntry(domain.EntryIncome, "249.50", date, "Payment received"),
			makeEntry(domain.EntryExpense, "600.25", date, "Salary payment"),
		}
		summary := domain.SummarizeEntries(entries)
		assert.Equal(t, "1750", summary.Income.String())
		assert.Equal(t, "600.25", summary.Expense.String())
		assert.Equal(t, "1149.75", summary.Profit.String())
	})

	t.Run("expense heavy month yields negative profit", func(t *testing.T) {
		entries := []domain.LedgerEntry{
			makeEntry(domain.EntryIncome, "100", date, "small payment"),
			makeEntry(domain.EntryExpense, "300", date, "rent"),
		}
		summary := domain.SummarizeEntries(entries)
		assert.Equal(t, "-200", summary.Profit.String())
	})
}

func TestAmountFromRaw(t *testing.T) {
	assert.Equal(t, "12.34", domain.AmountFromRaw("12.34").String())
	assert.Equal(t, "12.34", domain.AmountFromRaw("  12.34 ").String())
	assert.True(t, domain.AmountFromRaw("not-a-number").IsZero())
	assert.True(t, domain.AmountFromRaw("").IsZero())
}

func TestFilterEntries(t *testing.T) {
	may := time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)
	june := time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)
	lastYear := time.Date(2023, 5, 20, 0, 0, 0, 0, time.UTC)

	entries := []domain.LedgerEntry{
		makeEntry(domain.EntryIncome, "100", may, "Website build for Acme"),
		makeEntry(domain.EntryExpense, "50", june, "Salary payment to Ravi"),
		makeEntry(domain.EntryIncome, "75", lastYear, "Hosting renewal"),
	}
	entries[0].ClientName = "Acme Corp"
	entries[1].StaffName = "Ravi Kumar"
	entries[2].ReferenceID = "INV-2023-77"

	t.Run("zero filter returns everything in order", func(t *testing.T) {
		got := domain.FilterEntries(entries, domain.EntryFilter{})
		require.Len(t, got, 3)
		assert.Equal(t, entries, got)
	})

	t.Run("year and month narrow the set", func(t *testing.T) {
		got := domain.FilterEntries(entries, domain.EntryFilter{Year: 2024, Month: time.May})
		require.Len(t, got, 1)
		assert.Equal(t, "Website build for Acme", got[0].Description)
	})

	t.Run("search is case insensitive across fields", func(t *testing.T) {
		byClient := domain.FilterEntries(entries, domain.EntryFilter{Search: "acme"})
		require.Len(t, byClient, 1)
		assert.Equal(t, "Acme Corp", byClient[0].ClientName)

		byStaff := domain.FilterEntries(entries, domain.EntryFilter{Search: "RAVI"})
		require.Len(t, byStaff, 1)

		byRef := domain.FilterEntries(entries, domain.EntryFilter{Search: "inv-2023"})
		require.Len(t, byRef, 1)
	})

	t.Run("filtering is idempotent", func(t *testing.T) {
		f := domain.EntryFilter{Year: 2024, Search: "payment"}
		once := domain.FilterEntries(entries, f)
		twice := domain.FilterEntries(once, f)
		assert.Equal(t, once, twice)
	})

	t.Run("input is never mutated", func(t *testing.T) {
		before := make([]domain.LedgerEntry, len(entries))
		copy(before, entries)
		domain.FilterEntries(entries, domain.EntryFilter{Search: "salary"})
		assert.Equal(t, before, entries)
	})
}

func TestClassifyInvoiceKind(t *testing.T) {
	assert.Equal(t, domain.InvoiceWeeklyAggregate, domain.ClassifyInvoiceKind("WEEK-2024-05-06"))
	assert.Equal(t, domain.InvoiceStandard, domain.ClassifyInvoiceKind("INV-1001"))
	// prefix match is case sensitive and anchored
	assert.Equal(t, domain.InvoiceStandard, domain.ClassifyInvoiceKind("week-2024-05-06"))
	assert.Equal(t, domain.InvoiceStandard, domain.ClassifyInvoiceKind("INV-WEEK-1"))
}
