package dto

import (
	"time"

	"github.com/mcodevbytes/finance_dashboard_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerEntryResponse represents one ledger entry in API responses
type LedgerEntryResponse struct {
	EntryID       string          `json:"entryID"`
	EntryDate     time.Time       `json:"entryDate"`
	EntryType     string          `json:"entryType"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	ReferenceID   string          `json:"referenceID"`
	ReferenceType string          `json:"referenceType"`
	ClientID      *string         `json:"clientID,omitempty"`
	StaffID       *string         `json:"staffID,omitempty"`
	ClientName    string          `json:"clientName,omitempty"`
	StaffName     string          `json:"staffName,omitempty"`
}

// MonthSummaryResponse represents the income/expense/profit totals of a month
type MonthSummaryResponse struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Profit  decimal.Decimal `json:"profit"`
}

// LedgerReportResponse represents the current month ledger report response
type LedgerReportResponse struct {
	Success bool                  `json:"success"`
	Summary MonthSummaryResponse  `json:"summary"`
	Entries []LedgerEntryResponse `json:"entries"`
}

// YearlySummaryRowResponse represents one year's totals in the yearly report
type YearlySummaryRowResponse struct {
	Year    int             `json:"year"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Profit  decimal.Decimal `json:"profit"`
}

// YearlySummaryResponse represents the five-year summary report response
type YearlySummaryResponse struct {
	Success bool                       `json:"success"`
	Years   []YearlySummaryRowResponse `json:"years"`
}

// ToLedgerEntryResponse converts a domain ledger entry
func ToLedgerEntryResponse(entry *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:       entry.EntryID,
		EntryDate:     entry.EntryDate,
		EntryType:     string(entry.EntryType),
		Amount:        entry.Amount,
		Description:   entry.Description,
		ReferenceID:   entry.ReferenceID,
		ReferenceType: string(entry.ReferenceType),
		ClientID:      entry.ClientID,
		StaffID:       entry.StaffID,
		ClientName:    entry.ClientName,
		StaffName:     entry.StaffName,
	}
}

// ToLedgerReportResponse converts a domain ledger report
func ToLedgerReportResponse(report *domain.LedgerReport) LedgerReportResponse {
	resp := LedgerReportResponse{
		Success: true,
		Summary: MonthSummaryResponse{
			Income:  report.Summary.Income,
			Expense: report.Summary.Expense,
			Profit:  report.Summary.Profit,
		},
		Entries: make([]LedgerEntryResponse, len(report.Entries)),
	}
	for i := range report.Entries {
		resp.Entries[i] = ToLedgerEntryResponse(&report.Entries[i])
	}
	return resp
}

// ToYearlySummaryResponse converts domain yearly summaries
func ToYearlySummaryResponse(years []domain.YearlySummary) YearlySummaryResponse {
	resp := YearlySummaryResponse{
		Success: true,
		Years:   make([]YearlySummaryRowResponse, len(years)),
	}
	for i, y := range years {
		resp.Years[i] = YearlySummaryRowResponse{
			Year:    y.Year,
			Income:  y.Income,
			Expense: y.Expense,
			Profit:  y.Profit,
		}
	}
	return resp
}
