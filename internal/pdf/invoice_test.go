package pdf

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/mcodevbytes/finance_dashboard_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testIssuer = Issuer{
	Name:    "MCODEV Bytes",
	Address: "Malappuram",
	City:    "Kerala, India 676504",
	Phone:   "+91 98472-74569",
	Email:   "mcodevbiz@gmail.com",
	Website: "www.mcodevbytes.in",
}

func testClient() domain.Client {
	return domain.Client{
		ClientID: "client-1",
		Name:     "Acme Corp",
		Email:    "billing@acme.example",
		Phone:    "+91 11111-22222",
		Address:  "21 Industrial Estate\nKochi, Kerala",
	}
}

func standardTransaction() domain.Transaction {
	return domain.Transaction{
		TransactionID:   "INV-1001",
		ClientID:        "client-1",
		TransactionDate: time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC),
		DueDate:         time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
		TotalAmount:     decimal.RequireFromString("1180"),
		Status:          domain.StatusPending,
		LineItems: []domain.LineItem{
			{
				Description: "Website development",
				Quantity:    decimal.RequireFromString("2"),
				UnitPrice:   decimal.RequireFromString("500"),
				TaxRate:     decimal.RequireFromString("8"),
				Total:       decimal.RequireFromString("1080"),
			},
			{
				Description: "Domain registration",
				Quantity:    decimal.RequireFromString("1"),
				UnitPrice:   decimal.RequireFromString("100"),
				TaxRate:     decimal.Zero,
				Total:       decimal.RequireFromString("100"),
			},
		},
	}
}

func weeklyTransaction() domain.Transaction {
	return domain.Transaction{
		TransactionID:   "WEEK-2024-05-06",
		ClientID:        "client-1",
		TransactionDate: time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC),
		DueDate:         time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
		TotalAmount:     decimal.RequireFromString("750"),
		Status:          domain.StatusPending,
		LineItems: []domain.LineItem{
			{
				TransactionRef: "INV-1001",
				Date:           time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC),
				ProductName:    "Maintenance",
				Status:         domain.StatusPaid,
				Total:          decimal.RequireFromString("500"),
			},
			{
				TransactionRef: "",
				Date:           time.Time{},
				ProductName:    "",
				Status:         "",
				Total:          decimal.RequireFromString("250"),
			},
		},
	}
}

func TestStatusColor(t *testing.T) {
	assert.Equal(t, rgb{34, 197, 94}, statusColor(domain.StatusPaid))
	assert.Equal(t, rgb{245, 158, 11}, statusColor(domain.StatusPending))
	assert.Equal(t, rgb{239, 68, 68}, statusColor(domain.StatusOverdue))
	assert.Equal(t, rgb{107, 114, 128}, statusColor(domain.StatusDraft))
	assert.Equal(t, rgb{59, 130, 246}, statusColor(domain.StatusPartial))
	// unknown statuses take the default text color
	assert.Equal(t, defaultText, statusColor(domain.TransactionStatus("archived")))
}

func TestFormatInvoiceDate(t *testing.T) {
	assert.Equal(t, "-", formatInvoiceDate(time.Time{}))
	assert.Equal(t, "May 6, 2024", formatInvoiceDate(time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)))
}

func TestCapitalizeStatus(t *testing.T) {
	assert.Equal(t, "Paid", capitalizeStatus(domain.StatusPaid))
	assert.Equal(t, "Overdue", capitalizeStatus(domain.StatusOverdue))
	assert.Equal(t, "-", capitalizeStatus(""))
}

func TestBuildInvoiceTable(t *testing.T) {
	t.Run("weekly aggregate uses the five weekly columns", func(t *testing.T) {
		txn := weeklyTransaction()
		table := buildInvoiceTable(txn, txn.InvoiceKind())

		assert.Equal(t, []string{"Transaction ID", "Date", "Description", "Status", "Amount"}, table.headers)
		assert.Equal(t, []float64{40, 30, 50, 25, 40}, table.widths)
		require.Len(t, table.rows, 2)

		assert.Equal(t, []string{"INV-1001", "May 6, 2024", "Maintenance", "Paid", "Rs. 500"}, table.rows[0])
		// absent fields fall back to placeholders
		assert.Equal(t, []string{"-", "-", "Service", "-", "Rs. 250"}, table.rows[1])
	})

	t.Run("standard itemized transaction uses the item columns", func(t *testing.T) {
		txn := standardTransaction()
		table := buildInvoiceTable(txn, txn.InvoiceKind())

		assert.Equal(t, []string{"Item", "Quantity", "Unit Price", "Tax", "Amount"}, table.headers)
		assert.Equal(t, []float64{80, 20, 25, 20, 40}, table.widths)
		require.Len(t, table.rows, 2)
		assert.Equal(t, []string{"Website development", "2", "Rs. 500", "8%", "Rs. 1080"}, table.rows[0])
		assert.Equal(t, []string{"Domain registration", "1", "Rs. 100", "0%", "Rs. 100"}, table.rows[1])
	})

	t.Run("no line items produce one synthetic row", func(t *testing.T) {
		txn := standardTransaction()
		txn.LineItems = nil
		txn.Description = "Consulting retainer"
		table := buildInvoiceTable(txn, txn.InvoiceKind())

		require.Len(t, table.rows, 1)
		assert.Equal(t, []string{"Consulting retainer", "1", "Rs. 1180", "0%", "Rs. 1180"}, table.rows[0])
	})

	t.Run("weekly id without items keeps the weekly columns", func(t *testing.T) {
		txn := weeklyTransaction()
		txn.LineItems = nil
		txn.Description = "Weekly invoice for Acme Corp"
		table := buildInvoiceTable(txn, txn.InvoiceKind())

		assert.Equal(t, []string{"Transaction ID", "Date", "Description", "Status", "Amount"}, table.headers)
		assert.Equal(t, []float64{40, 30, 50, 25, 40}, table.widths)
		require.Len(t, table.rows, 1)
		assert.Equal(t, []string{"Weekly invoice for Acme Corp", "1", "Rs. 750", "0%", "Rs. 750"}, table.rows[0])
	})
}

func TestAggregateTax(t *testing.T) {
	items := standardTransaction().LineItems
	// 500 * 2 * 8% = 80, second line is untaxed
	assert.Equal(t, "80", aggregateTax(items).String())

	assert.True(t, aggregateTax(nil).IsZero())
}

func TestRenderInvoice(t *testing.T) {
	now := time.Date(2024, 5, 21, 10, 0, 0, 0, time.UTC)

	decodePDF := func(t *testing.T, dataURI string) []byte {
		t.Helper()
		const prefix = "data:application/pdf;base64,"
		require.True(t, strings.HasPrefix(dataURI, prefix))
		raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURI, prefix))
		require.NoError(t, err)
		return raw
	}

	t.Run("standard invoice renders to a PDF data URI", func(t *testing.T) {
		dataURI, err := RenderInvoice(testIssuer, standardTransaction(), testClient(), now)
		require.NoError(t, err)

		raw := decodePDF(t, dataURI)
		assert.True(t, strings.HasPrefix(string(raw), "%PDF"))
	})

	t.Run("weekly invoice renders to a PDF data URI", func(t *testing.T) {
		dataURI, err := RenderInvoice(testIssuer, weeklyTransaction(), testClient(), now)
		require.NoError(t, err)

		raw := decodePDF(t, dataURI)
		assert.True(t, strings.HasPrefix(string(raw), "%PDF"))
	})

	t.Run("rendering is deterministic for fixed inputs", func(t *testing.T) {
		first, err := RenderInvoice(testIssuer, standardTransaction(), testClient(), now)
		require.NoError(t, err)
		second, err := RenderInvoice(testIssuer, standardTransaction(), testClient(), now)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("empty transaction without description still renders", func(t *testing.T) {
		txn := standardTransaction()
		txn.LineItems = nil
		txn.Notes = "Payment due within 14 days of the invoice date. Late payments accrue interest at the agreed rate."

		dataURI, err := RenderInvoice(testIssuer, txn, testClient(), now)
		require.NoError(t, err)
		decodePDF(t, dataURI)
	})
}
