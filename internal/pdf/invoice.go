// Package pdf renders invoice documents for transactions. The layout is
// fixed: later blocks are positioned relative to the measured extent of the
// line-items table, so the drawing order in RenderInvoice must not change.
package pdf

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/mcodevbytes/finance_dashboard_app/internal/core/domain"
	"github.com/mcodevbytes/finance_dashboard_app/internal/utils"
)

// Issuer is the identity block printed in the invoice header.
type Issuer struct {
	Name    string
	Address string
	City    string
	Phone   string
	Email   string
	Website string
}

type rgb struct {
	r, g, b int
}

var (
	primaryColor = rgb{58, 134, 255}  // #3A86FF
	defaultText  = rgb{51, 51, 51}    // #333333
	statusGreen  = rgb{34, 197, 94}   // #22c55e
	statusAmber  = rgb{245, 158, 11}  // #f59e0b
	statusRed    = rgb{239, 68, 68}   // #ef4444
	statusGray   = rgb{107, 114, 128} // #6b7280
	statusBlue   = rgb{59, 130, 246}  // #3b82f6
)

// statusColor is a total function over the status enum; unknown statuses fall
// back to the default text color rather than failing.
func statusColor(s domain.TransactionStatus) rgb {
	switch s {
	case domain.StatusPaid:
		return statusGreen
	case domain.StatusPending:
		return statusAmber
	case domain.StatusOverdue:
		return statusRed
	case domain.StatusDraft:
		return statusGray
	case domain.StatusPartial:
		return statusBlue
	default:
		return defaultText
	}
}

const (
	pageRightEdge  = 190.0 // right-aligned text anchor, mm
	tableStartY    = 100.0
	tableStartX    = 14.0
	postTableGap   = 10.0
	notesMaxWidth  = 170.0
	footerThanksY  = 280.0
	footerStampY   = 285.0
	footerPageNumY = 287.0
)

// formatInvoiceDate renders a date for display on the document. Zero dates
// print as "-".
func formatInvoiceDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("Jan 2, 2006")
}

// capitalizeStatus renders a weekly table status cell: first letter upper,
// rest untouched, "-" when absent.
func capitalizeStatus(s domain.TransactionStatus) string {
	if s == "" {
		return "-"
	}
	str := string(s)
	return strings.ToUpper(str[:1]) + str[1:]
}

type docWriter struct {
	pdf *gofpdf.Fpdf
}

type textOpts struct {
	size  float64
	style string // "" or "B"
	color rgb
	align string // "L", "R" or "C"
}

// text draws a single string at x,y (top-left oriented) with the given
// styling, restoring nothing: every call sets font and color explicitly.
func (d *docWriter) text(s string, x, y float64, o textOpts) {
	if o.size == 0 {
		o.size = 10
	}
	if o.color == (rgb{}) {
		o.color = defaultText
	}
	d.pdf.SetFont("Helvetica", o.style, o.size)
	d.pdf.SetTextColor(o.color.r, o.color.g, o.color.b)
	switch o.align {
	case "R":
		x -= d.pdf.GetStringWidth(s)
	case "C":
		x -= d.pdf.GetStringWidth(s) / 2
	}
	d.pdf.Text(x, y, s)
}

// invoiceTable is the fully prepared line-items table: headers, rows and
// column geometry, derived once from the classified transaction.
type invoiceTable struct {
	headers []string
	rows    [][]string
	widths  []float64
	aligns  []string
}

// buildInvoiceTable prepares the line-items table. The column set follows the
// classified kind alone; only the row source varies: weekly rollup rows,
// itemized rows, or a single synthetic row built from the transaction itself.
func buildInvoiceTable(txn domain.Transaction, kind domain.InvoiceKind) invoiceTable {
	t := invoiceTable{
		headers: []string{"Item", "Quantity", "Unit Price", "Tax", "Amount"},
		widths:  []float64{80, 20, 25, 20, 40},
		aligns:  []string{"L", "C", "R", "C", "R"},
	}
	if kind == domain.InvoiceWeeklyAggregate {
		t.headers = []string{"Transaction ID", "Date", "Description", "Status", "Amount"}
		t.widths = []float64{40, 30, 50, 25, 40}
		t.aligns = []string{"L", "L", "L", "C", "R"}
	}

	switch {
	case kind == domain.InvoiceWeeklyAggregate && len(txn.LineItems) > 0:
		for _, item := range txn.LineItems {
			ref := item.TransactionRef
			if ref == "" {
				ref = "-"
			}
			product := item.ProductName
			if product == "" {
				product = "Service"
			}
			t.rows = append(t.rows, []string{
				ref,
				formatInvoiceDate(item.Date),
				product,
				capitalizeStatus(item.Status),
				utils.FormatRupees(item.Total),
			})
		}
	case len(txn.LineItems) > 0:
		for _, item := range txn.LineItems {
			t.rows = append(t.rows, []string{
				item.Description,
				item.Quantity.String(),
				utils.FormatRupees(item.UnitPrice),
				utils.FormatPercent(item.TaxRate),
				utils.FormatRupees(item.Total),
			})
		}
	default:
		// No itemization: one synthetic row from the transaction's own fields.
		t.rows = [][]string{{
			txn.Description,
			"1",
			utils.FormatRupees(txn.TotalAmount),
			"0%",
			utils.FormatRupees(txn.TotalAmount),
		}}
	}
	return t
}

// aggregateTax computes the informational tax total over itemized lines:
// sum of unitPrice * quantity * taxRate / 100.
func aggregateTax(items []domain.LineItem) decimal.Decimal {
	total := decimal.Zero
	hundred := decimal.NewFromInt(100)
	for _, item := range items {
		total = total.Add(item.UnitPrice.Mul(item.Quantity).Mul(item.TaxRate).Div(hundred))
	}
	return total
}

// RenderInvoice lays out the invoice document for one transaction and client
// and returns it serialized as a base64 data URI. It performs no I/O; the
// whole document is built in memory. On any error no document is returned.
func RenderInvoice(issuer Issuer, txn domain.Transaction, client domain.Client, now time.Time) (string, error) {
	kind := txn.InvoiceKind()

	p := gofpdf.New("P", "mm", "A4", "")
	p.SetTitle(fmt.Sprintf("Invoice %s", txn.TransactionID), false)
	p.SetAuthor(issuer.Name, false)
	p.SetCreator(issuer.Name, false)
	p.AliasNbPages("")
	d := &docWriter{pdf: p}

	// Footer runs on every page of the finished document.
	p.SetFooterFunc(func() {
		pageStr := fmt.Sprintf("Page %d of {nb}", p.PageNo())
		d.text(pageStr, pageRightEdge, footerPageNumY, textOpts{size: 8, align: "R"})
		d.text("Thank you for your business!", 105, footerThanksY, textOpts{size: 10, align: "C"})
		d.text(fmt.Sprintf("Generated on %s", now.Format("1/2/2006")), 105, footerStampY, textOpts{size: 8, align: "C"})
	})

	p.AddPage()

	// Issuer identity block, fixed coordinates top-left.
	d.text(issuer.Name, 20, 20, textOpts{size: 20, style: "B", color: primaryColor})
	d.text(issuer.Address, 20, 27, textOpts{})
	d.text(issuer.City, 20, 32, textOpts{})
	d.text(issuer.Phone, 20, 37, textOpts{})
	d.text(issuer.Email, 20, 42, textOpts{})
	d.text(issuer.Website, 20, 47, textOpts{})

	// Title, number, status and dates, right-aligned.
	title := "INVOICE"
	if kind == domain.InvoiceWeeklyAggregate {
		title = "WEEKLY INVOICE"
	}
	d.text(title, pageRightEdge, 20, textOpts{size: 20, style: "B", color: primaryColor, align: "R"})
	d.text(fmt.Sprintf("#%s", txn.TransactionID), pageRightEdge, 27, textOpts{size: 12, align: "R"})
	d.text(fmt.Sprintf("Status: %s", strings.ToUpper(string(txn.Status))), pageRightEdge, 34,
		textOpts{size: 12, style: "B", color: statusColor(txn.Status), align: "R"})
	d.text(fmt.Sprintf("Date: %s", formatInvoiceDate(txn.TransactionDate)), pageRightEdge, 42, textOpts{align: "R"})
	d.text(fmt.Sprintf("Due Date: %s", formatInvoiceDate(txn.DueDate)), pageRightEdge, 47, textOpts{align: "R"})

	// Bill-to block. Address lines render one per embedded newline.
	d.text("Bill To:", 20, 60, textOpts{size: 12, style: "B"})
	d.text(client.Name, 20, 67, textOpts{})
	d.text(client.Email, 20, 72, textOpts{})
	if client.Phone != "" {
		d.text(client.Phone, 20, 77, textOpts{})
	}
	if client.Address != "" {
		for i, line := range strings.Split(client.Address, "\n") {
			d.text(line, 20, 82+float64(i)*5, textOpts{})
		}
	}

	if txn.ReferenceNumber != "" {
		d.text(fmt.Sprintf("Reference: %s", txn.ReferenceNumber), pageRightEdge, 60, textOpts{align: "R"})
	}
	if txn.PaymentMethod != "" {
		d.text(fmt.Sprintf("Payment Method: %s", txn.PaymentMethod), pageRightEdge, 65, textOpts{align: "R"})
	}

	// Line-items table. finalY anchors everything below it.
	table := buildInvoiceTable(txn, kind)
	var finalY float64
	if len(table.rows) > 0 {
		endY, err := d.drawTable(table, tableStartY)
		if err != nil {
			return "", fmt.Errorf("failed to render invoice line items table: %w", err)
		}
		finalY = endY + postTableGap
	} else {
		finalY = tableStartY + postTableGap
		d.text("No line items to display.", 20, tableStartY, textOpts{})
	}

	// Totals block. The grand total redisplays the transaction's total amount
	// verbatim; the tax line is informational and is not folded into it.
	d.text("Subtotal:", 150, finalY, textOpts{align: "R"})
	d.text(utils.FormatRupees(txn.TotalAmount), pageRightEdge, finalY, textOpts{align: "R"})

	if kind != domain.InvoiceWeeklyAggregate && len(txn.LineItems) > 0 {
		totalTax := aggregateTax(txn.LineItems)
		if totalTax.GreaterThan(decimal.Zero) {
			d.text("Tax:", 150, finalY+7, textOpts{align: "R"})
			d.text(totalTax.String(), pageRightEdge, finalY+7, textOpts{align: "R"})
		}
	}

	d.text("Total:", 150, finalY+15, textOpts{size: 12, style: "B", align: "R"})
	d.text(utils.FormatRupees(txn.TotalAmount), pageRightEdge, finalY+15, textOpts{size: 12, style: "B", align: "R"})

	d.text(fmt.Sprintf("Status: %s", strings.ToUpper(string(txn.Status))), pageRightEdge, finalY+25,
		textOpts{size: 12, style: "B", color: statusColor(txn.Status), align: "R"})

	if txn.Notes != "" {
		notesY := finalY + 35
		d.text("Notes:", 20, notesY, textOpts{size: 11, style: "B"})
		p.SetFont("Helvetica", "", 10)
		for i, line := range p.SplitText(txn.Notes, notesMaxWidth) {
			d.text(line, 20, notesY+7+float64(i)*5, textOpts{})
		}
	}

	var buf bytes.Buffer
	if err := p.Output(&buf); err != nil {
		return "", fmt.Errorf("invoice document generation failed: %w", err)
	}

	return "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// drawTable renders the line-items grid starting at startY and returns the
// vertical position after the last row. Failures at this stage are fatal for
// the whole document: a financial document without its table must never be
// emitted.
func (d *docWriter) drawTable(t invoiceTable, startY float64) (float64, error) {
	p := d.pdf
	const rowHeight = 9.0

	p.SetXY(tableStartX, startY)
	p.SetFont("Helvetica", "B", 9)
	p.SetTextColor(255, 255, 255)
	p.SetFillColor(primaryColor.r, primaryColor.g, primaryColor.b)
	p.SetDrawColor(180, 180, 180)
	for i, h := range t.headers {
		p.CellFormat(t.widths[i], rowHeight, h, "1", 0, "L", true, 0, "")
	}
	p.Ln(rowHeight)

	p.SetFont("Helvetica", "", 9)
	p.SetTextColor(defaultText.r, defaultText.g, defaultText.b)
	for _, row := range t.rows {
		p.SetX(tableStartX)
		for i, cell := range row {
			p.CellFormat(t.widths[i], rowHeight, cell, "1", 0, t.aligns[i], false, 0, "")
		}
		p.Ln(rowHeight)
	}

	if p.Err() {
		return 0, p.Error()
	}
	return p.GetY(), nil
}
